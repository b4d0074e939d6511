package mysql

import (
	"Club_Community/internal/model"

	"gorm.io/gorm"
)

type AlbumRepository struct {
	DB *gorm.DB
}

func (r *AlbumRepository) Create(a *model.Album) error {
	return r.DB.Create(a).Error
}

func (r *AlbumRepository) FindByID(id uint64) (*model.Album, error) {
	var a model.Album
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *AlbumRepository) List(communityID uint64) ([]model.Album, error) {
	q := r.DB.Model(&model.Album{})
	if communityID > 0 {
		q = q.Where("community_id = ?", communityID)
	}
	var list []model.Album
	err := q.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// UpdateFields 先查后改，原值重写也算成功
func (r *AlbumRepository) UpdateFields(id uint64, fields map[string]any) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var a model.Album
		if err := tx.First(&a, id).Error; err != nil {
			return err
		}
		return tx.Model(&a).Updates(fields).Error
	})
}

// Delete 相册连同其下照片一并删除
func (r *AlbumRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("album_id = ?", id).Delete(&model.Photo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Album{}, id).Error
	})
}

type PhotoRepository struct {
	DB *gorm.DB
}

func (r *PhotoRepository) Create(p *model.Photo) error {
	return r.DB.Create(p).Error
}

func (r *PhotoRepository) ListByAlbum(albumID uint64) ([]model.Photo, error) {
	var list []model.Photo
	err := r.DB.Where("album_id = ?", albumID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *PhotoRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Photo{}, id).Error
}
