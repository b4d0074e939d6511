package mysql

import (
	"Club_Community/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func (r *AnnouncementRepository) Create(a *model.Announcement) error {
	return r.DB.Create(a).Error
}

func (r *AnnouncementRepository) FindByID(id uint64) (*model.Announcement, error) {
	var a model.Announcement
	err := r.DB.First(&a, id).Error
	return &a, err
}

// List 置顶在前，组内新帖在前
func (r *AnnouncementRepository) List(communityID uint64) ([]model.Announcement, error) {
	q := r.DB.Model(&model.Announcement{})
	if communityID > 0 {
		q = q.Where("community_id = ?", communityID)
	}
	var list []model.Announcement
	err := q.Order("is_pinned DESC, created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// UpdateFields 先查后改，原值重写也算成功
func (r *AnnouncementRepository) UpdateFields(id uint64, fields map[string]any) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var a model.Announcement
		if err := tx.First(&a, id).Error; err != nil {
			return err
		}
		return tx.Model(&a).Updates(fields).Error
	})
}

func (r *AnnouncementRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Announcement{}, id).Error
}
