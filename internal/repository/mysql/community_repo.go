package mysql

import (
	"Club_Community/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// Create 建社区并在同一事务里给创建者落一条 staff 会籍
func (r *CommunityRepository) Create(c *model.Community, creatorMembershipNo string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Create(&model.Membership{
			UserID:       c.CreatorID,
			CommunityID:  c.ID,
			MembershipNo: creatorMembershipNo,
			Status:       model.MembershipActive,
			Role:         model.RoleStaff,
		}).Error
	})
}

// EnsureDefault 启动时兜底建默认社区，已存在则跳过
func (r *CommunityRepository) EnsureDefault(name string) error {
	var community model.Community
	err := r.DB.Where("name = ?", name).First(&community).Error
	if err == nil {
		return nil
	}
	if !IsNotFound(err) {
		return err
	}
	err = r.DB.Create(&model.Community{Name: name, Description: "默认社区"}).Error
	if IsDuplicate(err) {
		return nil
	}
	return err
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, id).Error
	return &community, err
}

func (r *CommunityRepository) FindByName(name string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("name = ?", name).First(&community).Error
	return &community, err
}

func (r *CommunityRepository) List() ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}
