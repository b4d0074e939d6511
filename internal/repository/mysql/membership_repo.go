package mysql

import (
	"Club_Community/internal/model"

	"gorm.io/gorm"
)

type MembershipRepository struct {
	DB *gorm.DB
}

func (r *MembershipRepository) Create(m *model.Membership) error {
	return r.DB.Create(m).Error
}

func (r *MembershipRepository) FindByID(id uint64) (*model.Membership, error) {
	var m model.Membership
	err := r.DB.First(&m, id).Error
	return &m, err
}

// FindRole 查用户在某社区的角色，无会籍返回 visitor
func (r *MembershipRepository) FindRole(userID, communityID uint64) (string, error) {
	var m model.Membership
	err := r.DB.Select("role").
		Where("user_id = ? AND community_id = ?", userID, communityID).
		First(&m).Error
	if err != nil {
		if IsNotFound(err) {
			return model.RoleVisitor, nil
		}
		return "", err
	}
	return m.Role, nil
}

func (r *MembershipRepository) IsMember(userID, communityID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Membership{}).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error
	return count > 0, err
}

func (r *MembershipRepository) List(userID, communityID uint64) ([]model.Membership, error) {
	q := r.DB.Model(&model.Membership{})
	if userID > 0 {
		q = q.Where("user_id = ?", userID)
	}
	if communityID > 0 {
		q = q.Where("community_id = ?", communityID)
	}
	var list []model.Membership
	err := q.Order("joined_at DESC, id DESC").Find(&list).Error
	return list, err
}

// UpdateFields 先查后改：MySQL 默认只报告实际变更的行数，
// 不能拿 RowsAffected 判断记录是否存在
func (r *MembershipRepository) UpdateFields(id uint64, fields map[string]any) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var m model.Membership
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		return tx.Model(&m).Updates(fields).Error
	})
}
