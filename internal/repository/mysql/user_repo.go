package mysql

import (
	"Club_Community/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

// FindByIdentifier 登录标识：邮箱或手机号
func (r *UserRepository) FindByIdentifier(identifier string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ? OR phone = ?", identifier, identifier).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByWeChatID(wechatID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("wechat_id = ?", wechatID).First(&user).Error
	return &user, err
}

func (r *UserRepository) UsernameTaken(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) List() ([]model.User, error) {
	var list []model.User
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// UpdateFields 先查后改，原值重写也算成功
func (r *UserRepository) UpdateFields(id uint64, fields map[string]any) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		return tx.Model(&user).Updates(fields).Error
	})
}
