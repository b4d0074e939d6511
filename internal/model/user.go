package model

import "time"

type User struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Phone          *string   `gorm:"uniqueIndex;size:32" json:"phone"`
	Username       string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	WeChatID       *string   `gorm:"column:wechat_id;uniqueIndex;size:64" json:"wechat_id"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	ProfilePicture string    `gorm:"size:255" json:"profile_picture"`
	Bio            string    `gorm:"type:text" json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
