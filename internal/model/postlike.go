package model

import "time"

type PostLike struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"not null;index;uniqueIndex:uk_like_post_user" json:"post_id"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_like_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
