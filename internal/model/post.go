package model

import "time"

type Post struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CommunityID uint64    `gorm:"not null;index:idx_post_community_time,priority:1" json:"community_id"`
	AuthorID    uint64    `gorm:"not null;index" json:"author_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	MediaURL    string    `gorm:"size:255" json:"media_url"`
	IsPinned    bool      `gorm:"not null;default:false" json:"is_pinned"`
	CreatedAt   time.Time `gorm:"index:idx_post_community_time,priority:2,sort:desc" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"post_id"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
