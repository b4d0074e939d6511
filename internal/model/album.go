package model

import "time"

type Album struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CommunityID uint64    `gorm:"not null;index" json:"community_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CoverURL    string    `gorm:"size:255" json:"cover_url"`
	CreatorID   uint64    `gorm:"not null" json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Photo struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	AlbumID   uint64    `gorm:"not null;index" json:"album_id"`
	PhotoURL  string    `gorm:"size:255;not null" json:"photo_url"`
	Caption   string    `gorm:"size:255" json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}
