package model

import "time"

const (
	RegistrationRegistered = "registered"
	RegistrationCancelled  = "cancelled"
	RegistrationCheckedIn  = "checked_in"
)

func ValidRegistrationStatus(status string) bool {
	switch status {
	case RegistrationRegistered, RegistrationCancelled, RegistrationCheckedIn:
		return true
	}
	return false
}

type Event struct {
	ID                uint64     `gorm:"primaryKey" json:"id"`
	CommunityID       uint64     `gorm:"not null;index" json:"community_id"`
	Title             string     `gorm:"size:200;not null" json:"title"`
	Description       string     `gorm:"type:text" json:"description"`
	StartAt           time.Time  `gorm:"not null" json:"start_at"`
	EndAt             *time.Time `json:"end_at"`
	Location          string     `gorm:"size:255" json:"location"`
	Capacity          *int       `json:"capacity"`
	IsPublic          bool       `gorm:"not null;default:true" json:"is_public"`
	Price             int64      `gorm:"not null;default:0" json:"price"`
	EarlyBirdPrice    *int64     `json:"early_bird_price"`
	EarlyBirdDeadline *time.Time `json:"early_bird_deadline"`
	CreatorID         uint64     `gorm:"not null" json:"creator_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ChargedPrice 报名时实际应收的价格：早鸟价在截止前生效，否则按原价
func (e *Event) ChargedPrice(now time.Time) int64 {
	if e.EarlyBirdPrice != nil && e.EarlyBirdDeadline != nil && now.Before(*e.EarlyBirdDeadline) {
		return *e.EarlyBirdPrice
	}
	return e.Price
}

type EventRegistration struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	EventID      uint64    `gorm:"not null;index;uniqueIndex:uk_registration_event_user" json:"event_id"`
	UserID       uint64    `gorm:"not null;index;uniqueIndex:uk_registration_event_user" json:"user_id"`
	Status       string    `gorm:"size:16;not null;default:registered" json:"status"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
