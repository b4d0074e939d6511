package model

import "time"

const (
	OutboxEventRegistration = "event_registration"
	OutboxPaymentCreated    = "payment_created"
	OutboxPaymentPaid       = "payment_paid"
)

// BillingOutbox 报名/缴费事件的投递表，业务事务内落库，由 relayer 异步发出
type BillingOutbox struct {
	ID          uint64    `gorm:"primaryKey"`
	EventType   string    `gorm:"size:32;not null"`
	UserID      uint64    `gorm:"not null"`
	CommunityID uint64    `gorm:"not null"`
	RelatedID   uint64    `gorm:"not null"`
	Payload     string    `gorm:"type:json;not null"`
	Status      int8      `gorm:"not null;default:0"` // 0=pending,1=sent,2=failed
	Retry       int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BillingOutbox) TableName() string { return "billing_outbox" }
