package model

import "time"

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// RelatedTypeEvent 关联实体类型：由活动报名产生的费用
const RelatedTypeEvent = "event"

type Payment struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	CommunityID uint64    `gorm:"not null;index" json:"community_id"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Method      string    `gorm:"size:32" json:"method"`
	Status      string    `gorm:"size:16;not null;default:pending" json:"status"`
	RelatedType string    `gorm:"size:32" json:"related_type"`
	RelatedID   uint64    `json:"related_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}
