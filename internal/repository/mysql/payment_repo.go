package mysql

import (
	"encoding/json"

	"Club_Community/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func (r *PaymentRepository) Create(p *model.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) FindByID(id uint64) (*model.Payment, error) {
	var p model.Payment
	err := r.DB.First(&p, id).Error
	return &p, err
}

func (r *PaymentRepository) List(userID, communityID uint64) ([]model.Payment, error) {
	q := r.DB.Model(&model.Payment{})
	if userID > 0 {
		q = q.Where("user_id = ?", userID)
	}
	if communityID > 0 {
		q = q.Where("community_id = ?", communityID)
	}
	var list []model.Payment
	err := q.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// UpdateFields 改状态/方式；转为 paid 时在同一事务里落一条 outbox
func (r *PaymentRepository) UpdateFields(id uint64, fields map[string]any) (*model.Payment, error) {
	var p model.Payment
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		wasPaid := p.Status == model.PaymentPaid
		if err := tx.Model(&p).Updates(fields).Error; err != nil {
			return err
		}
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if !wasPaid && p.Status == model.PaymentPaid {
			payload, _ := json.Marshal(map[string]any{
				"payment_id": p.ID,
				"user_id":    p.UserID,
				"amount":     p.Amount,
			})
			return tx.Create(&model.BillingOutbox{
				EventType:   model.OutboxPaymentPaid,
				UserID:      p.UserID,
				CommunityID: p.CommunityID,
				RelatedID:   p.ID,
				Payload:     string(payload),
			}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DashboardStats 会籍与收费的聚合读模型，实时计算不落库
type DashboardStats struct {
	TotalMembers   int64 `json:"total_members"`
	ActiveMembers  int64 `json:"active_members"`
	ExpiredMembers int64 `json:"expired_members"`
	PendingMembers int64 `json:"pending_members"`
	PaidAmount     int64 `json:"paid_amount"`
	TotalEvents    int64 `json:"total_events"`
}

type StatsRepository struct {
	DB *gorm.DB
}

func (r *StatsRepository) Dashboard(communityID uint64) (*DashboardStats, error) {
	var s DashboardStats

	memberships := r.DB.Model(&model.Membership{})
	payments := r.DB.Model(&model.Payment{})
	events := r.DB.Model(&model.Event{})
	if communityID > 0 {
		memberships = memberships.Where("community_id = ?", communityID)
		payments = payments.Where("community_id = ?", communityID)
		events = events.Where("community_id = ?", communityID)
	}

	if err := memberships.Session(&gorm.Session{}).Count(&s.TotalMembers).Error; err != nil {
		return nil, err
	}
	if err := memberships.Session(&gorm.Session{}).
		Where("status = ?", model.MembershipActive).Count(&s.ActiveMembers).Error; err != nil {
		return nil, err
	}
	if err := memberships.Session(&gorm.Session{}).
		Where("status = ?", model.MembershipExpired).Count(&s.ExpiredMembers).Error; err != nil {
		return nil, err
	}
	// pending 是派生值，不单独存储
	s.PendingMembers = s.TotalMembers - s.ActiveMembers - s.ExpiredMembers

	if err := payments.Where("status = ?", model.PaymentPaid).
		Select("COALESCE(SUM(amount), 0)").Scan(&s.PaidAmount).Error; err != nil {
		return nil, err
	}
	if err := events.Count(&s.TotalEvents).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
