package service

import (
	"Club_Community/internal/model"
	"Club_Community/internal/pkg/errs"
	"Club_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type PaymentService struct {
	repo      *mysql.PaymentRepository
	statsRepo *mysql.StatsRepository
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{
		repo:      &mysql.PaymentRepository{DB: db},
		statsRepo: &mysql.StatsRepository{DB: db},
	}
}

type PaymentCreateInput struct {
	UserID      uint64
	CommunityID uint64
	Description string
	Amount      int64
	Method      string
	Status      string
	RelatedType string
	RelatedID   uint64
}

// Create 活动费用走报名事务，这里是管理员手工记账入口
func (s *PaymentService) Create(in PaymentCreateInput) (*model.Payment, error) {
	if in.UserID == 0 || in.CommunityID == 0 {
		return nil, errs.Validation("user_id and community_id required")
	}
	if in.Description == "" {
		return nil, errs.Validation("description required")
	}
	if in.Amount <= 0 {
		return nil, errs.Validation("amount must be positive")
	}
	if in.Status == "" {
		in.Status = model.PaymentPending
	}
	if !model.ValidPaymentStatus(in.Status) {
		return nil, errs.Validation("invalid status")
	}

	p := &model.Payment{
		UserID:      in.UserID,
		CommunityID: in.CommunityID,
		Description: in.Description,
		Amount:      in.Amount,
		Method:      in.Method,
		Status:      in.Status,
		RelatedType: in.RelatedType,
		RelatedID:   in.RelatedID,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, errs.Internal("create payment failed")
	}
	return p, nil
}

func (s *PaymentService) List(userID, communityID uint64) ([]model.Payment, error) {
	list, err := s.repo.List(userID, communityID)
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

// Update 人工对账：只开放状态和缴费方式，零字段拒绝
func (s *PaymentService) Update(id uint64, status, method *string) (*model.Payment, error) {
	fields := map[string]any{}
	if status != nil {
		if !model.ValidPaymentStatus(*status) {
			return nil, errs.Validation("invalid status")
		}
		fields["status"] = *status
	}
	if method != nil {
		fields["method"] = *method
	}
	if len(fields) == 0 {
		return nil, errs.Validation("no fields to update")
	}

	p, err := s.repo.UpdateFields(id, fields)
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("payment not found")
		}
		return nil, errs.Internal("update failed")
	}
	return p, nil
}

func (s *PaymentService) DashboardStats(communityID uint64) (*mysql.DashboardStats, error) {
	stats, err := s.statsRepo.Dashboard(communityID)
	if err != nil {
		return nil, errs.Internal("stats failed")
	}
	return stats, nil
}
