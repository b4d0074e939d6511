package service

import (
	"errors"
	"time"

	"Club_Community/internal/model"
	"Club_Community/internal/pkg/errs"
	"Club_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type EventService struct {
	repo       *mysql.EventRepository
	userRepo   *mysql.UserRepository
	memberRepo *mysql.MembershipRepository
	notifier   *Notifier
}

func NewEventService(db *gorm.DB, notifier *Notifier) *EventService {
	return &EventService{
		repo:       &mysql.EventRepository{DB: db},
		userRepo:   &mysql.UserRepository{DB: db},
		memberRepo: &mysql.MembershipRepository{DB: db},
		notifier:   notifier,
	}
}

type EventCreateInput struct {
	CommunityID       uint64
	Title             string
	Description       string
	StartAt           time.Time
	EndAt             *time.Time
	Location          string
	Capacity          *int
	IsPublic          bool
	Price             int64
	EarlyBirdPrice    *int64
	EarlyBirdDeadline *time.Time
}

func (s *EventService) Create(creatorID uint64, in EventCreateInput) (*model.Event, error) {
	if in.Title == "" {
		return nil, errs.Validation("title required")
	}
	if in.StartAt.IsZero() {
		return nil, errs.Validation("start_at required")
	}
	if in.Price < 0 {
		return nil, errs.Validation("price cannot be negative")
	}
	if err := requireStaff(s.memberRepo, creatorID, in.CommunityID); err != nil {
		return nil, err
	}

	event := &model.Event{
		CommunityID:       in.CommunityID,
		Title:             in.Title,
		Description:       in.Description,
		StartAt:           in.StartAt,
		EndAt:             in.EndAt,
		Location:          in.Location,
		Capacity:          in.Capacity,
		IsPublic:          in.IsPublic,
		Price:             in.Price,
		EarlyBirdPrice:    in.EarlyBirdPrice,
		EarlyBirdDeadline: in.EarlyBirdDeadline,
		CreatorID:         creatorID,
	}
	if err := s.repo.Create(event); err != nil {
		return nil, errs.Internal("create event failed")
	}
	return event, nil
}

func (s *EventService) Get(id uint64) (*model.Event, error) {
	event, err := s.repo.FindByID(id)
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("event not found")
		}
		return nil, errs.Internal("lookup failed")
	}
	return event, nil
}

func (s *EventService) List(communityID uint64) ([]model.Event, error) {
	list, err := s.repo.List(communityID)
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

type EventUpdateInput struct {
	Title             *string
	Description       *string
	StartAt           *time.Time
	EndAt             *time.Time
	Location          *string
	Capacity          *int
	IsPublic          *bool
	Price             *int64
	EarlyBirdPrice    *int64
	EarlyBirdDeadline *time.Time
}

func (s *EventService) Update(operatorID, id uint64, in EventUpdateInput) (*model.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(s.memberRepo, operatorID, event.CommunityID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, errs.Validation("title cannot be empty")
		}
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.StartAt != nil {
		fields["start_at"] = *in.StartAt
	}
	if in.EndAt != nil {
		fields["end_at"] = *in.EndAt
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Capacity != nil {
		fields["capacity"] = *in.Capacity
	}
	if in.IsPublic != nil {
		fields["is_public"] = *in.IsPublic
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, errs.Validation("price cannot be negative")
		}
		fields["price"] = *in.Price
	}
	if in.EarlyBirdPrice != nil {
		fields["early_bird_price"] = *in.EarlyBirdPrice
	}
	if in.EarlyBirdDeadline != nil {
		fields["early_bird_deadline"] = *in.EarlyBirdDeadline
	}
	if len(fields) == 0 {
		return nil, errs.Validation("no fields to update")
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("event not found")
		}
		return nil, errs.Internal("update failed")
	}
	return s.Get(id)
}

// Delete 有报名记录的活动按冲突拒绝，不留孤儿数据
func (s *EventService) Delete(operatorID, id uint64) error {
	event, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := requireStaff(s.memberRepo, operatorID, event.CommunityID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, mysql.ErrHasRegistrations) {
			return errs.Conflict("event has registrations")
		}
		return errs.Internal("delete failed")
	}
	return nil
}

// Register 报名与待缴费记录同一事务落库；确认邮件尽力而为。
// status 可选，现场报名可直接记 checked_in
func (s *EventService) Register(eventID, userID uint64, status string) (*model.EventRegistration, *model.Payment, error) {
	if status == "" {
		status = model.RegistrationRegistered
	}
	if !model.ValidRegistrationStatus(status) {
		return nil, nil, errs.Validation("invalid status")
	}

	reg, payment, err := s.repo.Register(eventID, userID, status, time.Now())
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, nil, errs.NotFound("event not found")
		}
		if mysql.IsDuplicate(err) {
			return nil, nil, errs.Conflict("already registered")
		}
		return nil, nil, errs.Internal("register failed")
	}

	if s.notifier != nil {
		if event, eErr := s.repo.FindByID(eventID); eErr == nil {
			if user, uErr := s.userRepo.FindByID(userID); uErr == nil {
				amount := int64(0)
				if payment != nil {
					amount = payment.Amount
				}
				s.notifier.RegistrationConfirmed(user.Email, event.Title, amount)
			}
		}
	}
	return reg, payment, nil
}

func (s *EventService) CancelRegistration(eventID, userID uint64) error {
	if err := s.repo.CancelRegistration(eventID, userID); err != nil {
		if mysql.IsNotFound(err) {
			return errs.NotFound("registration not found")
		}
		return errs.Internal("cancel failed")
	}
	return nil
}

func (s *EventService) ListRegistrations(eventID uint64) ([]model.EventRegistration, error) {
	list, err := s.repo.ListRegistrations(eventID)
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}
