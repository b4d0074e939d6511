package mysql

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Club_Community/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func (r *EventRepository) Create(e *model.Event) error {
	return r.DB.Create(e).Error
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var e model.Event
	err := r.DB.First(&e, id).Error
	return &e, err
}

func (r *EventRepository) List(communityID uint64) ([]model.Event, error) {
	q := r.DB.Model(&model.Event{})
	if communityID > 0 {
		q = q.Where("community_id = ?", communityID)
	}
	var list []model.Event
	err := q.Order("start_at DESC, id DESC").Find(&list).Error
	return list, err
}

// UpdateFields 先查后改，原值重写也算成功
func (r *EventRepository) UpdateFields(id uint64, fields map[string]any) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var e model.Event
		if err := tx.First(&e, id).Error; err != nil {
			return err
		}
		return tx.Model(&e).Updates(fields).Error
	})
}

// Delete 有报名记录的活动不允许删除，调用方据 ErrHasRegistrations 报冲突
func (r *EventRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.EventRegistration{}).
			Where("event_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrHasRegistrations
		}
		return tx.Delete(&model.Event{}, id).Error
	})
}

var ErrHasRegistrations = errors.New("event has registrations")

// Register 报名事务：查活动、插报名、收费活动补一条待缴费记录，
// 外加一条 outbox。任何一步失败整体回滚。
func (r *EventRepository) Register(eventID, userID uint64, status string, now time.Time) (*model.EventRegistration, *model.Payment, error) {
	var reg model.EventRegistration
	var payment *model.Payment

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, eventID).Error; err != nil {
			return err
		}

		reg = model.EventRegistration{
			EventID: eventID,
			UserID:  userID,
			Status:  status,
		}
		// (event_id, user_id) 唯一键是重复报名的最终裁决
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}

		price := event.ChargedPrice(now)
		if price > 0 {
			payment = &model.Payment{
				UserID:      userID,
				CommunityID: event.CommunityID,
				Description: fmt.Sprintf("活动报名费：%s", event.Title),
				Amount:      price,
				Status:      model.PaymentPending,
				RelatedType: model.RelatedTypeEvent,
				RelatedID:   event.ID,
			}
			if err := tx.Create(payment).Error; err != nil {
				return err
			}
		}

		payload, _ := json.Marshal(map[string]any{
			"event_id": eventID,
			"user_id":  userID,
			"amount":   price,
		})
		return tx.Create(&model.BillingOutbox{
			EventType:   model.OutboxEventRegistration,
			UserID:      userID,
			CommunityID: event.CommunityID,
			RelatedID:   eventID,
			Payload:     string(payload),
		}).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &reg, payment, nil
}

// CancelRegistration 报名状态改为 cancelled，记录保留；重复取消幂等
func (r *EventRepository) CancelRegistration(eventID, userID uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var reg model.EventRegistration
		if err := tx.Where("event_id = ? AND user_id = ?", eventID, userID).
			First(&reg).Error; err != nil {
			return err
		}
		return tx.Model(&reg).Update("status", model.RegistrationCancelled).Error
	})
}

func (r *EventRepository) ListRegistrations(eventID uint64) ([]model.EventRegistration, error) {
	var list []model.EventRegistration
	err := r.DB.Where("event_id = ?", eventID).
		Order("registered_at ASC, id ASC").
		Find(&list).Error
	return list, err
}
