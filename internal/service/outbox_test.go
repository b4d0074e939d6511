package service

import (
	"context"
	"errors"
	"testing"

	"Club_Community/internal/model"

	"gorm.io/gorm"
)

func seedOutbox(t *testing.T, db *gorm.DB) *model.BillingOutbox {
	t.Helper()
	ob := &model.BillingOutbox{
		EventType:   model.OutboxEventRegistration,
		UserID:      1,
		CommunityID: 1,
		RelatedID:   1,
		Payload:     `{"event_id":1,"user_id":1,"amount":0}`,
	}
	if err := db.Create(ob).Error; err != nil {
		t.Fatalf("seed outbox: %v", err)
	}
	return ob
}

func TestOutboxDrainMarksSent(t *testing.T) {
	db := newTestDB(t)
	ob := seedOutbox(t, db)

	relayer := NewOutboxRelayer(db, LogSender)
	relayer.drainOnce(context.Background())

	var got model.BillingOutbox
	if err := db.First(&got, ob.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != 1 {
		t.Fatalf("want status sent, got %d", got.Status)
	}
}

func TestOutboxDrainRetriesOnFailure(t *testing.T) {
	db := newTestDB(t)
	ob := seedOutbox(t, db)

	var calls int
	failing := func(ctx context.Context, ob *model.BillingOutbox) error {
		calls++
		return errors.New("broker down")
	}
	relayer := NewOutboxRelayer(db, failing)
	relayer.drainOnce(context.Background())

	var got model.BillingOutbox
	if err := db.First(&got, ob.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if calls != 1 || got.Retry != 1 || got.Status != 0 {
		t.Fatalf("want one retry and still pending, calls=%d retry=%d status=%d", calls, got.Retry, got.Status)
	}

	// 超过重试上限后置为 failed，不再被捞起
	for i := 0; i < 4; i++ {
		relayer.drainOnce(context.Background())
	}
	if err := db.First(&got, ob.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != 2 {
		t.Fatalf("want status failed, got %d (retry=%d)", got.Status, got.Retry)
	}
	before := calls
	relayer.drainOnce(context.Background())
	if calls != before {
		t.Fatal("failed rows must not be retried")
	}
}

func TestOutboxSentRowsSkipped(t *testing.T) {
	db := newTestDB(t)
	ob := seedOutbox(t, db)
	if err := db.Model(ob).Update("status", 1).Error; err != nil {
		t.Fatalf("mark sent: %v", err)
	}

	var calls int
	counting := func(ctx context.Context, ob *model.BillingOutbox) error {
		calls++
		return nil
	}
	NewOutboxRelayer(db, counting).drainOnce(context.Background())
	if calls != 0 {
		t.Fatalf("sent rows must be skipped, got %d calls", calls)
	}
}
