package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Club_Community/internal/model"
	"Club_Community/internal/pkg"
	"Club_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.BillingOutbox) error

// OutboxRelayer 周期性扫描 billing_outbox 并异步投递
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkRetry(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// LogSender 未配置 kafka 时的默认投递：仅打印
func LogSender(ctx context.Context, ob *model.BillingOutbox) error {
	log.Printf("OUTBOX SEND type=%s user=%d community=%d related=%d payload=%s",
		ob.EventType, ob.UserID, ob.CommunityID, ob.RelatedID, ob.Payload)
	return nil
}

// KafkaSender 把 outbox 行转成 billing 消息投递
func KafkaSender(p *pkg.BillingProducer) Sender {
	return func(ctx context.Context, ob *model.BillingOutbox) error {
		return p.Send(ctx, pkg.BillingEvent{
			EventType:   ob.EventType,
			UserID:      ob.UserID,
			CommunityID: ob.CommunityID,
			RelatedID:   ob.RelatedID,
			Payload:     json.RawMessage(ob.Payload),
		})
	}
}
