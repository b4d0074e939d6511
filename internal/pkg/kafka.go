package pkg

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// BillingEvent billing topic 上的消息体，Payload 为业务侧已序列化的 JSON
type BillingEvent struct {
	EventType   string          `json:"event_type"`
	UserID      uint64          `json:"user_id"`
	CommunityID uint64          `json:"community_id"`
	RelatedID   uint64          `json:"related_id"`
	Payload     json.RawMessage `json:"payload"`
}

// BillingProducer 以用户 ID 作分区键，保证同一用户的账务事件有序
type BillingProducer struct {
	writer *kafka.Writer
}

func NewBillingProducer(brokers []string, topic string) *BillingProducer {
	return &BillingProducer{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}}
}

func (p *BillingProducer) Send(ctx context.Context, ev BillingEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(ev.UserID, 10)),
		Value: value,
	})
}

func (p *BillingProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
