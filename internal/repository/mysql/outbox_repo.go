package mysql

import (
	"context"

	"Club_Community/internal/model"

	"gorm.io/gorm"
)

const outboxMaxRetry = 5

type OutboxRepository struct {
	DB *gorm.DB
}

func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]model.BillingOutbox, error) {
	var rows []model.BillingOutbox
	err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.BillingOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

// MarkRetry 重试计数 +1，超限置为 failed
func (r *OutboxRepository) MarkRetry(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.BillingOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"retry":  gorm.Expr("retry + 1"),
			"status": gorm.Expr("CASE WHEN retry + 1 >= ? THEN 2 ELSE 0 END", outboxMaxRetry),
		}).Error
}
