package postgres

import (
	"context"
	"fmt"
	"myMediasStore/domain"

	"gorm.io/gorm"
)

// TelemetryRepository appends feature-usage rows to ai_consumption_logs.
type TelemetryRepository struct {
	DB *gorm.DB
}

func NewTelemetryRepository(db *gorm.DB) *TelemetryRepository {
	return &TelemetryRepository{
		DB: db,
	}
}

func (r *TelemetryRepository) Save(ctx context.Context, record *domain.ConsumptionLog) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save consumption log: %w", err)
	}

	return nil
}
