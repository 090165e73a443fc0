package postgres

import (
	"context"
	"fmt"
	"myMediasStore/domain"

	"gorm.io/gorm"
)

// InteractionRepository appends to and reads the user_interactions log.
type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{
		DB: db,
	}
}

func (r *InteractionRepository) Save(ctx context.Context, event *domain.InteractionEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}

	return nil
}

// SeenProductCodes returns the distinct product codes a session interacted
// with through any of the given actions.
func (r *InteractionRepository) SeenProductCodes(ctx context.Context, sessionID string, actions []string) (map[string]struct{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var codes []string
	err := r.DB.WithContext(ctx).
		Model(&domain.InteractionEvent{}).
		Distinct("product_code").
		Where("session_id = ? AND action IN ?", sessionID, actions).
		Pluck("product_code", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query session history: %w", err)
	}

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		seen[code] = struct{}{}
	}

	return seen, nil
}
