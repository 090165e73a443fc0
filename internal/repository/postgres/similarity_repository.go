package postgres

import (
	"context"
	"fmt"
	"myMediasStore/domain"

	"gorm.io/gorm"
)

// SimilarityRepository reads the precomputed product_similarity table. The
// table is produced by an upstream batch job; this service never writes it.
type SimilarityRepository struct {
	DB *gorm.DB
}

func NewSimilarityRepository(db *gorm.DB) *SimilarityRepository {
	return &SimilarityRepository{
		DB: db,
	}
}

func (r *SimilarityRepository) TopSimilar(ctx context.Context, sourceCode string, limit int) ([]domain.SimilarityEdge, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var edges []domain.SimilarityEdge
	err := r.DB.WithContext(ctx).
		Where("product_id_1 = ?", sourceCode).
		Order("similarity_score DESC").
		Limit(limit).
		Find(&edges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query similar products: %w", err)
	}

	return edges, nil
}
