package database

import (
	"fmt"
	"myMediasStore/domain"
	"myMediasStore/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	// product_similarity is also written by the upstream precompute job;
	// automigrate only keeps the schema this service appends to or reads.
	if err := db.AutoMigrate(
		&domain.SimilarityEdge{},
		&domain.InteractionEvent{},
		&domain.ConsumptionLog{},
		&domain.Order{},
		&domain.User{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
