package product

import (
	"context"
	"errors"
	"fmt"
	"myMediasStore/domain"
	"myMediasStore/pkg/logger"
	"sort"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindByCode(code string) (domain.Product, bool)
	FindAll() []domain.Product
}

// OrdersRepository contract interface
type OrdersRepository interface {
	CountSalesByProduct(ctx context.Context) (map[string]int, error)
}

// ProductStats joins a catalog product with its order count for the admin
// dashboard.
type ProductStats struct {
	domain.Product
	Sales int `json:"sales"`
}

type productService struct {
	catalogRepo CatalogRepository
	ordersRepo  OrdersRepository
}

func NewProductService(catalogRepo CatalogRepository, ordersRepo OrdersRepository) *productService {
	return &productService{
		catalogRepo: catalogRepo,
		ordersRepo:  ordersRepo,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.catalogRepo.FindAll(), nil
}

func (s *productService) GetProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	if code == "" {
		logger.Error("invalid product code")
		return nil, errors.New("invalid product code")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by code")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, ok := s.catalogRepo.FindByCode(code)
	if !ok {
		return nil, errors.New("product not found")
	}

	return &product, nil
}

// GetProductStats joins order counts against the static catalog, most sold
// first.
func (s *productService) GetProductStats(ctx context.Context) ([]ProductStats, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product stats")
		return nil, fmt.Errorf("context error: %w", err)
	}

	sales, err := s.ordersRepo.CountSalesByProduct(ctx)
	if err != nil {
		logger.Error("Failed to count product sales", err)
		return nil, err
	}

	products := s.catalogRepo.FindAll()
	stats := make([]ProductStats, 0, len(products))
	for _, p := range products {
		stats = append(stats, ProductStats{
			Product: p,
			Sales:   sales[p.Code],
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Sales > stats[j].Sales
	})

	return stats, nil
}
