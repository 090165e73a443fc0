package memory

import "myMediasStore/domain"

// CatalogRepository serves the static product catalog. The catalog ships with
// the binary; there is no write path and lookups cannot fail beyond "absent".
type CatalogRepository struct {
	products []domain.Product
	byCode   map[string]domain.Product
}

func NewCatalogRepository() *CatalogRepository {
	return NewCatalogRepositoryWith(catalogProducts)
}

// NewCatalogRepositoryWith builds a catalog over an explicit product set.
func NewCatalogRepositoryWith(products []domain.Product) *CatalogRepository {
	byCode := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byCode[p.Code] = p
	}

	return &CatalogRepository{
		products: products,
		byCode:   byCode,
	}
}

func (r *CatalogRepository) FindByCode(code string) (domain.Product, bool) {
	p, ok := r.byCode[code]
	return p, ok
}

// FindAll returns the catalog in its fixed display order.
func (r *CatalogRepository) FindAll() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}
