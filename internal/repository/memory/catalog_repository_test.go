package memory

import "testing"

func TestCatalogLookup(t *testing.T) {
	repo := NewCatalogRepository()

	products := repo.FindAll()
	if len(products) == 0 {
		t.Fatal("seeded catalog is empty")
	}

	for _, p := range products {
		got, ok := repo.FindByCode(p.Code)
		if !ok {
			t.Errorf("product %s not found by code", p.Code)
			continue
		}
		if got.Name != p.Name {
			t.Errorf("product %s: got name %q, want %q", p.Code, got.Name, p.Name)
		}
	}

	if _, ok := repo.FindByCode("NO-SUCH"); ok {
		t.Error("lookup of unknown code succeeded")
	}
}

func TestCatalogProductsAreComplete(t *testing.T) {
	repo := NewCatalogRepository()

	seen := make(map[string]struct{})
	for _, p := range repo.FindAll() {
		if _, dup := seen[p.Code]; dup {
			t.Errorf("duplicate product code %s", p.Code)
		}
		seen[p.Code] = struct{}{}

		if p.Name == "" || p.Type == "" || p.Compression == "" {
			t.Errorf("product %s missing required fields: %+v", p.Code, p)
		}
		if len(p.Category) == 0 {
			t.Errorf("product %s has no categories", p.Code)
		}
		if len(p.Colors) == 0 {
			t.Errorf("product %s has no colors", p.Code)
		}
		if p.PriceSale <= 0 {
			t.Errorf("product %s has no sale price", p.Code)
		}
	}
}

func TestCatalogFindAllReturnsCopy(t *testing.T) {
	repo := NewCatalogRepository()

	first := repo.FindAll()
	first[0].Name = "mutated"

	second := repo.FindAll()
	if second[0].Name == "mutated" {
		t.Fatal("FindAll exposed internal catalog slice")
	}
}
