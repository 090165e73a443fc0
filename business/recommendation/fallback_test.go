package recommendation

import (
	"testing"

	"myMediasStore/domain"
	"myMediasStore/internal/repository/memory"
)

func fixtureCatalog() CatalogRepository {
	return memory.NewCatalogRepositoryWith([]domain.Product{
		{
			Code:        "MC-100",
			Name:        "Media de compresión diaria",
			Type:        domain.TypeKneeHigh,
			Compression: "20-30 mmHg",
			Category:    []string{"daily"},
		},
		{
			// same compression, different type: rule A
			Code:        "MP-200",
			Name:        "Panty de compresión",
			Type:        domain.TypePanty,
			Compression: "20-30 mmHg",
			Category:    []string{"maternity"},
		},
		{
			// shared category, different compression: rule B
			Code:        "MT-300",
			Name:        "Media muslo viaje",
			Type:        domain.TypeThighHigh,
			Compression: "12-17 mmHg",
			Category:    []string{"daily", "travel"},
		},
		{
			// same type, different compression, no shared category: rule C
			Code:        "MC-101",
			Name:        "Media deportiva",
			Type:        domain.TypeKneeHigh,
			Compression: "17-20 mmHg",
			Category:    []string{"sport"},
		},
		{
			// shared category AND same type, different compression:
			// qualifies for B and C, must keep the B weight
			Code:        "MC-102",
			Name:        "Media diaria ligera",
			Type:        domain.TypeKneeHigh,
			Compression: "12-17 mmHg",
			Category:    []string{"daily"},
		},
		{
			// no rule matches
			Code:        "MP-201",
			Name:        "Panty posquirúrgico",
			Type:        domain.TypePanty,
			Compression: "12-17 mmHg",
			Category:    []string{"post-surgery"},
		},
	})
}

func TestFallbackRuleWeights(t *testing.T) {
	catalog := fixtureCatalog()

	recs := fallbackRecommendations(catalog, "MC-100", 10)

	got := make(map[string]float64, len(recs))
	for _, r := range recs {
		got[r.Code] = r.Score
	}

	want := map[string]float64{
		"MP-200": 0.85,
		"MT-300": 0.70,
		"MC-102": 0.70,
		"MC-101": 0.60,
	}

	if len(got) != len(want) {
		t.Fatalf("got %d recommendations, want %d: %v", len(got), len(want), got)
	}
	for code, score := range want {
		if got[code] != score {
			t.Errorf("product %s: got score %v, want %v", code, got[code], score)
		}
	}
}

func TestFallbackExcludesCurrentProduct(t *testing.T) {
	catalog := fixtureCatalog()

	recs := fallbackRecommendations(catalog, "MC-100", 10)
	for _, r := range recs {
		if r.Code == "MC-100" {
			t.Fatalf("current product MC-100 appeared in its own recommendations")
		}
	}
}

func TestFallbackOrdering(t *testing.T) {
	catalog := fixtureCatalog()

	recs := fallbackRecommendations(catalog, "MC-100", 10)

	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatalf("scores not non-increasing at %d: %v > %v", i, recs[i].Score, recs[i-1].Score)
		}
	}

	// MT-300 and MC-102 tie at 0.70; MT-300 entered the pool first
	// (rule B scans in catalog order) and must stay ahead.
	var tieOrder []string
	for _, r := range recs {
		if r.Score == 0.70 {
			tieOrder = append(tieOrder, r.Code)
		}
	}
	if len(tieOrder) != 2 || tieOrder[0] != "MT-300" || tieOrder[1] != "MC-102" {
		t.Errorf("tie between 0.70 entries resolved as %v, want [MT-300 MC-102]", tieOrder)
	}
}

func TestFallbackRespectsLimit(t *testing.T) {
	catalog := fixtureCatalog()

	recs := fallbackRecommendations(catalog, "MC-100", 2)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Code != "MP-200" {
		t.Errorf("highest weighted product is %s, want MP-200", recs[0].Code)
	}
}

func TestFallbackUnknownProduct(t *testing.T) {
	catalog := fixtureCatalog()

	recs := fallbackRecommendations(catalog, "NO-SUCH", 10)
	if len(recs) != 0 {
		t.Fatalf("unknown product produced %d recommendations, want 0", len(recs))
	}
}
