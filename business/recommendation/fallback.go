package recommendation

import "myMediasStore/domain"

// Fixed rule weights for the fallback scorer. These are business-rule
// priorities, not learned scores; keeping them below 1.0 leaves similarity
// scores and fallback scores on the same scale.
const (
	weightSameCompression = 0.85
	weightSharedCategory  = 0.70
	weightSameType        = 0.60
)

// fallbackRecommendations scores the catalog against the viewed product using
// three ranked rules:
//
//	A: same compression band, different garment type  -> 0.85
//	B: overlapping category, different compression    -> 0.70
//	C: same garment type, different compression       -> 0.60
//
// A product qualifying under several rules keeps its highest weight. Ties
// resolve by rule order (A before B before C) and catalog order within a
// rule, which makes the output deterministic.
func fallbackRecommendations(catalog CatalogRepository, currentCode string, limit int) []domain.Recommendation {
	current, ok := catalog.FindByCode(currentCode)
	if !ok {
		return []domain.Recommendation{}
	}

	products := catalog.FindAll()
	pool := newScorePool()

	for _, p := range products {
		if p.Code != currentCode && p.Compression == current.Compression && p.Type != current.Type {
			pool.add(p, weightSameCompression)
		}
	}

	for _, p := range products {
		if p.Code != currentCode && sharesCategory(p.Category, current.Category) && p.Compression != current.Compression {
			pool.add(p, weightSharedCategory)
		}
	}

	for _, p := range products {
		if p.Code != currentCode && p.Type == current.Type && p.Compression != current.Compression {
			pool.add(p, weightSameType)
		}
	}

	return pool.ranked(limit)
}

func sharesCategory(a, b []string) bool {
	for _, ca := range a {
		for _, cb := range b {
			if ca == cb {
				return true
			}
		}
	}

	return false
}
