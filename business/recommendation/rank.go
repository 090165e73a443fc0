package recommendation

import (
	"sort"

	"myMediasStore/domain"
)

// scorePool merges scored candidates from several rule pools into one
// deduplicated set. One entry per product code; a product added more than
// once keeps its maximum score (not the sum) and its original insertion
// position, so the stable sort in ranked reproduces rule order on ties.
type scorePool struct {
	order  []string
	byCode map[string]domain.Recommendation
}

func newScorePool() *scorePool {
	return &scorePool{
		byCode: make(map[string]domain.Recommendation),
	}
}

func (p *scorePool) add(product domain.Product, score float64) {
	existing, ok := p.byCode[product.Code]
	if !ok {
		p.order = append(p.order, product.Code)
		p.byCode[product.Code] = domain.Recommendation{Product: product, Score: score}
		return
	}

	if score > existing.Score {
		existing.Score = score
		p.byCode[product.Code] = existing
	}
}

// ranked returns the pool sorted by score descending, truncated to limit.
func (p *scorePool) ranked(limit int) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, len(p.order))
	for _, code := range p.order {
		out = append(out, p.byCode[code])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}
