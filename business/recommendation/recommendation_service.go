package recommendation

import (
	"context"
	"myMediasStore/domain"
	"myMediasStore/pkg/logger"
	"time"

	"gorm.io/datatypes"
)

const (
	DefaultLimit = 4

	// Over-fetch factor for the similarity query; leaves room for history
	// filtering without a second round trip.
	candidateMultiplier = 2

	featureRecommendations = "recommendations"
	operationKNNQuery      = "knn_query"

	defaultSimilarityTimeout = 2 * time.Second
	defaultLogWriteTimeout   = 5 * time.Second
)

// historyActions mark a product as already surfaced to the session.
var historyActions = []string{domain.ActionPurchase, domain.ActionAddToCart, domain.ActionView}

// ---- Repository interfaces ----

type CatalogRepository interface {
	FindByCode(code string) (domain.Product, bool)
	FindAll() []domain.Product
}

type SimilarityRepository interface {
	TopSimilar(ctx context.Context, sourceCode string, limit int) ([]domain.SimilarityEdge, error)
}

type InteractionRepository interface {
	Save(ctx context.Context, event *domain.InteractionEvent) error
	SeenProductCodes(ctx context.Context, sessionID string, actions []string) (map[string]struct{}, error)
}

type TelemetryRepository interface {
	Save(ctx context.Context, record *domain.ConsumptionLog) error
}

// ---- Usecase / Service ----

type RecommendationService struct {
	catalogRepo     CatalogRepository
	similarityRepo  SimilarityRepository
	interactionRepo InteractionRepository
	telemetryRepo   TelemetryRepository

	similarityTimeout time.Duration
	logWriteTimeout   time.Duration
}

func NewRecommendationService(
	catalogRepo CatalogRepository,
	similarityRepo SimilarityRepository,
	interactionRepo InteractionRepository,
	telemetryRepo TelemetryRepository,
	similarityTimeout time.Duration,
	logWriteTimeout time.Duration,
) *RecommendationService {
	if similarityTimeout <= 0 {
		similarityTimeout = defaultSimilarityTimeout
	}
	if logWriteTimeout <= 0 {
		logWriteTimeout = defaultLogWriteTimeout
	}

	return &RecommendationService{
		catalogRepo:       catalogRepo,
		similarityRepo:    similarityRepo,
		interactionRepo:   interactionRepo,
		telemetryRepo:     telemetryRepo,
		similarityTimeout: similarityTimeout,
		logWriteTimeout:   logWriteTimeout,
	}
}

// GetRecommendations resolves related products for the product being viewed.
// The precomputed similarity table is the primary source; when it has no
// edges for the product, or the store fails, the rule-based scorer takes
// over. No error ever reaches the caller: the worst case is an empty list.
func (s *RecommendationService) GetRecommendations(ctx context.Context, sessionID, productCode string, limit int) domain.RecommendationResult {
	if limit <= 0 {
		return domain.RecommendationResult{Recommendations: []domain.Recommendation{}}
	}

	s.recordInteraction(ctx, sessionID, productCode, domain.ActionView)

	edges := s.topSimilar(ctx, productCode, limit*candidateMultiplier)

	var recs []domain.Recommendation
	fallback := len(edges) == 0
	if fallback {
		recs = fallbackRecommendations(s.catalogRepo, productCode, limit)
	} else {
		recs = s.hydrate(ctx, sessionID, productCode, edges, limit)
	}

	s.recordConsumption(ctx, productCode, len(recs))

	return domain.RecommendationResult{
		Recommendations: recs,
		Fallback:        fallback,
	}
}

// RecordClick appends a click_recommendation interaction. Best-effort: the
// write happens in the background and failures are only logged.
func (s *RecommendationService) RecordClick(ctx context.Context, sessionID, productCode string) {
	s.recordInteraction(ctx, sessionID, productCode, domain.ActionClickRecommendation)
}

// topSimilar queries the similarity store under a bounded timeout. "No data"
// and "store failure" both come back as an empty slice; they are
// distinguished only in logs.
func (s *RecommendationService) topSimilar(ctx context.Context, productCode string, count int) []domain.SimilarityEdge {
	qctx, cancel := context.WithTimeout(ctx, s.similarityTimeout)
	defer cancel()

	edges, err := s.similarityRepo.TopSimilar(qctx, productCode, count)
	if err != nil {
		logger.Warn("similarity store unavailable, using fallback", "product_code", productCode, "error", err)
		return nil
	}
	if len(edges) == 0 {
		logger.Debug("no similarity edges for product", "product_code", productCode)
	}

	return edges
}

// hydrate turns similarity edges into full recommendations: drop products the
// session already saw, join each surviving edge against the catalog (edges
// pointing outside the catalog are dropped silently), truncate to limit.
func (s *RecommendationService) hydrate(ctx context.Context, sessionID, productCode string, edges []domain.SimilarityEdge, limit int) []domain.Recommendation {
	seen := s.seenProducts(ctx, sessionID)

	recs := make([]domain.Recommendation, 0, limit)
	for _, edge := range edges {
		if edge.TargetCode == productCode {
			continue
		}
		if _, ok := seen[edge.TargetCode]; ok {
			continue
		}
		product, ok := s.catalogRepo.FindByCode(edge.TargetCode)
		if !ok {
			logger.Debug("similarity edge references unknown product", "target_code", edge.TargetCode)
			continue
		}
		recs = append(recs, domain.Recommendation{Product: product, Score: edge.Score})
	}

	if len(recs) > limit {
		recs = recs[:limit]
	}

	return recs
}

// seenProducts is fail-open: if the history query fails the filter becomes a
// no-op and recommendations go out unfiltered.
func (s *RecommendationService) seenProducts(ctx context.Context, sessionID string) map[string]struct{} {
	seen, err := s.interactionRepo.SeenProductCodes(ctx, sessionID, historyActions)
	if err != nil {
		logger.Warn("history query failed, serving unfiltered recommendations", "session_id", sessionID, "error", err)
		return nil
	}

	return seen
}

// recordInteraction appends to the interaction log without blocking the
// serving path. The write detaches from request cancellation so a user
// navigating away cannot abort it.
func (s *RecommendationService) recordInteraction(ctx context.Context, sessionID, productCode, action string) {
	bg := context.WithoutCancel(ctx)
	go func() {
		wctx, cancel := context.WithTimeout(bg, s.logWriteTimeout)
		defer cancel()

		event := &domain.InteractionEvent{
			SessionID:   sessionID,
			ProductCode: productCode,
			Action:      action,
		}
		if err := s.interactionRepo.Save(wctx, event); err != nil {
			logger.Warn("failed to record interaction", "action", action, "product_code", productCode, "error", err)
		}
	}()
}

func (s *RecommendationService) recordConsumption(ctx context.Context, productCode string, resultCount int) {
	bg := context.WithoutCancel(ctx)
	go func() {
		wctx, cancel := context.WithTimeout(bg, s.logWriteTimeout)
		defer cancel()

		record := &domain.ConsumptionLog{
			Feature:       featureRecommendations,
			OperationType: operationKNNQuery,
			APICalls:      1,
			Metadata: datatypes.JSONMap{
				"product_code":          productCode,
				"recommendations_count": resultCount,
			},
		}
		if err := s.telemetryRepo.Save(wctx, record); err != nil {
			logger.Warn("failed to record consumption log", "product_code", productCode, "error", err)
		}
	}()
}
