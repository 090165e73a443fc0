package domain

// Recommendation joins a catalog product with a similarity score. Built fresh
// per request and never persisted.
type Recommendation struct {
	Product
	Score float64 `json:"similarity_score"`
}

// RecommendationResult is what the orchestrator hands back to callers.
// Fallback reports whether the rule-based scorer produced the list instead of
// the precomputed similarity table.
type RecommendationResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Fallback        bool             `json:"fallback"`
}
