package recommendation

import (
	"context"
	"errors"
	"testing"
	"time"

	"myMediasStore/domain"
)

type fakeSimilarityRepo struct {
	edges     []domain.SimilarityEdge
	err       error
	gotSource string
	gotLimit  int
}

func (f *fakeSimilarityRepo) TopSimilar(_ context.Context, sourceCode string, limit int) ([]domain.SimilarityEdge, error) {
	f.gotSource = sourceCode
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.edges, nil
}

type fakeInteractionRepo struct {
	seen    map[string]struct{}
	seenErr error
	saved   chan domain.InteractionEvent
	saveErr error
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{saved: make(chan domain.InteractionEvent, 8)}
}

func (f *fakeInteractionRepo) Save(_ context.Context, event *domain.InteractionEvent) error {
	f.saved <- *event
	return f.saveErr
}

func (f *fakeInteractionRepo) SeenProductCodes(_ context.Context, _ string, _ []string) (map[string]struct{}, error) {
	if f.seenErr != nil {
		return nil, f.seenErr
	}
	return f.seen, nil
}

type fakeTelemetryRepo struct {
	saved chan domain.ConsumptionLog
}

func newFakeTelemetryRepo() *fakeTelemetryRepo {
	return &fakeTelemetryRepo{saved: make(chan domain.ConsumptionLog, 8)}
}

func (f *fakeTelemetryRepo) Save(_ context.Context, record *domain.ConsumptionLog) error {
	f.saved <- *record
	return nil
}

func waitInteraction(t *testing.T, ch chan domain.InteractionEvent) domain.InteractionEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for interaction write")
		return domain.InteractionEvent{}
	}
}

func waitConsumption(t *testing.T, ch chan domain.ConsumptionLog) domain.ConsumptionLog {
	t.Helper()
	select {
	case rec := <-ch:
		return rec
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for consumption write")
		return domain.ConsumptionLog{}
	}
}

func newTestService(sim *fakeSimilarityRepo, inter *fakeInteractionRepo, tel *fakeTelemetryRepo) *RecommendationService {
	return NewRecommendationService(fixtureCatalog(), sim, inter, tel, time.Second, time.Second)
}

func TestGetRecommendationsSimilarityPath(t *testing.T) {
	sim := &fakeSimilarityRepo{edges: []domain.SimilarityEdge{
		{SourceCode: "MC-100", TargetCode: "MP-200", Score: 0.92},
		{SourceCode: "MC-100", TargetCode: "MC-100", Score: 0.90}, // self edge, must be dropped
		{SourceCode: "MC-100", TargetCode: "MT-300", Score: 0.81},
		{SourceCode: "MC-100", TargetCode: "MC-101", Score: 0.74},
	}}
	inter := newFakeInteractionRepo()
	tel := newFakeTelemetryRepo()
	svc := newTestService(sim, inter, tel)

	result := svc.GetRecommendations(context.Background(), "sess-1", "MC-100", 4)

	if result.Fallback {
		t.Error("similarity path reported fallback=true")
	}
	if sim.gotLimit != 8 {
		t.Errorf("similarity queried with limit %d, want 8 (2x requested)", sim.gotLimit)
	}
	if len(result.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(result.Recommendations))
	}
	for i, r := range result.Recommendations {
		if r.Code == "MC-100" {
			t.Error("viewed product appeared in its own recommendations")
		}
		if i > 0 && r.Score > result.Recommendations[i-1].Score {
			t.Errorf("scores not non-increasing at %d", i)
		}
		if r.Name == "" {
			t.Errorf("recommendation %s was not hydrated from the catalog", r.Code)
		}
	}

	ev := waitInteraction(t, inter.saved)
	if ev.Action != domain.ActionView || ev.ProductCode != "MC-100" || ev.SessionID != "sess-1" {
		t.Errorf("unexpected interaction event: %+v", ev)
	}

	rec := waitConsumption(t, tel.saved)
	if rec.Feature != "recommendations" || rec.OperationType != "knn_query" {
		t.Errorf("unexpected consumption record: %+v", rec)
	}
	if rec.Metadata["recommendations_count"] != 3 {
		t.Errorf("consumption count = %v, want 3", rec.Metadata["recommendations_count"])
	}
}

func TestGetRecommendationsEmptyEdgesUsesFallback(t *testing.T) {
	sim := &fakeSimilarityRepo{}
	inter := newFakeInteractionRepo()
	tel := newFakeTelemetryRepo()
	svc := newTestService(sim, inter, tel)

	result := svc.GetRecommendations(context.Background(), "sess-1", "MC-100", 4)

	if !result.Fallback {
		t.Fatal("expected fallback=true when similarity table has no edges")
	}

	want := fallbackRecommendations(fixtureCatalog(), "MC-100", 4)
	if len(result.Recommendations) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(result.Recommendations), len(want))
	}
	for i := range want {
		if result.Recommendations[i].Code != want[i].Code || result.Recommendations[i].Score != want[i].Score {
			t.Errorf("position %d: got %s/%v, want %s/%v",
				i, result.Recommendations[i].Code, result.Recommendations[i].Score, want[i].Code, want[i].Score)
		}
	}
}

func TestGetRecommendationsSimilarityErrorFallsBack(t *testing.T) {
	sim := &fakeSimilarityRepo{err: errors.New("connection refused")}
	inter := newFakeInteractionRepo()
	tel := newFakeTelemetryRepo()
	svc := newTestService(sim, inter, tel)

	result := svc.GetRecommendations(context.Background(), "sess-1", "MC-100", 4)

	if !result.Fallback {
		t.Fatal("expected fallback=true when similarity store fails")
	}
	if len(result.Recommendations) == 0 {
		t.Error("fallback produced no recommendations")
	}
}

func TestGetRecommendationsFiltersSessionHistory(t *testing.T) {
	sim := &fakeSimilarityRepo{edges: []domain.SimilarityEdge{
		{TargetCode: "MP-200", Score: 0.92},
		{TargetCode: "MT-300", Score: 0.81},
		{TargetCode: "MC-101", Score: 0.74},
	}}
	inter := newFakeInteractionRepo()
	inter.seen = map[string]struct{}{"MT-300": {}}
	tel := newFakeTelemetryRepo()
	svc := newTestService(sim, inter, tel)

	result := svc.GetRecommendations(context.Background(), "sess-1", "MC-100", 4)

	for _, r := range result.Recommendations {
		if r.Code == "MT-300" {
			t.Error("already-seen product MT-300 was recommended")
		}
	}
	if len(result.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2", len(result.Recommendations))
	}
}

func TestGetRecommendationsHistoryFailureIsFailOpen(t *testing.T) {
	sim := &fakeSimilarityRepo{edges: []domain.SimilarityEdge{
		{TargetCode: "MP-200", Score: 0.92},
		{TargetCode: "MT-300", Score: 0.81},
	}}
	inter := newFakeInteractionRepo()
	inter.seenErr = errors.New("history table locked")
	tel := newFakeTelemetryRepo()
	svc := newTestService(sim, inter, tel)

	result := svc.GetRecommendations(context.Background(), "sess-1", "MC-100", 4)

	if result.Fallback {
		t.Error("history failure must not force fallback")
	}
	if len(result.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2 (unfiltered)", len(result.Recommendations))
	}
}

func TestGetRecommendationsDropsUnknownEdgeTargets(t *testing.T) {
	sim := &fakeSimilarityRepo{edges: []domain.SimilarityEdge{
		{TargetCode: "MP-200", Score: 0.92},
		{TargetCode: "GHOST-1", Score: 0.88},
		{TargetCode: "MC-101", Score: 0.74},
	}}
	inter := newFakeInteractionRepo()
	tel := newFakeTelemetryRepo()
	svc := newTestService(sim, inter, tel)

	result := svc.GetRecommendations(context.Background(), "sess-1", "MC-100", 4)

	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(result.Recommendations))
	}
	for _, r := range result.Recommendations {
		if r.Code == "GHOST-1" {
			t.Error("edge pointing outside the catalog was not dropped")
		}
	}
}

func TestGetRecommendationsLimitTruncation(t *testing.T) {
	sim := &fakeSimilarityRepo{edges: []domain.SimilarityEdge{
		{TargetCode: "MP-200", Score: 0.92},
		{TargetCode: "MT-300", Score: 0.81},
		{TargetCode: "MC-101", Score: 0.74},
		{TargetCode: "MC-102", Score: 0.70},
	}}
	inter := newFakeInteractionRepo()
	tel := newFakeTelemetryRepo()
	svc := newTestService(sim, inter, tel)

	result := svc.GetRecommendations(context.Background(), "sess-1", "MC-100", 2)

	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(result.Recommendations))
	}
	if result.Recommendations[0].Code != "MP-200" || result.Recommendations[1].Code != "MT-300" {
		t.Errorf("truncation kept %s,%s; want the top-scored MP-200,MT-300",
			result.Recommendations[0].Code, result.Recommendations[1].Code)
	}
}

func TestGetRecommendationsZeroLimit(t *testing.T) {
	sim := &fakeSimilarityRepo{edges: []domain.SimilarityEdge{{TargetCode: "MP-200", Score: 0.92}}}
	inter := newFakeInteractionRepo()
	tel := newFakeTelemetryRepo()
	svc := newTestService(sim, inter, tel)

	result := svc.GetRecommendations(context.Background(), "sess-1", "MC-100", 0)

	if len(result.Recommendations) != 0 {
		t.Fatalf("limit 0 returned %d recommendations", len(result.Recommendations))
	}
	if result.Recommendations == nil {
		t.Error("limit 0 must return an empty slice, not nil")
	}

	// zero limit short-circuits before any logging
	select {
	case ev := <-inter.saved:
		t.Errorf("unexpected interaction write: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRecordClick(t *testing.T) {
	sim := &fakeSimilarityRepo{}
	inter := newFakeInteractionRepo()
	tel := newFakeTelemetryRepo()
	svc := newTestService(sim, inter, tel)

	svc.RecordClick(context.Background(), "sess-9", "MP-200")

	ev := waitInteraction(t, inter.saved)
	if ev.Action != domain.ActionClickRecommendation {
		t.Errorf("got action %q, want %q", ev.Action, domain.ActionClickRecommendation)
	}
	if ev.SessionID != "sess-9" || ev.ProductCode != "MP-200" {
		t.Errorf("unexpected click event: %+v", ev)
	}
}
