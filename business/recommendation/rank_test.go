package recommendation

import (
	"testing"

	"myMediasStore/domain"
)

func TestScorePoolKeepsMaxScore(t *testing.T) {
	pool := newScorePool()

	pool.add(domain.Product{Code: "A"}, 0.60)
	pool.add(domain.Product{Code: "A"}, 0.85)
	pool.add(domain.Product{Code: "A"}, 0.70)

	out := pool.ranked(10)
	if len(out) != 1 {
		t.Fatalf("got %d entries, want 1", len(out))
	}
	if out[0].Score != 0.85 {
		t.Errorf("got score %v, want max 0.85", out[0].Score)
	}
}

func TestScorePoolStableTieBreak(t *testing.T) {
	pool := newScorePool()

	pool.add(domain.Product{Code: "A"}, 0.70)
	pool.add(domain.Product{Code: "B"}, 0.70)
	pool.add(domain.Product{Code: "C"}, 0.85)
	pool.add(domain.Product{Code: "D"}, 0.70)

	out := pool.ranked(10)

	want := []string{"C", "A", "B", "D"}
	if len(out) != len(want) {
		t.Fatalf("got %d entries, want %d", len(out), len(want))
	}
	for i, code := range want {
		if out[i].Code != code {
			t.Errorf("position %d: got %s, want %s", i, out[i].Code, code)
		}
	}
}

func TestScorePoolTruncates(t *testing.T) {
	pool := newScorePool()

	pool.add(domain.Product{Code: "A"}, 0.60)
	pool.add(domain.Product{Code: "B"}, 0.85)
	pool.add(domain.Product{Code: "C"}, 0.70)

	out := pool.ranked(2)
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].Code != "B" || out[1].Code != "C" {
		t.Errorf("got %s,%s; want B,C", out[0].Code, out[1].Code)
	}
}
