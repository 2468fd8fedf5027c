package recommender

import (
	"testing"
)

func scoredFixture(scores ...float64) []scoredCandidate {
	out := make([]scoredCandidate, len(scores))
	for i, s := range scores {
		out[i] = scoredCandidate{index: i, finalScore: s}
	}
	return out
}

func TestCandidatePoolSizing(t *testing.T) {
	cfg := DefaultConfig()

	scored := make([]scoredCandidate, 100)
	for i := range scored {
		scored[i] = scoredCandidate{index: i, finalScore: float64(i)}
	}

	// small topK keeps the floor of 30
	if got := len(cfg.candidatePool(scored, 1)); got != 30 {
		t.Errorf("pool size for topK=1: got %d, want 30", got)
	}

	scored2 := make([]scoredCandidate, 100)
	copy(scored2, scored)
	// topK*10 dominates once above the floor
	if got := len(cfg.candidatePool(scored2, 5)); got != 50 {
		t.Errorf("pool size for topK=5: got %d, want 50", got)
	}

	// never exceeds the scored set
	short := make([]scoredCandidate, 10)
	copy(short, scored[:10])
	if got := len(cfg.candidatePool(short, 20)); got != 10 {
		t.Errorf("pool size for short catalog: got %d, want 10", got)
	}
}

func TestCandidatePoolTiedScoresKeepCatalogOrder(t *testing.T) {
	cfg := DefaultConfig()

	// every score identical: the pool must keep catalog order so
	// identical inputs always produce identical results
	scored := make([]scoredCandidate, 40)
	for i := range scored {
		scored[i] = scoredCandidate{index: i, finalScore: 0.5}
	}

	pool := cfg.candidatePool(scored, 1)
	for i, sc := range pool {
		if sc.index != i {
			t.Fatalf("tied scores reordered: position %d holds index %d", i, sc.index)
		}
	}
}

func TestSelectDiverseZeroFactorMatchesScoreOrder(t *testing.T) {
	cat := testCatalog(t,
		testFragrance("A", 0.9, 0.1),
		testFragrance("B", 0.7, 0.2),
		testFragrance("C", 0.5, 0.4),
		testFragrance("D", 0.3, 0.6),
		testFragrance("E", 0.1, 0.9),
	)
	pool := scoredFixture(0.9, 0.5, 0.8, 0.2, 0.7)

	got := selectDiverse(cat, pool, 3, 0)

	wantIdx := []int{0, 2, 4} // scores 0.9, 0.8, 0.7
	if len(got) != len(wantIdx) {
		t.Fatalf("expected %d selections, got %d", len(wantIdx), len(got))
	}
	for i, sc := range got {
		if sc.index != wantIdx[i] {
			t.Errorf("position %d: got index %d, want %d (pure relevance order)", i, sc.index, wantIdx[i])
		}
	}
}

func TestSelectDiverseMaxFactorAvoidsRedundancy(t *testing.T) {
	// A is the seed; B is a near-duplicate of A; C is dissimilar.
	// With diversity 1 the second pick must be C, never B.
	cat := testCatalog(t,
		testFragrance("A", 0.90, 0.05),
		testFragrance("B", 0.89, 0.06),
		testFragrance("C", 0.05, 0.90),
	)
	pool := scoredFixture(0.9, 0.89, 0.3)

	got := selectDiverse(cat, pool, 2, 1)

	if len(got) != 2 {
		t.Fatalf("expected 2 selections, got %d", len(got))
	}
	picked := map[int]bool{}
	for _, sc := range got {
		picked[sc.index] = true
	}
	if !picked[0] || !picked[2] {
		t.Errorf("expected the seed and the dissimilar item {0,2}, got %v", picked)
	}
}

func TestSelectDiverseOutputSortedByScore(t *testing.T) {
	cat := testCatalog(t,
		testFragrance("A", 0.9, 0.1),
		testFragrance("B", 0.8, 0.3),
		testFragrance("C", 0.1, 0.9),
		testFragrance("D", 0.2, 0.8),
	)
	pool := scoredFixture(0.9, 0.6, 0.8, 0.5)

	got := selectDiverse(cat, pool, 3, 0.7)
	for i := 1; i < len(got); i++ {
		if got[i].finalScore > got[i-1].finalScore {
			t.Errorf("display order must be final score descending, got %v then %v", got[i-1].finalScore, got[i].finalScore)
		}
	}
}

func TestSelectDiverseEdgeCases(t *testing.T) {
	cat := testCatalog(t, testFragrance("A", 0.9, 0.1), testFragrance("B", 0.1, 0.9))

	// empty pool is an empty result, not an error
	if got := selectDiverse(cat, nil, 5, 0.5); len(got) != 0 {
		t.Errorf("empty pool should select nothing, got %d", len(got))
	}

	// topK beyond the pool returns everything available
	pool := scoredFixture(0.9, 0.4)
	if got := selectDiverse(cat, pool, 10, 0.5); len(got) != 2 {
		t.Errorf("topK beyond pool should return all candidates, got %d", len(got))
	}
}
