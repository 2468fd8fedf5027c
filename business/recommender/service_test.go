package recommender

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"scentMatch/domain"
)

type staticRepo struct {
	items []domain.Fragrance
	err   error
}

func (r *staticRepo) Load(ctx context.Context) ([]domain.Fragrance, error) {
	return r.items, r.err
}

// five items with Woody & Earthy rising from Scent4 (0.4) to Scent0 (0.8)
// and Citrus & Fresh falling inversely; everything else held equal
func scentScale() []domain.Fragrance {
	items := make([]domain.Fragrance, 5)
	for i := range items {
		woody := 0.8 - 0.1*float64(i)
		items[i] = testFragrance(fmt.Sprintf("Scent%d", i), woody, 1.2-woody)
	}
	return items
}

func newTestService(t *testing.T, items []domain.Fragrance) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), &staticRepo{items: items}, DefaultConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestRecommendByFragrancesRanksSimilarFirst(t *testing.T) {
	svc := newTestService(t, scentScale())

	recs, err := svc.RecommendByFragrances(context.Background(),
		[]string{"Scent0"}, domain.TimeBoth, domain.SeasonBoth, 3, 0)
	if err != nil {
		t.Fatalf("RecommendByFragrances: %v", err)
	}

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if recs[0].Name != "Scent0" {
		t.Errorf("top match should be the liked item itself, got %s", recs[0].Name)
	}
	// woody-leaning items must rank above citrus-leaning ones
	rank := map[string]int{}
	for i, r := range recs {
		rank[r.Name] = i
	}
	if _, ok := rank["Scent4"]; ok {
		t.Errorf("most dissimilar item Scent4 should not reach the top 3: %v", rank)
	}
	if rank["Scent1"] > rank["Scent2"] {
		t.Errorf("Scent1 should rank above Scent2: %v", rank)
	}
}

func TestRecommendByAccordsRoundTrip(t *testing.T) {
	svc := newTestService(t, scentScale())

	recs, err := svc.RecommendByAccords(context.Background(),
		map[string]float64{"Woody & Earthy": 1.0}, domain.TimeBoth, domain.SeasonBoth, 1, 0)
	if err != nil {
		t.Fatalf("RecommendByAccords: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	top := recs[0]
	found := false
	for _, a := range top.DominantAccords {
		if a.Accord == "Woody & Earthy" {
			found = true
			if a.Intensity <= 0.30 {
				t.Errorf("dominant accord intensity must exceed the threshold, got %v", a.Intensity)
			}
		}
	}
	if !found {
		t.Errorf("requested accord missing from the top match's explanation: %v", top.DominantAccords)
	}
	if len(top.DominantAccords) > 3 {
		t.Errorf("dominant accords must be truncated to 3, got %d", len(top.DominantAccords))
	}
}

func TestRecommendTopKBeyondCatalog(t *testing.T) {
	svc := newTestService(t, scentScale())

	recs, err := svc.RecommendByFragrances(context.Background(),
		[]string{"Scent2"}, domain.TimeBoth, domain.SeasonBoth, 20, 0)
	if err != nil {
		t.Fatalf("RecommendByFragrances: %v", err)
	}
	if len(recs) != 5 {
		t.Errorf("topK beyond catalog size should return the whole catalog, got %d", len(recs))
	}
}

func TestRecommendValidatesBeforeScoring(t *testing.T) {
	svc := newTestService(t, scentScale())
	ctx := context.Background()

	var invalid *domain.InvalidParameterError

	_, err := svc.RecommendByFragrances(ctx, nil, domain.TimeBoth, domain.SeasonBoth, 5, 0)
	if !errors.As(err, &invalid) {
		t.Errorf("empty liked list: expected InvalidParameterError, got %v", err)
	}

	_, err = svc.RecommendByAccords(ctx, map[string]float64{}, domain.TimeBoth, domain.SeasonBoth, 5, 0)
	if !errors.As(err, &invalid) {
		t.Errorf("empty weights: expected InvalidParameterError, got %v", err)
	}

	_, err = svc.RecommendByFragrances(ctx, []string{"Scent0"}, domain.TimeBoth, domain.SeasonBoth, 0, 0)
	if !errors.As(err, &invalid) {
		t.Errorf("top_k=0: expected InvalidParameterError, got %v", err)
	}

	_, err = svc.RecommendByFragrances(ctx, []string{"Scent0"}, domain.TimeBoth, domain.SeasonBoth, 21, 0)
	if !errors.As(err, &invalid) {
		t.Errorf("top_k=21: expected InvalidParameterError, got %v", err)
	}

	_, err = svc.RecommendByFragrances(ctx, []string{"Scent0"}, domain.TimeBoth, domain.SeasonBoth, 5, 1.5)
	if !errors.As(err, &invalid) {
		t.Errorf("diversity_factor=1.5: expected InvalidParameterError, got %v", err)
	}

	var unknown *domain.UnknownItemError
	_, err = svc.RecommendByFragrances(ctx, []string{"Nope"}, domain.TimeBoth, domain.SeasonBoth, 5, 0)
	if !errors.As(err, &unknown) {
		t.Errorf("unknown name: expected UnknownItemError, got %v", err)
	}
}

func TestListEndpointsSorted(t *testing.T) {
	svc := newTestService(t, scentScale())

	frags := svc.ListFragrances()
	if len(frags) != 5 {
		t.Fatalf("expected 5 fragrances, got %d", len(frags))
	}
	for i := 1; i < len(frags); i++ {
		if frags[i-1].Brand > frags[i].Brand {
			t.Errorf("fragrance listing not sorted: %v before %v", frags[i-1], frags[i])
		}
	}

	accords := svc.ListAccords()
	if len(accords) != domain.NumAccords {
		t.Fatalf("expected %d accords, got %d", domain.NumAccords, len(accords))
	}
	for i := 1; i < len(accords); i++ {
		if accords[i-1] > accords[i] {
			t.Errorf("accord listing not sorted: %v before %v", accords[i-1], accords[i])
		}
	}
}

func TestReloadCatalogSwapsSnapshot(t *testing.T) {
	repo := &staticRepo{items: scentScale()}
	svc, err := NewService(context.Background(), repo, DefaultConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	old := svc.snapshot()

	repo.items = append(scentScale(), testFragrance("Fresh Arrival", 0.6, 0.6))
	count, err := svc.ReloadCatalog(context.Background())
	if err != nil {
		t.Fatalf("ReloadCatalog: %v", err)
	}
	if count != 6 {
		t.Errorf("expected 6 items after reload, got %d", count)
	}
	if old.Len() != 5 {
		t.Errorf("old snapshot must be untouched, got %d items", old.Len())
	}
	if svc.snapshot().Len() != 6 {
		t.Errorf("active snapshot should hold the new catalog")
	}

	// a failed reload keeps the previous snapshot active
	repo.err = errors.New("file vanished")
	if _, err := svc.ReloadCatalog(context.Background()); err == nil {
		t.Fatal("expected reload error")
	}
	if svc.snapshot().Len() != 6 {
		t.Errorf("failed reload must not replace the active catalog")
	}
}
