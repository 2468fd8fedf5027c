package recommender

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"scentMatch/domain"
	"scentMatch/pkg/logger"
)

// request bounds shared by both recommendation modes
const (
	maxTopK            = 20
	maxLikedFragrances = 10
	maxAccordWeights   = 10
)

// ---- Repository interfaces ----

// CatalogRepository produces the full catalog table. Load is called at
// startup and on explicit reload, never per request.
type CatalogRepository interface {
	Load(ctx context.Context) ([]domain.Fragrance, error)
}

// ---- Usecase / Service ----

// Service is the ranking engine facade. The active catalog is held behind
// an atomic pointer: requests read a consistent snapshot, reload builds a
// fresh catalog and swaps the reference (copy-on-write).
type Service struct {
	catalogRepo CatalogRepository
	cfg         Config

	catalog atomic.Pointer[Catalog]
}

func NewService(ctx context.Context, catalogRepo CatalogRepository, cfg Config) (*Service, error) {
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		catalogRepo: catalogRepo,
		cfg:         cfg,
	}
	if _, err := s.ReloadCatalog(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// ReloadCatalog rebuilds the catalog from the repository and atomically
// swaps it in. In-flight requests keep scoring against their old snapshot.
func (s *Service) ReloadCatalog(ctx context.Context) (int, error) {
	items, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}

	cat, err := NewCatalog(items)
	if err != nil {
		return 0, err
	}

	s.catalog.Store(cat)
	CatalogSize.Set(float64(cat.Len()))
	logger.Info("catalog loaded", "items", cat.Len())
	return cat.Len(), nil
}

func (s *Service) snapshot() *Catalog {
	return s.catalog.Load()
}

// ListFragrances returns the (brand, name) pairs of the active catalog.
func (s *Service) ListFragrances() []domain.FragranceSummary {
	return s.snapshot().Summaries()
}

// ListAccords returns the accord dimension names, sorted.
func (s *Service) ListAccords() []string {
	out := make([]string, domain.NumAccords)
	copy(out, domain.AccordNames[:])
	sort.Strings(out)
	return out
}

// ---- Recommendation / serving ----

// RecommendByFragrances ranks the catalog against the mean feature vector
// of the liked fragrances. All validation happens before any scoring.
func (s *Service) RecommendByFragrances(
	ctx context.Context,
	liked []string,
	timePref domain.TimePreference,
	seasonPref domain.SeasonPreference,
	topK int,
	diversityFactor float64,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(liked) == 0 {
		RecommendationsTotal.WithLabelValues("fragrances", "rejected").Inc()
		return nil, &domain.InvalidParameterError{Reason: "liked_fragrances must not be empty"}
	}
	if len(liked) > maxLikedFragrances {
		RecommendationsTotal.WithLabelValues("fragrances", "rejected").Inc()
		return nil, &domain.InvalidParameterError{Reason: fmt.Sprintf("liked_fragrances must have at most %d entries", maxLikedFragrances)}
	}
	if err := validateParams(topK, diversityFactor); err != nil {
		RecommendationsTotal.WithLabelValues("fragrances", "rejected").Inc()
		return nil, err
	}

	cat := s.snapshot()

	profile, err := cat.profileFromLiked(liked)
	if err != nil {
		RecommendationsTotal.WithLabelValues("fragrances", "rejected").Inc()
		return nil, err
	}

	logger.Debug("recommend_by_fragrances",
		"trace_id", TraceIDFromContext(ctx),
		"liked_count", len(liked),
		"time_pref", string(timePref),
		"season_pref", string(seasonPref),
		"top_k", topK,
		"diversity_factor", diversityFactor,
	)

	recs := s.rank(cat, profile, timePref, seasonPref, topK, diversityFactor)
	RecommendationsTotal.WithLabelValues("fragrances", "ok").Inc()
	return recs, nil
}

// RecommendByAccords ranks the catalog against an explicit accord-weight
// preference vector.
func (s *Service) RecommendByAccords(
	ctx context.Context,
	weights map[string]float64,
	timePref domain.TimePreference,
	seasonPref domain.SeasonPreference,
	topK int,
	diversityFactor float64,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(weights) == 0 {
		RecommendationsTotal.WithLabelValues("accords", "rejected").Inc()
		return nil, &domain.InvalidParameterError{Reason: "accord_preferences must not be empty"}
	}
	if len(weights) > maxAccordWeights {
		RecommendationsTotal.WithLabelValues("accords", "rejected").Inc()
		return nil, &domain.InvalidParameterError{Reason: fmt.Sprintf("accord_preferences must have at most %d entries", maxAccordWeights)}
	}
	if err := validateParams(topK, diversityFactor); err != nil {
		RecommendationsTotal.WithLabelValues("accords", "rejected").Inc()
		return nil, err
	}

	profile, err := profileFromWeights(weights)
	if err != nil {
		RecommendationsTotal.WithLabelValues("accords", "rejected").Inc()
		return nil, err
	}

	logger.Debug("recommend_by_accords",
		"trace_id", TraceIDFromContext(ctx),
		"accord_count", len(weights),
		"time_pref", string(timePref),
		"season_pref", string(seasonPref),
		"top_k", topK,
		"diversity_factor", diversityFactor,
	)

	recs := s.rank(s.snapshot(), profile, timePref, seasonPref, topK, diversityFactor)
	RecommendationsTotal.WithLabelValues("accords", "ok").Inc()
	return recs, nil
}

func validateParams(topK int, diversityFactor float64) error {
	if topK < 1 || topK > maxTopK {
		return &domain.InvalidParameterError{Reason: fmt.Sprintf("top_k must be between 1 and %d", maxTopK)}
	}
	if diversityFactor < 0 || diversityFactor > 1 {
		return &domain.InvalidParameterError{Reason: "diversity_factor must be between 0 and 1"}
	}
	return nil
}

// ---- Ranking pipeline ----

// rank runs score -> pool -> diversity selection -> formatting over one
// catalog snapshot. Purely CPU-bound; no locks, no shared mutable state.
func (s *Service) rank(
	cat *Catalog,
	profile domain.FeatureVector,
	timePref domain.TimePreference,
	seasonPref domain.SeasonPreference,
	topK int,
	diversityFactor float64,
) []domain.Recommendation {

	scored := s.cfg.scoreCatalog(cat, profile, timePref, seasonPref, diversityFactor)
	pool := s.cfg.candidatePool(scored, topK)
	selected := selectDiverse(cat, pool, topK, diversityFactor)

	recs := make([]domain.Recommendation, 0, len(selected))
	for _, sc := range selected {
		item := cat.Item(sc.index)

		accords := dominantAccords(item, s.cfg.AccordThreshold)
		if len(accords) > s.cfg.MaxDominantAccords {
			accords = accords[:s.cfg.MaxDominantAccords]
		}

		recs = append(recs, domain.Recommendation{
			Name:            item.Name,
			Brand:           item.Brand,
			RatingValue:     item.RatingValue,
			RatingCount:     item.RatingCount,
			GenderLabel:     genderLabel(item.GenderScore),
			PriceValueLabel: priceValueLabel(item.PriceValueScore),
			MatchScore:      sc.finalScore,
			DominantAccords: accords,
			NotesBreakdown:  item.NotesBreakdown,
		})
	}
	return recs
}
