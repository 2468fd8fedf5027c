package recommender

import (
	"scentMatch/domain"
)

// epsilon keeps the min-max denominator nonzero; a homogeneous column
// normalizes to 0, never NaN
const normEpsilon = 1e-9

// scoredCandidate is the transient per-request scoring record. It exists
// only between scoring and response formatting and is never shared.
type scoredCandidate struct {
	index int

	similarity     float64
	ratingScore    float64
	ratingNorm     float64
	priceValueNorm float64
	timeMatch      float64
	seasonMatch    float64

	finalScore float64
}

// ratingScore applies Bayesian shrinkage toward the prior mean so a
// handful of 5-star votes cannot outrank a heavily rated item. With zero
// votes the formula collapses to the prior mean.
func (cfg Config) ratingScore(value float64, count int) float64 {
	n := float64(count)
	return (value*n + cfg.RatingPriorMean*cfg.RatingPriorWeight) / (n + cfg.RatingPriorWeight)
}

// timeMatchScore maps timeOfDay_score ([-2,2], negative = night-leaning)
// into [0,1] under the requested preference. "both" is neutral.
func timeMatchScore(score float64, pref domain.TimePreference) float64 {
	switch pref {
	case domain.TimeDay:
		return (score + 2) / 4
	case domain.TimeNight:
		return (-score + 2) / 4
	default:
		return 1.0
	}
}

// seasonMatchScore is the identical transform over season_score with
// hot = +1 and cold = -1.
func seasonMatchScore(score float64, pref domain.SeasonPreference) float64 {
	switch pref {
	case domain.SeasonHot:
		return (score + 2) / 4
	case domain.SeasonCold:
		return (-score + 2) / 4
	default:
		return 1.0
	}
}

// scoreCatalog computes all sub-scores for every catalog row against the
// preference vector and combines them with the configured weights. The
// similarity weight shrinks as diversityFactor rises so the diversity
// stage can dominate.
func (cfg Config) scoreCatalog(
	cat *Catalog,
	profile domain.FeatureVector,
	timePref domain.TimePreference,
	seasonPref domain.SeasonPreference,
	diversityFactor float64,
) []scoredCandidate {

	n := cat.Len()
	scored := make([]scoredCandidate, n)

	for i := range n {
		item := cat.Item(i)
		scored[i] = scoredCandidate{
			index:       i,
			similarity:  clippedSimilarity(profile, cat.Features(i)),
			ratingScore: cfg.ratingScore(item.RatingValue, item.RatingCount),
			timeMatch:   timeMatchScore(item.TimeOfDayScore, timePref),
			seasonMatch: seasonMatchScore(item.SeasonScore, seasonPref),
		}
	}

	ratingMin, ratingMax := minMax(n, func(i int) float64 { return scored[i].ratingScore })
	priceMin, priceMax := minMax(n, func(i int) float64 { return cat.Item(i).PriceValueScore })

	wSimilarity := cfg.Weights.Similarity * (1 - diversityFactor)

	for i := range scored {
		sc := &scored[i]
		sc.ratingNorm = (sc.ratingScore - ratingMin) / (ratingMax - ratingMin + normEpsilon)
		sc.priceValueNorm = (cat.Item(sc.index).PriceValueScore - priceMin) / (priceMax - priceMin + normEpsilon)

		sc.finalScore = wSimilarity*sc.similarity +
			cfg.Weights.Rating*sc.ratingNorm +
			cfg.Weights.PriceValue*sc.priceValueNorm +
			cfg.Weights.TimeMatch*sc.timeMatch +
			cfg.Weights.SeasonMatch*sc.seasonMatch
	}

	return scored
}
