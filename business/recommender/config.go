package recommender

import "fmt"

// Weights are the fixed sub-score weights of the composite scorer. The
// similarity share is scaled down by (1 - diversity_factor) at request
// time; the lost mass is intentionally not redistributed.
type Weights struct {
	Similarity  float64
	Rating      float64
	PriceValue  float64
	TimeMatch   float64
	SeasonMatch float64
}

const (
	defaultWSimilarity  = 0.35
	defaultWRating      = 0.20
	defaultWPriceValue  = 0.15
	defaultWTimeMatch   = 0.15
	defaultWSeasonMatch = 0.15

	defaultRatingPriorMean   = 3.0
	defaultRatingPriorWeight = 10.0

	defaultAccordThreshold    = 0.30
	defaultMaxDominantAccords = 3

	// candidate pool sizing: max(poolFloor, topK*poolPerK)
	defaultPoolFloor = 30
	defaultPoolPerK  = 10
)

func DefaultWeights() Weights {
	return Weights{
		Similarity:  defaultWSimilarity,
		Rating:      defaultWRating,
		PriceValue:  defaultWPriceValue,
		TimeMatch:   defaultWTimeMatch,
		SeasonMatch: defaultWSeasonMatch,
	}
}

// Validate checks the weights sum to 1 within tolerance.
func (w Weights) Validate() error {
	sum := w.Similarity + w.Rating + w.PriceValue + w.TimeMatch + w.SeasonMatch
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

type Config struct {
	Weights Weights

	// Bayesian shrinkage prior for the rating sub-score.
	RatingPriorMean   float64
	RatingPriorWeight float64

	// Explanation formatting.
	AccordThreshold    float64
	MaxDominantAccords int

	// Candidate pool sizing for the diversity stage.
	PoolFloor int
	PoolPerK  int
}

func DefaultConfig() Config {
	return Config{
		Weights:            DefaultWeights(),
		RatingPriorMean:    defaultRatingPriorMean,
		RatingPriorWeight:  defaultRatingPriorWeight,
		AccordThreshold:    defaultAccordThreshold,
		MaxDominantAccords: defaultMaxDominantAccords,
		PoolFloor:          defaultPoolFloor,
		PoolPerK:           defaultPoolPerK,
	}
}
