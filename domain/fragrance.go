package domain

// NumAccords is the number of scent-family (accord) dimensions in the
// catalog schema.
const NumAccords = 11

// FeatureDim is the full feature-space dimensionality: accords plus the
// four contextual scores (gender, price value, time of day, season).
const FeatureDim = NumAccords + 4

// AccordNames lists the accord columns in schema order. The order is part
// of the catalog file contract and must not change without reprocessing
// the catalog.
var AccordNames = [NumAccords]string{
	"Woody & Earthy",
	"Smoky & Leathery",
	"Resinous & Balsamic",
	"Citrus & Fresh",
	"Green & Herbal",
	"Warm & Spicy",
	"Sweet & Gourmand",
	"Floral",
	"Powdery & Soft",
	"Synthetic",
	"Uncommon",
}

var accordIndex = func() map[string]int {
	m := make(map[string]int, NumAccords)
	for i, name := range AccordNames {
		m[name] = i
	}
	return m
}()

// AccordIndex maps an accord name to its position in the feature vector.
func AccordIndex(name string) (int, bool) {
	i, ok := accordIndex[name]
	return i, ok
}

// FeatureVector is a point in the catalog's feature space: accord
// intensities first (schema order), then gender, price value, time of day
// and season scores.
type FeatureVector [FeatureDim]float64

type Fragrance struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`

	RatingValue float64 `json:"rating_value"`
	RatingCount int     `json:"rating_count"`

	// Accord intensities in [0,1], schema order.
	Accords [NumAccords]float64 `json:"accords"`

	// Contextual scores, roughly in [-2,2].
	GenderScore     float64 `json:"gender_score"`
	PriceValueScore float64 `json:"price_value_score"`
	TimeOfDayScore  float64 `json:"time_of_day_score"`
	SeasonScore     float64 `json:"season_score"`

	NotesBreakdown string `json:"notes_breakdown"`
}

// Features returns the full feature vector for the fragrance.
func (f Fragrance) Features() FeatureVector {
	var v FeatureVector
	copy(v[:NumAccords], f.Accords[:])
	v[NumAccords] = f.GenderScore
	v[NumAccords+1] = f.PriceValueScore
	v[NumAccords+2] = f.TimeOfDayScore
	v[NumAccords+3] = f.SeasonScore
	return v
}

// FragranceSummary is the lightweight listing used by search pickers.
type FragranceSummary struct {
	Brand string `json:"brand"`
	Name  string `json:"name"`
}
