package domain

type TimePreference string

const (
	TimeDay   TimePreference = "day"
	TimeNight TimePreference = "night"
	TimeBoth  TimePreference = "both"
)

type SeasonPreference string

const (
	SeasonHot  SeasonPreference = "hot"
	SeasonCold SeasonPreference = "cold"
	SeasonBoth SeasonPreference = "both"
)

// AccordIntensity is one (accord, intensity) explanation pair.
type AccordIntensity struct {
	Accord    string  `json:"accord"`
	Intensity float64 `json:"intensity"`
}

// Recommendation is a single ranked result. Immutable once returned.
type Recommendation struct {
	Name            string            `json:"name"`
	Brand           string            `json:"brand"`
	RatingValue     float64           `json:"rating_value"`
	RatingCount     int               `json:"rating_count"`
	GenderLabel     string            `json:"gender_label"`
	PriceValueLabel string            `json:"price_value_label"`
	MatchScore      float64           `json:"match_score"`
	DominantAccords []AccordIntensity `json:"dominant_accords"`
	NotesBreakdown  string            `json:"notes_breakdown"`
}
