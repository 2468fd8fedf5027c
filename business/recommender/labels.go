package recommender

import (
	"sort"

	"scentMatch/domain"
)

// genderLabel buckets gender_score into the five display labels. Each
// bucket is inclusive on its upper bound.
func genderLabel(score float64) string {
	switch {
	case score <= -0.9:
		return "Very Feminine"
	case score <= -0.3:
		return "Feminine"
	case score <= 0.3:
		return "Unisex"
	case score <= 0.9:
		return "Masculine"
	default:
		return "Very Masculine"
	}
}

// priceValueLabel buckets priceValue_score into the five value tiers.
func priceValueLabel(score float64) string {
	switch {
	case score <= -1.5:
		return "Very Overpriced"
	case score <= -0.5:
		return "Overpriced"
	case score <= 0.5:
		return "Fair Price"
	case score <= 1.5:
		return "Good Value"
	default:
		return "Excellent Value"
	}
}

// dominantAccords returns the accords whose intensity exceeds the
// threshold, strongest first. Callers truncate to their display limit.
func dominantAccords(f domain.Fragrance, threshold float64) []domain.AccordIntensity {
	out := make([]domain.AccordIntensity, 0, domain.NumAccords)
	for i, name := range domain.AccordNames {
		if f.Accords[i] > threshold {
			out = append(out, domain.AccordIntensity{Accord: name, Intensity: f.Accords[i]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Intensity > out[j].Intensity })
	return out
}
