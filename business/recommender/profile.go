package recommender

import (
	"sort"

	"scentMatch/domain"
)

// neutral fill for accord dimensions the user did not mention, so
// unspecified accords neither dominate nor vanish from scoring
const neutralAccordWeight = 0.5

// profileFromLiked builds a preference vector as the column-wise mean of
// the liked fragrances' feature vectors. The liked list is a set: a name
// repeated in the input counts once. Every name must exist in the
// catalog; all unknown names are reported together.
func (c *Catalog) profileFromLiked(names []string) (domain.FeatureVector, error) {
	var profile domain.FeatureVector

	rows := make([]int, 0, len(names))
	seen := make(map[int]struct{}, len(names))
	var unknown []string
	for _, name := range names {
		i, ok := c.IndexByName(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		rows = append(rows, i)
	}
	if len(unknown) > 0 {
		return profile, &domain.UnknownItemError{Names: unknown}
	}

	for _, i := range rows {
		f := c.features[i]
		for d := range domain.FeatureDim {
			profile[d] += f[d]
		}
	}
	n := float64(len(rows))
	for d := range domain.FeatureDim {
		profile[d] /= n
	}
	return profile, nil
}

// profileFromWeights builds a sparse preference vector from explicit
// accord weights. Named accords take the given weight, unnamed accords
// default to the neutral mid-weight, contextual dimensions stay 0.
func profileFromWeights(weights map[string]float64) (domain.FeatureVector, error) {
	var profile domain.FeatureVector

	var unknown []string
	var invalid []string
	for accord, w := range weights {
		if _, ok := domain.AccordIndex(accord); !ok {
			unknown = append(unknown, accord)
			continue
		}
		if w < 0 || w > 1 {
			invalid = append(invalid, accord)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return profile, &domain.UnknownCategoryError{Accords: unknown}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return profile, &domain.InvalidWeightError{Accords: invalid}
	}

	for d := range domain.NumAccords {
		profile[d] = neutralAccordWeight
	}
	for accord, w := range weights {
		d, _ := domain.AccordIndex(accord)
		profile[d] = w
	}
	return profile, nil
}
