// business/recommender/math.go
package recommender

import (
	"math"

	"scentMatch/domain"
)

// lower clipping bound for similarities, keeps downstream transforms away
// from zero/negative degenerate values
const similarityFloor = 1e-10

func dot(a, b domain.FeatureVector) float64 {
	sum := 0.0
	for i := range domain.FeatureDim {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(a domain.FeatureVector) float64 {
	return math.Sqrt(dot(a, a))
}

// cosineSimilarity over the full feature vector. A zero vector on either
// side yields 0 rather than NaN.
func cosineSimilarity(a, b domain.FeatureVector) float64 {
	na := norm(a)
	nb := norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return dot(a, b) / (na * nb)
}

// clippedSimilarity maps cosine similarity into (0,1].
func clippedSimilarity(a, b domain.FeatureVector) float64 {
	sim := cosineSimilarity(a, b)
	if sim < similarityFloor {
		return similarityFloor
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// minMax returns the min and max of f over n elements.
func minMax(n int, f func(i int) float64) (float64, float64) {
	if n == 0 {
		return 0, 0
	}
	lo := f(0)
	hi := f(0)
	for i := 1; i < n; i++ {
		v := f(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
