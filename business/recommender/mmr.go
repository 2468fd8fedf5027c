package recommender

import (
	"sort"

	"scentMatch/domain"
)

// candidatePool sorts the scored rows by final score and keeps the prefix
// sized max(PoolFloor, topK*PoolPerK), wide enough for meaningful
// diversification and bounded so the pairwise matrix stays cheap. The
// sort is stable so equal scores keep catalog order and identical inputs
// always produce identical pools.
func (cfg Config) candidatePool(scored []scoredCandidate, topK int) []scoredCandidate {
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].finalScore > scored[j].finalScore })

	size := topK * cfg.PoolPerK
	if size < cfg.PoolFloor {
		size = cfg.PoolFloor
	}
	if size > len(scored) {
		size = len(scored)
	}
	return scored[:size]
}

// selectDiverse picks topK candidates by maximal marginal relevance:
// mmr = lambda*finalScore - (1-lambda)*maxSimToSelected, with
// lambda = 1 - diversityFactor. Selection order follows MMR; the returned
// slice is re-sorted by final score for presentation.
func selectDiverse(cat *Catalog, pool []scoredCandidate, topK int, diversityFactor float64) []scoredCandidate {
	if len(pool) == 0 || topK <= 0 {
		return []scoredCandidate{}
	}
	if topK > len(pool) {
		topK = len(pool)
	}

	lambda := 1 - diversityFactor

	// pairwise similarities once up front, reused across greedy steps
	n := len(pool)
	features := make([]domain.FeatureVector, n)
	for i, sc := range pool {
		features[i] = cat.Features(sc.index)
	}
	pairSim := make([][]float64, n)
	for i := range pairSim {
		pairSim[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := cosineSimilarity(features[i], features[j])
			pairSim[i][j] = s
			pairSim[j][i] = s
		}
	}

	selected := make([]int, 0, topK)
	remaining := make(map[int]struct{}, n)
	for i := range pool {
		remaining[i] = struct{}{}
	}

	for len(selected) < topK && len(remaining) > 0 {
		best := -1
		bestScore := 0.0

		for i := range remaining {
			var score float64
			if len(selected) == 0 {
				score = pool[i].finalScore
			} else {
				novelty := pairSim[i][selected[0]]
				for _, s := range selected[1:] {
					if pairSim[i][s] > novelty {
						novelty = pairSim[i][s]
					}
				}
				score = lambda*pool[i].finalScore - (1-lambda)*novelty
			}

			// ties resolve to the pool-order (higher final score) candidate
			if best == -1 || score > bestScore || (score == bestScore && i < best) {
				best = i
				bestScore = score
			}
		}

		selected = append(selected, best)
		delete(remaining, best)
	}

	out := make([]scoredCandidate, 0, len(selected))
	for _, i := range selected {
		out = append(out, pool[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].finalScore > out[j].finalScore })
	return out
}
