package clusterer

import "math"

// Scorer rates the quality of one candidate partition. Higher is better.
// The exact scoring function is a pluggable strategy; the selector only
// relies on scores being comparable across candidates on the same input.
type Scorer interface {
	// Name returns the strategy name for logging.
	Name() string

	// Score rates a partition of the given vectors.
	Score(vectors [][]float64, result *Result) float64
}

// SilhouetteScorer computes the mean silhouette coefficient over cosine
// distance (1 - cosine similarity). Values lie in [-1, 1]; well-separated
// cohesive partitions score near 1.
type SilhouetteScorer struct{}

// Name returns the strategy name.
func (SilhouetteScorer) Name() string { return "silhouette" }

// Score computes the mean silhouette over all vectors.
// Singleton clusters contribute a coefficient of 0 by convention.
func (SilhouetteScorer) Score(vectors [][]float64, result *Result) float64 {
	n := len(vectors)
	k := result.K
	if n == 0 || k < 2 {
		return 0
	}

	counts := make([]int, k)
	for _, l := range result.Labels {
		counts[l]++
	}

	total := 0.0
	for i, v := range vectors {
		// Mean distance from vector i to each cluster.
		sums := make([]float64, k)
		for j, w := range vectors {
			if i == j {
				continue
			}
			sums[result.Labels[j]] += cosineDistance(v, w)
		}

		own := result.Labels[i]
		if counts[own] <= 1 {
			continue
		}
		a := sums[own] / float64(counts[own]-1)

		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || counts[c] == 0 {
				continue
			}
			if mean := sums[c] / float64(counts[c]); mean < b {
				b = mean
			}
		}
		if math.IsInf(b, 1) {
			continue
		}

		if d := math.Max(a, b); d > 0 {
			total += (b - a) / d
		}
	}
	return total / float64(n)
}

// cosineDistance is 1 minus the cosine similarity of two vectors.
// Zero vectors are treated as maximally distant from everything.
func cosineDistance(a, b []float64) float64 {
	na, nb := norm(a), norm(b)
	if na == 0 || nb == 0 {
		return 1
	}
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	return 1 - dot/(na*nb)
}
