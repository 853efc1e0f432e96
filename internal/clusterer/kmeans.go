// Package clusterer partitions chunk vectors into topical clusters with
// seeded k-means and selects the cluster count automatically.
package clusterer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// DefaultMaxIterations bounds the assignment/update loop.
const DefaultMaxIterations = 100

// KMeans clusters unit vectors by cosine similarity. Initialization
// samples k distinct input vectors through an explicit seeded generator
// owned by the invocation, never process-global random state, so results
// are reproducible and candidate runs stay order-independent.
type KMeans struct {
	maxIterations int
}

// NewKMeans creates a clusterer with the given iteration budget.
// Non-positive budgets fall back to DefaultMaxIterations.
func NewKMeans(maxIterations int) *KMeans {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &KMeans{maxIterations: maxIterations}
}

// Result is the terminal state of one clustering run.
type Result struct {
	// Labels assigns each input vector a cluster index in [0, k).
	Labels []int

	// Centroids holds the mean vector of each cluster's members.
	Centroids [][]float64

	// K is the cluster count.
	K int

	// Iterations is the number of completed assignment/update rounds.
	Iterations int

	// Converged reports whether assignments stabilised before the
	// iteration budget ran out. An unconverged result is best-effort
	// but still a valid total partition.
	Converged bool
}

// Run partitions the vectors into k clusters.
//
// After the first assignment pass every vector belongs to exactly one
// cluster, and empty clusters are repaired by re-seeding, so the terminal
// result never contains an empty cluster.
func (m *KMeans) Run(vectors [][]float64, k int, seed int64) (*Result, error) {
	n := len(vectors)
	if k <= 0 || k > n {
		return nil, fmt.Errorf("%w: k=%d with %d vectors", domain.ErrInvalidK, k, n)
	}

	rng := rand.New(rand.NewSource(seed))
	centroids := initCentroids(vectors, k, rng)

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	result := &Result{K: k}
	for iter := 0; iter < m.maxIterations; iter++ {
		next := assign(vectors, centroids)
		next, centroids = repairEmpty(vectors, next, centroids)

		changed := false
		for i := range next {
			if next[i] != labels[i] {
				changed = true
				break
			}
		}
		labels = next
		result.Iterations = iter + 1

		if !changed {
			result.Converged = true
			break
		}
		centroids = updateCentroids(vectors, labels, k, centroids)
	}

	result.Labels = labels
	result.Centroids = centroids
	return result, nil
}

// initCentroids samples k distinct input vectors as starting centroids.
func initCentroids(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	perm := rng.Perm(len(vectors))
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroid := make([]float64, len(vectors[perm[i]]))
		copy(centroid, vectors[perm[i]])
		centroids[i] = centroid
	}
	return centroids
}

// assign maps every vector to its nearest centroid by cosine similarity.
// Ties break toward the lowest cluster index.
func assign(vectors [][]float64, centroids [][]float64) []int {
	labels := make([]int, len(vectors))
	norms := make([]float64, len(centroids))
	for j, c := range centroids {
		norms[j] = norm(c)
	}

	for i, v := range vectors {
		best := 0
		bestSim := math.Inf(-1)
		for j, c := range centroids {
			sim := cosine(v, c, norms[j])
			if sim > bestSim {
				bestSim = sim
				best = j
			}
		}
		labels[i] = best
	}
	return labels
}

// updateCentroids recomputes each centroid as the mean of its members.
// A cluster that lost all members keeps its previous centroid; repair
// happens on the next assignment pass.
func updateCentroids(vectors [][]float64, labels []int, k int, previous [][]float64) [][]float64 {
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}

	centroids := make([][]float64, k)
	counts := make([]int, k)
	for j := range centroids {
		centroids[j] = make([]float64, dim)
	}
	for i, v := range vectors {
		j := labels[i]
		counts[j]++
		for d, w := range v {
			centroids[j][d] += w
		}
	}
	for j := range centroids {
		if counts[j] == 0 {
			centroids[j] = previous[j]
			continue
		}
		inv := 1 / float64(counts[j])
		for d := range centroids[j] {
			centroids[j][d] *= inv
		}
	}
	return centroids
}

// repairEmpty re-seeds clusters that ended an assignment pass with no
// members by moving over the vector farthest from its current centroid.
// This is a local repair, not a restart: it returns adjusted labels and
// centroids without touching any other assignment.
func repairEmpty(vectors [][]float64, labels []int, centroids [][]float64) ([]int, [][]float64) {
	k := len(centroids)
	counts := make([]int, k)
	for _, l := range labels {
		counts[l]++
	}

	for j := 0; j < k; j++ {
		if counts[j] > 0 {
			continue
		}

		// Pick the vector with the lowest similarity to its own centroid,
		// skipping clusters that would become empty themselves.
		farthest := -1
		farthestSim := math.Inf(1)
		for i, v := range vectors {
			owner := labels[i]
			if counts[owner] <= 1 {
				continue
			}
			sim := cosine(v, centroids[owner], norm(centroids[owner]))
			if sim < farthestSim {
				farthestSim = sim
				farthest = i
			}
		}
		if farthest < 0 {
			continue
		}

		counts[labels[farthest]]--
		labels[farthest] = j
		counts[j]++

		centroid := make([]float64, len(vectors[farthest]))
		copy(centroid, vectors[farthest])
		centroids[j] = centroid
	}
	return labels, centroids
}

// cosine computes the cosine similarity of a unit vector v against a
// centroid with precomputed norm. Zero vectors yield similarity 0.
func cosine(v, c []float64, cNorm float64) float64 {
	if cNorm == 0 {
		return 0
	}
	dot := 0.0
	for i := range v {
		dot += v[i] * c[i]
	}
	return dot / cNorm
}

func norm(v []float64) float64 {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
