package clusterer

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
	"github.com/ambareesh69/documentexplore/internal/logger"
)

// Selector chooses the cluster count k from a bounded range by running the
// clusterer once per candidate and scoring each partition. Candidate runs
// are independent pure computations over shared immutable input, so they
// are evaluated in parallel; a single reduction picks the winner.
type Selector struct {
	kMin   int
	kMax   int
	seed   int64
	kmeans *KMeans
	scorer Scorer
}

// NewSelector creates a selector over [kMin, kMax] with the given base
// seed. Each candidate derives its own seed from the base seed and k, so
// parallel evaluation stays reproducible and order-independent.
func NewSelector(kMin, kMax int, seed int64, kmeans *KMeans, scorer Scorer) (*Selector, error) {
	if kMin < 1 {
		return nil, fmt.Errorf("%w: k_min must be at least 1, got %d", domain.ErrInvalidConfig, kMin)
	}
	if kMax < kMin {
		return nil, fmt.Errorf("%w: k_max %d is below k_min %d", domain.ErrInvalidConfig, kMax, kMin)
	}
	if scorer == nil {
		scorer = SilhouetteScorer{}
	}
	return &Selector{
		kMin:   kMin,
		kMax:   kMax,
		seed:   seed,
		kmeans: kmeans,
		scorer: scorer,
	}, nil
}

// Selection is the outcome of cluster-count selection.
type Selection struct {
	// K is the chosen cluster count.
	K int

	// Score is the winning candidate's quality score.
	Score float64

	// Result is the winning clustering run, reused by downstream stages.
	Result *Result
}

// Select picks the best k for the given vectors.
//
// The effective range is [max(2, kMin), min(kMax, floor(sqrt(n)))], which
// prevents one cluster per chunk. When the corpus is smaller than the
// lower bound, k is clamped to the chunk count: degenerate but valid.
// Ties between equally scored candidates prefer the smaller k.
func (s *Selector) Select(ctx context.Context, vectors [][]float64) (*Selection, error) {
	n := len(vectors)
	if n == 0 {
		return nil, fmt.Errorf("%w: no vectors to cluster", domain.ErrEmptyCorpus)
	}

	lo := s.kMin
	if lo < 2 {
		lo = 2
	}
	hi := s.kMax
	if root := int(math.Floor(math.Sqrt(float64(n)))); root < hi {
		hi = root
	}

	if n < lo {
		// One cluster per chunk; nothing to search.
		return s.single(n, vectors)
	}
	if hi < lo {
		return s.single(lo, vectors)
	}
	if lo == hi {
		return s.single(lo, vectors)
	}

	logger.Debug("evaluating cluster counts %d..%d over %d vectors", lo, hi, n)

	candidates := make([]*Selection, hi-lo+1)
	g, _ := errgroup.WithContext(ctx)
	for k := lo; k <= hi; k++ {
		k := k
		g.Go(func() error {
			result, err := s.kmeans.Run(vectors, k, s.candidateSeed(k))
			if err != nil {
				return fmt.Errorf("candidate k=%d: %w", k, err)
			}
			score := s.scorer.Score(vectors, result)
			logger.Debug("candidate k=%d: %s score %.4f", k, s.scorer.Name(), score)
			candidates[k-lo] = &Selection{K: k, Score: score, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Reduction: best score wins, ties prefer the smaller k. Candidates
	// are scanned in ascending k order so the strict comparison is enough.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}

	logger.Info("selected k=%d (%s score %.4f)", best.K, s.scorer.Name(), best.Score)
	return best, nil
}

// single runs the clusterer for a fixed k without scoring.
func (s *Selector) single(k int, vectors [][]float64) (*Selection, error) {
	result, err := s.kmeans.Run(vectors, k, s.candidateSeed(k))
	if err != nil {
		return nil, err
	}
	return &Selection{K: k, Result: result}, nil
}

// candidateSeed derives a per-candidate seed so concurrent runs never
// share generator state.
func (s *Selector) candidateSeed(k int) int64 {
	return s.seed + int64(k)*1_000_003
}
