// Package namer derives human-readable topic labels for clusters from the
// most distinguishing terms of their member chunks.
package namer

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// DefaultTopN is the default number of terms per cluster name.
const DefaultTopN = 3

// DefaultSeparator joins the selected terms into a label.
const DefaultSeparator = " & "

// TermScoreFunc rates how distinguishing a term is for a cluster, given
// the term's mean TF-IDF weight within the cluster and across the whole
// corpus. The exact formula is a pluggable strategy; only terms with a
// positive score are considered distinguishing.
type TermScoreFunc func(clusterMean, corpusMean float64) float64

// RelativeWeight is the default strategy: a term is distinguishing when
// its cluster mean exceeds the corpus mean, scored by the difference.
// Frequent-everywhere terms score near zero and never dominate a name.
func RelativeWeight(clusterMean, corpusMean float64) float64 {
	return clusterMean - corpusMean
}

// Namer labels clusters.
type Namer struct {
	topN      int
	separator string
	score     TermScoreFunc
	title     cases.Caser
}

// Option configures the namer.
type Option func(*Namer)

// WithTopN sets how many distinguishing terms make up a name.
func WithTopN(n int) Option {
	return func(nm *Namer) {
		if n > 0 {
			nm.topN = n
		}
	}
}

// WithSeparator sets the term separator.
func WithSeparator(sep string) Option {
	return func(nm *Namer) {
		nm.separator = sep
	}
}

// WithScoreFunc replaces the distinguishing-term strategy.
func WithScoreFunc(f TermScoreFunc) Option {
	return func(nm *Namer) {
		if f != nil {
			nm.score = f
		}
	}
}

// New creates a namer with the default strategy.
func New(opts ...Option) *Namer {
	nm := &Namer{
		topN:      DefaultTopN,
		separator: DefaultSeparator,
		score:     RelativeWeight,
		title:     cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(nm)
	}
	return nm
}

// Name labels every cluster in [0, k). Clusters with no distinguishing
// terms, including the degenerate empty-vocabulary case, fall back to the
// positional name "Cluster <id>".
func (nm *Namer) Name(vocab *domain.Vocabulary, vectors []domain.ChunkVector, labels []int, k int) []string {
	names := make([]string, k)

	dims := 0
	if vocab != nil {
		dims = vocab.Size()
	}
	if dims == 0 || len(vectors) == 0 {
		for id := range names {
			names[id] = fallbackName(id)
		}
		return names
	}

	corpusMean := meanWeights(vectors, nil, -1, dims)

	for id := 0; id < k; id++ {
		clusterMean := meanWeights(vectors, labels, id, dims)
		names[id] = nm.nameOne(id, vocab, clusterMean, corpusMean)
	}
	return names
}

type scoredTerm struct {
	term  string
	score float64
}

// nameOne ranks the cluster's terms and joins the top ones.
func (nm *Namer) nameOne(id int, vocab *domain.Vocabulary, clusterMean, corpusMean []float64) string {
	scored := make([]scoredTerm, 0, len(clusterMean))
	for dim, mean := range clusterMean {
		s := nm.score(mean, corpusMean[dim])
		if s > 0 {
			scored = append(scored, scoredTerm{term: vocab.Terms[dim], score: s})
		}
	}
	if len(scored) == 0 {
		return fallbackName(id)
	}

	// Highest score first; equal scores resolve alphabetically so names
	// are stable across runs.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].term < scored[j].term
	})

	n := nm.topN
	if n > len(scored) {
		n = len(scored)
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = nm.title.String(scored[i].term)
	}
	return strings.Join(parts, nm.separator)
}

// meanWeights averages vector weights over the members of cluster id,
// or over all vectors when labels is nil.
func meanWeights(vectors []domain.ChunkVector, labels []int, id, dims int) []float64 {
	mean := make([]float64, dims)
	count := 0
	for i := range vectors {
		if labels != nil && labels[i] != id {
			continue
		}
		count++
		for dim, w := range vectors[i].Weights {
			mean[dim] += w
		}
	}
	if count == 0 {
		return mean
	}
	inv := 1 / float64(count)
	for dim := range mean {
		mean[dim] *= inv
	}
	return mean
}

func fallbackName(id int) string {
	return fmt.Sprintf("Cluster %d", id)
}
