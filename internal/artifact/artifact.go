// Package artifact assembles and persists the analysis output consumed by
// the visualization layer.
package artifact

import (
	"fmt"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// Metadata carries the display fields embedded in the artifact header.
type Metadata struct {
	Title         string
	Description   string
	Similarity    float64
	CharsPerPixel int
}

// Build assembles the final artifact from the pipeline's terminal state.
//
// It refuses to assemble partial state: every chunk must carry an
// in-range cluster label, every cluster in [0, k) must be named and must
// have at least one member. Chunks appear in corpus order and clusters in
// ID order, so identical runs produce byte-identical output.
func Build(chunks []domain.Chunk, labels []int, names []string, k int, meta Metadata) (*domain.Artifact, error) {
	if len(labels) != len(chunks) {
		return nil, fmt.Errorf("%w: %d labels for %d chunks", domain.ErrInvalidInput, len(labels), len(chunks))
	}
	if len(names) != k {
		return nil, fmt.Errorf("%w: %d names for %d clusters", domain.ErrInvalidInput, len(names), k)
	}

	counts := make([]int, k)
	assignments := make([]domain.ChunkAssignment, len(chunks))
	for i, chunk := range chunks {
		label := labels[i]
		if label < 0 || label >= k {
			return nil, fmt.Errorf("%w: chunk %s has out-of-range cluster %d", domain.ErrInvalidInput, chunk.ID, label)
		}
		counts[label]++
		assignments[i] = domain.ChunkAssignment{ID: chunk.ID, Cluster: label}
	}

	summaries := make([]domain.ClusterSummary, k)
	for id := 0; id < k; id++ {
		if counts[id] == 0 {
			return nil, fmt.Errorf("%w: cluster %d has no members", domain.ErrInvalidInput, id)
		}
		if names[id] == "" {
			return nil, fmt.Errorf("%w: cluster %d has no name", domain.ErrInvalidInput, id)
		}
		summaries[id] = domain.ClusterSummary{
			ID:         id,
			Name:       names[id],
			ChunkCount: counts[id],
		}
	}

	return &domain.Artifact{
		Title:         meta.Title,
		Description:   meta.Description,
		Similarity:    meta.Similarity,
		CharsPerPixel: meta.CharsPerPixel,
		Chunks:        assignments,
		Clusters:      summaries,
	}, nil
}
