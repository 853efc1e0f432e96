package driven

import (
	"context"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// ArtifactStore persists the final analysis artifact.
// Writing is all-or-nothing: implementations must never leave a partial
// artifact visible to the visualization layer.
type ArtifactStore interface {
	// Write persists the artifact atomically.
	Write(ctx context.Context, artifact *domain.Artifact) error

	// Path returns the destination the artifact is written to.
	Path() string
}
