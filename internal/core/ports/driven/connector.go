package driven

import (
	"context"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// Connector collects raw documents from an input source.
// The analysis pipeline holds all collected content in memory before
// chunking begins; connectors are not consulted mid-pipeline.
type Connector interface {
	// Type returns the connector type (e.g., "filesystem").
	Type() string

	// Scan returns every supported document under the source, in a
	// deterministic order.
	Scan(ctx context.Context) ([]domain.RawDocument, error)

	// Watch invokes onChange whenever the source content changes.
	// It blocks until the context is cancelled.
	Watch(ctx context.Context, onChange func()) error

	// Close releases resources.
	Close() error
}
