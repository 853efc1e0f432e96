package driven

import (
	"context"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// CorpusStore holds the in-memory corpus for one analysis run.
// Insertion order is preserved so chunk ordering, and therefore the
// artifact, is deterministic.
type CorpusStore interface {
	// SaveDocument stores a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks appends chunks for a document.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents in insertion order.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// ListChunks returns all chunks across documents in insertion order.
	ListChunks(ctx context.Context) ([]domain.Chunk, error)

	// Clear removes all documents and chunks.
	Clear(ctx context.Context) error
}
