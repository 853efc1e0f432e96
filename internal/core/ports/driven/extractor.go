package driven

import (
	"context"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// Extractor transforms raw document bytes into extracted text.
// Each extractor handles specific MIME types (e.g., PDF, DOCX).
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific extractors should return 50-89.
	// Fallback extractors should return 1-9.
	Priority() int

	// Extract produces a Document with its Content field populated.
	// The document ID is derived from the source filename.
	Extract(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
