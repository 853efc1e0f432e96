// Package plaintext extracts text from plain text and markdown documents.
package plaintext

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
	"github.com/ambareesh69/documentexplore/internal/core/ports/driven"
	"github.com/ambareesh69/documentexplore/internal/extractors"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/markdown",
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 5 // Fallback extractor
}

// Extract converts raw bytes to extracted text.
// Invalid UTF-8 sequences are dropped rather than propagated downstream.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := string(raw.Content)
	if !utf8.ValidString(content) {
		content = strings.ToValidUTF8(content, "")
	}

	return &domain.Document{
		ID:      extractors.DocumentID(raw.URI),
		URI:     raw.URI,
		Title:   extractors.TitleFromURI(raw.URI),
		Content: content,
	}, nil
}
