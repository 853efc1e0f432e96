// Package chunker provides fixed-size text chunking with overlap.
package chunker

import (
	"fmt"
	"strings"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Splitter splits document content into bounded-size chunks.
// A document shorter than the chunk size yields exactly one chunk, and a
// trailing remainder is kept as a final short chunk so no content is lost.
type Splitter struct {
	chunkSize int
	overlap   int
}

// New creates a splitter. The chunk size must be positive and the overlap
// must be non-negative and smaller than the chunk size.
func New(chunkSize, overlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrInvalidConfig, chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("%w: overlap must be in [0, %d), got %d", domain.ErrInvalidConfig, chunkSize, overlap)
	}
	return &Splitter{chunkSize: chunkSize, overlap: overlap}, nil
}

// ChunkSize returns the configured chunk size in characters.
func (s *Splitter) ChunkSize() int { return s.chunkSize }

// Overlap returns the configured overlap in characters.
func (s *Splitter) Overlap() int { return s.overlap }

// Split produces the ordered chunks of a document. All-whitespace spans
// are skipped; positions are assigned to emitted chunks only, so chunk IDs
// stay dense and stable for identical input.
func (s *Splitter) Split(doc *domain.Document) []domain.Chunk {
	if doc == nil || doc.Content == "" {
		return nil
	}

	// Split on runes so multi-byte text never lands mid-character.
	content := []rune(doc.Content)
	contentLen := len(content)

	step := s.chunkSize - s.overlap
	estimated := contentLen/step + 1
	chunks := make([]domain.Chunk, 0, estimated)

	position := 0
	for start := 0; start < contentLen; start += step {
		end := start + s.chunkSize
		if end > contentLen {
			end = contentLen
		}

		span := string(content[start:end])
		if strings.TrimSpace(span) == "" {
			if end == contentLen {
				break
			}
			continue
		}

		chunks = append(chunks, domain.Chunk{
			ID:         domain.ChunkID(doc.ID, position),
			DocumentID: doc.ID,
			Content:    span,
			Position:   position,
		})
		position++

		if end == contentLen {
			break
		}
	}

	return chunks
}
