// Package memory provides in-memory implementations of the driven
// storage ports. The analysis pipeline is single-run and holds the
// whole corpus in memory, so this is the primary store, not a test
// double.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
	"github.com/ambareesh69/documentexplore/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore keeps documents and chunks in insertion order.
type CorpusStore struct {
	mu       sync.RWMutex
	docs     []domain.Document
	docIndex map[string]int
	chunks   []domain.Chunk
}

// NewCorpusStore creates an empty corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{
		docIndex: make(map[string]int),
	}
}

// SaveDocument stores a document. Saving a document with an existing ID
// replaces the stored copy but keeps its original position.
func (s *CorpusStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("%w: document must have an ID", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.docIndex[doc.ID]; ok {
		s.docs[i] = *doc
		return nil
	}
	s.docIndex[doc.ID] = len(s.docs)
	s.docs = append(s.docs, *doc)
	return nil
}

// SaveChunks appends chunks in the given order.
func (s *CorpusStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range chunks {
		if c.ID == "" {
			return fmt.Errorf("%w: chunk must have an ID", domain.ErrInvalidInput)
		}
	}
	s.chunks = append(s.chunks, chunks...)
	return nil
}

// GetDocument retrieves a document by ID.
func (s *CorpusStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.docIndex[id]
	if !ok {
		return nil, fmt.Errorf("%w: document %s", domain.ErrNotFound, id)
	}
	doc := s.docs[i]
	return &doc, nil
}

// ListDocuments returns all documents in insertion order.
func (s *CorpusStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

// ListChunks returns all chunks in insertion order.
func (s *CorpusStore) ListChunks(_ context.Context) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Chunk, len(s.chunks))
	copy(out, s.chunks)
	return out, nil
}

// Clear removes all documents and chunks.
func (s *CorpusStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = nil
	s.chunks = nil
	s.docIndex = make(map[string]int)
	return nil
}
