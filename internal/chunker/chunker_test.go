package chunker

import (
	"errors"
	"strings"
	"testing"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		s, err := New(100, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ChunkSize() != 100 {
			t.Errorf("expected chunkSize 100, got %d", s.ChunkSize())
		}
		if s.Overlap() != 20 {
			t.Errorf("expected overlap 20, got %d", s.Overlap())
		}
	})

	t.Run("zero chunk size", func(t *testing.T) {
		_, err := New(0, 0)
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("negative overlap", func(t *testing.T) {
		_, err := New(100, -1)
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("overlap equals chunk size", func(t *testing.T) {
		_, err := New(100, 100)
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestSplit_EmptyContent(t *testing.T) {
	s, _ := New(100, 20)
	chunks := s.Split(&domain.Document{ID: "doc", Content: ""})
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for empty content, got %d", len(chunks))
	}
}

func TestSplit_DocumentShorterThanChunkSize(t *testing.T) {
	s, _ := New(100, 20)
	doc := &domain.Document{ID: "doc", Content: "This is a small piece of content."}

	chunks := s.Split(doc)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk for small content, got %d", len(chunks))
	}
	if chunks[0].Content != doc.Content {
		t.Error("expected chunk content to equal document content, no truncation")
	}
	if chunks[0].ID != "doc:0" {
		t.Errorf("expected chunk ID 'doc:0', got %q", chunks[0].ID)
	}
	if chunks[0].Position != 0 {
		t.Errorf("expected position 0, got %d", chunks[0].Position)
	}
}

func TestSplit_TrailingRemainderKept(t *testing.T) {
	s, _ := New(10, 0)
	doc := &domain.Document{ID: "doc", Content: strings.Repeat("a", 25)}

	chunks := s.Split(doc)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[2].Content) != 5 {
		t.Errorf("expected final chunk of 5 chars, got %d", len(chunks[2].Content))
	}

	// No content may be dropped.
	total := 0
	for _, c := range chunks {
		total += len(c.Content)
	}
	if total != 25 {
		t.Errorf("expected 25 total chars across chunks, got %d", total)
	}
}

func TestSplit_Overlap(t *testing.T) {
	s, _ := New(10, 4)
	doc := &domain.Document{ID: "doc", Content: "abcdefghijklmnopqrst"}

	chunks := s.Split(doc)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if chunks[0].Content != "abcdefghij" {
		t.Errorf("unexpected first chunk %q", chunks[0].Content)
	}
	// Second chunk starts chunkSize-overlap=6 characters in.
	if chunks[1].Content != "ghijklmnop" {
		t.Errorf("unexpected second chunk %q", chunks[1].Content)
	}
}

func TestSplit_WhitespaceSpansSkipped(t *testing.T) {
	s, _ := New(5, 0)
	doc := &domain.Document{ID: "doc", Content: "hello     world"}

	chunks := s.Split(doc)
	for _, c := range chunks {
		if strings.TrimSpace(c.Content) == "" {
			t.Errorf("emitted all-whitespace chunk %q", c.Content)
		}
	}
	// Positions stay dense even when spans are skipped.
	for i, c := range chunks {
		if c.Position != i {
			t.Errorf("expected position %d, got %d", i, c.Position)
		}
		if c.ID != domain.ChunkID("doc", i) {
			t.Errorf("expected ID %q, got %q", domain.ChunkID("doc", i), c.ID)
		}
	}
}

func TestSplit_AllWhitespaceDocument(t *testing.T) {
	s, _ := New(10, 0)
	chunks := s.Split(&domain.Document{ID: "doc", Content: "   \n\t   "})
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for all-whitespace document, got %d", len(chunks))
	}
}

func TestSplit_MultiByteContent(t *testing.T) {
	s, _ := New(4, 0)
	doc := &domain.Document{ID: "doc", Content: "héllo wörld"}

	chunks := s.Split(doc)
	joined := ""
	for _, c := range chunks {
		joined += c.Content
	}
	if joined != doc.Content {
		t.Errorf("expected chunks to reassemble content, got %q", joined)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	s, _ := New(10, 3)
	doc := &domain.Document{ID: "doc", Content: strings.Repeat("the quick brown fox ", 10)}

	first := s.Split(doc)
	second := s.Split(doc)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}
