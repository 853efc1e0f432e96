package extractors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// fakeExtractor is a minimal test double.
type fakeExtractor struct {
	mimes    []string
	priority int
}

func (f *fakeExtractor) SupportedMIMETypes() []string { return f.mimes }
func (f *fakeExtractor) Priority() int                { return f.priority }
func (f *fakeExtractor) Extract(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	return &domain.Document{ID: DocumentID(raw.URI)}, nil
}

func TestRegistry_ForMIME(t *testing.T) {
	r := NewRegistry()
	plain := &fakeExtractor{mimes: []string{"text/plain"}, priority: 5}
	r.Register(plain)

	e, err := r.ForMIME("text/plain")
	require.NoError(t, err)
	assert.Same(t, plain, e.(*fakeExtractor))

	_, err = r.ForMIME("application/pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegistry_PriorityWins(t *testing.T) {
	r := NewRegistry()
	low := &fakeExtractor{mimes: []string{"text/plain"}, priority: 5}
	high := &fakeExtractor{mimes: []string{"text/plain"}, priority: 50}

	r.Register(high)
	r.Register(low) // lower priority must not displace the existing one

	e, err := r.ForMIME("text/plain")
	require.NoError(t, err)
	assert.Same(t, high, e.(*fakeExtractor))
}

func TestRegistry_Has(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Has("text/plain"))

	r.Register(&fakeExtractor{mimes: []string{"text/plain"}, priority: 5})
	assert.True(t, r.Has("text/plain"))
}

func TestTitleFromURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"/reports/annual_report.pdf", "annual report"},
		{"/reports/quarterly-earnings.docx", "quarterly earnings"},
		{"notes.txt", "notes"},
		{"/reports/no extension", "no extension"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleFromURI(tt.uri))
	}
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "report.pdf", DocumentID("/deep/path/report.pdf"))
	assert.Equal(t, "report.pdf", DocumentID("report.pdf"))
}
