package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

func TestNewCorpusStore(t *testing.T) {
	store := NewCorpusStore()
	require.NotNil(t, store)

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCorpusStore_SaveDocument_Success(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	err := store.SaveDocument(ctx, &domain.Document{ID: "a.txt", Title: "a"})
	require.NoError(t, err)

	doc, err := store.GetDocument(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", doc.Title)
}

func TestCorpusStore_SaveDocument_NoID(t *testing.T) {
	store := NewCorpusStore()

	err := store.SaveDocument(context.Background(), &domain.Document{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.SaveDocument(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCorpusStore_SaveDocument_ReplaceKeepsPosition(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "a", Title: "first"}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "b", Title: "second"}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "a", Title: "updated"}))

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "updated", docs[0].Title)
	assert.Equal(t, "second", docs[1].Title)
}

func TestCorpusStore_GetDocument_NotFound(t *testing.T) {
	store := NewCorpusStore()

	_, err := store.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpusStore_ListDocuments_InsertionOrder(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: id}))
	}

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "z", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, "m", docs[2].ID)
}

func TestCorpusStore_SaveChunks_InsertionOrder(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	first := []domain.Chunk{
		{ID: "a:0", DocumentID: "a", Position: 0},
		{ID: "a:1", DocumentID: "a", Position: 1},
	}
	second := []domain.Chunk{
		{ID: "b:0", DocumentID: "b", Position: 0},
	}

	require.NoError(t, store.SaveChunks(ctx, first))
	require.NoError(t, store.SaveChunks(ctx, second))

	chunks, err := store.ListChunks(ctx)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, "a:0", chunks[0].ID)
	assert.Equal(t, "a:1", chunks[1].ID)
	assert.Equal(t, "b:0", chunks[2].ID)
}

func TestCorpusStore_SaveChunks_MissingID(t *testing.T) {
	store := NewCorpusStore()

	err := store.SaveChunks(context.Background(), []domain.Chunk{{DocumentID: "a"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCorpusStore_Clear(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "a"}))
	require.NoError(t, store.SaveChunks(ctx, []domain.Chunk{{ID: "a:0", DocumentID: "a"}}))
	require.NoError(t, store.Clear(ctx))

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	chunks, err := store.ListChunks(ctx)
	require.NoError(t, err)
	assert.Empty(t, chunks)

	_, err = store.GetDocument(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpusStore_ListReturnsCopies(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "a", Title: "original"}))

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	docs[0].Title = "mutated"

	stored, err := store.GetDocument(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Title)
}
