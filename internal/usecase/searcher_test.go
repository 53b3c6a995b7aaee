package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/adapter/cache"
	"docsearch/internal/adapter/memstore"
)

func TestSearcher_SeesStoreMutations(t *testing.T) {
	store := OpenDocumentStore(memstore.NewMemoryStore())
	qc := cache.NewQueryCache(10, time.Minute)
	searcher := NewSearcher(store, nil, qc)
	defer searcher.Close()

	ctx := context.Background()
	require.NoError(t, store.Add(doc("a", "banana")))

	results, err := searcher.Search(ctx, "ban")
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 1, qc.Size())

	// cached
	results, err = searcher.Search(ctx, " ban ")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	require.NoError(t, store.Add(doc("b", "bandana")))
	assert.Equal(t, 0, qc.Size(), "mutation invalidates the cache")

	results, err = searcher.Search(ctx, "ban")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	require.NoError(t, store.Clear())
	results, err = searcher.Search(ctx, "ban")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearcher_SeesReload(t *testing.T) {
	kv := memstore.NewMemoryStore()
	store := OpenDocumentStore(kv)
	require.NoError(t, store.Add(doc("a", "banana")))
	qc := cache.NewQueryCache(10, time.Minute)
	searcher := NewSearcher(store, nil, qc)
	defer searcher.Close()

	ctx := context.Background()
	results, err := searcher.Search(ctx, "ban")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// another writer on the same backend
	other := OpenDocumentStore(kv)
	require.NoError(t, other.Add(doc("b", "bandana")))

	gen := store.Generation()
	store.Load()
	assert.Greater(t, store.Generation(), gen)
	assert.Equal(t, 0, qc.Size())

	results, err = searcher.Search(ctx, "ban")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearcher_WithoutCache(t *testing.T) {
	store := OpenDocumentStore(memstore.NewMemoryStore())
	require.NoError(t, store.Add(doc("a", "Hello hello")))

	searcher := NewSearcher(store, NewSearchEngine(0, ""), nil)
	defer searcher.Close()

	results, err := searcher.Search(context.Background(), "HELLO")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Hello", results[0].Snippet)
	assert.Equal(t, "hello", results[1].Snippet)
}

func TestSearcher_BlankQuery(t *testing.T) {
	store := OpenDocumentStore(memstore.NewMemoryStore())
	require.NoError(t, store.Add(doc("a", "anything")))
	qc := cache.NewQueryCache(10, time.Minute)
	searcher := NewSearcher(store, nil, qc)
	defer searcher.Close()

	results, err := searcher.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, qc.Size())
}

func TestSearcher_CloseStopsInvalidation(t *testing.T) {
	store := OpenDocumentStore(memstore.NewMemoryStore())
	require.NoError(t, store.Add(doc("a", "ban")))
	qc := cache.NewQueryCache(10, time.Minute)
	searcher := NewSearcher(store, nil, qc)

	_, err := searcher.Search(context.Background(), "ban")
	require.NoError(t, err)
	searcher.Close()

	require.NoError(t, store.Add(doc("b", "ban")))
	assert.Equal(t, 1, qc.Size())
}
