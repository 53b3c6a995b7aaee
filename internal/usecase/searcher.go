package usecase

import (
	"context"
	"strings"

	"docsearch/internal/adapter/cache"
	"docsearch/internal/domain"
	"docsearch/internal/logger"
)

// Searcher runs the search engine over a snapshot of a DocumentStore,
// optionally caching results until the store changes.
type Searcher struct {
	store       *DocumentStore
	engine      *SearchEngine
	cache       *cache.QueryCache
	unsubscribe func()
}

// NewSearcher wires engine to store. qc may be nil to disable caching.
func NewSearcher(store *DocumentStore, engine *SearchEngine, qc *cache.QueryCache) *Searcher {
	if engine == nil {
		engine = defaultEngine
	}
	s := &Searcher{store: store, engine: engine, cache: qc, unsubscribe: func() {}}
	if qc != nil {
		s.unsubscribe = store.Subscribe(qc.Invalidate)
	}
	return s
}

// Search returns the matches for query over the store's current contents.
// Cached slices are shared between calls and must not be modified.
func (s *Searcher) Search(ctx context.Context, query string) ([]domain.MatchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	gen := s.store.Generation()
	if s.cache != nil {
		if results, hit := s.cache.Get(query, gen); hit {
			logger.Debug("search cache hit for %q", query)
			return results, nil
		}
	}

	docs := s.store.List()
	results, err := s.engine.SearchContext(ctx, docs, query)
	if err != nil {
		return nil, err
	}
	logger.Debug("searched %d documents for %q: %d matches", len(docs), query, len(results))

	if s.cache != nil {
		s.cache.Put(query, gen, results)
	}
	return results, nil
}

// Close detaches the searcher from store change notifications.
func (s *Searcher) Close() {
	s.unsubscribe()
}
