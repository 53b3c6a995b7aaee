package cli

import (
	"fmt"
	"os"
	"time"

	"docsearch/config"
	"docsearch/internal/adapter/backend"
	"docsearch/internal/adapter/cache"
	"docsearch/internal/adapter/memstore"
	"docsearch/internal/adapter/render"
	"docsearch/internal/adapter/sqlitekv"
	"docsearch/internal/adapter/store"
	"docsearch/internal/logger"
	"docsearch/internal/port"
	"docsearch/internal/usecase"
)

// openKV opens the configured persistence backend, creating the data
// directory and bringing a bolt file up to the current schema.
func openKV(cfg *config.Config, root string) (port.KVStore, error) {
	switch cfg.Storage.Backend {
	case "memory":
		logger.Warn("memory backend selected; documents are not kept between runs")
		return memstore.NewMemoryStore(), nil
	case "sqlite":
		st, err := sqlitekv.NewStore(cfg.StorePath(root))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return st, nil
	case "bolt", "":
		if err := cfg.EnsureDataDir(root); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		st, err := store.NewBoltStore(cfg.StorePath(root))
		if err != nil {
			return nil, fmt.Errorf("failed to open document store: %w", err)
		}
		if err := checkSchema(st); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}

func checkSchema(st *store.BoltStore) error {
	result, err := st.CheckMigration()
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}
	if result.NeedsRebuild {
		return fmt.Errorf("%s; run 'docsearch migrate --rebuild'", result.Reason)
	}
	if result.NeedsMigration {
		logger.Info("running schema migration: %s", result.Reason)
		if err := st.Migrate(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func openDocumentStore() (*usecase.DocumentStore, error) {
	kv, err := openKV(GetConfig(), GetRootDir())
	if err != nil {
		return nil, err
	}
	return usecase.OpenDocumentStore(kv), nil
}

func newSearcher(ds *usecase.DocumentStore) *usecase.Searcher {
	cfg := GetConfig()
	engine := usecase.NewSearchEngine(cfg.Search.ContextChars, cfg.Search.Ellipsis)
	var qc *cache.QueryCache
	if cfg.Search.CacheSize > 0 {
		qc = cache.NewQueryCache(cfg.Search.CacheSize, cfg.CacheTTL())
	}
	return usecase.NewSearcher(ds, engine, qc)
}

func newBackendClient() *backend.Client {
	cfg := GetConfig()
	var apiKey string
	if cfg.Backend.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.Backend.APIKeyEnv)
	}
	return backend.NewClient(backend.Config{
		BaseURL:           cfg.Backend.BaseURL,
		APIKey:            apiKey,
		Timeout:           time.Duration(cfg.Backend.TimeoutSecs) * time.Second,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		MaxSize:           cfg.Upload.MaxSize,
	})
}

func newPrinter() *render.Printer {
	return render.NewPrinter(os.Stdout, noColor)
}
