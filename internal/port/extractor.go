package port

import (
	"context"

	"docsearch/internal/domain"
)

// Extractor turns a file on disk into a Document ready for the store.
type Extractor interface {
	Extract(ctx context.Context, path string) (domain.Document, error)
}
