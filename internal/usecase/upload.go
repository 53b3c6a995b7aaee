package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"docsearch/internal/domain"
	"docsearch/internal/logger"
	"docsearch/internal/port"
)

// UploadUseCase turns files into documents and adds them to the store.
type UploadUseCase struct {
	store     *DocumentStore
	extractor port.Extractor
}

// NewUploadUseCase creates a new upload use case.
func NewUploadUseCase(store *DocumentStore, extractor port.Extractor) *UploadUseCase {
	return &UploadUseCase{
		store:     store,
		extractor: extractor,
	}
}

// UploadResult contains the results of an upload operation.
type UploadResult struct {
	Added       []domain.Document
	Replaced    int
	Unsupported int
	Failed      int
	// PersistFailed is set when a document reached the in-memory set but the
	// backend write failed.
	PersistFailed bool
	Errors        []string
}

// ProgressFunc is called after each file with the number processed so far.
type ProgressFunc func(processed, total int, current string)

// Upload extracts and adds each path in order. Per-file failures are
// collected in the result; only cancellation aborts the run.
func (u *UploadUseCase) Upload(ctx context.Context, paths []string, progress ProgressFunc) (*UploadResult, error) {
	result := &UploadResult{}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		u.uploadOne(ctx, path, result)

		if progress != nil {
			progress(i+1, len(paths), path)
		}
	}

	return result, nil
}

func (u *UploadUseCase) uploadOne(ctx context.Context, path string, result *UploadResult) {
	doc, err := u.extractor.Extract(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedType) {
			result.Unsupported++
		} else {
			result.Failed++
		}
		result.Errors = append(result.Errors, fmt.Sprintf("failed to upload %s: %v", filepath.Base(path), err))
		return
	}

	_, existed := u.store.Get(doc.ID)
	if err := u.store.Add(doc); err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("failed to add %s: %v", doc.Name, err))
			return
		}
		result.PersistFailed = true
		result.Errors = append(result.Errors, fmt.Sprintf("%s added but not saved: %v", doc.Name, err))
	}

	if existed {
		result.Replaced++
	}
	result.Added = append(result.Added, doc)
	logger.Debug("added %s (%s, %d bytes) as %s", doc.Name, doc.MimeType, doc.Size, doc.ID)
}
