package port

import (
	"context"

	"docsearch/internal/domain"
)

// Answerer asks the remote question-answering backend.
type Answerer interface {
	Ask(ctx context.Context, question string) (domain.Answer, error)
}
