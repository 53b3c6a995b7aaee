package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"docsearch/internal/domain"
	"docsearch/internal/logger"
	"docsearch/internal/port"
)

// FallbackAnswer is shown in place of an answer when the backend fails.
const FallbackAnswer = "Sorry, something went wrong while contacting the AI backend."

// AskUseCase forwards questions to the remote QA backend. It is independent
// of the local document store.
type AskUseCase struct {
	answerer port.Answerer
	now      func() time.Time
}

func NewAskUseCase(answerer port.Answerer) *AskUseCase {
	return &AskUseCase{answerer: answerer, now: time.Now}
}

// Ask returns the backend's answer. Backend failures degrade to FallbackAnswer
// with Fallback set and are not returned as errors; only a blank question is.
func (u *AskUseCase) Ask(ctx context.Context, question string) (domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Answer{}, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}

	start := u.now()
	answer, err := u.answerer.Ask(ctx, question)
	elapsed := u.now().Sub(start)

	if err != nil {
		logger.Warn("error fetching from backend: %v", err)
		return domain.Answer{Text: FallbackAnswer, Latency: elapsed, Fallback: true}, nil
	}
	if answer.Latency == 0 {
		answer.Latency = elapsed
	}
	return answer, nil
}
