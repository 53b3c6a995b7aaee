package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/domain"
)

type fakeAnswerer struct {
	answer   domain.Answer
	err      error
	question string
}

func (f *fakeAnswerer) Ask(ctx context.Context, question string) (domain.Answer, error) {
	f.question = question
	return f.answer, f.err
}

func fixedClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestAsk_ReturnsAnswer(t *testing.T) {
	fa := &fakeAnswerer{answer: domain.Answer{Text: "42"}}
	uc := NewAskUseCase(fa)
	uc.now = fixedClock(1500 * time.Millisecond)

	answer, err := uc.Ask(context.Background(), "  meaning of life?  ")
	require.NoError(t, err)
	assert.Equal(t, "meaning of life?", fa.question)
	assert.Equal(t, "42", answer.Text)
	assert.Equal(t, 1500*time.Millisecond, answer.Latency)
	assert.False(t, answer.Fallback)
}

func TestAsk_KeepsBackendLatency(t *testing.T) {
	fa := &fakeAnswerer{answer: domain.Answer{Text: "ok", Latency: time.Second}}
	uc := NewAskUseCase(fa)
	uc.now = fixedClock(time.Minute)

	answer, err := uc.Ask(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, time.Second, answer.Latency)
}

func TestAsk_FallbackOnFailure(t *testing.T) {
	fa := &fakeAnswerer{err: errors.New("connection refused")}
	uc := NewAskUseCase(fa)
	uc.now = fixedClock(time.Second)

	answer, err := uc.Ask(context.Background(), "q")
	require.NoError(t, err)
	assert.True(t, answer.Fallback)
	assert.Equal(t, FallbackAnswer, answer.Text)
	assert.Equal(t, time.Second, answer.Latency)
}

func TestAsk_BlankQuestion(t *testing.T) {
	fa := &fakeAnswerer{}
	_, err := NewAskUseCase(fa).Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, fa.question)
}
