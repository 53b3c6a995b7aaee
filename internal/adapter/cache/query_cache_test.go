package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docsearch/internal/domain"
)

func results(ids ...string) []domain.MatchResult {
	out := make([]domain.MatchResult, len(ids))
	for i, id := range ids {
		out[i] = domain.MatchResult{DocumentID: id}
	}
	return out
}

func TestQueryCache_HitAndGenerationMiss(t *testing.T) {
	c := NewQueryCache(10, time.Minute)

	c.Put("ban", 3, results("a"))
	got, ok := c.Get("ban", 3)
	assert.True(t, ok)
	assert.Equal(t, results("a"), got)

	_, ok = c.Get("ban", 4)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size(), "stale entry is dropped")
}

func TestQueryCache_TTL(t *testing.T) {
	c := NewQueryCache(10, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Put("q", 1, results("a"))
	now = now.Add(2 * time.Minute)

	_, ok := c.Get("q", 1)
	assert.False(t, ok)
}

func TestQueryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewQueryCache(2, time.Minute)

	c.Put("a", 1, results("a"))
	c.Put("b", 1, results("b"))
	_, _ = c.Get("a", 1)
	c.Put("c", 1, results("c"))

	_, okA := c.Get("a", 1)
	_, okB := c.Get("b", 1)
	_, okC := c.Get("c", 1)
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
}

func TestQueryCache_Invalidate(t *testing.T) {
	c := NewQueryCache(0, 0)
	c.Put("a", 1, results("a"))
	c.Put("b", 1, results("b"))

	c.Invalidate()
	assert.Equal(t, 0, c.Size())
	_, ok := c.Get("a", 1)
	assert.False(t, ok)
}
