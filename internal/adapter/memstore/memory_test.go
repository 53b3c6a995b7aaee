package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Set("a", "1"))
	assert.Equal(t, []string{"a", "b"}, s.Keys())

	value, ok, err := s.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	require.NoError(t, s.Remove("a"))
	require.NoError(t, s.Remove("a"))
	assert.Equal(t, []string{"b"}, s.Keys())
	assert.NoError(t, s.Close())
}
