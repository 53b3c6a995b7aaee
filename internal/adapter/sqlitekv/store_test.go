package sqlitekv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSetRemove(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", "documents.sqlite"))
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get("uploadedFiles")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("uploadedFiles", "[]"))
	require.NoError(t, s.Set("uploadedFiles", `[{"id":"x"}]`))

	value, ok, err := s.Get("uploadedFiles")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, value)

	require.NoError(t, s.Remove("uploadedFiles"))
	require.NoError(t, s.Remove("uploadedFiles"))

	_, ok, err = s.Get("uploadedFiles")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "documents.sqlite")

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Close())

	s, err = NewStore(path)
	require.NoError(t, err)
	defer s.Close()

	value, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
	assert.Equal(t, path, s.Path())
}
