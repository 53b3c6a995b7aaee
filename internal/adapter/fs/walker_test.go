package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		path := filepath.Join(root, filepath.FromSlash(r))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(r), 0644))
	}
}

func rel(t *testing.T, root string, files []string) []string {
	t.Helper()
	root, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	out := make([]string, len(files))
	for i, f := range files {
		f, err := filepath.EvalSymlinks(f)
		require.NoError(t, err)
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(r)
	}
	return out
}

func TestWalker_Walk(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.txt", "docs/b.txt", "docs/c.pdf", ".git/config", "node_modules/x/y.txt")

	w := NewWalker([]string{"**/*.txt", "**/*.pdf"}, []string{"**/.git/**", "node_modules/**"})
	files, err := w.Walk(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "docs/b.txt", "docs/c.pdf"}, rel(t, root, files))
}

func TestWalker_ExpandMixed(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "one.txt", "two.txt", "sub/three.txt", "sub/skip.log", "sub/deep/four.txt")

	w := NewWalker([]string{"**/*.txt"}, []string{"**/deep/**"})
	files, err := w.Expand([]string{
		filepath.Join(root, "one.txt"),
		filepath.Join(root, "one.txt"),
		filepath.Join(root, "sub"),
		filepath.Join(root, "*.txt"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"one.txt", "sub/three.txt", "two.txt"}, rel(t, root, files))
}

func TestWalker_ExpandKeepsArgumentOrder(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "z.txt", "a.txt", "m/b.txt", "m/a.txt")

	w := NewWalker([]string{"**/*.txt"}, nil)
	files, err := w.Expand([]string{
		filepath.Join(root, "z.txt"),
		filepath.Join(root, "m"),
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "z.txt"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"z.txt", "m/a.txt", "m/b.txt", "a.txt"}, rel(t, root, files))
}

func TestWalker_ExpandGlobDoubleStar(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a/x.txt", "a/b/y.txt", "a/b/z.pdf")

	files, err := NewWalker(nil, nil).Expand([]string{filepath.Join(root, "**", "*.txt")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b/y.txt", "a/x.txt"}, rel(t, root, files))
}

func TestWalker_ExpandNoMatch(t *testing.T) {
	files, err := NewWalker(nil, nil).Expand([]string{filepath.Join(t.TempDir(), "*.none")})
	require.NoError(t, err)
	assert.Empty(t, files)
}
