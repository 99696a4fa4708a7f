package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("# test"), 0644))
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a.hcl")
	b := filepath.Join(root, "nested", "b.hcl")
	writeFile(t, a)
	writeFile(t, b)
	writeFile(t, filepath.Join(root, "notes.txt"))

	files, err := CollectFiles([]string{root, a}, ".hcl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, files, "directory walk plus a repeated file must be de-duplicated")
}

func TestCollectFiles_Errors(t *testing.T) {
	root := t.TempDir()
	txt := filepath.Join(root, "notes.txt")
	writeFile(t, txt)

	_, err := CollectFiles([]string{filepath.Join(root, "missing")}, ".hcl")
	require.Error(t, err)

	_, err = CollectFiles([]string{txt}, ".hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not have extension")
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}
