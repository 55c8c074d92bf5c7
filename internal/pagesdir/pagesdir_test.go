package pagesdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagemill/pagemill/internal/errors"
)

func TestLocate_PrefersTopLevelPages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "pages"), 0o755))

	got, err := Locate(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "pages"), got)
}

func TestLocate_FallsBackToSrcPages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "pages"), 0o755))

	got, err := Locate(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "src", "pages"), got)
}

func TestLocate_NeitherExists_ErrorNamesBothPaths(t *testing.T) {
	dir := t.TempDir()

	_, err := Locate(dir)
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
	require.Contains(t, err.Error(), filepath.Join(dir, "pages"))
	require.Contains(t, err.Error(), filepath.Join(dir, "src", "pages"))

	le := err.(*errors.LoaderError)
	probed := le.Context["probed"].([]string)
	require.Len(t, probed, 2)
	require.Equal(t, filepath.Join(dir, "pages"), probed[0])
	require.Equal(t, filepath.Join(dir, "src", "pages"), probed[1])
}

func TestLocate_PlainFileNamedPagesIsIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages"), []byte("x"), 0o644))

	_, err := Locate(dir)
	require.Error(t, err)
}
