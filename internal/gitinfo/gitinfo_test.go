package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func TestLastModified_OutsideRepository(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.mdx")
	require.NoError(t, os.WriteFile(file, []byte("# x\n"), 0o644))

	_, ok := LastModified(file)
	require.False(t, ok)
}

func TestLastModified_ReturnsCommitTime(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	file := filepath.Join(dir, "pages", "intro.mdx")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte("# Intro\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("pages/intro.mdx")
	require.NoError(t, err)

	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err = wt.Commit("add intro", &git.CommitOptions{
		Author:    &object.Signature{Name: "t", Email: "t@example.com", When: when},
		Committer: &object.Signature{Name: "t", Email: "t@example.com", When: when},
	})
	require.NoError(t, err)

	got, ok := LastModified(file)
	require.True(t, ok)
	require.True(t, got.Equal(when))
}

func TestLastModified_UncommittedFile(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	file := filepath.Join(dir, "new.mdx")
	require.NoError(t, os.WriteFile(file, []byte("# new\n"), 0o644))

	_, ok := LastModified(file)
	require.False(t, ok)
}
