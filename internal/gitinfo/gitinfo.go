// Package gitinfo resolves last-commit timestamps for content files when the
// pages directory lives inside a git repository.
package gitinfo

import (
	"log/slog"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"

	"github.com/pagemill/pagemill/internal/logfields"
)

// LastModified returns the committer time of the most recent commit touching
// file. The lookup is an enrichment, not part of the page map contract: any
// failure (no repository, file never committed) reports ok=false and the
// caller proceeds without a timestamp.
func LastModified(file string) (time.Time, bool) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return time.Time{}, false
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return time.Time{}, false
	}

	wt, err := repo.Worktree()
	if err != nil {
		return time.Time{}, false
	}
	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return time.Time{}, false
	}
	rel = filepath.ToSlash(rel)

	iter, err := repo.Log(&git.LogOptions{FileName: &rel, Order: git.LogOrderCommitterTime})
	if err != nil {
		slog.Debug("git log failed", logfields.Path(file), logfields.Error(err))
		return time.Time{}, false
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		return time.Time{}, false
	}
	return commit.Committer.When, true
}
