// Package watch rebuilds generated modules when content files change and
// periodically reindexes the content dump.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"github.com/pagemill/pagemill/internal/contentdump"
	"github.com/pagemill/pagemill/internal/loader"
	"github.com/pagemill/pagemill/internal/logfields"
)

// Watcher reacts to pages-root changes with per-file loader runs.
type Watcher struct {
	loader    *loader.Loader
	dump      *contentdump.Context
	pagesRoot string
	exts      map[string]struct{}
	reindex   time.Duration
}

// New creates a Watcher over pagesRoot. reindex <= 0 disables the periodic
// full rebuild.
func New(l *loader.Loader, dump *contentdump.Context, pagesRoot string, extensions []string, reindex time.Duration) *Watcher {
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[e] = struct{}{}
	}
	return &Watcher{loader: l, dump: dump, pagesRoot: pagesRoot, exts: exts, reindex: reindex}
}

func (w *Watcher) isContent(name string) bool {
	_, ok := w.exts[filepath.Ext(name)]
	return ok
}

// collectDirs lists pagesRoot and every subdirectory for watch registration.
func collectDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// Run watches until ctx is canceled. Individual file failures are logged and
// watching continues; the fail-fast policy applies per invocation, not to the
// daemon itself.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dirs, err := collectDirs(w.pagesRoot)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		if err := fw.Add(d); err != nil {
			return err
		}
	}

	if w.reindex > 0 {
		sched, err := gocron.NewScheduler()
		if err != nil {
			return err
		}
		_, err = sched.NewJob(
			gocron.DurationJob(w.reindex),
			gocron.NewTask(w.fullReindex, ctx),
			gocron.WithName("full-reindex"),
		)
		if err != nil {
			return err
		}
		sched.Start()
		defer func() { _ = sched.Shutdown() }()
	}

	slog.Info("Watching pages", logfields.Path(w.pagesRoot))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, fw, ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, fw *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}
	if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
		if ev.Op&fsnotify.Create != 0 {
			if err := fw.Add(ev.Name); err != nil {
				slog.Warn("Failed to watch new directory", logfields.Path(ev.Name), logfields.Error(err))
			}
		}
		return
	}
	if !w.isContent(ev.Name) {
		return
	}
	if _, err := w.loader.LoadFile(ctx, ev.Name, false); err != nil {
		slog.Error("Reload failed", logfields.Path(ev.Name), logfields.Error(err))
		return
	}
	slog.Info("Reloaded", logfields.Path(ev.Name))
}

func (w *Watcher) fullReindex(ctx context.Context) {
	if w.dump != nil {
		w.dump.Reset()
	}
	if err := w.loader.BuildAll(ctx); err != nil {
		slog.Error("Scheduled reindex failed", logfields.Error(err))
	}
}
