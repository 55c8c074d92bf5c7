package pagemap

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pagemill/pagemill/internal/errors"
	"github.com/pagemill/pagemill/internal/frontmatter"
	"github.com/pagemill/pagemill/internal/locale"
)

const defaultConcurrency = 8

// apiRoute is the synthetic Next.js API mount point; nothing under it is a
// navigable page, so it never appears in the map.
const apiRoute = "/api"

// Builder scans a pages root into a page map tree.
type Builder struct {
	root        string
	contentExts map[string]struct{}
	concurrency int
}

// Option configures a Builder.
type Option func(*Builder)

// WithContentExtensions overrides the recognized content file extensions
// (defaults to .md and .mdx). Extensions must include the leading dot.
func WithContentExtensions(exts ...string) Option {
	return func(b *Builder) {
		b.contentExts = make(map[string]struct{}, len(exts))
		for _, e := range exts {
			b.contentExts[e] = struct{}{}
		}
	}
}

// WithConcurrency bounds the per-directory fan-out.
func WithConcurrency(n int) Option {
	return func(b *Builder) { b.concurrency = n }
}

// NewBuilder creates a Builder rooted at pagesRoot.
func NewBuilder(pagesRoot string, opts ...Option) *Builder {
	b := &Builder{
		root:        filepath.Clean(pagesRoot),
		contentExts: map[string]struct{}{".md": {}, ".mdx": {}},
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result is the outcome of one build: the tree root's children, the route of
// the file under compilation, and that route's resolved display title.
type Result struct {
	Children         []Node
	ActiveRoute      string
	ActiveRouteTitle string
}

// buildState tracks the single active route across the concurrent scan.
type buildState struct {
	current      string
	activeLocale string

	mu          sync.Mutex
	activeRoute string
	activeName  string
	activeTitle string
	found       bool
}

func (s *buildState) setActive(route, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.found {
		return
	}
	s.found = true
	s.activeRoute = route
	s.activeName = name
	s.activeTitle = name
}

func (s *buildState) setTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTitle = title
}

// Build scans the pages root and returns the page map together with the
// active route and title for currentFilePath.
//
// Entries within one directory level are processed concurrently with an
// order-preserving join; subdirectory recursion completes before the level
// returns. Any entry failure aborts the whole build: a partially built map
// would silently mis-render navigation downstream.
func (b *Builder) Build(ctx context.Context, currentFilePath string) (*Result, error) {
	current, err := filepath.Abs(currentFilePath)
	if err != nil {
		return nil, errors.ReadFailed(currentFilePath, err)
	}
	root, err := filepath.Abs(b.root)
	if err != nil {
		return nil, errors.ListFailed(b.root, err)
	}

	activeLocale, _ := locale.FromFileName(filepath.Base(current))
	st := &buildState{current: current, activeLocale: activeLocale}

	children, err := b.scanDir(ctx, root, "", st)
	if err != nil {
		return nil, err
	}
	return &Result{
		Children:         children,
		ActiveRoute:      st.activeRoute,
		ActiveRouteTitle: st.activeTitle,
	}, nil
}

// entryOutcome is the typed result of classifying one directory entry.
// Skipped entries carry a nil node; the merge drops them in listing order, so
// every entry's fate is explicit rather than inferred from nil checks.
type entryOutcome struct {
	node   Node
	active bool
}

var skipEntry = entryOutcome{}

func (b *Builder) scanDir(ctx context.Context, dir, route string, st *buildState) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, errors.SeverityFatal, "build canceled")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.ListFailed(dir, err)
	}

	outcomes := runOrdered(entries, b.concurrency, func(e os.DirEntry) (entryOutcome, error) {
		return b.processEntry(ctx, dir, route, e, st)
	})

	var nodes []Node
	var pick metaPick
	activeName := ""
	for _, oc := range outcomes {
		if oc.err != nil {
			return nil, oc.err
		}
		out := oc.value
		if out.node == nil {
			continue
		}
		nodes = append(nodes, out.node)
		if m, ok := out.node.(*Meta); ok {
			pick.consider(m, st.activeLocale)
		}
		if out.active {
			activeName = out.node.NodeName()
		}
	}

	// The active page's title comes from its own level's merged metadata.
	if activeName != "" && pick.picked() {
		st.setTitle(resolveTitle(pick.data, activeName))
	}
	return nodes, nil
}

func (b *Builder) processEntry(ctx context.Context, dir, parentRoute string, e os.DirEntry, st *buildState) (entryOutcome, error) {
	name := e.Name()
	path := filepath.Join(dir, name)

	if e.IsDir() {
		childRoute := joinRoute(parentRoute, name)
		if childRoute == apiRoute {
			return skipEntry, nil
		}
		children, err := b.scanDir(ctx, path, childRoute, st)
		if err != nil {
			return skipEntry, err
		}
		if len(children) == 0 {
			return skipEntry, nil
		}
		return entryOutcome{node: &Folder{Name: name, Route: childRoute, Children: children}}, nil
	}

	if tag, ok := MatchMetaFile(name); ok {
		raw, err := os.ReadFile(path)
		if err != nil {
			return skipEntry, errors.ReadFailed(path, err)
		}
		var data map[string]any
		if err := json.Unmarshal(raw, &data); err != nil {
			return skipEntry, errors.MetaParse(path, err)
		}
		return entryOutcome{node: &Meta{Name: MetaFileName, Locale: tag, Data: data}}, nil
	}

	ext := filepath.Ext(name)
	if _, ok := b.contentExts[ext]; !ok {
		return skipEntry, nil
	}

	tag, _ := locale.FromFileName(name)
	pageName := locale.StripTag(strings.TrimSuffix(name, ext), tag)
	route := joinRoute(parentRoute, pageName)
	if route == apiRoute {
		return skipEntry, nil
	}

	active := path == st.current
	if active {
		st.setActive(route, pageName)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return skipEntry, errors.ReadFailed(path, err)
	}
	fm, _, err := frontmatter.Parse(raw)
	if err != nil {
		return skipEntry, errors.FrontMatterParse(path, err)
	}

	page := &Page{Name: pageName, Route: route, Locale: tag}
	if len(fm) > 0 {
		page.FrontMatter = fm
	}
	return entryOutcome{node: page, active: active}, nil
}

// joinRoute appends one path segment to a parent route. An "index" base name
// contributes an empty segment, so an index file shares its folder's route.
func joinRoute(parent, segment string) string {
	if segment == "index" || segment == "" {
		if parent == "" {
			return "/"
		}
		return parent
	}
	return parent + "/" + segment
}
