// Package loader orchestrates one compilation: page map build, locale
// filtering, localized-entry analysis, code generation, and content dumping.
package loader

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pagemill/pagemill/internal/analyzer"
	"github.com/pagemill/pagemill/internal/codegen"
	"github.com/pagemill/pagemill/internal/config"
	"github.com/pagemill/pagemill/internal/contentdump"
	"github.com/pagemill/pagemill/internal/errors"
	"github.com/pagemill/pagemill/internal/frontmatter"
	"github.com/pagemill/pagemill/internal/gitinfo"
	"github.com/pagemill/pagemill/internal/locale"
	"github.com/pagemill/pagemill/internal/logfields"
	"github.com/pagemill/pagemill/internal/markdown"
	"github.com/pagemill/pagemill/internal/metrics"
	"github.com/pagemill/pagemill/internal/pagemap"
	"github.com/pagemill/pagemill/internal/pagesdir"
)

// OutputKind discriminates what one invocation generated.
type OutputKind string

const (
	OutputPage   OutputKind = "page"
	OutputRouter OutputKind = "router"
)

// Output is the generated module for one source file.
type Output struct {
	Kind   OutputKind
	Source string
	Route  string
	Title  string
}

// Loader runs compilations against one working directory.
type Loader struct {
	cfg     *config.Config
	workDir string
	dump    *contentdump.Context
	rec     metrics.Recorder
}

// Option configures a Loader.
type Option func(*Loader)

// WithDump attaches a content dump context; without one, indexing is skipped.
func WithDump(d *contentdump.Context) Option {
	return func(l *Loader) { l.dump = d }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(l *Loader) { l.rec = r }
}

// New creates a Loader for workDir.
func New(cfg *config.Config, workDir string, opts ...Option) *Loader {
	l := &Loader{cfg: cfg, workDir: workDir, rec: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile compiles one source file. raw marks sub-entries that bypass both
// the locale filter and the router-entry path. Failures abort the file's
// compilation with no partial output.
func (l *Loader) LoadFile(ctx context.Context, filePath string, raw bool) (*Output, error) {
	started := time.Now()
	out, err := l.loadFile(ctx, filePath, raw)
	l.rec.ObserveLoadDuration(time.Since(started))
	if err != nil {
		l.rec.IncLoadOutcome(metrics.OutcomeFailed)
		if errors.IsCategory(err, errors.CategoryParse) {
			l.rec.IncMetaParseFailure()
		}
		return nil, err
	}
	l.rec.IncLoadOutcome(metrics.OutcomeLabel(out.Kind))
	return out, nil
}

func (l *Loader) loadFile(ctx context.Context, filePath string, raw bool) (*Output, error) {
	pagesRoot, err := pagesdir.Locate(l.workDir)
	if err != nil {
		return nil, err
	}

	fileLocale, _ := locale.FromFileName(filepath.Base(filePath))
	localized := len(l.cfg.Locales) > 0

	// A locale group member replaces its whole compilation with a router
	// entry dispatching between the group's variants; the page map is not
	// built at all on this path.
	if localized && fileLocale != "" && !raw {
		return l.buildRouterEntry(filePath)
	}

	builder := pagemap.NewBuilder(pagesRoot,
		pagemap.WithContentExtensions(l.cfg.Extensions...))
	res, err := builder.Build(ctx, filePath)
	if err != nil {
		return nil, err
	}

	children := res.Children
	if localized && !raw {
		target := fileLocale
		if target == "" {
			target = l.cfg.DefaultLocale
		}
		children = pagemap.FilterByLocale(children, target, l.cfg.DefaultLocale)
	}
	l.rec.AddPagesScanned(countPages(children))

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.ReadFailed(filePath, err)
	}
	fm, body, err := frontmatter.Parse(content)
	if err != nil {
		return nil, errors.FrontMatterParse(filePath, err)
	}

	var timestamp int64
	if l.cfg.GitInfo {
		if ts, ok := gitinfo.LastModified(filePath); ok {
			timestamp = ts.UnixMilli()
		}
	}

	if l.dump != nil {
		rendered, err := markdown.Render(body)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryParse, errors.SeverityFatal, "render failed").
				WithContext("path", filePath)
		}
		err = l.dump.Dump(ctx, contentdump.IndexedPage{
			Path:    filePath,
			Route:   res.ActiveRoute,
			Locale:  fileLocale,
			Title:   res.ActiveRouteTitle,
			Content: contentdump.PlainText(rendered),
		})
		if err != nil {
			return nil, err
		}
		l.rec.IncDumpWrite()
	}

	source, err := l.renderPageModule(res, children, fm, timestamp)
	if err != nil {
		return nil, err
	}
	return &Output{
		Kind:   OutputPage,
		Source: source,
		Route:  res.ActiveRoute,
		Title:  res.ActiveRouteTitle,
	}, nil
}

func (l *Loader) renderPageModule(res *pagemap.Result, children []pagemap.Node, fm map[string]any, timestamp int64) (string, error) {
	mapJSON, err := json.Marshal(children)
	if err != nil {
		return "", errors.CodegenFailed("page", err)
	}
	routeJSON, err := json.Marshal(res.ActiveRoute)
	if err != nil {
		return "", errors.CodegenFailed("page", err)
	}
	titleJSON, err := json.Marshal(res.ActiveRouteTitle)
	if err != nil {
		return "", errors.CodegenFailed("page", err)
	}
	if fm == nil {
		fm = map[string]any{}
	}
	fmJSON, err := json.Marshal(fm)
	if err != nil {
		return "", errors.CodegenFailed("page", err)
	}
	return codegen.RenderPage(codegen.PageModule{
		LayoutImport: l.cfg.LayoutImport,
		Route:        string(routeJSON),
		Title:        string(titleJSON),
		FrontMatter:  string(fmJSON),
		PageMap:      string(mapJSON),
		Timestamp:    timestamp,
	})
}

func (l *Loader) buildRouterEntry(filePath string) (*Output, error) {
	res, err := analyzer.Analyze(filePath, l.cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}
	entries := make([]codegen.RouterEntry, len(res.Files))
	for i, f := range res.Files {
		entries[i] = codegen.RouterEntry{Name: f.Name, Locale: f.Locale, SSG: f.SSG, SSR: f.SSR}
	}
	source, err := codegen.RenderRouter(codegen.RouterModule{
		Entries:      entries,
		DefaultIndex: res.DefaultIndex,
		SSG:          res.SSG,
		SSR:          res.SSR,
	})
	if err != nil {
		return nil, err
	}
	return &Output{Kind: OutputRouter, Source: source}, nil
}

// BuildAll compiles every content file under the pages root and writes the
// generated modules to the output directory, mirroring the source layout.
func (l *Loader) BuildAll(ctx context.Context) error {
	pagesRoot, err := pagesdir.Locate(l.workDir)
	if err != nil {
		return err
	}

	exts := make(map[string]struct{}, len(l.cfg.Extensions))
	for _, e := range l.cfg.Extensions {
		exts[e] = struct{}{}
	}

	count := 0
	err = filepath.WalkDir(pagesRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := exts[filepath.Ext(d.Name())]; !ok {
			return nil
		}
		out, err := l.LoadFile(ctx, path, false)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(pagesRoot, path)
		if err != nil {
			return err
		}
		target := filepath.Join(l.cfg.OutputDir, rel+".mjs")
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(out.Source), 0o644); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info("Build completed", logfields.Pages(count), logfields.Path(l.cfg.OutputDir))
	return nil
}

func countPages(nodes []pagemap.Node) int {
	n := 0
	for _, node := range nodes {
		switch v := node.(type) {
		case *pagemap.Page:
			n++
		case *pagemap.Folder:
			n += countPages(v.Children)
		}
	}
	return n
}
