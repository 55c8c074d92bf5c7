package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/pagemill/pagemill/internal/analyzer"
	"github.com/pagemill/pagemill/internal/config"
	"github.com/pagemill/pagemill/internal/contentdump"
	"github.com/pagemill/pagemill/internal/loader"
	"github.com/pagemill/pagemill/internal/logfields"
	"github.com/pagemill/pagemill/internal/metrics"
	"github.com/pagemill/pagemill/internal/pagesdir"
	"github.com/pagemill/pagemill/internal/watch"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"pagemill.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	Dir     string `short:"C" help:"Working directory containing the pages root" default:"."`

	Build struct{} `cmd:"" help:"Compile every content file into generated modules"`

	Map struct {
		File string `arg:"" help:"Content file to compile"`
		Raw  bool   `help:"Treat the file as a raw sub-entry (skip locale handling)"`
	} `cmd:"" help:"Print the generated module for one file"`

	Analyze struct {
		File string `arg:"" help:"Content file whose locale group to inspect"`
	} `cmd:"" help:"Inspect localized siblings for data-fetching hooks"`

	Watch struct {
		Reindex time.Duration `help:"Interval for the periodic full reindex" default:"15m"`
	} `cmd:"" help:"Watch the pages root and rebuild on change"`
}

func main() {
	kctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fatal(err)
	}

	var dump *contentdump.Context
	if cfg.Index.Enabled {
		dump, err = openDump(cfg)
		if err != nil {
			fatal(err)
		}
	}

	rec, handler := newRecorder(cfg)
	l := loader.New(cfg, CLI.Dir, loader.WithDump(dump), loader.WithMetrics(rec))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch kctx.Command() {
	case "build":
		err = l.BuildAll(ctx)

	case "map <file>":
		var out *loader.Output
		out, err = l.LoadFile(ctx, CLI.Map.File, CLI.Map.Raw)
		if err == nil {
			fmt.Print(out.Source)
		}

	case "analyze <file>":
		var res *analyzer.Result
		res, err = analyzer.Analyze(CLI.Analyze.File, cfg.DefaultLocale)
		if err == nil {
			err = json.NewEncoder(os.Stdout).Encode(map[string]any{
				"ssr":          res.SSR,
				"ssg":          res.SSG,
				"files":        res.Files,
				"defaultIndex": res.DefaultIndex,
			})
		}

	case "watch":
		if handler != nil && cfg.Metrics.Enabled {
			go serveMetrics(cfg.Metrics.Listen, handler)
		}
		var pagesRoot string
		pagesRoot, err = pagesdir.Locate(CLI.Dir)
		if err == nil {
			w := watch.New(l, dump, pagesRoot, cfg.Extensions, CLI.Watch.Reindex)
			err = w.Run(ctx)
		}

	default:
		err = fmt.Errorf("unknown command: %s", kctx.Command())
	}

	if err != nil {
		fatal(err)
	}
}

func openDump(cfg *config.Config) (*contentdump.Context, error) {
	if dir := filepath.Dir(cfg.Index.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	idx, err := contentdump.NewIndex(cfg.Index.Path)
	if err != nil {
		return nil, err
	}
	var pub *contentdump.Publisher
	if cfg.Index.NATSURL != "" {
		pub, err = contentdump.NewPublisher(cfg.Index.NATSURL, cfg.Index.Subject)
		if err != nil {
			return nil, err
		}
	}
	return contentdump.NewContext(idx, pub), nil
}

func newRecorder(cfg *config.Config) (metrics.Recorder, http.Handler) {
	if !cfg.Metrics.Enabled {
		return metrics.NoopRecorder{}, nil
	}
	pr := metrics.NewPrometheusRecorder(nil)
	return pr, pr.Handler()
}

func serveMetrics(listen string, handler http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	slog.Info("Serving metrics", slog.String("listen", listen))
	if err := http.ListenAndServe(listen, mux); err != nil {
		slog.Error("Metrics listener failed", logfields.Error(err))
	}
}

func fatal(err error) {
	slog.Error("pagemill failed", logfields.Error(err))
	os.Exit(1)
}
