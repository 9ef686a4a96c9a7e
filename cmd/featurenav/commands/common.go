package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/build"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/config"
	dberrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/foundation/errors"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/metrics"
)

// Global carries process-wide dependencies into subcommands.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: <root>/featurenav.yaml)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate category and version navigation, index pages, stubs and partials"`
	Discover DiscoverCmd `cmd:"" help:"Scan and classify feature documents without writing anything"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever feature documents change"`
	Init     InitCmd     `cmd:"" help:"Write a commented featurenav.yaml"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads configuration for the project at root.
func loadConfig(root, configPath string) (*config.Config, error) {
	cfg, err := config.Load(root, configPath)
	if err != nil {
		return nil, dberrors.ConfigError("failed to load configuration").
			WithCause(err).
			WithContext("root", root).
			Build()
	}
	return cfg, nil
}

// generator runs the build service and exports metrics after every run.
type generator struct {
	root     string
	cfg      *config.Config
	dryRun   bool
	svc      *build.DefaultBuildService
	prom     *metrics.PrometheusRecorder
	textfile string
}

func newGenerator(root string, cfg *config.Config, dryRun bool) *generator {
	g := &generator{root: root, cfg: cfg, dryRun: dryRun, svc: build.NewBuildService()}
	if cfg.Metrics.Textfile != "" {
		g.prom = metrics.NewPrometheusRecorder(nil)
		g.svc.WithRecorder(g.prom)
		g.textfile = cfg.Metrics.Textfile
		if !filepath.IsAbs(g.textfile) {
			g.textfile = filepath.Join(root, g.textfile)
		}
	}
	return g
}

func (g *generator) run(ctx context.Context) (*build.BuildResult, error) {
	result, err := g.svc.Run(ctx, build.BuildRequest{Root: g.root, Config: g.cfg, DryRun: g.dryRun})
	if g.prom != nil {
		if werr := g.prom.WriteTextfile(g.textfile); werr != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(g.textfile), logfields.Error(werr))
		}
	}
	return result, err
}
