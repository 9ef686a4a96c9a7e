package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/config"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Root   string `arg:"" name:"root" help:"Project root directory" type:"existingdir"`
	Layout string `help:"Navigation layout (flat or nested); overrides the configuration"`
	NoFold bool   `name:"no-fold" help:"Keep category labels case-sensitive"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(w.Root, root.Config)
	if err != nil {
		return err
	}
	if err := applyNavigationOverrides(cfg, w.Layout, w.NoFold); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchFeatures(ctx, w.Root, cfg)
}

// watchFeatures generates once, then regenerates everything after each
// settled batch of changes below the features directory until ctx ends.
func watchFeatures(ctx context.Context, root string, cfg *config.Config) error {
	gen := newGenerator(root, cfg, false)
	if _, err := gen.run(ctx); err != nil {
		slog.Error("Initial generation failed", logfields.Error(err))
	}

	w, err := watch.New(watch.Config{
		Dir:      filepath.Join(root, cfg.Features.Dir),
		Debounce: cfg.Watch.Debounce,
		OnChange: func(ctx context.Context, changed []string) error {
			slog.Info("Regenerating", logfields.Count(len(changed)))
			_, err := gen.run(ctx)
			return err
		},
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
