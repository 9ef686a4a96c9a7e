package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/config"
	dberrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/foundation/errors"
)

// GenerateCmd implements the default 'generate' command.
type GenerateCmd struct {
	Root   string `arg:"" name:"root" help:"Project root directory" type:"existingdir"`
	Layout string `help:"Navigation layout (flat or nested); overrides the configuration"`
	NoFold bool   `name:"no-fold" help:"Keep category labels case-sensitive"`
	DryRun bool   `name:"dry-run" help:"Log the files that would be written without writing them"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(g.Root, root.Config)
	if err != nil {
		return err
	}
	if err := applyNavigationOverrides(cfg, g.Layout, g.NoFold); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = newGenerator(g.Root, cfg, g.DryRun).run(ctx)
	return err
}

// applyNavigationOverrides applies command-line navigation flags to cfg.
func applyNavigationOverrides(cfg *config.Config, layout string, noFold bool) error {
	if layout != "" {
		l := config.NormalizeLayout(layout)
		if l == "" {
			return dberrors.UsageError("invalid --layout, expected flat or nested").
				WithContext("layout", layout).
				Build()
		}
		cfg.Navigation.Layout = l
	}
	if noFold {
		fold := false
		cfg.Navigation.FoldCategories = &fold
	}
	return nil
}
