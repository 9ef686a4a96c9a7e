package commands

import (
	"fmt"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/config"
	dberrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Root  string `arg:"" name:"root" help:"Project root directory" type:"existingdir"`
	Force bool   `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(g *Global, _ *CLI) error {
	path, err := config.Init(i.Root, i.Force)
	if err != nil {
		return dberrors.ConfigError("initialization failed").WithCause(err).Build()
	}
	_, _ = fmt.Fprintf(g.stdout(), "Wrote %s\n", path)
	return nil
}
