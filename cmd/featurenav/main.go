package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/cmd/featurenav/commands"
	dberrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/foundation/errors"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser, err := kong.New(cli,
		kong.Name("featurenav"),
		kong.Description("Generate Antora category and version navigation from feature documents."),
		kong.Vars{"version": version.String()},
	)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage errors go to stderr with status 1.
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			parser.Stdout = os.Stderr
			_ = parseErr.Context.PrintUsage(true)
		}
		_, _ = fmt.Fprintf(os.Stderr, "featurenav: error: %v\n", err)
		os.Exit(1)
	}

	err = kctx.Run(&commands.Global{Logger: slog.Default(), Stdout: os.Stdout}, cli)
	dberrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
