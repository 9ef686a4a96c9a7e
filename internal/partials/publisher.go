// Package partials publishes feature documents as Antora partials with their
// summary placeholder expanded into version and category cross-references.
package partials

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/antora"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/util/sets"
)

// ErrPublishFailed wraps every failure while repopulating the partials directory.
var ErrPublishFailed = errors.New("publish partials failed")

// Options configures summary rendering.
type Options struct {
	Placeholder      string
	VersionsModule   string
	CategoriesModule string
	// CategoryKey maps a raw category label to its group key. Nil keeps labels unchanged.
	CategoryKey func(string) string
	DryRun      bool
}

// Publisher rewrites the partials directory from the document set.
type Publisher struct {
	dir    string
	opts   Options
	writer antora.FileWriter
}

// NewPublisher creates a publisher targeting dir.
func NewPublisher(dir string, opts Options) *Publisher {
	var w antora.FileWriter = antora.OSWriter{}
	if opts.DryRun {
		w = antora.DryRunWriter{}
	}
	return &Publisher{dir: dir, opts: opts, writer: w}
}

// Publish deletes the partials directory, recreates it and writes one partial
// per document. The directory is not restored if a later write fails.
func (p *Publisher) Publish(documents []docs.Document) (int, error) {
	if err := p.reset(); err != nil {
		return 0, err
	}

	for _, doc := range documents {
		data, err := os.ReadFile(doc.Path) // #nosec G304 -- path comes from the feature scan
		if err != nil {
			return 0, fmt.Errorf("%w: read %s: %w", ErrPublishFailed, doc.Path, err)
		}
		content := strings.ReplaceAll(string(data), p.opts.Placeholder, p.Summary(doc))
		if err := p.writer.WriteFile(filepath.Join(p.dir, doc.Name), []byte(content)); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrPublishFailed, err)
		}
		slog.Debug("Published partial", logfields.Document(doc.Name))
	}

	slog.Info("Partials published", logfields.Path(p.dir), logfields.Count(len(documents)))
	return len(documents), nil
}

func (p *Publisher) reset() error {
	if p.opts.DryRun {
		slog.Info("Would replace partials directory", logfields.Path(p.dir))
		return nil
	}
	if err := os.RemoveAll(p.dir); err != nil {
		return fmt.Errorf("%w: remove %s: %w", ErrPublishFailed, p.dir, err)
	}
	if err := os.MkdirAll(p.dir, 0o750); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrPublishFailed, p.dir, err)
	}
	return nil
}

// Summary renders the block that replaces the placeholder in doc.
func (p *Publisher) Summary(doc docs.Document) string {
	keys := make([]string, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		if p.opts.CategoryKey != nil {
			c = p.opts.CategoryKey(c)
		}
		keys = append(keys, c)
	}

	refs := make([]string, 0, len(keys))
	for _, k := range sets.Unique(keys) {
		refs = append(refs, antora.IndexXref(p.opts.CategoriesModule, k))
	}

	var b strings.Builder
	b.WriteString("[horizontal]")
	b.WriteString(antora.LineSeparator)
	b.WriteString("Version:: ")
	b.WriteString(antora.IndexXref(p.opts.VersionsModule, doc.Version))
	b.WriteString(antora.LineSeparator)
	b.WriteString("Categories:: ")
	b.WriteString(strings.Join(refs, ", "))
	b.WriteString(antora.LineSeparator)
	return b.String()
}
