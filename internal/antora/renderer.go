package antora

import (
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/classify"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/config"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
)

// Module locates one generated Antora module.
type Module struct {
	Name string // Antora module name, e.g. "categories"
	Dir  string // absolute module directory
}

// NewModule returns the module named name below docsDir.
func NewModule(docsDir, name string) Module {
	return Module{Name: name, Dir: filepath.Join(docsDir, name)}
}

// PagesDir is where index pages and stubs live.
func (m Module) PagesDir() string { return filepath.Join(m.Dir, "pages") }

// NavFile is the module's navigation file.
func (m Module) NavFile() string { return filepath.Join(m.Dir, "nav.adoc") }

// Stub is a generated include page for one document in one group.
type Stub struct {
	Module   string        // module name
	Page     string        // path below pages/, slash separated
	Document docs.Document // source document
}

// Report summarizes one axis render.
type Report struct {
	Axis           string
	Groups         int
	IndexCreated   int
	IndexPreserved int
	Stubs          []Stub
}

// Renderer writes navigation, index pages and include stubs for an axis.
type Renderer struct {
	layout         config.Layout
	featuresModule string
	writer         FileWriter
}

// NewRenderer creates a renderer. A nil writer writes to the local filesystem.
func NewRenderer(layout config.Layout, featuresModule string, writer FileWriter) *Renderer {
	if writer == nil {
		writer = OSWriter{}
	}
	return &Renderer{layout: layout, featuresModule: featuresModule, writer: writer}
}

// RenderAxis emits every file for grouping into mod. The navigation file and
// the directory tree are produced from the same walk over grouping so their
// structure cannot diverge. opposite is only consulted by the nested layout.
func (r *Renderer) RenderAxis(mod Module, grouping *classify.Grouping, opposite classify.Axis) (*Report, error) {
	report := &Report{Axis: grouping.Axis, Groups: len(grouping.Groups)}

	var nav strings.Builder
	nav.WriteString(bullet(1, localXref(indexPage)))

	for _, grp := range grouping.Groups {
		slog.Info("🔖 Generating", logfields.Axis(grouping.Axis), logfields.Group(grp.Key))
		if err := r.index(mod, report, grp.Title, grp.Key); err != nil {
			return nil, err
		}
		nav.WriteString(bullet(2, localXref(grp.Key, indexPage)))

		if r.layout != config.LayoutNested {
			if err := r.members(mod, report, &nav, 3, grp.Members, grp.Key); err != nil {
				return nil, err
			}
			continue
		}

		for _, sub := range grp.Split(opposite) {
			if err := r.index(mod, report, sub.Title, grp.Key, sub.Key); err != nil {
				return nil, err
			}
			nav.WriteString(bullet(3, localXref(grp.Key, sub.Key, indexPage)))
			if err := r.members(mod, report, &nav, 4, sub.Members, grp.Key, sub.Key); err != nil {
				return nil, err
			}
		}
	}

	if err := r.writer.WriteFile(mod.NavFile(), []byte(nav.String())); err != nil {
		return nil, err
	}
	slog.Info("Navigation written",
		logfields.Axis(grouping.Axis),
		logfields.Path(mod.NavFile()),
		logfields.Layout(string(r.layout)),
		slog.Int("groups", report.Groups),
		slog.Int("stubs", len(report.Stubs)))
	return report, nil
}

// index creates the landing page for a group unless one already exists.
func (r *Renderer) index(mod Module, report *Report, title string, dirs ...string) error {
	parts := append([]string{mod.PagesDir()}, dirs...)
	p := filepath.Join(append(parts, indexPage)...)
	created, err := r.writer.CreateIfMissing(p, []byte("= "+title+LineSeparator))
	if err != nil {
		return err
	}
	if created {
		report.IndexCreated++
		slog.Debug("Created index page", logfields.Path(p))
	} else {
		report.IndexPreserved++
	}
	return nil
}

// members writes one stub per document and the matching navigation entries.
func (r *Renderer) members(mod Module, report *Report, nav *strings.Builder, depth int, members []docs.Document, dirs ...string) error {
	for _, doc := range members {
		page := path.Join(append(dirs, doc.Name)...)
		nav.WriteString(bullet(depth, localXref(page)))

		slog.Debug("📝 Generating", logfields.Axis(mod.Name), logfields.File(page))
		target := filepath.Join(mod.PagesDir(), filepath.FromSlash(page))
		if err := r.writer.WriteFile(target, []byte(Include(r.featuresModule, doc.Name)+LineSeparator)); err != nil {
			return err
		}
		report.Stubs = append(report.Stubs, Stub{Module: mod.Name, Page: page, Document: doc})
	}
	return nil
}
