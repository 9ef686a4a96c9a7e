package classify

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs"
)

// Axis names.
const (
	AxisCategories = "categories"
	AxisVersions   = "versions"
)

// Axis parameterizes grouping along one dimension.
type Axis struct {
	// Name identifies the axis in logs and output module names.
	Name string
	// Labels returns the raw labels a document is filed under.
	Labels func(docs.Document) []string
	// Normalize maps a raw label to its group key. Nil keeps labels unchanged.
	Normalize func(string) string
	// Titles maps group keys to display titles from description documents.
	Titles map[string]string
}

// Key normalizes a raw label into a group key.
func (a Axis) Key(label string) string {
	if a.Normalize == nil {
		return label
	}
	return a.Normalize(label)
}

// CategoryAxis files a document under every one of its categories.
func CategoryAxis(fold bool, titles map[string]string) Axis {
	a := Axis{
		Name:   AxisCategories,
		Labels: func(d docs.Document) []string { return d.Categories },
		Titles: titles,
	}
	if fold {
		a.Normalize = FoldLabel
	}
	return a
}

// VersionAxis files a document under its single version. Versions are never case-normalized.
func VersionAxis(titles map[string]string) Axis {
	return Axis{
		Name:   AxisVersions,
		Labels: func(d docs.Document) []string { return []string{d.Version} },
		Titles: titles,
	}
}

// FoldLabel lower-cases a label with Unicode rules.
func FoldLabel(label string) string {
	return cases.Lower(language.Und).String(label)
}
