package classify

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/util/sets"
)

// Group is a labeled bucket of documents along one axis.
type Group struct {
	Key     string          // normalized label; doubles as the output directory name
	Title   string          // display title from a description document, else the raw label
	Members []docs.Document // ordered by title, then filename
}

// Grouping is the complete, ordered set of groups for one axis.
type Grouping struct {
	Axis   string
	Groups []*Group // ordered by key
	byKey  map[string]*Group
}

// Lookup returns the group for key.
func (g *Grouping) Lookup(key string) (*Group, bool) {
	grp, ok := g.byKey[key]
	return grp, ok
}

// Keys returns group keys in order.
func (g *Grouping) Keys() []string {
	out := make([]string, 0, len(g.Groups))
	for _, grp := range g.Groups {
		out = append(out, grp.Key)
	}
	return out
}

// Result holds both axis groupings for one document set.
type Result struct {
	Documents  []docs.Document
	Categories *Grouping
	Versions   *Grouping
	// category and version axes used to build the groupings, kept for sub-grouping
	categoryAxis Axis
	versionAxis  Axis
}

// Opposite returns the axis a grouping is nested by.
func (r *Result) Opposite(axis string) Axis {
	if axis == AxisCategories {
		return r.versionAxis
	}
	return r.categoryAxis
}

// AxisFor returns the axis definition for name.
func (r *Result) AxisFor(axis string) Axis {
	if axis == AxisCategories {
		return r.categoryAxis
	}
	return r.versionAxis
}

// Classify groups documents along the category and version axes.
func Classify(documents []docs.Document, categories, versions Axis) *Result {
	res := &Result{
		Documents:    documents,
		Categories:   Build(documents, categories),
		Versions:     Build(documents, versions),
		categoryAxis: categories,
		versionAxis:  versions,
	}
	slog.Info("Classified feature documents",
		logfields.Count(len(documents)),
		slog.Int("categories", len(res.Categories.Groups)),
		slog.Int("versions", len(res.Versions.Groups)))
	return res
}

// Build groups documents along a single axis. A document appears at most
// once per group even when several of its labels normalize to the same key.
func Build(documents []docs.Document, axis Axis) *Grouping {
	byKey := make(map[string]*Group)
	members := make(map[string]sets.Set[string])

	for _, doc := range documents {
		for _, label := range axis.Labels(doc) {
			key := axis.Key(label)
			grp, ok := byKey[key]
			if !ok {
				grp = &Group{Key: key, Title: label}
				byKey[key] = grp
				members[key] = sets.New[string]()
			} else if label < grp.Title {
				// untitled folded groups show their smallest raw spelling
				grp.Title = label
			}
			if members[key].Has(doc.Name) {
				continue
			}
			members[key].Add(doc.Name)
			grp.Members = append(grp.Members, doc)
		}
	}

	groups := make([]*Group, 0, len(byKey))
	for key, grp := range byKey {
		if title, ok := axis.Titles[key]; ok {
			grp.Title = title
		}
		slices.SortFunc(grp.Members, compareDocuments)
		groups = append(groups, grp)
	}
	slices.SortFunc(groups, func(a, b *Group) int { return cmp.Compare(a.Key, b.Key) })

	return &Grouping{Axis: axis.Name, Groups: groups, byKey: byKey}
}

// Split partitions a group's members along another axis.
func (g *Group) Split(axis Axis) []*Group {
	return Build(g.Members, axis).Groups
}

func compareDocuments(a, b docs.Document) int {
	if c := cmp.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
