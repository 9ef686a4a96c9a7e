package docs

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/util/sets"
)

// Document is one classified feature description. Name is its identity.
type Document struct {
	Name         string   // File name, unique across the scanned tree
	Path         string   // Absolute path to the source document
	RelativePath string   // Path relative to the features directory, slash separated
	Version      string   // Raw version label
	Categories   []string // Raw category labels in attribute order, without repeats
	Title        string   // Level-1 heading
}

// Attributes names the attribute lines a feature document must carry.
type Attributes struct {
	Version  string
	Category string
}

// LoadDocument reads path once and extracts every required attribute.
func LoadDocument(path, featuresDir string, attrs Attributes) (Document, error) {
	content, err := readContent(path)
	if err != nil {
		return Document{}, err
	}

	version, ok := FindAttribute(content, attrs.Version)
	if !ok {
		return Document{}, &MissingAttributeError{Attribute: attrs.Version, Path: path}
	}
	if version == "" {
		return Document{}, &MissingAttributeError{Attribute: attrs.Version, Path: path}
	}
	if !isPathLabel(version) {
		return Document{}, &InvalidAttributeError{Attribute: attrs.Version, Path: path, Value: version}
	}
	rawCategories, ok := FindAttribute(content, attrs.Category)
	if !ok {
		return Document{}, &MissingAttributeError{Attribute: attrs.Category, Path: path}
	}
	categories := sets.Unique(strings.Fields(rawCategories))
	if len(categories) == 0 {
		return Document{}, &MissingAttributeError{Attribute: attrs.Category, Path: path}
	}
	for _, category := range categories {
		if !isPathLabel(category) {
			return Document{}, &InvalidAttributeError{Attribute: attrs.Category, Path: path, Value: category}
		}
	}
	title, ok := FindTitle(content)
	if !ok {
		return Document{}, &MissingAttributeError{Attribute: TitleAttribute, Path: path}
	}

	rel := filepath.Base(path)
	if featuresDir != "" {
		if r, err := filepath.Rel(featuresDir, path); err == nil {
			rel = r
		}
	}

	return Document{
		Name:         filepath.Base(path),
		Path:         path,
		RelativePath: filepath.ToSlash(rel),
		Version:      version,
		Categories:   categories,
		Title:        title,
	}, nil
}

// isPathLabel reports whether label names a directory below a module's pages.
func isPathLabel(label string) bool {
	return filepath.IsLocal(label) && filepath.Clean(label) != "."
}

// LoadDocuments loads every scanned file in filename order, stopping at the
// first document that lacks a required attribute or title.
func LoadDocuments(files map[string]string, featuresDir string, attrs Attributes) ([]Document, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]Document, 0, len(names))
	for _, name := range names {
		slog.Info("➡️  Processing", logfields.Document(name))
		doc, err := LoadDocument(files[name], featuresDir, attrs)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}
