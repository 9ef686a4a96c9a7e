package editlink

import (
	"fmt"
	"log/slog"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/antora"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
)

// Manifest maps generated page resource paths (<module>/pages/<page>) to the
// edit URL of the feature document they include.
type Manifest struct {
	Pages map[string]string `yaml:"pages"`
}

// NewManifest builds a manifest for the given stubs. Index pages never
// appear because they are authored by hand after their first creation.
func NewManifest(b Builder, stubs []antora.Stub) *Manifest {
	m := &Manifest{Pages: make(map[string]string, len(stubs))}
	for _, s := range stubs {
		m.Pages[path.Join(s.Module, "pages", s.Page)] = b.URL(s.Document.RelativePath)
	}
	return m
}

// Write serializes the manifest to dest. YAML map keys are emitted sorted,
// so unchanged input produces identical bytes.
func (m *Manifest) Write(w antora.FileWriter, dest string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal edit-url manifest: %w", err)
	}
	if err := w.WriteFile(dest, data); err != nil {
		return err
	}
	slog.Info("Edit-url manifest written", logfields.Path(dest), logfields.Count(len(m.Pages)))
	return nil
}
