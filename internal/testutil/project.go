// Package testutil builds throwaway feature projects for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Feature renders a feature document with the default attribute names and
// the summary placeholder after the header.
func Feature(title, version string, categories ...string) string {
	var b strings.Builder
	b.WriteString("= " + title + "\n")
	b.WriteString(":database-version: " + version + "\n")
	b.WriteString(":database-category: " + strings.Join(categories, " ") + "\n")
	b.WriteString("\n[[feature_summary]]\n")
	return b.String()
}

// Project is a temporary project root with fluent file assertions.
type Project struct {
	t    *testing.T
	Root string
}

// NewProject creates an empty project below t.TempDir().
func NewProject(t *testing.T) *Project {
	t.Helper()
	return &Project{t: t, Root: t.TempDir()}
}

// Path joins slash-separated rel onto the project root.
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// Write creates rel with content, including parent directories, and returns its absolute path.
func (p *Project) Write(rel, content string) string {
	p.t.Helper()
	path := p.Path(rel)
	require.NoError(p.t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(p.t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// AddFeature writes a feature document below features/.
func (p *Project) AddFeature(rel, content string) string {
	p.t.Helper()
	return p.Write("features/"+rel, content)
}

// Read returns the content of rel, failing the test when it cannot be read.
func (p *Project) Read(rel string) string {
	p.t.Helper()
	data, err := os.ReadFile(p.Path(rel))
	require.NoError(p.t, err)
	return string(data)
}

// AssertFileExists validates that a file exists.
func (p *Project) AssertFileExists(rel string) *Project {
	p.t.Helper()
	assert.FileExists(p.t, p.Path(rel))
	return p
}

// AssertNotExists validates that nothing exists at rel.
func (p *Project) AssertNotExists(rel string) *Project {
	p.t.Helper()
	assert.NoFileExists(p.t, p.Path(rel))
	assert.NoDirExists(p.t, p.Path(rel))
	return p
}

// AssertFileEquals validates the exact content of a file.
func (p *Project) AssertFileEquals(rel, want string) *Project {
	p.t.Helper()
	assert.Equal(p.t, want, p.Read(rel), rel)
	return p
}

// AssertFileContains validates that a file contains expected content.
func (p *Project) AssertFileContains(rel, want string) *Project {
	p.t.Helper()
	assert.Contains(p.t, p.Read(rel), want, rel)
	return p
}
