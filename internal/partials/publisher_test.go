package partials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/classify"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs"
)

func testOptions() Options {
	return Options{
		Placeholder:      "[[feature_summary]]",
		VersionsModule:   "versions",
		CategoriesModule: "categories",
		CategoryKey:      classify.FoldLabel,
	}
}

func writeSource(t *testing.T, dir, name, content string) docs.Document {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return docs.Document{Name: name, Path: path}
}

func TestSummary(t *testing.T) {
	p := NewPublisher(t.TempDir(), testOptions())

	got := p.Summary(docs.Document{Version: "5.0", Categories: []string{"sql", "NoSQL", "SQL"}})

	want := "[horizontal]\n" +
		"Version:: xref:versions:5.0/index.adoc[]\n" +
		"Categories:: xref:categories:sql/index.adoc[], xref:categories:nosql/index.adoc[]\n"
	assert.Equal(t, want, got)
}

func TestPublish_ReplacesPlaceholderAndWipesDirectory(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "partials")
	require.NoError(t, os.MkdirAll(out, 0o755))
	stale := filepath.Join(out, "removed-feature.adoc")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	doc := writeSource(t, src, "foo.adoc", "= Foo\n:database-version: 5.0\n:database-category: sql\n\n[[feature_summary]]\n\nBody.\n")
	doc.Version = "5.0"
	doc.Categories = []string{"sql"}

	n, err := NewPublisher(out, testOptions()).Publish([]docs.Document{doc})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.NoFileExists(t, stale)
	b, err := os.ReadFile(filepath.Join(out, "foo.adoc"))
	require.NoError(t, err)
	assert.Equal(t, "= Foo\n:database-version: 5.0\n:database-category: sql\n\n"+
		"[horizontal]\nVersion:: xref:versions:5.0/index.adoc[]\nCategories:: xref:categories:sql/index.adoc[]\n"+
		"\n\nBody.\n", string(b))
}

func TestPublish_WithoutPlaceholderCopiesVerbatim(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "partials")
	doc := writeSource(t, src, "plain.adoc", "= Plain\n")

	_, err := NewPublisher(out, testOptions()).Publish([]docs.Document{doc})
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(out, "plain.adoc"))
	require.NoError(t, err)
	assert.Equal(t, "= Plain\n", string(b))
}

func TestPublish_ReadFailureAborts(t *testing.T) {
	out := filepath.Join(t.TempDir(), "partials")
	_, err := NewPublisher(out, testOptions()).Publish([]docs.Document{{Name: "gone.adoc", Path: filepath.Join(t.TempDir(), "gone.adoc")}})
	require.ErrorIs(t, err, ErrPublishFailed)
}

func TestPublish_DryRunLeavesDirectory(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "partials")
	require.NoError(t, os.MkdirAll(out, 0o755))
	keep := filepath.Join(out, "keep.adoc")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	opts := testOptions()
	opts.DryRun = true
	_, err := NewPublisher(out, opts).Publish([]docs.Document{writeSource(t, src, "a.adoc", "= A\n")})
	require.NoError(t, err)

	assert.FileExists(t, keep)
	assert.NoFileExists(t, filepath.Join(out, "a.adoc"))
}
