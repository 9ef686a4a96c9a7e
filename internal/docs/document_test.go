package docs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs/errors"
)

var testAttrs = Attributes{Version: ":database-version:", Category: ":database-category:"}

func TestLoadDocument(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "json", "duality.adoc")
	writeFile(t, path, sampleFeature)

	doc, err := LoadDocument(path, root, testAttrs)
	require.NoError(t, err)

	assert.Equal(t, Document{
		Name:         "duality.adoc",
		Path:         path,
		RelativePath: "json/duality.adoc",
		Version:      "23.2",
		Categories:   []string{"sql", "json"},
		Title:        "JSON Relational Duality Views",
	}, doc)
}

func TestLoadDocument_MissingPieces(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		sentinel  error
		attribute string
	}{
		{"no version", "= T\n:database-category: sql\n", derrors.ErrMissingAttribute, ":database-version:"},
		{"no category", "= T\n:database-version: 19\n", derrors.ErrMissingAttribute, ":database-category:"},
		{"blank version", "= T\n:database-version:\n:database-category: sql\n", derrors.ErrMissingAttribute, ":database-version:"},
		{"blank category", "= T\n:database-version: 19\n:database-category:   \n", derrors.ErrMissingAttribute, ":database-category:"},
		{"no title", ":database-version: 19\n:database-category: sql\n", derrors.ErrMissingTitle, TitleAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.adoc")
			writeFile(t, path, tt.content)

			_, err := LoadDocument(path, "", testAttrs)
			require.ErrorIs(t, err, tt.sentinel)

			var missing *MissingAttributeError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.attribute, missing.Attribute)
			assert.Equal(t, path, missing.Path)
		})
	}
}

func TestLoadDocument_RejectsLabelsOutsideModule(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		attribute string
		value     string
	}{
		{"parent version", "= T\n:database-version: ../23\n:database-category: sql\n", ":database-version:", "../23"},
		{"dot version", "= T\n:database-version: .\n:database-category: sql\n", ":database-version:", "."},
		{"absolute version", "= T\n:database-version: /23\n:database-category: sql\n", ":database-version:", "/23"},
		{"escaping category", "= T\n:database-version: 23\n:database-category: sql ../../x\n", ":database-category:", "../../x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.adoc")
			writeFile(t, path, tt.content)

			_, err := LoadDocument(path, "", testAttrs)
			require.ErrorIs(t, err, derrors.ErrInvalidAttribute)

			var invalid *InvalidAttributeError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.attribute, invalid.Attribute)
			assert.Equal(t, tt.value, invalid.Value)
			assert.Equal(t, path, invalid.Path)
		})
	}
}

func TestLoadDocuments_StopsAtFirstInvalidInNameOrder(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "a.adoc")
	bad := filepath.Join(root, "b.adoc")
	alsoBad := filepath.Join(root, "c.adoc")
	writeFile(t, good, sampleFeature)
	writeFile(t, bad, "= B\n:database-category: sql\n")
	writeFile(t, alsoBad, "= C\n")

	_, err := LoadDocuments(map[string]string{
		"c.adoc": alsoBad,
		"a.adoc": good,
		"b.adoc": bad,
	}, root, testAttrs)

	var missing *MissingAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, bad, missing.Path)
}

func TestLoadDocuments_SortedByName(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{}
	for _, n := range []string{"z.adoc", "m.adoc", "a.adoc"} {
		p := filepath.Join(root, n)
		writeFile(t, p, sampleFeature)
		files[n] = p
	}

	got, err := LoadDocuments(files, root, testAttrs)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a.adoc", got[0].Name)
	assert.Equal(t, "m.adoc", got[1].Name)
	assert.Equal(t, "z.adoc", got[2].Name)
}
