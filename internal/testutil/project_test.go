package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeature(t *testing.T) {
	assert.Equal(t, "= Foo\n:database-version: 19\n:database-category: sql json\n\n[[feature_summary]]\n",
		Feature("Foo", "19", "sql", "json"))
}

func TestProject(t *testing.T) {
	p := NewProject(t)
	path := p.AddFeature("sub/foo.adoc", "x")

	assert.Equal(t, p.Path("features/sub/foo.adoc"), path)
	p.AssertFileExists("features/sub/foo.adoc").
		AssertFileEquals("features/sub/foo.adoc", "x").
		AssertFileContains("features/sub/foo.adoc", "x").
		AssertNotExists("docs")
}
