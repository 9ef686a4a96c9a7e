package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrConfigExists indicates init would overwrite an existing file without --force.
var ErrConfigExists = errors.New("configuration file already exists")

const exampleConfig = `# featurenav configuration. Every key is optional; values shown are defaults.
features:
  dir: features
  suffix: .adoc
  version_attribute: ":database-version:"
  category_attribute: ":database-category:"
  placeholder: "[[feature_summary]]"
  # Documents providing display titles for groups, e.g. features/_categories/sql.adoc
  category_titles: _categories
  version_titles: _versions

output:
  docs_dir: docs/modules
  categories_module: categories
  versions_module: versions
  features_module: features

navigation:
  # flat: group -> documents; nested: group -> opposite axis -> documents
  layout: flat
  # fold_categories: true

edit_links:
  enabled: false
  manifest: docs/edit-urls.yml
  remote: origin
  # branch: main
  # base_url: https://github.com/example/features

metrics:
  # textfile: build/featurenav.prom

watch:
  debounce: 500ms
`

// Init writes an example configuration file into root.
func Init(root string, force bool) (string, error) {
	path := filepath.Join(root, DefaultFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	// #nosec G306 -- configuration is not secret
	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
