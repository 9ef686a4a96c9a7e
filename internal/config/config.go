package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up in the project root.
const DefaultFileName = "featurenav.yaml"

// ErrConfigNotFound indicates an explicitly requested configuration file is absent.
var ErrConfigNotFound = errors.New("configuration file not found")

// Config represents the application configuration.
type Config struct {
	Features   FeaturesConfig   `yaml:"features"`
	Output     OutputConfig     `yaml:"output"`
	Navigation NavigationConfig `yaml:"navigation"`
	EditLinks  EditLinksConfig  `yaml:"edit_links"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Watch      WatchConfig      `yaml:"watch"`
}

// FeaturesConfig describes where feature documents live and how they are tagged.
type FeaturesConfig struct {
	Dir               string `yaml:"dir"`
	Suffix            string `yaml:"suffix"`
	VersionAttribute  string `yaml:"version_attribute"`
	CategoryAttribute string `yaml:"category_attribute"`
	Placeholder       string `yaml:"placeholder"`
	CategoryTitles    string `yaml:"category_titles"` // relative to Dir; excluded from the scan
	VersionTitles     string `yaml:"version_titles"`  // relative to Dir; excluded from the scan
}

// OutputConfig names the Antora modules written below DocsDir.
type OutputConfig struct {
	DocsDir          string `yaml:"docs_dir"`
	CategoriesModule string `yaml:"categories_module"`
	VersionsModule   string `yaml:"versions_module"`
	FeaturesModule   string `yaml:"features_module"`
}

// NavigationConfig controls navigation tree shape.
type NavigationConfig struct {
	Layout         Layout `yaml:"layout"`
	FoldCategories *bool  `yaml:"fold_categories,omitempty"`
}

// Fold reports whether category labels are case-folded. Defaults to true.
func (n NavigationConfig) Fold() bool {
	return n.FoldCategories == nil || *n.FoldCategories
}

// EditLinksConfig controls the edit-url manifest.
type EditLinksConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Manifest string `yaml:"manifest"`
	Remote   string `yaml:"remote"`
	Branch   string `yaml:"branch,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Load reads configuration for the project rooted at root.
// An empty configPath means <root>/featurenav.yaml, which may be absent;
// an explicit configPath must exist. Relative explicit paths resolve against
// the working directory.
func Load(root, configPath string) (*Config, error) {
	loadEnvFiles(root)

	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(root, DefaultFileName)
	}

	cfg := &Config{}
	data, err := os.ReadFile(configPath) // #nosec G304 -- path supplied by the operator
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a configuration populated only with defaults.
func Default() *Config {
	cfg := &Config{}
	_ = applyDefaults(cfg)
	return cfg
}
