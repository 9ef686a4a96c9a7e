package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks a defaulted configuration for values the generator cannot honor.
func Validate(cfg *Config) error {
	var problems []string

	if NormalizeLayout(string(cfg.Navigation.Layout)) == "" {
		problems = append(problems, fmt.Sprintf("navigation.layout must be %q or %q, got %q", LayoutFlat, LayoutNested, cfg.Navigation.Layout))
	}
	if !strings.HasPrefix(cfg.Features.Suffix, ".") {
		problems = append(problems, fmt.Sprintf("features.suffix must start with '.', got %q", cfg.Features.Suffix))
	}
	if strings.TrimSpace(cfg.Features.VersionAttribute) == "" {
		problems = append(problems, "features.version_attribute must not be blank")
	}
	if strings.TrimSpace(cfg.Features.CategoryAttribute) == "" {
		problems = append(problems, "features.category_attribute must not be blank")
	}
	if strings.TrimSpace(cfg.Features.Placeholder) == "" {
		problems = append(problems, "features.placeholder must not be blank")
	}
	for name, dir := range map[string]string{
		"features.dir":        cfg.Features.Dir,
		"output.docs_dir":     cfg.Output.DocsDir,
		"edit_links.manifest": cfg.EditLinks.Manifest,
	} {
		if filepath.IsAbs(dir) {
			problems = append(problems, fmt.Sprintf("%s must be relative to the project root, got %q", name, dir))
		}
	}
	if cfg.Output.CategoriesModule == cfg.Output.VersionsModule {
		problems = append(problems, "output.categories_module and output.versions_module must differ")
	}

	if len(problems) == 0 {
		return nil
	}
	// map iteration above is unordered
	slices.Sort(problems)
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
