package config

import "time"

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// FeaturesDefaultApplier handles feature source defaults.
type FeaturesDefaultApplier struct{}

func (FeaturesDefaultApplier) Domain() string { return "features" }

func (FeaturesDefaultApplier) ApplyDefaults(cfg *Config) error {
	f := &cfg.Features
	if f.Dir == "" {
		f.Dir = "features"
	}
	if f.Suffix == "" {
		f.Suffix = ".adoc"
	}
	if f.VersionAttribute == "" {
		f.VersionAttribute = ":database-version:"
	}
	if f.CategoryAttribute == "" {
		f.CategoryAttribute = ":database-category:"
	}
	if f.Placeholder == "" {
		f.Placeholder = "[[feature_summary]]"
	}
	if f.CategoryTitles == "" {
		f.CategoryTitles = "_categories"
	}
	if f.VersionTitles == "" {
		f.VersionTitles = "_versions"
	}
	return nil
}

// OutputDefaultApplier handles generated module defaults.
type OutputDefaultApplier struct{}

func (OutputDefaultApplier) Domain() string { return "output" }

func (OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	o := &cfg.Output
	if o.DocsDir == "" {
		o.DocsDir = "docs/modules"
	}
	if o.CategoriesModule == "" {
		o.CategoriesModule = "categories"
	}
	if o.VersionsModule == "" {
		o.VersionsModule = "versions"
	}
	if o.FeaturesModule == "" {
		o.FeaturesModule = "features"
	}
	return nil
}

// NavigationDefaultApplier handles navigation layout defaults.
type NavigationDefaultApplier struct{}

func (NavigationDefaultApplier) Domain() string { return "navigation" }

func (NavigationDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Navigation.Layout == "" {
		cfg.Navigation.Layout = LayoutFlat
	} else if l := NormalizeLayout(string(cfg.Navigation.Layout)); l != "" {
		cfg.Navigation.Layout = l
	}
	return nil
}

// AuxiliaryDefaultApplier handles edit link and watch defaults.
type AuxiliaryDefaultApplier struct{}

func (AuxiliaryDefaultApplier) Domain() string { return "auxiliary" }

func (AuxiliaryDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.EditLinks.Manifest == "" {
		cfg.EditLinks.Manifest = "docs/edit-urls.yml"
	}
	if cfg.EditLinks.Remote == "" {
		cfg.EditLinks.Remote = "origin"
	}
	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	return nil
}

var defaultAppliers = []DefaultApplier{
	FeaturesDefaultApplier{},
	OutputDefaultApplier{},
	NavigationDefaultApplier{},
	AuxiliaryDefaultApplier{},
}

func applyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
