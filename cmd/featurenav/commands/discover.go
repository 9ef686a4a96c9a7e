package commands

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/build"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/classify"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	Root   string `arg:"" name:"root" help:"Project root directory" type:"existingdir"`
	NoFold bool   `name:"no-fold" help:"Keep category labels case-sensitive"`
}

// discoveredGroup is one group in the discover listing.
type discoveredGroup struct {
	Key      string   `yaml:"key"`
	Title    string   `yaml:"title"`
	Features []string `yaml:"features"`
}

type discovery struct {
	Documents  int               `yaml:"documents"`
	Categories []discoveredGroup `yaml:"categories"`
	Versions   []discoveredGroup `yaml:"versions"`
}

func (d *DiscoverCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(d.Root, root.Config)
	if err != nil {
		return err
	}
	if err := applyNavigationOverrides(cfg, "", d.NoFold); err != nil {
		return err
	}

	res, err := build.NewBuildService().Discover(context.Background(), build.BuildRequest{Root: d.Root, Config: cfg})
	if err != nil {
		return err
	}

	out := discovery{
		Documents:  len(res.Documents),
		Categories: listGroups(res.Categories),
		Versions:   listGroups(res.Versions),
	}
	enc := yaml.NewEncoder(g.stdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write discovery: %w", err)
	}
	return enc.Close()
}

func listGroups(grouping *classify.Grouping) []discoveredGroup {
	groups := make([]discoveredGroup, 0, len(grouping.Groups))
	for _, grp := range grouping.Groups {
		names := make([]string, 0, len(grp.Members))
		for _, doc := range grp.Members {
			names = append(names, doc.Name)
		}
		groups = append(groups, discoveredGroup{Key: grp.Key, Title: grp.Title, Features: names})
	}
	return groups
}
