package descriptor

import (
	"github.com/arthur-debert/packforge/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Version string `yaml:"version"`
	Packs   []struct {
		Name          string   `yaml:"name"`
		ID            string   `yaml:"id"`
		Description   string   `yaml:"description"`
		Required      string   `yaml:"required"`
		Preselected   string   `yaml:"preselected"`
		Hidden        string   `yaml:"hidden"`
		Loose         string   `yaml:"loose"`
		Uninstall     string   `yaml:"uninstall"`
		ExcludeGroup  string   `yaml:"excludeGroup"`
		Group         string   `yaml:"group"`
		InstallGroups string   `yaml:"installGroups"`
		Parent        string   `yaml:"parent"`
		Condition     string   `yaml:"condition"`
		Depends       []string `yaml:"depends"`
	} `yaml:"packs"`
	RefPacks []struct {
		File          string `yaml:"file"`
		SelfContained bool   `yaml:"selfcontained"`
	} `yaml:"refpacks"`
	RefPackSets []struct {
		Dir      string `yaml:"dir"`
		Includes string `yaml:"includes"`
	} `yaml:"refpacksets"`
}

func parseYAML(source string, data []byte) (*Document, error) {
	var raw yamlDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDescriptorParse, "failed to parse %s", source).
			WithDetail("file", source)
	}

	doc := &Document{Version: raw.Version}
	for _, p := range raw.Packs {
		doc.Packs = append(doc.Packs, PackSpec{
			Name:          p.Name,
			ID:            p.ID,
			Description:   p.Description,
			Required:      p.Required,
			Preselected:   p.Preselected,
			Hidden:        p.Hidden,
			Loose:         p.Loose,
			Uninstall:     p.Uninstall,
			ExcludeGroup:  p.ExcludeGroup,
			Group:         p.Group,
			InstallGroups: p.InstallGroups,
			Parent:        p.Parent,
			Condition:     p.Condition,
			Depends:       p.Depends,
		})
	}
	for _, r := range raw.RefPacks {
		doc.RefPacks = append(doc.RefPacks, RefPack{File: r.File, SelfContained: r.SelfContained})
	}
	for _, r := range raw.RefPackSets {
		doc.RefPackSets = append(doc.RefPackSets, RefPackSet{Dir: r.Dir, Includes: r.Includes})
	}
	return doc, nil
}
