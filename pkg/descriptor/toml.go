package descriptor

import (
	"strings"

	"github.com/arthur-debert/packforge/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

type tomlDocument struct {
	Version string `toml:"version"`
	Packs   []struct {
		Name          string   `toml:"name"`
		ID            string   `toml:"id"`
		Description   string   `toml:"description"`
		Required      *bool    `toml:"required"`
		Preselected   *bool    `toml:"preselected"`
		Hidden        *bool    `toml:"hidden"`
		Loose         *bool    `toml:"loose"`
		Uninstall     *bool    `toml:"uninstall"`
		ExcludeGroup  string   `toml:"excludeGroup"`
		Group         string   `toml:"group"`
		InstallGroups []string `toml:"installGroups"`
		Parent        string   `toml:"parent"`
		Condition     string   `toml:"condition"`
		Depends       []string `toml:"depends"`
	} `toml:"packs"`
	RefPacks []struct {
		File          string `toml:"file"`
		SelfContained bool   `toml:"selfcontained"`
	} `toml:"refpacks"`
	RefPackSets []struct {
		Dir      string `toml:"dir"`
		Includes string `toml:"includes"`
	} `toml:"refpacksets"`
}

func parseTOML(source string, data []byte) (*Document, error) {
	var raw tomlDocument
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDescriptorParse, "failed to parse %s", source).
			WithDetail("file", source)
	}

	doc := &Document{Version: raw.Version}
	for _, p := range raw.Packs {
		doc.Packs = append(doc.Packs, PackSpec{
			Name:          p.Name,
			ID:            p.ID,
			Description:   p.Description,
			Required:      boolText(p.Required),
			Preselected:   boolText(p.Preselected),
			Hidden:        boolText(p.Hidden),
			Loose:         boolText(p.Loose),
			Uninstall:     boolText(p.Uninstall),
			ExcludeGroup:  p.ExcludeGroup,
			Group:         p.Group,
			InstallGroups: strings.Join(p.InstallGroups, ","),
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
