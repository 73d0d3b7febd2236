package descriptor

import (
	"strings"

	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/beevik/etree"
)

func parseXML(source string, data []byte) (*Document, error) {
	xml := etree.NewDocument()
	if err := xml.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDescriptorParse, "failed to parse %s", source).
			WithDetail("file", source)
	}

	root := xml.Root()
	if root == nil || !strings.EqualFold(root.Tag, "installation") {
		return nil, invalidf(source, "this is not an installation file")
	}

	doc := &Document{Version: root.SelectAttrValue("version", "")}

	packs := root.SelectElement("packs")
	if packs == nil {
		return nil, invalidf(source, "<installation> requires a <packs>")
	}

	for _, el := range packs.SelectElements("pack") {
		spec := PackSpec{
			Name:          el.SelectAttrValue("name", ""),
			ID:            el.SelectAttrValue("id", ""),
			Required:      el.SelectAttrValue("required", ""),
			Preselected:   el.SelectAttrValue("preselected", ""),
			Hidden:        el.SelectAttrValue("hidden", ""),
			Loose:         el.SelectAttrValue("loose", ""),
			Uninstall:     el.SelectAttrValue("uninstall", ""),
			ExcludeGroup:  el.SelectAttrValue("excludeGroup", ""),
			Group:         el.SelectAttrValue("group", ""),
			InstallGroups: el.SelectAttrValue("installGroups", ""),
			Parent:        el.SelectAttrValue("parent", ""),
			Condition:     el.SelectAttrValue("condition", ""),
		}

		desc := el.SelectElement("description")
		if desc == nil {
			return nil, invalidf(source, "<pack> %q requires a <description>", spec.Name).
				WithDetail("pack", spec.Name)
		}
		spec.Description = desc.Text()

		for _, dep := range el.SelectElements("depends") {
			spec.Depends = append(spec.Depends, dep.SelectAttrValue("packname", ""))
		}
		doc.Packs = append(doc.Packs, spec)
	}

	for _, el := range packs.SelectElements("refpack") {
		doc.RefPacks = append(doc.RefPacks, RefPack{
			File:          el.SelectAttrValue("file", ""),
			SelfContained: strings.EqualFold(el.SelectAttrValue("selfcontained", ""), "true"),
		})
	}

	for _, el := range packs.SelectElements("refpackset") {
		doc.RefPackSets = append(doc.RefPackSets, RefPackSet{
			Dir:      el.SelectAttrValue("dir", ""),
			Includes: el.SelectAttrValue("includes", ""),
		})
	}

	return doc, nil
}
