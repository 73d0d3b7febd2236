package descriptor

import (
	"strings"

	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/types"
)

// Document is one parsed descriptor file, independent of its encoding.
type Document struct {
	Version     string
	Packs       []PackSpec
	RefPacks    []RefPack
	RefPackSets []RefPackSet
}

// PackSpec holds a pack definition as written. Flag fields keep their raw
// text ("yes", "no", "true", "false" or empty when absent) so that defaults
// can depend on other attributes.
type PackSpec struct {
	Name          string
	ID            string
	Description   string
	Required      string
	Preselected   string
	Hidden        string
	Loose         string
	Uninstall     string
	ExcludeGroup  string
	Group         string
	InstallGroups string
	Parent        string
	Condition     string
	Depends       []string
}

// RefPack references another descriptor file.
type RefPack struct {
	File          string
	SelfContained bool
}

// RefPackSet references every descriptor file in Dir matching Includes.
type RefPackSet struct {
	Dir      string
	Includes string
}

func (d *Document) empty() bool {
	return len(d.Packs) == 0 && len(d.RefPacks) == 0 && len(d.RefPackSets) == 0
}

// toPack applies the defaults and consistency rules of a pack definition.
func (s PackSpec) toPack(source string) (types.Pack, error) {
	if s.Name == "" {
		return types.Pack{}, invalidf(source, "<pack> requires a name")
	}

	required, err := parseYesNo(source, s.Name, "required", s.Required, nil)
	if err != nil {
		return types.Pack{}, err
	}
	if required && s.ExcludeGroup != "" {
		return types.Pack{}, invalidf(source, "pack %q has an excludeGroup and can not be required", s.Name).
			WithDetail("pack", s.Name)
	}

	// A pack in an exclude group is not preselected unless it says so.
	defaultPreselected := s.ExcludeGroup == ""
	preselected, err := parseYesNo(source, s.Name, "preselected", s.Preselected, &defaultPreselected)
	if err != nil {
		return types.Pack{}, err
	}

	yes, no := true, false
	uninstall, err := parseYesNo(source, s.Name, "uninstall", s.Uninstall, &yes)
	if err != nil {
		return types.Pack{}, err
	}
	hidden, err := parseYesNo(source, s.Name, "hidden", s.Hidden, &no)
	if err != nil {
		return types.Pack{}, err
	}
	loose, err := parseYesNo(source, s.Name, "loose", s.Loose, &no)
	if err != nil {
		return types.Pack{}, err
	}

	for _, dep := range s.Depends {
		if dep == "" {
			return types.Pack{}, invalidf(source, "<depends> of pack %q requires a packname", s.Name).
				WithDetail("pack", s.Name)
		}
	}

	return types.Pack{
		Name:          s.Name,
		ID:            s.ID,
		Description:   strings.TrimSpace(s.Description),
		Required:      required,
		Preselected:   preselected,
		Hidden:        hidden,
		Loose:         loose,
		Uninstall:     uninstall,
		ExcludeGroup:  s.ExcludeGroup,
		Group:         s.Group,
		InstallGroups: splitList(s.InstallGroups),
		Parent:        s.Parent,
		Condition:     s.Condition,
		Dependencies:  append([]string(nil), s.Depends...),
		Source:        source,
	}, nil
}

// parseYesNo reads a yes/no flag. A nil fallback makes the flag mandatory.
func parseYesNo(source, pack, attr, raw string, fallback *bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	case "":
		if fallback == nil {
			return false, invalidf(source, "pack %q requires the %s attribute", pack, attr).
				WithDetail("pack", pack).
				WithDetail("attribute", attr)
		}
		return *fallback, nil
	default:
		return false, invalidf(source, "attribute %s of pack %q must be yes or no, got %q", attr, pack, raw).
			WithDetail("pack", pack).
			WithDetail("attribute", attr)
	}
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func invalidf(source, format string, args ...interface{}) *errors.PackError {
	return errors.Newf(errors.ErrDescriptorInvalid, format, args...).WithDetail("file", source)
}

func boolText(b *bool) string {
	switch {
	case b == nil:
		return ""
	case *b:
		return "yes"
	default:
		return "no"
	}
}
