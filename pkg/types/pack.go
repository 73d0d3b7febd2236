package types

// Pack is one independently selectable unit of installable content, as
// declared in an installation descriptor. Validation never mutates it.
type Pack struct {
	// Name identifies the pack within one compilation and is the key that
	// dependency lists refer to.
	Name string `yaml:"name" toml:"name"`

	ID          string `yaml:"id,omitempty" toml:"id,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`

	Required    bool `yaml:"required" toml:"required"`
	Preselected bool `yaml:"preselected" toml:"preselected"`
	Hidden      bool `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	Loose       bool `yaml:"loose,omitempty" toml:"loose,omitempty"`
	Uninstall   bool `yaml:"uninstall" toml:"uninstall"`

	// ExcludeGroup labels mutually exclusive packs. Empty means none.
	ExcludeGroup string `yaml:"excludeGroup,omitempty" toml:"excludeGroup,omitempty"`

	Group         string   `yaml:"group,omitempty" toml:"group,omitempty"`
	InstallGroups []string `yaml:"installGroups,omitempty" toml:"installGroups,omitempty"`
	Parent        string   `yaml:"parent,omitempty" toml:"parent,omitempty"`
	Condition     string   `yaml:"condition,omitempty" toml:"condition,omitempty"`

	// Dependencies lists pack names in declaration order.
	Dependencies []string `yaml:"depends,omitempty" toml:"depends,omitempty"`

	// Source is the descriptor file the pack was read from.
	Source string `yaml:"-" toml:"-"`
}

// HasExcludeGroup reports whether the pack belongs to an exclude group.
func (p Pack) HasExcludeGroup() bool {
	return p.ExcludeGroup != ""
}

// SharesExcludeGroup reports whether both packs belong to the same exclude group.
func (p Pack) SharesExcludeGroup(other Pack) bool {
	return p.HasExcludeGroup() && p.ExcludeGroup == other.ExcludeGroup
}

// PackNames returns the names of packs in order.
func PackNames(packs []Pack) []string {
	names := make([]string, len(packs))
	for i, pack := range packs {
		names[i] = pack.Name
	}
	return names
}
