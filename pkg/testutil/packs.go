package testutil

import (
	"github.com/arthur-debert/packforge/pkg/types"
)

// PackBuilder builds pack lists declaratively. Modifiers apply to the most
// recently added pack.
//
//	packs := testutil.Packs().
//		Add("core").Required().
//		Add("vim", "core").InGroup("editors", true).
//		Build()
type PackBuilder struct {
	packs []types.Pack
}

// Packs starts an empty pack list.
func Packs() *PackBuilder {
	return &PackBuilder{}
}

// Add appends a pack depending on deps.
func (b *PackBuilder) Add(name string, deps ...string) *PackBuilder {
	b.packs = append(b.packs, types.Pack{Name: name, Dependencies: deps})
	return b
}

// Required marks the last pack as required.
func (b *PackBuilder) Required() *PackBuilder {
	b.last().Required = true
	return b
}

// Preselected marks the last pack as preselected.
func (b *PackBuilder) Preselected() *PackBuilder {
	b.last().Preselected = true
	return b
}

// InGroup puts the last pack in an exclude group.
func (b *PackBuilder) InGroup(group string, preselected bool) *PackBuilder {
	p := b.last()
	p.ExcludeGroup = group
	p.Preselected = preselected
	return b
}

// From records the descriptor the last pack came from.
func (b *PackBuilder) From(source string) *PackBuilder {
	b.last().Source = source
	return b
}

// Build returns a copy of the pack list.
func (b *PackBuilder) Build() []types.Pack {
	packs := make([]types.Pack, len(b.packs))
	copy(packs, b.packs)
	return packs
}

func (b *PackBuilder) last() *types.Pack {
	if len(b.packs) == 0 {
		panic("testutil: modifier called before Add")
	}
	return &b.packs[len(b.packs)-1]
}
