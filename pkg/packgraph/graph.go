package packgraph

import (
	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/types"
)

// Graph is a read-only indexed view over a pack list.
type Graph struct {
	packs []types.Pack
	index map[string]int
	opts  options
}

// New builds the name lookup for packs. With duplicate names the last
// declaration wins, unless RejectDuplicates is given.
func New(packs []types.Pack, opts ...Option) (*Graph, error) {
	g := &Graph{
		packs: packs,
		index: make(map[string]int, len(packs)),
		opts:  buildOptions(opts),
	}

	for i, pack := range packs {
		if prev, exists := g.index[pack.Name]; exists {
			if g.opts.rejectDuplicates {
				return nil, errors.Newf(errors.ErrDuplicatePack, "pack %q is declared more than once", pack.Name).
					WithDetail("pack", pack.Name).
					WithDetail("sources", []string{packs[prev].Source, pack.Source})
			}
			lg := logger()
			lg.Warn().
				Str("pack", pack.Name).
				Int("previous", prev).
				Int("index", i).
				Msg("Duplicate pack name, last declaration wins")
		}
		g.index[pack.Name] = i
	}

	return g, nil
}

// Len returns the number of packs, duplicates included.
func (g *Graph) Len() int {
	return len(g.packs)
}

// Lookup returns the pack a dependency name resolves to.
func (g *Graph) Lookup(name string) (types.Pack, bool) {
	i, ok := g.index[name]
	if !ok {
		return types.Pack{}, false
	}
	return g.packs[i], true
}

// canonical reports whether pack i is the one its name resolves to.
func (g *Graph) canonical(i int) bool {
	return g.index[g.packs[i].Name] == i
}

func unresolved(from types.Pack, name string) error {
	return errors.Newf(errors.ErrUnresolvedDependency, "dependency %q of pack %q doesn't exist", name, from.Name).
		WithDetail("pack", from.Name).
		WithDetail("dependency", name)
}
