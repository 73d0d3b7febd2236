package packgraph

import (
	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/types"
)

// InstallOrder returns pack names with every dependency ahead of the packs
// that need it. Packs without a mutual constraint keep their input order.
func InstallOrder(packs []types.Pack, opts ...Option) ([]string, error) {
	g, err := New(packs, opts...)
	if err != nil {
		return nil, err
	}
	return g.InstallOrder()
}

// InstallOrder validates the graph and returns its DFS post-order. A pack
// shadowed by a later declaration of the same name is left out.
func (g *Graph) InstallOrder() ([]string, error) {
	w, err := g.validate()
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, len(w.post))
	for _, i := range w.post {
		if g.canonical(i) {
			order = append(order, g.packs[i].Name)
		}
	}
	return order, nil
}

// Dependents maps each pack name to the packs that depend on it directly,
// in input order. Every pack has an entry, possibly empty.
func Dependents(packs []types.Pack, opts ...Option) (map[string][]string, error) {
	g, err := New(packs, opts...)
	if err != nil {
		return nil, err
	}
	return g.Dependents()
}

// Dependents computes the reverse dependency lists. It fails on the first
// dependency that does not resolve.
func (g *Graph) Dependents() (map[string][]string, error) {
	rev := make(map[string][]string, len(g.index))
	for name := range g.index {
		rev[name] = []string{}
	}

	for i, pack := range g.packs {
		if !g.canonical(i) {
			continue
		}
		for _, dep := range pack.Dependencies {
			if _, ok := g.index[dep]; !ok {
				return nil, unresolved(pack, dep)
			}
			if !contains(rev[dep], pack.Name) {
				rev[dep] = append(rev[dep], pack.Name)
			}
		}
	}
	return rev, nil
}

// Closure returns the selected packs together with everything they depend
// on, transitively, in install order.
func Closure(packs []types.Pack, selected []string, opts ...Option) ([]string, error) {
	g, err := New(packs, opts...)
	if err != nil {
		return nil, err
	}
	return g.Closure(selected)
}

// Closure expands a selection over the validated graph.
func (g *Graph) Closure(selected []string) ([]string, error) {
	order, err := g.InstallOrder()
	if err != nil {
		return nil, err
	}

	needed := make(map[string]bool)
	queue := make([]string, 0, len(selected))
	var notFound []string
	for _, name := range selected {
		if _, ok := g.index[name]; !ok {
			notFound = append(notFound, name)
			continue
		}
		if !needed[name] {
			needed[name] = true
			queue = append(queue, name)
		}
	}
	if len(notFound) > 0 {
		return nil, errors.New(errors.ErrPackNotFound, "pack(s) not found").
			WithDetail("notFound", notFound).
			WithDetail("available", types.PackNames(g.packs))
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for _, dep := range g.packs[g.index[name]].Dependencies {
			if !needed[dep] {
				needed[dep] = true
				queue = append(queue, dep)
			}
		}
	}

	closure := make([]string, 0, len(needed))
	for _, name := range order {
		if needed[name] {
			closure = append(closure, name)
		}
	}

	lg := logger()

	lg.Debug().Strs("selected", selected).Strs("closure", closure).Msg("Selection expanded")
	return closure, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
