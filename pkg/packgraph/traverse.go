package packgraph

import (
	"github.com/arthur-debert/packforge/pkg/errors"
)

type edgeKey struct {
	from, to int
}

// frame is one entry of the explicit DFS stack: the pack being visited and
// the position of the next dependency to follow.
type frame struct {
	node int
	next int
}

// walk is the working state of one traversal.
type walk struct {
	state  []VisitState
	parent []int
	edges  []ClassifiedEdge
	seen   map[edgeKey]struct{}
	post   []int
}

// traverse visits every pack in input order and records each edge with the
// state of its destination at the time it is first followed. It stops at the
// first dependency that does not resolve.
func (g *Graph) traverse() (*walk, error) {
	n := len(g.packs)
	w := &walk{
		state:  make([]VisitState, n),
		parent: make([]int, n),
		seen:   make(map[edgeKey]struct{}),
		post:   make([]int, 0, n),
	}
	for i := range w.parent {
		w.parent[i] = -1
	}

	for root := 0; root < n; root++ {
		if w.state[root] != Unvisited {
			continue
		}
		if err := g.visit(w, root); err != nil {
			return w, err
		}
	}

	return w, nil
}

func (g *Graph) visit(w *walk, root int) error {
	w.state[root] = InProgress
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		u := top.node
		deps := g.packs[u].Dependencies

		if top.next >= len(deps) {
			w.state[u] = Done
			w.post = append(w.post, u)
			stack = stack[:len(stack)-1]
			continue
		}

		name := deps[top.next]
		top.next++

		v, ok := g.index[name]
		if !ok {
			lg := logger()
			lg.Debug().Str("pack", g.packs[u].Name).Str("dependency", name).Msg("Failed to find dependency")
			return unresolved(g.packs[u], name)
		}

		key := edgeKey{from: u, to: v}
		if _, dup := w.seen[key]; !dup {
			w.seen[key] = struct{}{}
			w.edges = append(w.edges, ClassifiedEdge{
				Edge:  Edge{From: g.packs[u].Name, To: g.packs[v].Name},
				State: w.state[v],
				from:  u,
				to:    v,
			})
		}

		if w.state[v] != Unvisited {
			continue
		}

		if g.opts.maxDepth > 0 && len(stack) >= g.opts.maxDepth {
			return errors.Newf(errors.ErrDependencyTooDeep,
				"dependency chain starting at pack %q is deeper than %d", g.packs[root].Name, g.opts.maxDepth).
				WithDetail("pack", g.packs[root].Name).
				WithDetail("maxDepth", g.opts.maxDepth)
		}

		w.parent[v] = u
		w.state[v] = InProgress
		stack = append(stack, frame{node: v})
	}

	return nil
}

// backEdge returns the first recorded back edge, if any.
func (w *walk) backEdge() (ClassifiedEdge, bool) {
	for _, e := range w.edges {
		if e.IsBackEdge() {
			return e, true
		}
	}
	return ClassifiedEdge{}, false
}

// cyclePath follows tree edges from the back edge's source up to its
// destination, which was an ancestor when the edge was recorded.
func (g *Graph) cyclePath(w *walk, e ClassifiedEdge) []string {
	chain := []int{e.from}
	for cur := e.from; cur != e.to; {
		cur = w.parent[cur]
		if cur < 0 {
			return []string{e.From, e.To}
		}
		chain = append(chain, cur)
	}

	path := make([]string, 0, len(chain)+1)
	for i := len(chain) - 1; i >= 0; i-- {
		path = append(path, g.packs[chain[i]].Name)
	}
	return append(path, e.To)
}
