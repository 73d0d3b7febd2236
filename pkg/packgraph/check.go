package packgraph

import (
	"strings"

	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/logging"
	"github.com/arthur-debert/packforge/pkg/types"
	"github.com/rs/zerolog"
)

func logger() zerolog.Logger {
	return logging.GetLogger("packgraph")
}

// CheckDependencies verifies that every dependency names a known pack and
// that the dependency relation has no cycle. It returns nil when the pack
// list is valid.
func CheckDependencies(packs []types.Pack, opts ...Option) error {
	g, err := New(packs, opts...)
	if err != nil {
		return err
	}
	return g.Check()
}

// Check runs the dependency walk over the graph.
func (g *Graph) Check() error {
	_, err := g.validate()
	return err
}

// Edges returns every distinct edge in the order it was first followed,
// classified by the state of its destination at that moment.
func (g *Graph) Edges() ([]ClassifiedEdge, error) {
	w, err := g.traverse()
	if err != nil {
		return nil, err
	}
	return w.edges, nil
}

func (g *Graph) validate() (*walk, error) {
	done := logging.LogOperationStart(logger(), "checkDependencies")
	defer done()

	w, err := g.traverse()
	if err != nil {
		return nil, err
	}

	if e, found := w.backEdge(); found {
		path := g.cyclePath(w, e)
		lg := logger()
		lg.Debug().Str("edge", e.String()).Strs("cycle", path).Msg("Back edge found")
		return nil, errors.Newf(errors.ErrCyclicDependency, "circular dependency detected: %s", strings.Join(path, " -> ")).
			WithDetail("edge", e.String()).
			WithDetail("cycle", path)
	}

	lg := logger()

	lg.Debug().Int("packs", len(g.packs)).Int("edges", len(w.edges)).Msg("Dependencies verified")
	return w, nil
}
