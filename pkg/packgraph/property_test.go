package packgraph

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertyRuns = 200

// randomDAG returns n packs where pack i may only depend on packs with a
// lower rank, listed in a shuffled order so dependencies appear both before
// and after the packs that need them.
func randomDAG(rng *rand.Rand, n int) []types.Pack {
	packs := make([]types.Pack, n)
	for i := 0; i < n; i++ {
		packs[i] = types.Pack{Name: fmt.Sprintf("p%d", i)}
		for j := 0; j < i; j++ {
			if rng.Intn(4) == 0 {
				packs[i].Dependencies = append(packs[i].Dependencies, fmt.Sprintf("p%d", j))
			}
		}
	}
	rng.Shuffle(n, func(a, b int) { packs[a], packs[b] = packs[b], packs[a] })
	return packs
}

func indexByName(packs []types.Pack) map[string]int {
	idx := make(map[string]int, len(packs))
	for i, p := range packs {
		idx[p.Name] = i
	}
	return idx
}

// addCycle threads a cycle of the given length through randomly chosen packs.
// Length one is a self dependency.
func addCycle(rng *rand.Rand, packs []types.Pack, length int) {
	members := rng.Perm(len(packs))[:length]
	for k, m := range members {
		next := packs[members[(k+1)%length]].Name
		packs[m].Dependencies = append(packs[m].Dependencies, next)
	}
}

func TestProperty_AcyclicSetsPass(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for run := 0; run < propertyRuns; run++ {
		packs := randomDAG(rng, 1+rng.Intn(30))
		require.NoError(t, CheckDependencies(packs), "run %d: %v", run, packs)
	}
}

func TestProperty_AnyCycleFails(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for run := 0; run < propertyRuns; run++ {
		packs := randomDAG(rng, 1+rng.Intn(30))
		addCycle(rng, packs, 1+rng.Intn(len(packs)))

		err := CheckDependencies(packs)
		require.True(t, errors.IsErrorCode(err, errors.ErrCyclicDependency), "run %d: got %v", run, err)

		cycle, ok := errors.GetErrorDetails(err)["cycle"].([]string)
		require.True(t, ok)
		assertIsCycle(t, packs, cycle)
	}
}

func TestProperty_MissingReferenceFails(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for run := 0; run < propertyRuns; run++ {
		packs := randomDAG(rng, 1+rng.Intn(30))
		if rng.Intn(2) == 0 {
			addCycle(rng, packs, 1+rng.Intn(len(packs)))
		}
		victim := rng.Intn(len(packs))
		packs[victim].Dependencies = append(packs[victim].Dependencies, "ghost")

		err := CheckDependencies(packs)
		require.True(t, errors.IsErrorCode(err, errors.ErrUnresolvedDependency), "run %d: got %v", run, err)
		assert.Equal(t, "ghost", errors.GetErrorDetails(err)["dependency"])
	}
}

func TestProperty_InstallOrderRespectsDependencies(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for run := 0; run < propertyRuns; run++ {
		packs := randomDAG(rng, 1+rng.Intn(30))

		order, err := InstallOrder(packs)
		require.NoError(t, err)
		require.Len(t, order, len(packs))

		position := make(map[string]int, len(order))
		for i, name := range order {
			position[name] = i
		}
		for _, p := range packs {
			for _, dep := range p.Dependencies {
				assert.Less(t, position[dep], position[p.Name], "run %d: %s before %s", run, dep, p.Name)
			}
		}
	}
}

// assertIsCycle checks that every consecutive pair in the path is a declared
// dependency and that the path closes on itself.
func assertIsCycle(t *testing.T, packs []types.Pack, cycle []string) {
	t.Helper()
	require.GreaterOrEqual(t, len(cycle), 2)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])

	idx := indexByName(packs)
	for i := 0; i+1 < len(cycle); i++ {
		from := packs[idx[cycle[i]]]
		assert.Contains(t, from.Dependencies, cycle[i+1], "%s should depend on %s", cycle[i], cycle[i+1])
	}
}
