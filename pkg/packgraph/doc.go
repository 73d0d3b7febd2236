// Package packgraph validates the dependency relation between packs.
//
// The graph is built from the flat pack list produced by the descriptor
// loader. CheckDependencies walks it depth first with three-colour visit
// state and reports:
//
//   - a dependency naming a pack that does not exist (fails fast)
//   - any cycle, self dependencies included (after the walk completes)
//
// Visit state is kept in a slice indexed by pack position and discarded when
// the call returns, so a pack list can be checked any number of times and by
// concurrent callers. The walk uses an explicit stack rather than recursion,
// visiting nodes in exactly the order a recursive walk would.
package packgraph
