// Package bipartite tests whether an undirected core.Graph is
// two-colorable and, when it is not, produces an odd-cycle witness.
//
// What:
//
//   - New(g): runs a coloring DFS from every unvisited vertex. Each
//     component's root gets the default color; every newly discovered
//     neighbor gets the opposite color of its discoverer. An edge whose
//     endpoints share a color disproves bipartiteness on the spot.
//   - IsBipartite(): the verdict across all components.
//   - Color(v): the side of the two-coloring v landed on; only meaningful
//     when the graph is bipartite.
//   - OddCycle(): when the check fails, a closed odd-length cycle proving
//     it. Two-coloring succeeds iff no odd cycle exists, so exactly one
//     of Color and OddCycle is informative for a given graph.
//
// Semantics:
//
//	The odd-cycle criterion is checked implicitly by the same-color
//	conflict rule; no cycle lengths are ever computed. A self-loop is an
//	odd cycle of length one, so any looped graph is not bipartite.
//
// Errors:
//
//   - ErrGraphNil               graph pointer is nil
//   - ErrNotBipartite           Color queried on a non-bipartite graph
//   - core.ErrVertexOutOfRange  query vertex outside [0, V)
//
// Complexity:
//
//   - New:     Time O(V+E), Memory O(V)
//   - Queries: O(1); OddCycle O(cycle length) once, cached
package bipartite
