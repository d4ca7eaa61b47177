// Package components partitions an undirected core.Graph into its
// connected components and answers connectivity queries in constant time.
//
// What:
//
//   - New(g): one pass over the graph — every vertex not yet marked seeds
//     a traversal, and everything that traversal reaches receives the
//     current component id. Ids are dense, starting at 0, assigned in
//     the discovery order of the seeding vertices.
//   - Count, ID, Connected, Sizes, Groups: read-only queries over the
//     frozen partition.
//
// Why:
//   - Connected(v, w) reduces "does a path exist?" to an integer
//     comparison, after a single O(V+E) preprocessing pass.
//
// Invariant:
//
//	The id assignment partitions all V vertices into exactly Count()
//	disjoint, non-empty groups; two vertices share a component iff the
//	graph contains a path between them.
//
// Errors:
//
//   - ErrGraphNil               graph pointer is nil
//   - core.ErrVertexOutOfRange  query vertex outside [0, V)
//
// Complexity:
//
//   - New:     Time O(V+E), Memory O(V)
//   - Queries: O(1); Sizes O(#components), Groups O(V)
package components
