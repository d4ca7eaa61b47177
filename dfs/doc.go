// Package dfs implements depth-first search and cycle detection on a
// core.Graph.
//
// What:
//
//   - DFS(g, source, opts...): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks with error aborts
//   - Cancellation via context.Context
//   - An explicit-stack iterative rewrite (WithIterative) that marks the
//     same vertex set and visits siblings in the same insertion order as
//     the recursive form
//   - DetectCycle / FindCycle: forest-wide DFS that threads each call's
//     immediate parent to tell a genuine back-edge from the trivial
//     reverse traversal of the discovering edge. The parent is excused
//     exactly once per vertex, so a second parallel edge to the parent,
//     or a self-loop, still registers as a cycle.
//
// Why:
//   - Reachability and path reconstruction where shortest paths are not
//     required (see Result.PathTo)
//   - Acyclicity checks: a forest satisfies E == V − #components, and
//     DetectCycle reports false on exactly those graphs
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - Options: holds Ctx, OnVisit, OnExit, Iterative
//   - Result: Order (pre-order), Visited, Count, Parent
//
// Complexity:
//
//   - DFS:         Time O(V+E), Memory O(V)
//   - DetectCycle: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil               graph pointer is nil
//   - core.ErrVertexOutOfRange  invalid source or query vertex
//   - context.Canceled          traversal cancelled via context
//   - hook errors               propagated from OnVisit or OnExit
package dfs
