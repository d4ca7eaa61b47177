// Package bfs provides breadth-first search over a core.Graph, returning
// the reachable set, visit order, unweighted shortest-path distances, and
// parent links for path reconstruction.
//
// BFS explores vertices in non-decreasing distance from the source: a
// vertex at distance k+1 is discovered only after every vertex at
// distance ≤ k has been dequeued. The parent tree therefore yields a
// fewest-edges path from the source to every reached vertex — the
// property Result.PathTo relies on.
//
// Options (functional, safe defaults):
//
//   - WithContext(ctx)     cancellation via context.Context
//   - WithOnEnqueue(fn)    hook on first discovery (mark + enqueue)
//   - WithOnDequeue(fn)    hook right before visiting
//   - WithOnVisit(fn)      visiting hook; an error aborts the search
//   - WithMaxDepth(d)      stop exploring beyond depth d (>0; 0 = no limit)
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - core.ErrVertexOutOfRange  source or query vertex outside [0, V)
//   - ErrOptionViolation     invalid option value (e.g. negative MaxDepth)
//   - context.Canceled       the supplied context was cancelled
//
// Complexity:
//
//   - Time:   O(degree-sum of reached vertices), ≤ O(V+E)
//   - Memory: O(V) for the queue and per-vertex state
package bfs
