// Package core defines the central Graph type for undirected graphs over
// integer vertex indices, and provides primitives for building, loading,
// and querying adjacency structure.
//
// What:
//
//   - Graph: V vertices fixed at construction, identified by indices in
//     [0, V); edges stored as symmetric adjacency lists in insertion order.
//     Self-loops and parallel edges are permitted and never deduplicated.
//   - New(v): an empty graph with v vertices and zero edges.
//   - NewFromReader(r): loads the plain serialized format — vertex count V,
//     edge count E, then E whitespace-delimited (v, w) pairs.
//   - AddEdge, Adj, AdjacentIDs, Degree, HasVertex, V, E, String.
//
// Why:
//   - Dense integer indices map every per-vertex attribute (visited flags,
//     parent links, component ids, colors) to a plain slice, which is what
//     all analyzer packages in this module build on.
//
// Concurrency:
//
//	Graph carries no internal locking. Build it fully, then hand it to any
//	number of concurrent readers; a concurrent AddEdge during a read is
//	undefined behavior and must be prevented by the caller.
//
// Errors:
//
//	ErrVertexOutOfRange    - a vertex argument is outside [0, V).
//	ErrNegativeVertexCount - New was given a negative vertex count.
//	ErrMalformedInput      - NewFromReader hit a truncated or invalid stream.
//
// Complexity:
//
//	AddEdge O(1) amortized; Adj iteration O(degree); loading O(V+E).
package core
