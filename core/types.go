// This file declares the Graph type, its sentinel errors, and the New
// constructor.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex argument outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeVertexCount indicates New was called with v < 0.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrMalformedInput indicates NewFromReader encountered a truncated
	// stream, a non-integer token, or an out-of-range edge endpoint.
	ErrMalformedInput = errors.New("core: malformed graph stream")
)

// Graph is an undirected graph over the fixed vertex set {0, …, V-1}.
//
// Each vertex owns an adjacency list holding its neighbors in the order
// the edges were added; AddEdge appends to both endpoints atomically, so
// the adjacency relation is always symmetric. Parallel edges and
// self-loops are stored as-is (a self-loop contributes two entries to its
// vertex's own list).
//
// Graph is not safe for concurrent mutation; see the package documentation.
type Graph struct {
	adj [][]int // adj[v] lists v's neighbors in insertion order
	e   int     // edge count, incremented once per AddEdge
}

// New creates a Graph with v vertices and no edges.
// Returns ErrNegativeVertexCount if v < 0.
// Complexity: O(v)
func New(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeVertexCount, v)
	}

	return &Graph{adj: make([][]int, v)}, nil
}
