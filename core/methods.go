package core

import (
	"fmt"
	"iter"
	"strings"
)

// V returns the number of vertices.
// Complexity: O(1)
func (g *Graph) V() int { return len(g.adj) }

// E returns the number of edges added so far. Each AddEdge call counts
// as exactly one edge, including self-loops and parallel edges.
// Complexity: O(1)
func (g *Graph) E() int { return g.e }

// HasVertex reports whether v is a valid vertex index of this graph.
// Complexity: O(1)
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// checkVertex returns a wrapped ErrVertexOutOfRange when v is invalid.
func (g *Graph) checkVertex(v int) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.adj))
	}

	return nil
}

// AddEdge inserts the undirected edge v–w: w is appended to v's adjacency
// list and v to w's, and E grows by one. Both appends happen before
// AddEdge returns, so the symmetric-adjacency invariant holds between
// calls. Self-loops (v == w) and parallel edges are allowed.
// Returns ErrVertexOutOfRange if either endpoint is invalid; on error the
// graph is left unchanged.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(v, w int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if err := g.checkVertex(w); err != nil {
		return err
	}

	g.adj[v] = append(g.adj[v], w)
	g.adj[w] = append(g.adj[w], v)
	g.e++

	return nil
}

// Adj returns a lazy, restartable sequence over v's neighbors in
// insertion order, including duplicates from parallel edges. The sequence
// reads the live adjacency list: do not mutate the graph while ranging.
// Returns ErrVertexOutOfRange if v is invalid.
// Complexity: O(1); iterating the sequence is O(degree(v))
func (g *Graph) Adj(v int) (iter.Seq[int], error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	neighbors := g.adj[v]

	return func(yield func(int) bool) {
		for _, w := range neighbors {
			if !yield(w) {
				return
			}
		}
	}, nil
}

// AdjacentIDs returns a fresh copy of v's neighbor list in insertion
// order. Callers may modify the returned slice freely.
// Complexity: O(degree(v))
func (g *Graph) AdjacentIDs(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return append([]int(nil), g.adj[v]...), nil
}

// Degree returns the number of entries in v's adjacency list. A self-loop
// contributes two.
// Complexity: O(1)
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// String renders the graph as a vertex/edge summary followed by one
// adjacency line per vertex, mirroring the serialized input order.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d vertices, %d edges\n", len(g.adj), g.e)
	for v, nbrs := range g.adj {
		fmt.Fprintf(&sb, "%d:", v)
		for _, w := range nbrs {
			fmt.Fprintf(&sb, " %d", w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
