// This file implements cycle detection for undirected graphs via a
// parent-threaded depth-first scan of every component.
//
// An edge back to an already-visited vertex proves a cycle — unless it is
// the traversal re-reading the single edge it just arrived by. Because
// adjacency lists store each undirected edge symmetrically, the immediate
// parent is excused exactly once per vertex; any further occurrence is a
// real parallel edge and counts. A self-loop stores two entries in its
// own list, so it is caught the same way.
package dfs

import (
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// DetectCycle reports whether g contains any cycle: a simple cycle of
// length ≥ 3, a parallel edge pair, or a self-loop. All components are
// scanned, so disconnected graphs are covered. A forest yields false.
//
// Complexity: Time O(V+E), Memory O(V).
func DetectCycle(g *core.Graph) (bool, error) {
	cyc, err := FindCycle(g)
	if err != nil {
		return false, err
	}

	return cyc != nil, nil
}

// FindCycle returns one witness cycle as a closed vertex sequence
// [v0, v1, …, v0], or nil when g is acyclic. The witness is the first
// cycle the scan encounters in vertex-index order; a self-loop comes
// back as [v, v] and a parallel edge as [v, w, v].
//
// Complexity: Time O(V+E), Memory O(V).
func FindCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.V()
	f := &cycleFinder{
		graph:   g,
		visited: make([]bool, n),
		parent:  make([]int, n),
	}

	// Launch DFS from each unvisited vertex in index order; the root's
	// initial "parent" is itself.
	for v := 0; v < n; v++ {
		if f.visited[v] {
			continue
		}
		f.parent[v] = v
		cyc, err := f.visit(v, v)
		if err != nil {
			return nil, err
		}
		if cyc != nil {
			return cyc, nil
		}
	}

	return nil, nil
}

// cycleFinder holds the marked set and discovery links of one scan.
type cycleFinder struct {
	graph   *core.Graph
	visited []bool
	parent  []int
}

// visit explores v, which was discovered from parent. It returns the
// first closed cycle found in v's subtree, or nil.
func (f *cycleFinder) visit(v, parent int) ([]int, error) {
	f.visited[v] = true

	neighbors, err := f.graph.Adj(v)
	if err != nil {
		return nil, fmt.Errorf("dfs: Adj(%d): %w", v, err)
	}

	// The discovering edge appears once in v's list as an entry equal to
	// parent; skip that single occurrence only.
	parentExcused := false
	for nbr := range neighbors {
		if nbr == parent && !parentExcused {
			parentExcused = true
			continue
		}
		if !f.visited[nbr] {
			f.parent[nbr] = v
			cyc, err := f.visit(nbr, v)
			if err != nil || cyc != nil {
				return cyc, err
			}
			continue
		}

		// Back-edge to a non-parent marked vertex: in an undirected DFS
		// that vertex is an ancestor of v, so the parent chain closes
		// the cycle.
		return f.closeCycle(v, nbr), nil
	}

	return nil, nil
}

// closeCycle walks discovery links from v up to its ancestor anc and
// emits the closed sequence [anc, …, v, anc].
func (f *cycleFinder) closeCycle(v, anc int) []int {
	var rev []int
	for cur := v; ; cur = f.parent[cur] {
		rev = append(rev, cur)
		if cur == anc {
			break
		}
	}
	cycle := make([]int, 0, len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}

	return append(cycle, anc)
}
