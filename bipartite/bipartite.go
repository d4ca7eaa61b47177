// Package bipartite implements the two-coloring checker.
package bipartite

import (
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for the bipartite checker.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to New.
	ErrGraphNil = errors.New("bipartite: graph is nil")

	// ErrNotBipartite is returned by Color when the graph failed the
	// two-coloring check; use OddCycle for the witness instead.
	ErrNotBipartite = errors.New("bipartite: graph is not two-colorable")
)

// Checker holds the outcome of one two-coloring pass. It is computed
// entirely by New and safe for concurrent reads afterward.
type Checker struct {
	ok       bool
	color    []bool // valid for all vertices when ok
	visited  []bool
	parent   []int
	oddCycle []int // closed witness when !ok
}

// New colors g component by component: each component root (taken in
// vertex-index order) receives the default color false, and discovery
// flips the color at every edge. The first same-color adjacency stops
// the scan and is kept as the odd-cycle witness.
// Returns ErrGraphNil for a nil graph.
// Complexity: O(V+E)
func New(g *core.Graph) (*Checker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.V()
	c := &Checker{
		ok:      true,
		color:   make([]bool, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		c.parent[v] = -1
	}

	for v := 0; v < n && c.ok; v++ {
		if !c.visited[v] {
			if err := c.visit(g, v); err != nil {
				return nil, err
			}
		}
	}
	// discovery state is only needed while scanning
	c.visited = nil
	c.parent = nil

	return c, nil
}

// visit colors v's component depth-first. On a same-color conflict it
// records the witness and flips ok; the scan unwinds immediately.
func (c *Checker) visit(g *core.Graph, v int) error {
	c.visited[v] = true

	neighbors, err := g.Adj(v)
	if err != nil {
		return fmt.Errorf("bipartite: Adj(%d): %w", v, err)
	}
	for nbr := range neighbors {
		if !c.visited[nbr] {
			c.parent[nbr] = v
			c.color[nbr] = !c.color[v]
			if err = c.visit(g, nbr); err != nil {
				return err
			}
			if !c.ok {
				return nil
			}
			continue
		}
		if c.color[nbr] == c.color[v] {
			// Same-color adjacency: the tree path v → nbr plus this edge
			// closes an odd cycle. nbr is an ancestor of v (or v itself
			// for a self-loop), so parent links reach it.
			c.ok = false
			c.oddCycle = c.witness(v, nbr)

			return nil
		}
	}

	return nil
}

// witness walks discovery links from v up to anc and emits the closed
// odd cycle [anc, …, v, anc].
func (c *Checker) witness(v, anc int) []int {
	var rev []int
	for cur := v; ; cur = c.parent[cur] {
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

// IsBipartite reports whether no same-color adjacency was found in any
// component.
// Complexity: O(1)
func (c *Checker) IsBipartite() bool { return c.ok }

// Color returns which side of the two-coloring v belongs to. Colors are
// relative to each component's root, which is always false.
// Returns ErrNotBipartite when the check failed, or
// core.ErrVertexOutOfRange for an invalid index.
// Complexity: O(1)
func (c *Checker) Color(v int) (bool, error) {
	if !c.ok {
		return false, ErrNotBipartite
	}
	if v < 0 || v >= len(c.color) {
		return false, fmt.Errorf("%w: vertex %d not in [0, %d)", core.ErrVertexOutOfRange, v, len(c.color))
	}

	return c.color[v], nil
}

// OddCycle returns the closed odd-length cycle that disproved
// bipartiteness, or nil when the graph is bipartite. The returned slice
// is a fresh copy.
// Complexity: O(cycle length)
func (c *Checker) OddCycle() []int {
	if c.ok {
		return nil
	}

	return append([]int(nil), c.oddCycle...)
}
