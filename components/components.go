// Package components implements the connected-components analyzer.
package components

import (
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to New.
var ErrGraphNil = errors.New("components: graph is nil")

// Components holds the frozen partition of one graph snapshot. It is
// computed entirely by New and safe for concurrent reads afterward.
type Components struct {
	id     []int   // id[v] = dense component label of v
	groups [][]int // groups[c] = members of component c in discovery order
}

// New analyzes g: vertices are scanned in index order, and each vertex
// not reached by an earlier traversal seeds a new component collected by
// breadth-first expansion.
// Returns ErrGraphNil for a nil graph.
// Complexity: O(V+E)
func New(g *core.Graph) (*Components, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.V()
	c := &Components{id: make([]int, n)}
	for v := 0; v < n; v++ {
		c.id[v] = -1
	}

	for v := 0; v < n; v++ {
		if c.id[v] >= 0 {
			continue
		}
		if err := c.collect(g, v, len(c.groups)); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// collect labels everything reachable from seed with the component id
// label, appending the member list to groups.
func (c *Components) collect(g *core.Graph, seed, label int) error {
	queue := []int{seed}
	c.id[seed] = label
	var members []int

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		members = append(members, u)

		neighbors, err := g.Adj(u)
		if err != nil {
			return fmt.Errorf("components: Adj(%d): %w", u, err)
		}
		for nbr := range neighbors {
			if c.id[nbr] < 0 {
				c.id[nbr] = label
				queue = append(queue, nbr)
			}
		}
	}
	c.groups = append(c.groups, members)

	return nil
}

// Count returns the number of connected components.
// Complexity: O(1)
func (c *Components) Count() int { return len(c.groups) }

// ID returns the dense component label of v.
// Returns core.ErrVertexOutOfRange for an invalid index.
// Complexity: O(1)
func (c *Components) ID(v int) (int, error) {
	if v < 0 || v >= len(c.id) {
		return 0, fmt.Errorf("%w: vertex %d not in [0, %d)", core.ErrVertexOutOfRange, v, len(c.id))
	}

	return c.id[v], nil
}

// Connected reports whether v and w share a component, i.e. whether any
// path joins them in the graph.
// Returns core.ErrVertexOutOfRange for an invalid index.
// Complexity: O(1)
func (c *Components) Connected(v, w int) (bool, error) {
	iv, err := c.ID(v)
	if err != nil {
		return false, err
	}
	iw, err := c.ID(w)
	if err != nil {
		return false, err
	}

	return iv == iw, nil
}

// Sizes returns the member count of each component, indexed by label.
// The returned slice is a fresh copy.
// Complexity: O(#components)
func (c *Components) Sizes() []int {
	sizes := make([]int, len(c.groups))
	for label, members := range c.groups {
		sizes[label] = len(members)
	}

	return sizes
}

// Groups returns the full partition: one member slice per component,
// indexed by label, members in discovery order. The outer and inner
// slices are fresh copies.
// Complexity: O(V)
func (c *Components) Groups() [][]int {
	out := make([][]int, len(c.groups))
	for label, members := range c.groups {
		out[label] = append([]int(nil), members...)
	}

	return out
}
