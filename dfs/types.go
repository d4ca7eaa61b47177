// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-/post-order hooks, and the iterative
// explicit-stack mode.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
// DetectCycle, or FindCycle.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, source, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the traversal early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all of a vertex's descendants
	// have been explored (post-order). Returning an error aborts traversal.
	OnExit func(v int) error

	// Iterative switches the traversal to an explicit stack of frames.
	// The marked set, parent links, and sibling order are identical to
	// the recursive form; only stack depth behavior differs, which is the
	// standard mitigation for deep-path graphs.
	Iterative bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - Recursive traversal (Iterative = false)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnVisit:   nil,
		OnExit:    nil,
		Iterative: false,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithIterative returns an Option that switches DFS to the
// explicit-stack implementation.
func WithIterative() Option {
	return func(o *Options) {
		o.Iterative = true
	}
}

// Result captures the outcome of one depth-first traversal from a fixed
// source. All slices are indexed by vertex; none are mutated after DFS
// returns.
type Result struct {
	// Source is the vertex the search started from.
	Source int

	// Order records vertices in discovery (pre-order) sequence.
	Order []int

	// Visited flags which vertices are reachable from Source.
	Visited []bool

	// Count is the number of vertices visited, including Source.
	Count int

	// Parent maps each vertex to the vertex that first discovered it,
	// or -1 for Source and for unreached vertices.
	Parent []int
}

// Reachable reports whether v was marked during the traversal.
// Returns core.ErrVertexOutOfRange for an invalid index.
func (r *Result) Reachable(v int) (bool, error) {
	if v < 0 || v >= len(r.Visited) {
		return false, fmt.Errorf("%w: vertex %d not in [0, %d)", core.ErrVertexOutOfRange, v, len(r.Visited))
	}

	return r.Visited[v], nil
}

// PathTo reconstructs a path Source → … → v by walking Parent links
// backward and reversing. The path follows the DFS tree: it is always a
// valid simple path but carries no fewest-edges guarantee (use bfs for
// that). When v is unreachable the result is (nil, nil): absence of a
// path is an ordinary outcome, not an error.
// Returns core.ErrVertexOutOfRange for an invalid index.
// Complexity: O(path length)
func (r *Result) PathTo(v int) ([]int, error) {
	ok, err := r.Reachable(v)
	if err != nil {
		return nil, fmt.Errorf("dfs: PathTo: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var path []int
	for cur := v; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
