// Package bfs defines tunable options, the Result type, and error
// definitions for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is first discovered (marked and
	// enqueued). Receives the vertex and its depth from the source.
	OnEnqueue func(v, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on first discovery.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of one breadth-first traversal from a fixed
// source. All slices are indexed by vertex; none are mutated after BFS
// returns.
type Result struct {
	// Source is the vertex the search started from.
	Source int

	// Order lists vertices in dequeue (visit) sequence.
	Order []int

	// Visited flags which vertices are reachable from Source.
	Visited []bool

	// Count is the number of vertices visited, including Source.
	Count int

	// Depth maps each vertex to its distance in edges from Source,
	// or -1 when unreached.
	Depth []int

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

// PathTo reconstructs the fewest-edges path Source → … → v by walking
// Parent links backward and reversing. When v is unreachable the result
// is (nil, nil): absence of a path is an ordinary outcome, not an error.
// Returns core.ErrVertexOutOfRange for an invalid index.
// Complexity: O(path length)
func (r *Result) PathTo(v int) ([]int, error) {
	ok, err := r.Reachable(v)
	if err != nil {
		return nil, fmt.Errorf("bfs: PathTo: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var path []int
	for cur := v; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get Source → v
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
