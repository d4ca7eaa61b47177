// Package bfs implements the breadth-first traversal loop.
package bfs

import (
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from source, applying any
// number of functional Options. Vertices are marked on first discovery,
// so each is enqueued at most once even across parallel edges and
// self-loops.
// Returns ErrGraphNil for a nil graph, core.ErrVertexOutOfRange for an
// invalid source, ErrOptionViolation for bad options, or any error
// produced by an OnVisit hook or a cancelled context.
func BFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d not in [0, %d)", core.ErrVertexOutOfRange, source, g.V())
	}

	// Prepare per-vertex state; Depth and Parent use -1 as "unreached"
	n := g.V()
	res := &Result{
		Source:  source,
		Order:   make([]int, 0, n),
		Visited: make([]bool, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}

	w := &walker{graph: g, opts: o, queue: make([]queueItem, 0, n), res: res}

	// Seed queue with the source (no parent)
	w.enqueue(source, 0, -1)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, fires
// OnEnqueue, and appends v to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order, bumps Count, and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	w.res.Count++
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors scans item's adjacency in insertion order, applies
// MaxDepth, and enqueues each vertex not seen before.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Adj(item.v)
	if err != nil {
		return fmt.Errorf("bfs: Adj(%d): %w", item.v, err)
	}
	for nbr := range neighbors {
		if !w.res.Visited[nbr] {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}

	return nil
}
