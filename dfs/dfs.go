package dfs

import (
	"fmt"

	"github.com/graphkit-go/graphkit/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from source, applying any number
// of functional Options. Each vertex is marked on first discovery, so
// traversal terminates even on cyclic graphs.
// Returns ErrGraphNil for a nil graph, core.ErrVertexOutOfRange for an
// invalid source, or any error produced by a hook or cancelled context.
func DFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d not in [0, %d)", core.ErrVertexOutOfRange, source, g.V())
	}

	n := g.V()
	res := &Result{
		Source:  source,
		Order:   make([]int, 0, n),
		Visited: make([]bool, n),
		Parent:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Parent[v] = -1
	}

	w := &walker{graph: g, opts: o, res: res}
	if o.Iterative {
		return res, w.traverseIterative(source)
	}

	return res, w.traverse(source)
}

// discover marks v, records it in pre-order, and fires OnVisit.
func (w *walker) discover(v int) error {
	w.res.Visited[v] = true
	w.res.Order = append(w.res.Order, v)
	w.res.Count++
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	return nil
}

// exit fires the post-order hook for v.
func (w *walker) exit(v int) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	return nil
}

// traverse visits v recursively: mark, then recurse into each unvisited
// neighbor in insertion order before returning to siblings.
func (w *walker) traverse(v int) error {
	// cancellation check once per call
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if err := w.discover(v); err != nil {
		return err
	}

	neighbors, err := w.graph.Adj(v)
	if err != nil {
		return fmt.Errorf("dfs: Adj(%d): %w", v, err)
	}
	for nbr := range neighbors {
		if !w.res.Visited[nbr] {
			w.res.Parent[nbr] = v
			if err = w.traverse(nbr); err != nil {
				return err
			}
		}
	}

	return w.exit(v)
}

// frame is one explicit-stack record: a vertex plus a cursor into its
// neighbor list.
type frame struct {
	v    int
	nbrs []int
	next int
}

// traverseIterative replays the recursive algorithm on a heap-allocated
// stack of frames, preserving discovery and exit order exactly.
func (w *walker) traverseIterative(source int) error {
	push := func(stack []frame, v int) ([]frame, error) {
		if err := w.discover(v); err != nil {
			return stack, err
		}
		nbrs, err := w.graph.AdjacentIDs(v)
		if err != nil {
			return stack, fmt.Errorf("dfs: AdjacentIDs(%d): %w", v, err)
		}

		return append(stack, frame{v: v, nbrs: nbrs}), nil
	}

	stack, err := push(make([]frame, 0, w.graph.V()), source)
	if err != nil {
		return err
	}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next < len(top.nbrs) {
			nbr := top.nbrs[top.next]
			top.next++
			if !w.res.Visited[nbr] {
				w.res.Parent[nbr] = top.v
				if stack, err = push(stack, nbr); err != nil {
					return err
				}
			}
			continue
		}

		// all neighbors explored: post-order point
		if err = w.exit(top.v); err != nil {
			return err
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}
