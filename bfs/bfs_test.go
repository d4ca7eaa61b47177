package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/graphkit-go/graphkit/bfs"
	"github.com/graphkit-go/graphkit/core"
)

// buildGraph is a test helper assembling a graph from edge pairs.
func buildGraph(t *testing.T, v int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.New(v)
	if err != nil {
		t.Fatalf("New(%d): %v", v, err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", e[0], e[1], err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// source out of range
	g := buildGraph(t, 2, nil)
	if _, err := bfs.BFS(g, 2); !errors.Is(err, core.ErrVertexOutOfRange) {
		t.Errorf("bad source: want ErrVertexOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(g, -1); !errors.Is(err, core.ErrVertexOutOfRange) {
		t.Errorf("negative source: want ErrVertexOutOfRange, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := buildGraph(t, 1, nil)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Count != 1 {
		t.Errorf("Count = %d; want 1", res.Count)
	}
	if res.Depth[0] != 0 || res.Parent[0] != -1 {
		t.Errorf("source state = depth %d parent %d; want 0, -1", res.Depth[0], res.Parent[0])
	}
}

// TestBFS_SquareDepths checks layer-by-layer discovery on the 4-cycle.
func TestBFS_SquareDepths(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	// insertion order fixes the visit sequence exactly: 0, then 1 and 3, then 2
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range []int{0, 1, 2, 1} {
		if res.Depth[v] != want {
			t.Errorf("Depth[%d] = %d; want %d", v, res.Depth[v], want)
		}
	}
	if res.Count != 4 {
		t.Errorf("Count = %d; want 4", res.Count)
	}
}

// TestBFS_MarksExactlyReachable ensures traversal stays inside the
// source's component.
func TestBFS_MarksExactlyReachable(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantVisited := []bool{true, true, true, false, false}
	if !reflect.DeepEqual(res.Visited, wantVisited) {
		t.Errorf("Visited = %v; want %v", res.Visited, wantVisited)
	}
	if res.Count != 3 {
		t.Errorf("Count = %d; want 3", res.Count)
	}
	for _, v := range []int{3, 4} {
		if res.Depth[v] != -1 || res.Parent[v] != -1 {
			t.Errorf("unreached %d: depth %d parent %d; want -1, -1", v, res.Depth[v], res.Parent[v])
		}
	}
}

// TestBFS_PathTo covers the path-graph scenario: shortest path from 0 to
// 3 on 0–1–2–3, the trivial source path, and absent paths.
func TestBFS_PathTo(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}

	path, err := res.PathTo(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(3) = %v; want %v", path, want)
	}

	// source path is the single-vertex sequence
	if path, _ = res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo(0) = %v; want [0]", path)
	}

	// unreachable vertex: nil path, nil error
	path, err = res.PathTo(4)
	if err != nil || path != nil {
		t.Errorf("PathTo(4) = %v, %v; want nil, nil", path, err)
	}

	// out-of-range query is an error
	if _, err = res.PathTo(5); !errors.Is(err, core.ErrVertexOutOfRange) {
		t.Errorf("PathTo(5): want ErrVertexOutOfRange, got %v", err)
	}
}

// TestBFS_ShortestOverLongAlternative gives BFS a long detour and a
// short cut and asserts the parent tree takes the cut.
func TestBFS_ShortestOverLongAlternative(t *testing.T) {
	// 0–1–2–3–4 chain plus shortcut 0–4
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(4)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(4) = %v; want %v", path, want)
	}
	if res.Depth[4] != 1 {
		t.Errorf("Depth[4] = %d; want 1", res.Depth[4])
	}
}

// TestBFS_SelfLoopAndParallelDedup ensures loops and parallel edges do
// not enqueue a vertex twice or inflate Count.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 0}, {0, 1}, {0, 1}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Count != 2 {
		t.Errorf("Count = %d; want 2", res.Count)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit),
// and oversized depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_Hooks asserts the enqueue/dequeue/visit hooks fire with the
// expected vertices and depths.
func TestBFS_Hooks(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})

	type event struct{ v, d int }
	var enq, deq, vis []event

	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, event{v, d}) }),
		bfs.WithOnDequeue(func(v, d int) { deq = append(deq, event{v, d}) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, event{v, d}); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := []event{{0, 0}, {1, 1}, {2, 2}}
	if !reflect.DeepEqual(enq, want) {
		t.Errorf("OnEnqueue events = %v; want %v", enq, want)
	}
	if !reflect.DeepEqual(deq, want) {
		t.Errorf("OnDequeue events = %v; want %v", deq, want)
	}
	if !reflect.DeepEqual(vis, want) {
		t.Errorf("OnVisit events = %v; want %v", vis, want)
	}
}

// TestBFS_OnVisitAbort propagates a hook error and stops the search.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	boom := errors.New("boom")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped boom, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS.
func TestBFS_Cancellation(t *testing.T) {
	g := buildGraph(t, 101, nil)
	for i := 0; i < 100; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			t.Fatal(err)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety runs two searches over the same frozen graph
// to confirm result state is not shared.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, 0); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
