package dfs_test

import (
	"testing"

	"github.com/graphkit-go/graphkit/core"
	"github.com/graphkit-go/graphkit/dfs"
)

// chain builds the linear graph 0 – 1 – … – n-1.
func chain(n int) *core.Graph {
	g, _ := core.New(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1)
	}

	return g
}

// BenchmarkDFS_Chain10000 measures recursive DFS over a 10,000-vertex
// chain; each traversal is O(V+E).
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := chain(10_001)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkDFS_IterativeChain10000 measures the explicit-stack mode on
// the same chain for comparison against the recursive baseline.
func BenchmarkDFS_IterativeChain10000(b *testing.B) {
	g := chain(10_001)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0, dfs.WithIterative())
	}
}

// BenchmarkDetectCycle_Grid measures the full-graph scan on a 100×100
// grid, which is saturated with cycles.
func BenchmarkDetectCycle_Grid(b *testing.B) {
	const side = 100
	g, _ := core.New(side * side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			v := y*side + x
			if x+1 < side {
				_ = g.AddEdge(v, v+1)
			}
			if y+1 < side {
				_ = g.AddEdge(v, v+side)
			}
		}
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DetectCycle(g)
	}
}
