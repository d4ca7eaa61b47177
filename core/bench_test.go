package core_test

import (
	"testing"

	"github.com/graphkit-go/graphkit/core"
)

// BenchmarkAddEdge measures appending edges along a growing ring of
// 100,000 vertices; each iteration rebuilds the ring once.
func BenchmarkAddEdge(b *testing.B) {
	const n = 100_000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, _ := core.New(n)
		for v := 0; v < n; v++ {
			_ = g.AddEdge(v, (v+1)%n)
		}
	}
}

// BenchmarkAdj measures a full neighbor sweep over a star graph, the
// worst case for a single adjacency list.
func BenchmarkAdj(b *testing.B) {
	const n = 100_000
	g, _ := core.New(n)
	for v := 1; v < n; v++ {
		_ = g.AddEdge(0, v)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		seq, _ := g.Adj(0)
		sum := 0
		for w := range seq {
			sum += w
		}
		_ = sum
	}
}
