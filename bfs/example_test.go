package bfs_test

import (
	"fmt"

	"github.com/graphkit-go/graphkit/bfs"
	"github.com/graphkit-go/graphkit/core"
)

// ExampleBFS demonstrates a breadth-first traversal of the square graph.
// Graph structure:
//
//	0───1
//	│   │
//	3───2
//
// Starting at 0, layer by layer: 0, then 1 and 3, then 2.
func ExampleBFS() {
	g, _ := core.New(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("order:", res.Order)
	fmt.Println("depth of 2:", res.Depth[2])

	// Output:
	// order: [0 1 3 2]
	// depth of 2: 2
}

// ExampleResult_PathTo reconstructs a fewest-edges path on a chain with
// a shortcut. The direct edge 0–4 wins over the four-edge chain.
func ExampleResult_PathTo() {
	g, _ := core.New(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(4)
	fmt.Println(path)

	// An unreachable vertex yields a nil path and no error.
	isolated, _ := core.New(2)
	res2, _ := bfs.BFS(isolated, 0)
	path2, err := res2.PathTo(1)
	fmt.Println(path2 == nil, err == nil)

	// Output:
	// [0 4]
	// true true
}
