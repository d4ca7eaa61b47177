// Package graphkit is an in-memory toolkit for building and analyzing
// undirected graphs over dense integer vertex indices.
//
// 🚀 What is graphkit?
//
//	A small, focused library that brings together:
//		• Core primitives: fixed-size vertex sets, symmetric adjacency lists,
//		  stream loading from a plain integer format
//		• Traversals: BFS (shortest paths in edges), DFS (recursive & iterative)
//		• Path reconstruction: parent-link walks from any traversal
//		• Connectivity: connected-components partitioning with O(1) queries
//		• Structure checks: cycle detection, bipartite (two-coloring) test
//
// ✨ Why choose graphkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – insertion-order adjacency makes every run reproducible
//   - Extensible – functional options and hooks (OnVisit, OnEnqueue…) on
//     every traversal
//
// Everything is organized under small subpackages:
//
//	core/       — the Graph type, adjacency storage, stream loading
//	bfs/        — breadth-first search with depth and parent tracking
//	dfs/        — depth-first search plus cycle detection
//	components/ — connected-components analyzer
//	bipartite/  — two-colorability checker with odd-cycle witness
//	cmd/        — the graphkit command-line driver
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	represents a square with four vertices and four edges: an even cycle,
//	so it is cyclic yet bipartite, and forms a single component.
//
// Dive into the per-package documentation for contracts, complexity notes,
// and runnable examples.
package graphkit
