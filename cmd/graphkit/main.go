// Command graphkit is the driver program for the graphkit library: it
// owns argument parsing, input-stream acquisition, and result
// formatting, keeping the library packages free of any I/O surface.
//
// Graphs are read in the plain serialized format (vertex count, edge
// count, then edge pairs) from a file or stdin:
//
//	graphkit stats -i tiny.txt
//	cat tiny.txt | graphkit path --source 0 --target 3
//	graphkit components -i tiny.txt
//	graphkit cycle -i tiny.txt
//	graphkit bipartite -i tiny.txt
package main

import "os"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
