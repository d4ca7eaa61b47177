package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphkit-go/graphkit/bfs"
	"github.com/graphkit-go/graphkit/dfs"
)

// NewPathCmd reports a path between two vertices, rendered as
// "s → … → v". BFS (the default) yields a fewest-edges path; DFS yields
// whatever the traversal tree contains.
func NewPathCmd() *cobra.Command {
	var (
		source int
		target int
		algo   string
	)
	pathCmd := &cobra.Command{
		Use:     "path",
		Short:   "Find a path between two vertices",
		Args:    cobra.NoArgs,
		Example: `graphkit path -i tiny.txt --source 0 --target 3 --algo bfs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}

			var path []int
			switch algo {
			case "bfs":
				res, err := bfs.BFS(g, source)
				if err != nil {
					return err
				}
				path, err = res.PathTo(target)
				if err != nil {
					return err
				}
			case "dfs":
				res, err := dfs.DFS(g, source)
				if err != nil {
					return err
				}
				path, err = res.PathTo(target)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown --algo %q: choose bfs or dfs", algo)
			}

			if path == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "no path from %d to %d\n", source, target)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPath(path))

			return nil
		},
	}
	pathCmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex")
	pathCmd.Flags().IntVarP(&target, "target", "t", 0, "target vertex")
	pathCmd.Flags().StringVar(&algo, "algo", "bfs", "traversal to use: bfs (shortest) or dfs")

	return pathCmd
}

// formatPath renders vertices joined by arrows: "0 → 1 → 2".
func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " → ")
}
