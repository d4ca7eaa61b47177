package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphkit-go/graphkit/core"
)

var inputPath string

// NewRootCmd assembles the graphkit command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "graphkit",
		Short:         "Analyze undirected graphs: paths, components, cycles, bipartiteness",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-",
		"graph file in V/E/pairs format, or - for stdin")

	rootCmd.AddCommand(
		NewStatsCmd(),
		NewPathCmd(),
		NewComponentsCmd(),
		NewCycleCmd(),
		NewBipartiteCmd(),
	)

	return rootCmd
}

// loadGraph reads the graph named by --input, treating "-" as stdin.
func loadGraph() (*core.Graph, error) {
	if inputPath == "-" {
		return core.NewFromReader(os.Stdin)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer f.Close()

	g, err := core.NewFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", inputPath, err)
	}

	return g, nil
}

// NewStatsCmd prints the vertex/edge summary and adjacency listing.
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Print vertex count, edge count, and adjacency lists",
		Args:    cobra.NoArgs,
		Example: `graphkit stats -i tiny.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), g)

			return nil
		},
	}
}
