package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsgraph/dijkstra"
)

func newPathCommand() *cobra.Command {
	var maxDistance float64
	cmd := &cobra.Command{
		Use:   "path G FROM TO",
		Short: "Print a cheapest path between two nodes, edge values read as costs",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			from, err := resolveNode(g, args[1])
			if err != nil {
				return err
			}
			to, err := resolveNode(g, args[2])
			if err != nil {
				return err
			}
			opts := []dijkstra.Option{dijkstra.WithContext(cmd.Context())}
			if maxDistance > 0 {
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}
			res, err := dijkstra.Dijkstra(g, from, opts...)
			if err != nil {
				return err
			}
			path, err := res.PathTo(to)
			if err != nil {
				return fmt.Errorf("%s → %s: %w", args[1], args[2], err)
			}
			names := make([]string, len(path))
			for i, n := range path {
				names[i] = nodeName(g, n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", strings.Join(names, " "), res.Dist[to])
			return nil
		},
	}
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "Give up beyond this distance (0 for no limit)")

	return cmd
}
