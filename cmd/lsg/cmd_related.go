package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsgraph/neighborhood"
)

func newRelatedCommand() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "related G NODE",
		Short: "List the nodes most similar to NODE by TF-IDF cosine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			n, err := resolveNode(g, args[1])
			if err != nil {
				return err
			}
			scores, err := neighborhood.Related(g, n, top)
			if err != nil {
				return err
			}
			for _, s := range scores {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.6f\n", nodeName(g, s.Node), s.Value)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "k", 10, "Number of results, 0 for all")

	return cmd
}
