package main

import (
	"fmt"
	"io"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/components"
	"github.com/katalvlaran/lsgraph/format"
)

func newExtractSCCCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract-scc IN OUT",
		Short: "Store the subgraph induced by the largest strongly connected component",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := ctxzap.Extract(cmd.Context())
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			comp, err := components.StronglyConnected(g)
			if err != nil {
				return err
			}
			id, size := components.Largest(comp)
			l.Info("strongly connected components",
				zap.Int("count", components.Count(comp)),
				zap.Int("largest", id),
				zap.Int("size", size))
			if err = format.StoreSubgraph(args[1], g, components.Mask(comp, id), format.WithLogger(l)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kept %d of %d nodes\n", size, g.NumNodes())
			return nil
		},
	}
}

func newWCCCommand() *cobra.Command {
	var (
		out    string
		strong bool
	)
	cmd := &cobra.Command{
		Use:   "wcc G",
		Short: "Label weakly (or strongly) connected components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			label := components.WeaklyConnected
			if strong {
				label = components.StronglyConnected
			}
			comp, err := label(g)
			if err != nil {
				return err
			}
			id, size := components.Largest(comp)
			fmt.Fprintf(cmd.OutOrStdout(), "components %d, largest %d with %d nodes\n", components.Count(comp), id, size)
			if out == "" {
				return nil
			}
			return writeText(cmd.OutOrStdout(), out, func(w io.Writer) error {
				for i, c := range comp {
					if _, err := fmt.Fprintf(w, "%s\t%d\n", nodeName(g, i), c); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write node and component id per line to this file")
	cmd.Flags().BoolVar(&strong, "strong", false, "Label strongly connected components instead")

	return cmd
}
