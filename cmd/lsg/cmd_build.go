package main

import (
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/format"
	"github.com/katalvlaran/lsgraph/mutable"
	"github.com/katalvlaran/lsgraph/vector"
)

func newBuildCommand() *cobra.Command {
	var (
		labelsPath   string
		outgoingOnly bool
		noValues     bool
	)
	cmd := &cobra.Command{
		Use:   "build EDGES OUT",
		Short: "Build a graph file from a text edge list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := ctxzap.Extract(cmd.Context())

			r, err := openText(args[0])
			if err != nil {
				return err
			}
			g, err := mutable.ReadEdgeList(r, mutable.WithLogger(l))
			_ = r.Close()
			if err != nil {
				return err
			}
			if labelsPath != "" {
				labels, err := readLabels(labelsPath, g.NumNodes())
				if err != nil {
					return err
				}
				if err = g.SetLabels(labels); err != nil {
					return err
				}
			}

			opts := []format.Option{format.WithLogger(l)}
			if outgoingOnly {
				opts = append(opts, format.WithOutgoingOnly())
			}
			if noValues {
				opts = append(opts, format.WithoutValues())
			}
			if err = format.StoreFull(args[1], g, opts...); err != nil {
				return err
			}
			l.Info("graph stored",
				zap.String("path", args[1]),
				zap.Int("nodes", g.NumNodes()),
				zap.Int("edges", g.NumEdges()))
			return nil
		},
	}
	cmd.Flags().StringVar(&labelsPath, "labels", "", "File with one node label per line")
	cmd.Flags().BoolVar(&outgoingOnly, "outgoing-only", false, "Do not store the incoming direction")
	cmd.Flags().BoolVar(&noValues, "no-values", false, "Do not store edge values")

	return cmd
}

func newText2VecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "text2vec TEXT OUT",
		Short: "Convert a whitespace-separated text vector to the binary vector format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openText(args[0])
			if err != nil {
				return err
			}
			defer r.Close()
			v, err := vector.ReadText(r)
			if err != nil {
				return err
			}
			if err = vector.Store(args[1], v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d values\n", len(v))
			return nil
		},
	}
}
