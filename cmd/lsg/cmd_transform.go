package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsgraph/format"
	"github.com/katalvlaran/lsgraph/internal/fsutil"
	"github.com/katalvlaran/lsgraph/markov"
	"github.com/katalvlaran/lsgraph/vector"
)

// copyFile replaces dst with a copy of src.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	return fsutil.WriteAtomic(dst, func(f *os.File) error {
		_, err := io.Copy(f, in)
		return err
	})
}

func newAugmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "augment IN OUT",
		Short: "Store G ∪ Gᵀ, adding missing reverse edges with value 0",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			return format.StoreWithAddedTranspose(args[1], g, format.WithLogger(ctxzap.Extract(cmd.Context())))
		},
	}
}

func newTransposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose G",
		Short: "Reverse every edge of a graph file in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGraph(cmd.Context(), args[0], true)
			if err != nil {
				return err
			}
			if err = g.Transpose(); err != nil {
				_ = g.Close()
				return err
			}
			if err = g.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "transposed %s\n", args[0])
			return nil
		},
	}
}

func newNormalizeCommand() *cobra.Command {
	var columns bool
	cmd := &cobra.Command{
		Use:   "normalize IN OUT",
		Short: "Copy a graph and make its rows (or columns) sum to one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := copyFile(args[0], args[1]); err != nil {
				return err
			}
			g, err := openGraph(cmd.Context(), args[1], true)
			if err != nil {
				return err
			}
			stochastify := markov.StochastifyRows
			if columns {
				stochastify = markov.StochastifyColumns
			}
			if err = stochastify(g); err != nil {
				_ = g.Close()
				return err
			}

			return g.Close()
		},
	}
	cmd.Flags().BoolVar(&columns, "columns", false, "Normalize columns instead of rows")

	return cmd
}

func newIDFCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "idf IN MEASURE OUT",
		Short: "Store the random walk reweighted by −log MEASURE of each edge target",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := vector.Load(args[1])
			if err != nil {
				return err
			}
			if err = copyFile(args[0], args[2]); err != nil {
				return err
			}
			g, err := openGraph(cmd.Context(), args[2], true)
			if err != nil {
				return err
			}
			if err = markov.IDFWalk(g, m); err != nil {
				_ = g.Close()
				return err
			}

			return g.Close()
		},
	}
}

func newSymmetrizeCommand() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "symmetrize IN MEASURE OUT",
		Short: "Store the reversible (or time-reversed) chain of a graph with invariant measure MEASURE",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := vector.Load(args[1])
			if err != nil {
				return err
			}
			if reverse {
				err = copyFile(args[0], args[2])
			} else {
				err = func() error {
					src, err := openGraph(cmd.Context(), args[0], false)
					if err != nil {
						return err
					}
					defer src.Close()
					return format.StoreWithAddedTranspose(args[2], src, format.WithLogger(ctxzap.Extract(cmd.Context())))
				}()
			}
			if err != nil {
				return err
			}

			g, err := openGraph(cmd.Context(), args[2], true)
			if err != nil {
				return err
			}
			if reverse {
				err = markov.Reverse(g, m)
			} else {
				err = markov.Symmetrize(g, m)
			}
			if err != nil {
				_ = g.Close()
				return err
			}

			return g.Close()
		},
	}
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Store the time reversal instead of the symmetrization")

	return cmd
}
