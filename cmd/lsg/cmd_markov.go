package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/markov"
	"github.com/katalvlaran/lsgraph/vector"
)

func newInvariantCommand() *cobra.Command {
	var initPath string
	cmd := &cobra.Command{
		Use:   "invariant G ITERS OUT",
		Short: "Iterate v ← v·G ITERS times and store the resulting vector",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := ctxzap.Extract(cmd.Context())
			iters, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("iterations %q: %w", args[1], err)
			}
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			start := vector.Uniform(g.NumNodes())
			if initPath != "" {
				if start, err = vector.Load(initPath); err != nil {
					return err
				}
			}
			m, err := markov.InvariantMeasure(g, start, iters,
				markov.WithContext(cmd.Context()),
				markov.WithLogger(l))
			if err != nil {
				return err
			}
			hi, at := m.Max()
			l.Info("invariant measure",
				zap.Float64("sum", m.Sum()),
				zap.Float64("max", hi),
				zap.Int("argmax", at))

			return vector.Store(args[2], m)
		},
	}
	cmd.Flags().StringVar(&initPath, "init", "", "Binary start vector (default uniform)")

	return cmd
}

func newPageRankCommand() *cobra.Command {
	var (
		damping    float64
		threshold  float64
		maxIter    int
		vectorPath string
	)
	cmd := &cobra.Command{
		Use:   "pagerank G OUT",
		Short: "Compute PageRank and write label, score and rank per node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := ctxzap.Extract(cmd.Context())
			g, err := openGraph(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			defer g.Close()

			pr, err := markov.PageRank(g,
				markov.WithContext(cmd.Context()),
				markov.WithLogger(l),
				markov.WithDamping(damping),
				markov.WithThreshold(threshold),
				markov.WithMaxIterations(maxIter))
			switch {
			case errors.Is(err, markov.ErrNotConverged):
				l.Warn("pagerank did not converge, writing last iterate", zap.Error(err))
			case err != nil:
				return err
			}

			rank := make([]int, len(pr))
			for pos, node := range markov.Rank(pr) {
				rank[node] = pos + 1
			}
			if vectorPath != "" {
				if err = vector.Store(vectorPath, pr); err != nil {
					return err
				}
			}
			return writeText(cmd.OutOrStdout(), args[1], func(w io.Writer) error {
				for i, score := range pr {
					if _, err := fmt.Fprintf(w, "%s\t%.10e\t%d\n", nodeName(g, i), score, rank[i]); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&damping, "damping", markov.DefaultDamping, "Damping factor in [0, 1]")
	f.Float64Var(&threshold, "threshold", markov.DefaultThreshold, "Stop when the largest relative change falls below this")
	f.IntVar(&maxIter, "max-iterations", markov.DefaultMaxIterations, "Iteration bound")
	f.StringVar(&vectorPath, "vector", "", "Also store the scores as a binary vector")

	return cmd
}
