package markov

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/vector"
)

// Symmetrize turns g, a chain with invariant probability measure m, into
// the reversible chain with the same invariant measure:
//
//	G'(i,j) = (G(i,j) + G(j,i)·m[j]/m[i]) / 2,  G'(j,i) = G'(i,j)·m[i]/m[j].
//
// The reverse of every edge must already exist in stores that cannot
// insert (see format.StoreWithAddedTranspose); m must be positive on every
// node with an edge.
func Symmetrize(g core.Graph, m vector.Vector) error {
	if err := checkMeasure(g, m); err != nil {
		return fmt.Errorf("Symmetrize: %w", err)
	}
	for i := 0; i < g.NumNodes(); i++ {
		row, err := g.Outgoing(i)
		if err != nil {
			return fmt.Errorf("Symmetrize: %w", err)
		}
		for p := 0; p < row.Len(); p++ {
			j := row.Neighbor(p)
			back, err := g.At(j, i)
			if err != nil {
				return fmt.Errorf("Symmetrize: %w", err)
			}
			v := 0.5 * (row.Value(p) + back*m[j]/m[i])
			if err = row.SetValue(p, v); err != nil {
				return fmt.Errorf("Symmetrize: %d→%d: %w", i, j, err)
			}
			if err = g.Set(j, i, v*m[i]/m[j]); err != nil {
				return fmt.Errorf("Symmetrize: %d→%d: %w", j, i, err)
			}
		}
	}

	return nil
}

// Reverse transposes g in place and reweights it into the time reversal of
// the chain: G'(i,j) = G(j,i)·m[j]/m[i]. m must be an invariant measure of
// g, positive on every node with an edge.
func Reverse(g core.Graph, m vector.Vector) error {
	if err := checkMeasure(g, m); err != nil {
		return fmt.Errorf("Reverse: %w", err)
	}
	if err := g.Transpose(); err != nil {
		return fmt.Errorf("Reverse: %w", err)
	}
	for i := 0; i < g.NumNodes(); i++ {
		row, err := g.Outgoing(i)
		if err != nil {
			return fmt.Errorf("Reverse: %w", err)
		}
		for p := 0; p < row.Len(); p++ {
			j := row.Neighbor(p)
			if err = row.SetValue(p, row.Value(p)*m[j]/m[i]); err != nil {
				return fmt.Errorf("Reverse: %d→%d: %w", i, j, err)
			}
		}
	}

	return nil
}

func checkMeasure(g core.Graph, m vector.Vector) error {
	if len(m) != g.NumNodes() {
		return fmt.Errorf("measure of %d for %d nodes: %w", len(m), g.NumNodes(), core.ErrSizeMismatch)
	}

	return core.ForEachEdge(g, func(i, j int, _ float64) error {
		if m[i] <= 0 || m[j] <= 0 {
			return fmt.Errorf("edge %d→%d touches a node of measure 0: %w", i, j, core.ErrInvalidArgument)
		}
		return nil
	})
}
