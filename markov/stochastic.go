package markov

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/sparse"
)

// StochastifyRows divides every outgoing list by its sum so that each
// nonzero row sums to 1. Rows summing to 0 are left as they are.
func StochastifyRows(g core.Graph) error {
	for i := 0; i < g.NumNodes(); i++ {
		row, err := g.Outgoing(i)
		if err != nil {
			return fmt.Errorf("StochastifyRows: %w", err)
		}
		if err = normalize(row); err != nil {
			return fmt.Errorf("StochastifyRows: row %d: %w", i, err)
		}
	}

	return nil
}

// StochastifyColumns is StochastifyRows over incoming lists.
func StochastifyColumns(g core.Graph) error {
	for j := 0; j < g.NumNodes(); j++ {
		col, err := g.Incoming(j)
		if err != nil {
			return fmt.Errorf("StochastifyColumns: %w", err)
		}
		if err = normalize(col); err != nil {
			return fmt.Errorf("StochastifyColumns: column %d: %w", j, err)
		}
	}

	return nil
}

func normalize(a sparse.Adjacency) error {
	s := 0.0
	for p := 0; p < a.Len(); p++ {
		s += a.Value(p)
	}
	if s == 0 {
		return nil
	}
	for p := 0; p < a.Len(); p++ {
		if err := a.SetValue(p, a.Value(p)/s); err != nil {
			return err
		}
	}

	return nil
}
