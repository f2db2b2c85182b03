package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/vector"
)

// IDFWalk reweights every edge i→j by the information content −log m[j]
// of its target under the measure m, then stochastifies the rows. Targets
// with m[j] = 1 get weight 0; m[j] must be positive on every edge target.
func IDFWalk(g core.Graph, m vector.Vector) error {
	if len(m) != g.NumNodes() {
		return fmt.Errorf("IDFWalk: measure of %d for %d nodes: %w", len(m), g.NumNodes(), core.ErrSizeMismatch)
	}
	for i := 0; i < g.NumNodes(); i++ {
		row, err := g.Outgoing(i)
		if err != nil {
			return fmt.Errorf("IDFWalk: %w", err)
		}
		for p := 0; p < row.Len(); p++ {
			j := row.Neighbor(p)
			if m[j] <= 0 {
				return fmt.Errorf("IDFWalk: edge %d→%d targets a node of measure 0: %w", i, j, core.ErrInvalidArgument)
			}
			if err = row.SetValue(p, -row.Value(p)*math.Log(m[j])); err != nil {
				return fmt.Errorf("IDFWalk: %d→%d: %w", i, j, err)
			}
		}
	}
	if err := StochastifyRows(g); err != nil {
		return fmt.Errorf("IDFWalk: %w", err)
	}

	return nil
}
