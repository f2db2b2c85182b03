package vector

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/core"
)

// MulRow returns the row-vector product v·G: out[j] = Σ_i v[i]·G(i,j),
// walking the outgoing lists of the nonzero entries of v.
// Complexity: O(N + edges leaving the support of v).
func MulRow(v Vector, g core.Graph) (Vector, error) {
	n := g.NumNodes()
	if len(v) != n {
		return nil, fmt.Errorf("MulRow: vector of %d for %d nodes: %w", len(v), n, core.ErrSizeMismatch)
	}
	out := New(n)
	for i, x := range v {
		if x == 0 {
			continue
		}
		row, err := g.Outgoing(i)
		if err != nil {
			return nil, fmt.Errorf("MulRow: %w", err)
		}
		for p := 0; p < row.Len(); p++ {
			out[row.Neighbor(p)] += x * row.Value(p)
		}
	}

	return out, nil
}

// MulColumn returns the column-vector product G·v: out[i] = Σ_j G(i,j)·v[j],
// walking the incoming lists of the nonzero entries of v. Fails with
// core.ErrNoTranspose when g has no incoming direction.
// Complexity: O(N + edges entering the support of v).
func MulColumn(g core.Graph, v Vector) (Vector, error) {
	n := g.NumNodes()
	if len(v) != n {
		return nil, fmt.Errorf("MulColumn: vector of %d for %d nodes: %w", len(v), n, core.ErrSizeMismatch)
	}
	out := New(n)
	for j, x := range v {
		if x == 0 {
			continue
		}
		col, err := g.Incoming(j)
		if err != nil {
			return nil, fmt.Errorf("MulColumn: %w", err)
		}
		for p := 0; p < col.Len(); p++ {
			out[col.Neighbor(p)] += col.Value(p) * x
		}
	}

	return out, nil
}
