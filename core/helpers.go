package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lsgraph/sparse"
)

// CheckNode returns ErrNodeOutOfRange unless 0 ≤ i < n.
func CheckNode(n, i int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("node %d not in [0,%d): %w", i, n, ErrNodeOutOfRange)
	}

	return nil
}

// HasIncoming reports whether g stores the incoming direction.
func HasIncoming(g Graph) bool {
	if g.NumNodes() == 0 {
		return true
	}
	_, err := g.Incoming(0)

	return !errors.Is(err, ErrNoTranspose)
}

// OutDegree returns the length of the outgoing list of i.
func OutDegree(g Graph, i int) (int, error) {
	a, err := g.Outgoing(i)
	if err != nil {
		return 0, err
	}

	return a.Len(), nil
}

// InDegree returns the length of the incoming list of j.
func InDegree(g Graph, j int) (int, error) {
	a, err := g.Incoming(j)
	if err != nil {
		return 0, err
	}

	return a.Len(), nil
}

// ForEachEdge calls fn for every edge in (source, target) order.
// Iteration stops at the first error, which is returned.
// Complexity: O(N + E).
func ForEachEdge(g Graph, fn func(i, j int, v float64) error) error {
	for i := 0; i < g.NumNodes(); i++ {
		row, err := g.Outgoing(i)
		if err != nil {
			return err
		}
		for p := 0; p < row.Len(); p++ {
			if err = fn(i, row.Neighbor(p), row.Value(p)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Equal reports whether g and h have the same node count and, for every
// node, the same outgoing (neighbor, value) sequence once stored zeros are
// skipped. Labels and the stored directions do not take part.
// Complexity: O(N + E_g + E_h).
func Equal(g, h Graph) (bool, error) {
	if g.NumNodes() != h.NumNodes() {
		return false, nil
	}
	for i := 0; i < g.NumNodes(); i++ {
		a, err := g.Outgoing(i)
		if err != nil {
			return false, fmt.Errorf("Equal: %w", err)
		}
		b, err := h.Outgoing(i)
		if err != nil {
			return false, fmt.Errorf("Equal: %w", err)
		}
		if !sparse.EqualNonZero(a, b) {
			return false, nil
		}
	}

	return true, nil
}
