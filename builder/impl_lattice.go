// SPDX-License-Identifier: MIT
// Package: lsgraph/builder
//
// impl_lattice.go — CompleteBipartite and Grid constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/mutable"
)

const (
	methodBipartite = "CompleteBipartite"
	methodGrid      = "Grid"

	minPartitionSize = 1
	minGridDim       = 1
)

// CompleteBipartite emits every edge from the left part 0..n1-1 to the
// right part n1..n1+n2-1 (n1, n2 ≥ 1), left index major.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *mutable.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: parts %d and %d must be ≥ %d: %w", methodBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		if err := need(methodBipartite, g, n1+n2, 2*minPartitionSize); err != nil {
			return err
		}
		return batch(methodBipartite, g, func(b *mutable.BatchInserter) error {
			for i := 0; i < n1; i++ {
				for j := n1; j < n1+n2; j++ {
					if err := cfg.emit(b, i, j); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
}

// Grid emits a rows×cols lattice with node r·cols+c linked to its right and
// lower neighbors, in row-major order.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *mutable.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %d×%d below %d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := need(methodGrid, g, rows*cols, minGridDim); err != nil {
			return err
		}
		return batch(methodGrid, g, func(b *mutable.BatchInserter) error {
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					u := r*cols + c
					if c+1 < cols {
						if err := cfg.emit(b, u, u+1); err != nil {
							return err
						}
					}
					if r+1 < rows {
						if err := cfg.emit(b, u, u+cols); err != nil {
							return err
						}
					}
				}
			}
			return nil
		})
	}
}
