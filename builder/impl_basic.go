// SPDX-License-Identifier: MIT
// Package: lsgraph/builder
//
// impl_basic.go — Path, Cycle, Star, Wheel and Complete constructors.
//
// Emission order is fixed and documented per constructor, so the RNG of a
// WeightFn is consumed identically across runs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/mutable"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

// Path emits 0→1→…→n-1 (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *mutable.Graph, cfg builderConfig) error {
		if err := need(methodPath, g, n, minPathNodes); err != nil {
			return err
		}
		return batch(methodPath, g, func(b *mutable.BatchInserter) error {
			for i := 0; i+1 < n; i++ {
				if err := cfg.emit(b, i, i+1); err != nil {
					return err
				}
			}
			return nil
		})
	}
}

// Cycle emits 0→1→…→n-1→0 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *mutable.Graph, cfg builderConfig) error {
		if err := need(methodCycle, g, n, minCycleNodes); err != nil {
			return err
		}
		return batch(methodCycle, g, func(b *mutable.BatchInserter) error {
			return ring(cfg, b, 0, n)
		})
	}
}

// Star emits 0→i for every leaf i in 1..n-1 (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *mutable.Graph, cfg builderConfig) error {
		if err := need(methodStar, g, n, minStarNodes); err != nil {
			return err
		}
		return batch(methodStar, g, func(b *mutable.BatchInserter) error {
			return spokes(cfg, b, n)
		})
	}
}

// Wheel emits a cycle over 1..n-1 followed by the spokes 0→i (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *mutable.Graph, cfg builderConfig) error {
		if err := need(methodWheel, g, n, minWheelNodes); err != nil {
			return err
		}
		return batch(methodWheel, g, func(b *mutable.BatchInserter) error {
			if err := ring(cfg, b, 1, n); err != nil {
				return err
			}
			return spokes(cfg, b, n)
		})
	}
}

// Complete emits every ordered pair i→j, i ≠ j, in row-major order. With
// WithBidirectional each unordered pair is drawn once (i < j) and mirrored.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *mutable.Graph, cfg builderConfig) error {
		if err := need(methodComplete, g, n, minCompleteNodes); err != nil {
			return err
		}
		return batch(methodComplete, g, func(b *mutable.BatchInserter) error {
			for i := 0; i < n; i++ {
				j0 := 0
				if cfg.bidirectional {
					j0 = i + 1
				}
				for j := j0; j < n; j++ {
					if i == j {
						continue
					}
					if err := cfg.emit(b, i, j); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
}

// ring emits lo→lo+1→…→hi-1→lo.
func ring(cfg builderConfig, b *mutable.BatchInserter, lo, hi int) error {
	for i := lo; i < hi; i++ {
		next := i + 1
		if next == hi {
			next = lo
		}
		if err := cfg.emit(b, i, next); err != nil {
			return err
		}
	}

	return nil
}

// spokes emits 0→i for i in 1..n-1.
func spokes(cfg builderConfig, b *mutable.BatchInserter, n int) error {
	for i := 1; i < n; i++ {
		if err := cfg.emit(b, 0, i); err != nil {
			return err
		}
	}

	return nil
}

// batch runs fn inside a batch of g and adds the method name to errors.
func batch(method string, g *mutable.Graph, fn func(b *mutable.BatchInserter) error) error {
	if err := g.WithBatch(fn); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
