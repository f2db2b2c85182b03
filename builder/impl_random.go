// SPDX-License-Identifier: MIT
// Package: lsgraph/builder
//
// impl_random.go — RandomSparse and RandomRegular constructors.
//
// Both need cfg.rng (WithSeed / WithRand) and consume it in a fixed order,
// so a seed pins the result.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/mutable"
)

const (
	methodRandomSparse  = "RandomSparse"
	methodRandomRegular = "RandomRegular"

	minRandomNodes          = 1
	maxStubMatchingAttempts = 1000
)

// RandomSparse keeps every ordered pair i→j (i ≠ j unless WithLoops)
// independently with probability p, scanning pairs in row-major order.
// With WithBidirectional each unordered pair is drawn once and mirrored.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *mutable.Graph, cfg builderConfig) error {
		if err := need(methodRandomSparse, g, n, minRandomNodes); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		return batch(methodRandomSparse, g, func(b *mutable.BatchInserter) error {
			for i := 0; i < n; i++ {
				j0 := 0
				if cfg.bidirectional {
					j0 = i
				}
				for j := j0; j < n; j++ {
					if i == j && !cfg.loops {
						continue
					}
					if cfg.rng.Float64() >= p {
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

// RandomRegular builds a graph where every node of 0..n-1 has out- and
// in-degree d, by stub matching with bounded reshuffles. The d out-stubs of
// each node are paired with a shuffled list of in-stubs; a matching with a
// duplicate edge (or a loop without WithLoops) is rejected and reshuffled.
// With WithBidirectional the classic undirected pairing is used instead,
// n·d must be even and WithLoops is ignored.
// Returns ErrConstructFailed when no valid matching is found.
func RandomRegular(n, d int) Constructor {
	return func(g *mutable.Graph, cfg builderConfig) error {
		if err := need(methodRandomRegular, g, n, minRandomNodes); err != nil {
			return err
		}
		loops := cfg.loops && !cfg.bidirectional
		maxDegree := n - 1
		if loops {
			maxDegree = n
		}
		if d < 0 || d > maxDegree {
			return fmt.Errorf("%s: degree must be in [0,%d], got %d: %w", methodRandomRegular, maxDegree, d, ErrTooFewVertices)
		}
		if cfg.bidirectional && (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}
		if d == 0 {
			return nil
		}

		stubs := make([]int, n*d)
		for i := range stubs {
			stubs[i] = i / d
		}
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			pairs, ok := matchStubs(stubs, d, cfg.bidirectional, loops)
			if !ok {
				continue
			}
			cfg.log.Debug("random regular matching found")
			return batch(methodRandomRegular, g, func(b *mutable.BatchInserter) error {
				for _, e := range pairs {
					if err := cfg.emit(b, e[0], e[1]); err != nil {
						return err
					}
				}
				return nil
			})
		}

		return fmt.Errorf("%s: no valid matching after %d attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// matchStubs turns a shuffled stub list into edges. Directed: the k-th
// out-stub (node k/d) takes shuffled[k] as target. Undirected: consecutive
// shuffled stubs form a pair. It reports false on a loop (unless allowed)
// or a repeated edge.
func matchStubs(shuffled []int, d int, undirected, loops bool) ([][2]int, bool) {
	var pairs [][2]int
	if undirected {
		pairs = make([][2]int, 0, len(shuffled)/2)
		for k := 0; k+1 < len(shuffled); k += 2 {
			u, v := shuffled[k], shuffled[k+1]
			if u > v {
				u, v = v, u
			}
			pairs = append(pairs, [2]int{u, v})
		}
	} else {
		pairs = make([][2]int, len(shuffled))
		for k, v := range shuffled {
			pairs[k] = [2]int{k / d, v}
		}
	}

	seen := make(map[[2]int]struct{}, len(pairs))
	for _, e := range pairs {
		if e[0] == e[1] && !loops {
			return nil, false
		}
		if _, dup := seen[e]; dup {
			return nil, false
		}
		seen[e] = struct{}{}
	}

	return pairs, true
}
