package markov

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/vector"
)

// ErrNotConverged is returned by PageRank, together with the last iterate,
// when the iteration bound is reached first.
var ErrNotConverged = errors.New("markov: iteration did not converge")

// InvariantMeasure applies v ← v·G iters times starting from v, which is
// not modified, and returns the result.
func InvariantMeasure(g core.Graph, v vector.Vector, iters int, opts ...Option) (vector.Vector, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	if iters < 0 {
		return nil, fmt.Errorf("InvariantMeasure: %d iterations: %w", iters, core.ErrInvalidArgument)
	}
	cur := slices.Clone(v)
	for it := 0; it < iters; it++ {
		if err = o.ctx.Err(); err != nil {
			return nil, err
		}
		next, err := vector.MulRow(cur, g)
		if err != nil {
			return nil, fmt.Errorf("InvariantMeasure: %w", err)
		}
		diff, _ := next.Distance1(cur)
		hi, _ := next.Max()
		lo, _ := next.Min()
		o.log.Debug("invariant measure step",
			zap.Int("iteration", it+1),
			zap.Float64("sum", next.Sum()),
			zap.Float64("l1_change", diff),
			zap.Float64("max", hi),
			zap.Float64("min", lo))
		cur = next
	}

	return cur, nil
}

// PageRank iterates v ← d·v·G + (1−d)/N from the uniform measure (or
// WithInitial) until max_i |v'[i] − v[i]| / v'[i] falls below the
// threshold. G is used as is: run StochastifyRows first for the classic
// random-surfer model.
func PageRank(g core.Graph, opts ...Option) (vector.Vector, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	n := g.NumNodes()
	if n == 0 {
		return vector.Vector{}, nil
	}
	cur := vector.Uniform(n)
	if o.init != nil {
		if len(o.init) != n {
			return nil, fmt.Errorf("PageRank: initial vector of %d for %d nodes: %w", len(o.init), n, core.ErrSizeMismatch)
		}
		cur = slices.Clone(vector.Vector(o.init))
	}
	teleport := (1 - o.damping) / float64(n)

	for it := 1; it <= o.maxIter; it++ {
		if err = o.ctx.Err(); err != nil {
			return nil, err
		}
		next, err := vector.MulRow(cur, g)
		if err != nil {
			return nil, fmt.Errorf("PageRank: %w", err)
		}
		change := 0.0
		for i := range next {
			next[i] = o.damping*next[i] + teleport
			if r := math.Abs(next[i]-cur[i]) / next[i]; r > change {
				change = r
			}
		}
		o.log.Debug("pagerank step",
			zap.Int("iteration", it),
			zap.Float64("sum", next.Sum()),
			zap.Float64("relative_change", change))
		cur = next
		if change < o.threshold {
			return cur, nil
		}
	}

	return cur, fmt.Errorf("PageRank: %d iterations: %w", o.maxIter, ErrNotConverged)
}

// Rank returns node ids sorted by decreasing score, ties by increasing id.
func Rank(v vector.Vector) []int {
	order := make([]int, len(v))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case v[a] > v[b]:
			return -1
		case v[a] < v[b]:
			return 1
		}
		return 0
	})

	return order
}
