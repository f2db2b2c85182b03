// SPDX-License-Identifier: MIT
// Package: lsgraph/markov
//
// options.go — functional options for the iterative routines.

package markov

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/core"
)

// Defaults of PageRank.
const (
	DefaultDamping       = 0.85
	DefaultThreshold     = 0.01
	DefaultMaxIterations = 1000
)

// Option configures InvariantMeasure and PageRank.
type Option func(*options)

type options struct {
	ctx       context.Context
	log       *zap.Logger
	damping   float64
	threshold float64
	maxIter   int
	init      []float64
	err       error
}

func newOptions(opts ...Option) (options, error) {
	o := options{
		ctx:       context.Background(),
		log:       zap.NewNop(),
		damping:   DefaultDamping,
		threshold: DefaultThreshold,
		maxIter:   DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext lets the caller cancel a long iteration between steps.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger attaches l for per-iteration debug logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithDamping sets the PageRank damping factor, in (0, 1].
func WithDamping(d float64) Option {
	return func(o *options) {
		if d <= 0 || d > 1 {
			o.err = fmt.Errorf("markov: damping %v not in (0,1]: %w", d, core.ErrInvalidArgument)
			return
		}
		o.damping = d
	}
}

// WithThreshold sets the PageRank stopping threshold on the largest
// relative change of an entry between two iterations.
func WithThreshold(t float64) Option {
	return func(o *options) {
		if t <= 0 {
			o.err = fmt.Errorf("markov: threshold %v must be positive: %w", t, core.ErrInvalidArgument)
			return
		}
		o.threshold = t
	}
}

// WithMaxIterations bounds PageRank; reaching the bound yields
// ErrNotConverged alongside the last iterate.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("markov: max iterations %d must be positive: %w", n, core.ErrInvalidArgument)
			return
		}
		o.maxIter = n
	}
}

// WithInitial starts PageRank from v instead of the uniform measure.
func WithInitial(v []float64) Option {
	return func(o *options) { o.init = v }
}
