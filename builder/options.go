// SPDX-License-Identifier: MIT
// Package: lsgraph/builder
//
// options.go — functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs (nil
// functions, nil RNG). Constructors themselves never panic.

package builder

import (
	"math/rand"

	"go.uber.org/zap"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge value generator. It receives the
// (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithLabels names every node of the built graph with fn. Panics on nil.
func WithLabels(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabels(nil)")
	}
	return func(c *builderConfig) { c.labelFn = fn }
}

// WithBidirectional emits both directions of every generated edge.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) { c.bidirectional = true }
}

// WithLoops lets RandomSparse and RandomRegular draw self-loops.
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}

// WithLogger attaches l; BuildGraph hands it to the graph it creates.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(c *builderConfig) {
		if l != nil {
			c.log = l
		}
	}
}
