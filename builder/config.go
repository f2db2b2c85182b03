// SPDX-License-Identifier: MIT
// Package: lsgraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng           = nil                (deterministic unless seeded)
//   • weightFn      = DefaultWeightFn    (constant 1)
//   • labelFn       = nil                (no labels)
//   • bidirectional = false
//   • loops         = false

package builder

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/mutable"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	rng           *rand.Rand
	weightFn      WeightFn
	labelFn       LabelFn
	bidirectional bool
	loops         bool
	log           *zap.Logger
}

// newBuilderConfig applies opts in order over the defaults; later options
// win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// emit adds i→j (and j→i when bidirectional) with one drawn weight.
func (cfg builderConfig) emit(b *mutable.BatchInserter, i, j int) error {
	w := cfg.weightFn(cfg.rng)
	if err := b.Add(i, j, w); err != nil {
		return err
	}
	if cfg.bidirectional && i != j {
		return b.Add(j, i, w)
	}

	return nil
}
