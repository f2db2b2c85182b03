// SPDX-License-Identifier: MIT
// Package: lsgraph/builder
//
// api.go — public entry point for the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/mutable"
)

// Constructor overlays a deterministic set of edges on g using the resolved
// builderConfig. Constructors validate their parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *mutable.Graph, cfg builderConfig) error

// BuildGraph creates an n-node mutable graph, resolves the configuration
// from bopts and applies all constructors in order. The first constructor
// error is returned wrapped as "BuildGraph: %w".
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*mutable.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g, err := mutable.New(n, mutable.WithLogger(cfg.log))
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if cfg.labelFn != nil {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = cfg.labelFn(i)
		}
		if err = g.SetLabels(labels); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// need checks that a constructor spanning k ≥ min nodes fits into g.
func need(method string, g *mutable.Graph, k, min int) error {
	if k < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, k, min, ErrTooFewVertices)
	}
	if k > g.NumNodes() {
		return fmt.Errorf("%s: %d nodes do not fit a graph of %d: %w", method, k, g.NumNodes(), ErrTooFewVertices)
	}

	return nil
}
