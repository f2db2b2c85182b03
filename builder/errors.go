// SPDX-License-Identifier: MIT
// Package: lsgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the constructor minimum, or larger than the target graph.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor run without an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts, or
// was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
