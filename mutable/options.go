// SPDX-License-Identifier: MIT
// Package: lsgraph/mutable
//
// options.go — functional options for New, FromGraph, Restrict and ReadEdgeList.

package mutable

import "go.uber.org/zap"

// Option customizes a Graph at construction.
type Option func(*options)

type options struct {
	log      *zap.Logger
	capacity int
}

func newOptions(opts ...Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger attaches l for debug-level diagnostics. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithEdgeCapacity preallocates the value arena for n edges.
// Panics on a negative n.
func WithEdgeCapacity(n int) Option {
	if n < 0 {
		panic("mutable: WithEdgeCapacity(n<0)")
	}
	return func(o *options) { o.capacity = n }
}
