// SPDX-License-Identifier: MIT
// Package: lsgraph/format
//
// options.go — functional options shared by the writers.

package format

import "go.uber.org/zap"

// Option customizes a writer.
type Option func(*options)

type options struct {
	outgoingOnly bool
	noValues     bool
	log          *zap.Logger
}

func newOptions(opts ...Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithOutgoingOnly omits the incoming direction. The resulting file cannot
// be transposed and answers Incoming with core.ErrNoTranspose.
// StoreWithAddedTranspose ignores it.
func WithOutgoingOnly() Option {
	return func(o *options) { o.outgoingOnly = true }
}

// WithoutValues drops edge values; every edge of the file then reads as 1.
// StoreWithAddedTranspose ignores it.
func WithoutValues() Option {
	return func(o *options) { o.noValues = true }
}

// WithLogger attaches l for debug-level progress logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
