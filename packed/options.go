// SPDX-License-Identifier: MIT
// Package: lsgraph/packed
//
// options.go — functional options for Open.

package packed

import "go.uber.org/zap"

// Option customizes Open.
type Option func(*options)

type options struct {
	readOnly bool
	lock     bool
	verify   bool
	log      *zap.Logger
}

// WithReadOnly maps the file read-only; every mutation then returns
// core.ErrUnsupported.
func WithReadOnly() Option {
	return func(o *options) { o.readOnly = true }
}

// WithExclusiveLock takes a non-blocking advisory exclusive lock on the file
// for the lifetime of the Graph. Open fails with ErrLocked when another
// holder exists.
func WithExclusiveLock() Option {
	return func(o *options) { o.lock = true }
}

// WithVerify checks every adjacency entry at Open: neighbors in range,
// lists strictly increasing, slots below the edge count. It costs O(E).
func WithVerify() Option {
	return func(o *options) { o.verify = true }
}

// WithLogger attaches l for debug-level diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
