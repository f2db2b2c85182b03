// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, direction selection and
// full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// Node visitation states.
const (
	White = iota // not visited yet
	Gray         // on the stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that TopologicalSort met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrVisitedSize indicates a caller-owned visited slice whose length
	// differs from the node count.
	ErrVisitedSize = errors.New("dfs: visited slice has wrong length")
)

// Direction selects which adjacency view a traversal follows.
type Direction int

const (
	// Forward follows outgoing edges.
	Forward Direction = iota
	// Backward follows incoming edges.
	Backward
	// Both follows outgoing then incoming edges.
	Both
)

// cancelEvery is the number of stack steps between context checks.
const cancelEvery = 1024

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(node int) error

	// OnExit, if non-nil, runs after all descendants of a node are
	// explored (post-order), before the node is appended to Order.
	OnExit func(node int) error

	// Direction picks the adjacency view. Default Forward.
	Direction Direction

	// FullTraversal restarts from every unvisited node in increasing id
	// order, covering the whole graph. Default false.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions with background context, no hooks,
// forward direction and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		Direction:     Forward,
		FullTraversal: false,
	}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(node int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(node int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithDirection selects the adjacency view to follow.
func WithDirection(d Direction) Option {
	return func(o *DFSOptions) { o.Direction = d }
}

// WithFullTraversal enables forest traversal over all nodes.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []int

	// Parent holds the node each node was discovered from, -1 for roots
	// and unvisited nodes.
	Parent []int

	// Visited flags the nodes reached by the traversal.
	Visited []bool
}
