// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrVisitedSize is returned when a caller-owned visited slice does not
	// match the node count.
	ErrVisitedSize = errors.New("bfs: visited slice has wrong length")
)

// Direction selects which adjacency view BFS follows.
type Direction int

const (
	// Forward follows outgoing edges.
	Forward Direction = iota
	// Backward follows incoming edges.
	Backward
	// Both follows outgoing and incoming edges, i.e. the underlying
	// undirected graph.
	Both
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Direction picks the adjacency view. Default Forward.
	Direction Direction

	err error
}

// DefaultOptions returns a BFSOptions with background context, no depth
// limit, forward direction and a no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
		Direction: Forward,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithDirection selects the adjacency view to follow.
func WithDirection(d Direction) Option {
	return func(o *BFSOptions) {
		if d < Forward || d > Both {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes in visit sequence.
//   - Depth: hop distance from the start, -1 for unreached nodes.
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached nodes.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// PathTo reconstructs the path from the start node to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
