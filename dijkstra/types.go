package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates that a nil graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates a negative edge value.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero or negative InfEdgeThreshold, which
	// would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable is returned by PathTo for nodes the search never reached.
	ErrUnreachable = errors.New("dijkstra: node not reachable")
)

// Direction selects the adjacency lists the search relaxes.
type Direction int

const (
	// Forward relaxes outgoing edges: distances from the source.
	Forward Direction = iota
	// Backward relaxes incoming edges: distances to the source.
	Backward
)

// Options configures Dijkstra.
//
// MaxDistance      – nodes whose distance would exceed it stay unreached.
// InfEdgeThreshold – edges with value ≥ it are skipped.
type Options struct {
	Ctx              context.Context
	Direction        Direction
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns the defaults: forward, background context, no
// distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Direction:        Forward,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithContext sets a cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects Forward or Backward relaxation.
func WithDirection(d Direction) Option {
	return func(o *Options) { o.Direction = d }
}

// WithMaxDistance caps the explored distance. Negative values make
// Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats edges with value ≥ threshold as impassable.
// Values ≤ 0 make Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// Result holds the outcome of a search. Dist[i] is +Inf and Parent[i] is -1
// for nodes never reached; Parent[source] is -1.
type Result struct {
	Source int
	Dist   []float64
	Parent []int
}

// Reached reports whether node i was reached.
func (r *Result) Reached(i int) bool {
	return i >= 0 && i < len(r.Dist) && !math.IsInf(r.Dist[i], 1)
}

// PathTo returns the nodes of a shortest path from the source to dest, in
// search order.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, ErrUnreachable
	}
	var path []int
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
