package dfs

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/sparse"
)

// neighborLists returns the adjacency lists of node in direction d; the
// second list is nil unless d is Both.
func neighborLists(g core.Graph, d Direction, node int) (sparse.Adjacency, sparse.Adjacency, error) {
	switch d {
	case Forward:
		a, err := g.Outgoing(node)
		return a, nil, err
	case Backward:
		a, err := g.Incoming(node)
		return a, nil, err
	case Both:
		a, err := g.Outgoing(node)
		if err != nil {
			return nil, nil, err
		}
		b, err := g.Incoming(node)
		return a, b, err
	default:
		return nil, nil, fmt.Errorf("dfs: direction %d: %w", d, core.ErrInvalidArgument)
	}
}

// frame is one level of the explicit DFS stack.
type frame struct {
	node int
	a, b sparse.Adjacency
	pos  int
}

// next advances the cursor and returns the next neighbor, or false when
// both lists of the frame are exhausted.
func (f *frame) next() (int, bool) {
	if f.pos < f.a.Len() {
		f.pos++
		return f.a.Neighbor(f.pos - 1), true
	}
	if f.b == nil {
		return 0, false
	}
	if k := f.pos - f.a.Len(); k < f.b.Len() {
		f.pos++
		return f.b.Neighbor(k), true
	}

	return 0, false
}

// push builds the frame of node.
func push(stack []frame, g core.Graph, d Direction, node int) ([]frame, error) {
	a, b, err := neighborLists(g, d, node)
	if err != nil {
		return stack, fmt.Errorf("dfs: neighbors of %d: %w", node, err)
	}

	return append(stack, frame{node: node, a: a, b: b}), nil
}
