package neighborhood

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/sparse"
)

// Direction letters accepted by DirectedSphere.
const (
	ForwardStep  = 'F'
	BackwardStep = 'B'
)

// DirectedSphere returns the nodes reached from node by following dir, one
// letter per hop, every one mapped to 1. An empty dir yields {node}.
// Letters other than F and B fail with core.ErrInvalidArgument.
func DirectedSphere(g core.Graph, node int, dir string) (*sparse.Map, error) {
	if err := core.CheckNode(g.NumNodes(), node); err != nil {
		return nil, fmt.Errorf("DirectedSphere: %w", err)
	}
	for _, c := range dir {
		if c != ForwardStep && c != BackwardStep {
			return nil, fmt.Errorf("DirectedSphere: direction %q: %w", dir, core.ErrInvalidArgument)
		}
	}

	cur := sparse.NewMap()
	cur.Put(node, 1)
	for _, c := range dir {
		next := sparse.NewMap()
		for _, i := range cur.Keys() {
			var row sparse.Adjacency
			var err error
			if c == ForwardStep {
				row, err = g.Outgoing(i)
			} else {
				row, err = g.Incoming(i)
			}
			if err != nil {
				return nil, fmt.Errorf("DirectedSphere: node %d: %w", i, err)
			}
			for p := 0; p < row.Len(); p++ {
				next.Put(row.Neighbor(p), 1)
			}
		}
		cur = next
	}

	return cur, nil
}

// TFIDF returns the outgoing row of node with each value v toward j scaled
// by log(N / indegree(j)).
func TFIDF(g core.Graph, node int) (*sparse.Map, error) {
	row, err := g.Outgoing(node)
	if err != nil {
		return nil, fmt.Errorf("TFIDF: %w", err)
	}
	n := float64(g.NumNodes())
	out := sparse.NewMap()
	for p := 0; p < row.Len(); p++ {
		j := row.Neighbor(p)
		deg, err := core.InDegree(g, j)
		if err != nil {
			return nil, fmt.Errorf("TFIDF: indegree of %d: %w", j, err)
		}
		out.Put(j, row.Value(p)*math.Log(n/float64(deg)))
	}

	return out, nil
}

// Cosine returns the cosine similarity of the TF-IDF rows of a and b.
func Cosine(g core.Graph, a, b int) (float64, error) {
	ra, err := TFIDF(g, a)
	if err != nil {
		return 0, err
	}
	rb, err := TFIDF(g, b)
	if err != nil {
		return 0, err
	}

	return sparse.Cos2(ra, rb), nil
}
