package dijkstra

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/sparse"
)

const cancelEvery = 1024

// Dijkstra computes shortest distances from source to every node of g,
// reading edge values as costs.
//
// Validation order: nil graph, source range, option values, then a full
// scan for negative values (ErrNegativeWeight names the first offending
// edge).
func Dijkstra(g core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrGraphNil
	}
	if err := core.CheckNode(g.NumNodes(), source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}
	if cfg.MaxDistance < 0 || math.IsNaN(cfg.MaxDistance) {
		return nil, ErrBadMaxDistance
	}
	if cfg.InfEdgeThreshold <= 0 || math.IsNaN(cfg.InfEdgeThreshold) {
		return nil, ErrBadInfThreshold
	}
	err := core.ForEachEdge(g, func(i, j int, v float64) error {
		if v < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, i, j, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	n := g.NumNodes()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: source,
			Dist:   make([]float64, n),
			Parent: make([]int, n),
		},
		done: make([]bool, n),
		pq:   binaryheap.NewWith(byDistance),
	}
	r.init()
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       core.Graph
	options Options
	res     *Result
	done    []bool
	pq      *binaryheap.Heap
}

type item struct {
	node int
	dist float64
}

func byDistance(a, b interface{}) int {
	x, y := a.(item), b.(item)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	}

	return x.node - y.node
}

func (r *runner) init() {
	for i := range r.res.Dist {
		r.res.Dist[i] = math.Inf(1)
		r.res.Parent[i] = -1
	}
	r.res.Dist[r.res.Source] = 0
	r.pq.Push(item{node: r.res.Source})
}

// process pops the closest unfinished node until the heap empties or the
// closest distance passes MaxDistance.
func (r *runner) process() error {
	for pops := 0; ; pops++ {
		if pops%cancelEvery == 0 {
			if err := r.options.Ctx.Err(); err != nil {
				return err
			}
		}
		top, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		it := top.(item)
		if r.done[it.node] {
			continue
		}
		if it.dist > r.options.MaxDistance {
			return nil
		}
		r.done[it.node] = true
		if err := r.relax(it.node); err != nil {
			return err
		}
	}
}

// relax improves the distances of the neighbors of u, whose distance is
// final.
func (r *runner) relax(u int) error {
	var (
		adj sparse.Adjacency
		err error
	)
	if r.options.Direction == Backward {
		adj, err = r.g.Incoming(u)
	} else {
		adj, err = r.g.Outgoing(u)
	}
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for p := 0; p < adj.Len(); p++ {
		v, w := adj.Neighbor(p), adj.Value(p)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		d := r.res.Dist[u] + w
		if d > r.options.MaxDistance || d >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = d
		r.res.Parent[v] = u
		r.pq.Push(item{node: v, dist: d})
	}

	return nil
}
