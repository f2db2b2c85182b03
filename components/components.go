package components

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lsgraph/bfs"
	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/dfs"
	"github.com/katalvlaran/lsgraph/mutable"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrUnlabeled is returned when a labeling still holds the 0 id.
	ErrUnlabeled = errors.New("components: node without component id")
)

// withIncoming returns g itself when it stores incoming lists, otherwise a
// mutable copy.
func withIncoming(g core.Graph) (core.Graph, error) {
	if core.HasIncoming(g) {
		return g, nil
	}
	m, err := mutable.FromGraph(g)
	if err != nil {
		return nil, fmt.Errorf("components: copy for incoming lists: %w", err)
	}

	return m, nil
}

// StronglyConnected labels the strongly connected components of g. Ids are
// 1, 2, 3, … in the order components are discovered by the second pass,
// which takes nodes by decreasing DFS finish time.
func StronglyConnected(g core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g, err := withIncoming(g)
	if err != nil {
		return nil, err
	}
	n := g.NumNodes()
	comp := make([]int, n)
	if n == 0 {
		return comp, nil
	}

	res, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	if err != nil {
		return nil, fmt.Errorf("StronglyConnected: finish order: %w", err)
	}
	visited := make([]bool, n)
	id := 0
	for k := len(res.Order) - 1; k >= 0; k-- {
		root := res.Order[k]
		if visited[root] {
			continue
		}
		id++
		err = dfs.Reach(g, root, dfs.Backward, visited, func(node int) {
			comp[node] = id
		})
		if err != nil {
			return nil, fmt.Errorf("StronglyConnected: reverse pass: %w", err)
		}
	}

	return comp, nil
}

// WeaklyConnected labels the weakly connected components of g, assigning
// fresh ids to unlabeled nodes in increasing node order.
func WeaklyConnected(g core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g, err := withIncoming(g)
	if err != nil {
		return nil, err
	}
	n := g.NumNodes()
	comp := make([]int, n)
	visited := make([]bool, n)
	id := 0
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		id++
		err = bfs.Walk(g, root, bfs.Both, visited, func(node, _ int) error {
			comp[node] = id
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("WeaklyConnected: %w", err)
		}
	}

	return comp, nil
}

// Condensation builds the component graph: node c-1 stands for component
// c, and a value-1 edge A→B exists iff some edge of g leads from component
// A to a different component B.
// Returns core.ErrSizeMismatch when len(comp) != g.NumNodes() and
// ErrUnlabeled when a node has id 0.
func Condensation(g core.Graph, comp []int, opts ...mutable.Option) (*mutable.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(comp) != g.NumNodes() {
		return nil, fmt.Errorf("Condensation: %d ids for %d nodes: %w", len(comp), g.NumNodes(), core.ErrSizeMismatch)
	}
	for i, c := range comp {
		if c <= 0 {
			return nil, fmt.Errorf("Condensation: node %d: %w", i, ErrUnlabeled)
		}
	}

	dag, err := mutable.New(Count(comp), opts...)
	if err != nil {
		return nil, err
	}
	err = dag.WithBatch(func(b *mutable.BatchInserter) error {
		return core.ForEachEdge(g, func(i, j int, _ float64) error {
			if comp[i] == comp[j] {
				return nil
			}
			return b.Add(comp[i]-1, comp[j]-1, 1)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("Condensation: %w", err)
	}

	return dag, nil
}
