// Package dfs implements depth-first search (single-source and forest) on
// core.Graph with explicit stack frames.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/sparse"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
	steps int
}

// DFS performs depth-first search on g from start. With WithFullTraversal
// it then restarts from every unvisited node in increasing id order and
// start is ignored.
// Complexity: O(V + E) time, O(V) memory.
func DFS(g core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NumNodes()
	if !o.FullTraversal {
		if err := core.CheckNode(n, start); err != nil {
			return nil, fmt.Errorf("dfs: start: %w", err)
		}
	}

	res := &DFSResult{
		Order:   make([]int, 0, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := range res.Parent {
		res.Parent[i] = -1
	}
	w := &dfsWalker{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		return res, w.traverse(start)
	}
	for v := 0; v < n; v++ {
		if !res.Visited[v] {
			if err := w.traverse(v); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// enter marks node visited, runs OnVisit and pushes its frame.
func (w *dfsWalker) enter(node int) error {
	w.res.Visited[node] = true
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(node); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", node, err)
		}
	}
	var err error
	w.stack, err = push(w.stack, w.graph, w.opts.Direction, node)

	return err
}

// traverse explores everything reachable from root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.enter(root); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		if w.steps++; w.steps%cancelEvery == 0 {
			if err := w.opts.Ctx.Err(); err != nil {
				return err
			}
		}
		top := &w.stack[len(w.stack)-1]
		if nb, ok := top.next(); ok {
			if !w.res.Visited[nb] {
				w.res.Parent[nb] = top.node
				if err := w.enter(nb); err != nil {
					return err
				}
			}
			continue
		}

		node := top.node
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(node); err != nil {
				w.res.Order = nil
				return fmt.Errorf("dfs: OnExit hook for %d: %w", node, err)
			}
		}
		w.res.Order = append(w.res.Order, node)
	}

	return nil
}

// Reach marks every node reachable from root along direction d in visited
// and calls fn once per newly marked node, root included. Nodes already
// marked are treated as walls. len(visited) must equal g.NumNodes().
// Complexity: O(reached nodes + their degrees).
func Reach(g core.Graph, root int, d Direction, visited []bool, fn func(node int)) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.NumNodes()
	if len(visited) != n {
		return fmt.Errorf("dfs: %d flags for %d nodes: %w", len(visited), n, ErrVisitedSize)
	}
	if err := core.CheckNode(n, root); err != nil {
		return fmt.Errorf("dfs: root: %w", err)
	}
	if visited[root] {
		return nil
	}

	stack := []int{root}
	visited[root] = true
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fn != nil {
			fn(node)
		}
		a, b, err := neighborLists(g, d, node)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %d: %w", node, err)
		}
		for _, l := range [2]sparse.Adjacency{a, b} {
			if l == nil {
				continue
			}
			for p := 0; p < l.Len(); p++ {
				if nb := l.Neighbor(p); !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}

	return nil
}
