package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/sparse"
)

// cancelEvery is the number of dequeues between context checks.
const cancelEvery = 1024

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph    core.Graph
	dir      Direction
	ctx      context.Context
	maxDepth int
	queue    []queueItem
	head     int
	visited  []bool
	onEnter  func(node, parent, depth int)
	onVisit  func(node, depth int) error
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, core.ErrNodeOutOfRange, ErrOptionViolation,
// adjacency errors, context errors or any hook error.
func BFS(g core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NumNodes()
	if err := core.CheckNode(n, start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	res := &BFSResult{
		Order:  make([]int, 0),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i], res.Parent[i] = -1, -1
	}
	w := &walker{
		graph:    g,
		dir:      o.Direction,
		ctx:      o.Ctx,
		maxDepth: o.MaxDepth,
		visited:  make([]bool, n),
		onEnter: func(node, parent, depth int) {
			res.Depth[node] = depth
			res.Parent[node] = parent
		},
		onVisit: func(node, depth int) error {
			res.Order = append(res.Order, node)
			return o.OnVisit(node, depth)
		},
	}

	return res, w.run(start)
}

// Walk visits every node reachable from start along dir that is not yet
// marked in visited, marking them as it goes, and calls fn with each node
// and its hop distance. Marked nodes act as walls, so successive walks
// over one visited slice partition the graph.
// Complexity: O(reached nodes + their degrees).
func Walk(g core.Graph, start int, dir Direction, visited []bool, fn func(node, depth int) error) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.NumNodes()
	if len(visited) != n {
		return fmt.Errorf("bfs: %d flags for %d nodes: %w", len(visited), n, ErrVisitedSize)
	}
	if err := core.CheckNode(n, start); err != nil {
		return fmt.Errorf("bfs: start: %w", err)
	}
	if visited[start] {
		return nil
	}
	if fn == nil {
		fn = func(int, int) error { return nil }
	}
	w := &walker{graph: g, dir: dir, ctx: context.Background(), visited: visited, onVisit: fn}

	return w.run(start)
}

// run processes the queue until empty, error, or cancellation.
func (w *walker) run(start int) error {
	w.enqueue(start, -1, 0)
	for w.head < len(w.queue) {
		if w.head%cancelEvery == 0 {
			if err := w.ctx.Err(); err != nil {
				return err
			}
		}
		item := w.queue[w.head]
		w.head++
		if err := w.onVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}
		if w.maxDepth > 0 && item.depth >= w.maxDepth {
			continue
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueue marks node visited and appends it to the queue.
func (w *walker) enqueue(node, parent, depth int) {
	w.visited[node] = true
	if w.onEnter != nil {
		w.onEnter(node, parent, depth)
	}
	w.queue = append(w.queue, queueItem{node: node, depth: depth})
}

// enqueueNeighbors enqueues each unseen neighbor of item along w.dir.
func (w *walker) enqueueNeighbors(item queueItem) error {
	var lists [2]sparse.Adjacency
	var err error
	if w.dir == Forward || w.dir == Both {
		if lists[0], err = w.graph.Outgoing(item.node); err != nil {
			return fmt.Errorf("bfs: outgoing of %d: %w", item.node, err)
		}
	}
	if w.dir == Backward || w.dir == Both {
		if lists[1], err = w.graph.Incoming(item.node); err != nil {
			return fmt.Errorf("bfs: incoming of %d: %w", item.node, err)
		}
	}
	for _, l := range lists {
		if l == nil {
			continue
		}
		for p := 0; p < l.Len(); p++ {
			if nb := l.Neighbor(p); !w.visited[nb] {
				w.enqueue(nb, item.node, item.depth+1)
			}
		}
	}

	return nil
}
