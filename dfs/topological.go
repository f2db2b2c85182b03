package dfs

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/core"
)

// TopologicalSort returns the nodes of g ordered so that every edge u→v has
// u before v, or ErrCycleDetected when g has a cycle (self-loops included).
// Ties are broken by node id through the forest traversal order.
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g core.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumNodes()
	state := make([]uint8, n)
	order := make([]int, 0, n)
	var stack []frame
	var err error
	steps := 0
	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		if stack, err = push(stack, g, Forward, root); err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			if steps++; steps%cancelEvery == 0 {
				if err = o.Ctx.Err(); err != nil {
					return nil, err
				}
			}
			top := &stack[len(stack)-1]
			nb, ok := top.next()
			if !ok {
				state[top.node] = Black
				order = append(order, top.node)
				stack = stack[:len(stack)-1]
				continue
			}
			switch state[nb] {
			case Gray:
				return nil, fmt.Errorf("dfs: edge %d→%d: %w", top.node, nb, ErrCycleDetected)
			case White:
				state[nb] = Gray
				if stack, err = push(stack, g, Forward, nb); err != nil {
					return nil, err
				}
			}
		}
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
