// SPDX-License-Identifier: MIT
// Package: lsgraph/mutable
//
// copy.go — conversions from any core.Graph, restriction, merging and
// arena compaction.

package mutable

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/core"
)

// FromGraph copies src, labels included, into a new mutable graph. The copy
// always stores both directions, whatever src stores.
// Complexity: O(N + E).
func FromGraph(src core.Graph, opts ...Option) (*Graph, error) {
	return restrict(src, nil, opts...)
}

// Restrict returns the subgraph of src induced by the nodes i with keep[i].
// Kept nodes are renumbered densely in increasing order of their old ids;
// edges survive only when both endpoints are kept.
// Complexity: O(N + E).
func Restrict(src core.Graph, keep []bool, opts ...Option) (*Graph, error) {
	if len(keep) != src.NumNodes() {
		return nil, fmt.Errorf("Restrict: mask of %d for %d nodes: %w", len(keep), src.NumNodes(), core.ErrSizeMismatch)
	}

	return restrict(src, keep, opts...)
}

// restrict copies src through an order-preserving renumbering. Rows are
// visited in increasing source id and each row is sorted, so every target
// list receives its entries already in order.
func restrict(src core.Graph, keep []bool, opts ...Option) (*Graph, error) {
	n := src.NumNodes()
	ids := make([]int, n)
	kept := 0
	for i := range ids {
		if keep == nil || keep[i] {
			ids[i] = kept
			kept++
		} else {
			ids[i] = -1
		}
	}

	g, err := New(kept, append([]Option{WithEdgeCapacity(src.NumEdges())}, opts...)...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if ids[i] < 0 {
			continue
		}
		row, err := src.Outgoing(i)
		if err != nil {
			return nil, fmt.Errorf("restrict: node %d: %w", i, err)
		}
		for p := 0; p < row.Len(); p++ {
			if j := ids[row.Neighbor(p)]; j >= 0 {
				if err = g.appendEdge(ids[i], j, row.Value(p)); err != nil {
					return nil, fmt.Errorf("restrict: edge %d→%d: %w", i, row.Neighbor(p), err)
				}
			}
		}
	}
	if src.HasLabels() {
		g.labels = make([]string, kept)
		for i := 0; i < n; i++ {
			if ids[i] < 0 {
				continue
			}
			if g.labels[ids[i]], err = src.Label(i); err != nil {
				return nil, fmt.Errorf("restrict: label %d: %w", i, err)
			}
		}
	}
	g.log.Debug("graph copied",
		zap.Int("nodes", kept),
		zap.Int("edges", g.edges))

	return g, nil
}

// appendEdge adds i→j assuming it sorts after every entry of out[i] and
// in[j].
func (g *Graph) appendEdge(i, j int, v float64) error {
	slot, err := g.arena.alloc(v)
	if err != nil {
		return err
	}
	g.out[i].entries = append(g.out[i].entries, entry{nb: int32(j), slot: slot})
	g.in[j].entries = append(g.in[j].entries, entry{nb: int32(i), slot: slot})
	g.edges++

	return nil
}

// Clone returns a deep copy of g with the same slot numbering, dead cells
// included.
func (g *Graph) Clone() *Graph {
	a := &arena{vals: append([]float64(nil), g.arena.vals...)}
	c := &Graph{
		out:   make([]list, len(g.out)),
		in:    make([]list, len(g.in)),
		arena: a,
		edges: g.edges,
		log:   g.log,
	}
	for i := range g.out {
		c.out[i] = list{entries: append([]entry(nil), g.out[i].entries...), arena: a}
		c.in[i] = list{entries: append([]entry(nil), g.in[i].entries...), arena: a}
	}
	if g.labels != nil {
		c.labels = append([]string(nil), g.labels...)
	}

	return c
}

// Merge inserts every edge of h that g lacks. Edges present in both keep
// g's value.
func (g *Graph) Merge(h core.Graph) error {
	if h.NumNodes() != len(g.out) {
		return fmt.Errorf("Merge: %d nodes into %d: %w", h.NumNodes(), len(g.out), core.ErrSizeMismatch)
	}
	if self, ok := h.(*Graph); ok && self == g {
		return nil
	}

	return g.WithBatch(func(b *BatchInserter) error {
		return core.ForEachEdge(h, b.Add)
	})
}

// AddGraph adds the value of every edge of h to the matching edge of g,
// creating the edges g lacks.
func (g *Graph) AddGraph(h core.Graph) error {
	if h.NumNodes() != len(g.out) {
		return fmt.Errorf("AddGraph: %d nodes into %d: %w", h.NumNodes(), len(g.out), core.ErrSizeMismatch)
	}

	return core.ForEachEdge(h, g.Add)
}

// Compact renumbers slots in outgoing order and drops every dead cell.
// Complexity: O(SlotCount + E).
func (g *Graph) Compact() error {
	if g.batch != nil {
		return fmt.Errorf("Compact: %w", ErrBatchOpen)
	}
	remap := make([]int32, len(g.arena.vals))
	vals := make([]float64, 0, g.edges)
	for i := range g.out {
		for k, e := range g.out[i].entries {
			remap[e.slot] = int32(len(vals))
			vals = append(vals, g.arena.vals[e.slot])
			g.out[i].entries[k].slot = remap[e.slot]
		}
	}
	for j := range g.in {
		for k, e := range g.in[j].entries {
			g.in[j].entries[k].slot = remap[e.slot]
		}
	}
	g.log.Debug("arena compacted",
		zap.Int("before", len(g.arena.vals)),
		zap.Int("after", len(vals)))
	g.arena.vals = vals

	return nil
}
