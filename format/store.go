// SPDX-License-Identifier: MIT
// Package: lsgraph/format
//
// store.go — the three public writers.

package format

import (
	"fmt"

	"github.com/katalvlaran/lsgraph/core"
)

// neighbors is the read-only part of sparse.Adjacency the writers walk.
type neighbors interface {
	Len() int
	Neighbor(pos int) int
}

// StoreFull writes g to path. Both directions are stored unless
// WithOutgoingOnly is given; values are stored when g has them, unless
// WithoutValues is given; labels are stored when g has them. Slots are
// renumbered densely, so dead cells of a mutable graph are not written.
// Complexity: O(N + E) time, O(N + E) memory for the slot records.
func StoreFull(path string, g core.Graph, opts ...Option) error {
	o := newOptions(opts...)
	src := source{nodes: g.NumNodes()}
	if g.HasValues() && !o.noValues {
		src.flags |= FlagValues
	}
	if !o.outgoingOnly {
		src.flags |= FlagBoth
	}
	src.rows = func(i int, emit func(int, float64)) error {
		row, err := g.Outgoing(i)
		if err != nil {
			return err
		}
		for p := 0; p < row.Len(); p++ {
			emit(row.Neighbor(p), row.Value(p))
		}
		return nil
	}
	if !o.outgoingOnly && core.HasIncoming(g) {
		src.cols = func(j int, emit func(int)) error {
			col, err := g.Incoming(j)
			if err != nil {
				return err
			}
			for p := 0; p < col.Len(); p++ {
				emit(col.Neighbor(p))
			}
			return nil
		}
	}
	withLabels(&src, g, nil)

	if err := write(path, src, o.log); err != nil {
		return fmt.Errorf("StoreFull(%s): %w", path, err)
	}

	return nil
}

// StoreWithAddedTranspose writes G ∪ Gᵀ to path: the outgoing list of
// every node becomes the ordered union of its outgoing and incoming
// neighbors. Edges of g keep their values; reverse edges that g lacks are
// added with value 0, so that later code can assign g(j,i) for every edge
// g(i,j). Both directions and values are always stored.
//
// g must carry values (core.ErrUnsupported otherwise). When g does not store
// its incoming direction, a transient transposed index is derived from the
// outgoing lists.
// Complexity: O(N + E) time and memory.
func StoreWithAddedTranspose(path string, g core.Graph, opts ...Option) error {
	o := newOptions(opts...)
	if !g.HasValues() {
		return fmt.Errorf("StoreWithAddedTranspose(%s): graph has no values: %w", path, core.ErrUnsupported)
	}
	incoming, err := incomingView(g)
	if err != nil {
		return fmt.Errorf("StoreWithAddedTranspose(%s): %w", path, err)
	}

	src := source{nodes: g.NumNodes(), flags: FlagValues | FlagBoth}
	src.rows = func(i int, emit func(int, float64)) error {
		row, err := g.Outgoing(i)
		if err != nil {
			return err
		}
		col, err := incoming(i)
		if err != nil {
			return err
		}
		mergeNeighbors(row, col, func(j, pa int) {
			if pa >= 0 {
				emit(j, row.Value(pa))
			} else {
				emit(j, 0)
			}
		})
		return nil
	}
	src.cols = func(j int, emit func(int)) error {
		col, err := incoming(j)
		if err != nil {
			return err
		}
		row, err := g.Outgoing(j)
		if err != nil {
			return err
		}
		mergeNeighbors(col, row, func(i, _ int) { emit(i) })
		return nil
	}
	withLabels(&src, g, nil)

	if err = write(path, src, o.log); err != nil {
		return fmt.Errorf("StoreWithAddedTranspose(%s): %w", path, err)
	}

	return nil
}

// StoreSubgraph writes the subgraph of g induced by the nodes i with
// keep[i]. Kept nodes are renumbered densely in increasing order of their
// old ids and only edges between kept nodes are written. Options apply as
// in StoreFull.
// Complexity: O(N + E).
func StoreSubgraph(path string, g core.Graph, keep []bool, opts ...Option) error {
	if len(keep) != g.NumNodes() {
		return fmt.Errorf("StoreSubgraph(%s): mask of %d for %d nodes: %w",
			path, len(keep), g.NumNodes(), core.ErrSizeMismatch)
	}
	o := newOptions(opts...)

	ids := make([]int, len(keep))
	var old []int
	for i, k := range keep {
		ids[i] = -1
		if k {
			ids[i] = len(old)
			old = append(old, i)
		}
	}

	src := source{nodes: len(old)}
	if g.HasValues() && !o.noValues {
		src.flags |= FlagValues
	}
	if !o.outgoingOnly {
		src.flags |= FlagBoth
	}
	src.rows = func(i int, emit func(int, float64)) error {
		row, err := g.Outgoing(old[i])
		if err != nil {
			return err
		}
		for p := 0; p < row.Len(); p++ {
			if j := ids[row.Neighbor(p)]; j >= 0 {
				emit(j, row.Value(p))
			}
		}
		return nil
	}
	if !o.outgoingOnly && core.HasIncoming(g) {
		src.cols = func(j int, emit func(int)) error {
			col, err := g.Incoming(old[j])
			if err != nil {
				return err
			}
			for p := 0; p < col.Len(); p++ {
				if i := ids[col.Neighbor(p)]; i >= 0 {
					emit(i)
				}
			}
			return nil
		}
	}
	withLabels(&src, g, old)

	if err := write(path, src, o.log); err != nil {
		return fmt.Errorf("StoreSubgraph(%s): %w", path, err)
	}

	return nil
}

// withLabels wires g's labels into src; old maps new ids to old ones and
// may be nil for the identity.
func withLabels(src *source, g core.Graph, old []int) {
	if !g.HasLabels() {
		return
	}
	src.flags |= FlagLabels
	src.labels = func(i int) (string, error) {
		if old != nil {
			i = old[i]
		}
		return g.Label(i)
	}
}

// mergeNeighbors walks the ordered union of a and b. fn receives each
// neighbor once with its position in a, or -1 if it only occurs in b.
func mergeNeighbors(a, b neighbors, fn func(j, pa int)) {
	p, q := 0, 0
	for p < a.Len() || q < b.Len() {
		switch {
		case q >= b.Len() || (p < a.Len() && a.Neighbor(p) < b.Neighbor(q)):
			fn(a.Neighbor(p), p)
			p++
		case p >= a.Len() || b.Neighbor(q) < a.Neighbor(p):
			fn(b.Neighbor(q), -1)
			q++
		default:
			fn(a.Neighbor(p), p)
			p++
			q++
		}
	}
}

// idList is a sorted neighbor list of a transient index.
type idList []int32

func (l idList) Len() int             { return len(l) }
func (l idList) Neighbor(pos int) int { return int(l[pos]) }

// incomingView returns the incoming neighbors of each node, read from g
// when stored, derived from the outgoing lists otherwise.
func incomingView(g core.Graph) (func(j int) (neighbors, error), error) {
	if core.HasIncoming(g) {
		return func(j int) (neighbors, error) { return g.Incoming(j) }, nil
	}

	n := g.NumNodes()
	start := make([]int, n+1)
	if err := core.ForEachEdge(g, func(_, j int, _ float64) error {
		start[j+1]++
		return nil
	}); err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		start[j+1] += start[j]
	}
	fill := append([]int(nil), start[:n]...)
	sources := make([]int32, start[n])
	if err := core.ForEachEdge(g, func(i, j int, _ float64) error {
		sources[fill[j]] = int32(i)
		fill[j]++
		return nil
	}); err != nil {
		return nil, err
	}

	return func(j int) (neighbors, error) {
		if err := core.CheckNode(n, j); err != nil {
			return nil, err
		}
		return idList(sources[start[j]:start[j+1]]), nil
	}, nil
}
