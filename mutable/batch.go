// SPDX-License-Identifier: MIT
// Package: lsgraph/mutable
//
// batch.go — bulk insertion with deferred ordering and duplicate collapse.

package mutable

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/core"
)

// BatchInserter appends edges without keeping lists ordered. Until Close
// the graph's lists may be unsorted and hold duplicates; point operations
// on the graph return ErrBatchOpen meanwhile.
type BatchInserter struct {
	g        *Graph
	outDirty []bool
	inDirty  []bool
	touched  []int32
	added    int
}

// Batch opens a BatchInserter on g. Only one may be open at a time.
func (g *Graph) Batch() (*BatchInserter, error) {
	if g.batch != nil {
		return nil, ErrBatchOpen
	}
	n := len(g.out)
	g.batch = &BatchInserter{
		g:        g,
		outDirty: make([]bool, n),
		inDirty:  make([]bool, n),
	}

	return g.batch, nil
}

// WithBatch runs fn with an open BatchInserter and closes it afterwards,
// even when fn fails. The first error wins.
func (g *Graph) WithBatch(fn func(b *BatchInserter) error) error {
	b, err := g.Batch()
	if err != nil {
		return err
	}
	ferr := fn(b)
	cerr := b.Close()
	if ferr != nil {
		return ferr
	}

	return cerr
}

// Add appends edge i→j with value v.
// Complexity: amortized O(1).
func (b *BatchInserter) Add(i, j int, v float64) error {
	if b.g == nil {
		return fmt.Errorf("Add(%d,%d): batch closed: %w", i, j, core.ErrInvalidArgument)
	}
	n := len(b.g.out)
	if err := core.CheckNode(n, i); err != nil {
		return fmt.Errorf("Add(%d,%d): %w", i, j, err)
	}
	if err := core.CheckNode(n, j); err != nil {
		return fmt.Errorf("Add(%d,%d): %w", i, j, err)
	}
	g := b.g
	slot, err := g.arena.alloc(v)
	if err != nil {
		return fmt.Errorf("Add(%d,%d): %w", i, j, err)
	}
	g.out[i].entries = append(g.out[i].entries, entry{nb: int32(j), slot: slot})
	g.in[j].entries = append(g.in[j].entries, entry{nb: int32(i), slot: slot})
	b.touch(i)
	b.outDirty[i] = true
	b.touch(j)
	b.inDirty[j] = true
	b.added++

	return nil
}

func (b *BatchInserter) touch(node int) {
	if !b.outDirty[node] && !b.inDirty[node] {
		b.touched = append(b.touched, int32(node))
	}
}

// Close sorts every touched list by (neighbor, slot) and keeps the first
// entry of each duplicate run, i.e. the earliest inserted pair. Slots of
// discarded duplicates are zeroed and become dead cells.
// Closing twice is a no-op.
func (b *BatchInserter) Close() error {
	g := b.g
	if g == nil {
		return nil
	}
	dropped := 0
	for _, node := range b.touched {
		if b.outDirty[node] {
			dropped += consolidate(&g.out[node], g.arena)
		}
		if b.inDirty[node] {
			consolidate(&g.in[node], nil)
		}
	}
	g.edges += b.added - dropped
	g.log.Debug("batch consolidated",
		zap.Int("added", b.added),
		zap.Int("duplicates", dropped),
		zap.Int("lists", len(b.touched)))
	g.batch = nil
	b.g = nil

	return nil
}

// consolidate sorts l and collapses duplicate neighbors onto the lowest
// slot. When a is non-nil the discarded slots are zeroed in it.
// It returns the number of discarded entries.
func consolidate(l *list, a *arena) int {
	slices.SortFunc(l.entries, compareEntries)
	kept := l.entries[:0]
	dropped := 0
	for _, e := range l.entries {
		if len(kept) > 0 && kept[len(kept)-1].nb == e.nb {
			if a != nil {
				a.vals[e.slot] = 0
			}
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept

	return dropped
}
