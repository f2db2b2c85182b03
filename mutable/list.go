// SPDX-License-Identifier: MIT
// Package: lsgraph/mutable
//
// list.go — sorted (neighbor, slot) lists over a shared value arena.

package mutable

import (
	"cmp"
	"encoding/binary"
	"io"
	"math"

	"github.com/katalvlaran/lsgraph/sparse"
)

// entry is one index record: a neighbor id and the arena slot of the edge.
type entry struct {
	nb   int32
	slot int32
}

func compareEntries(a, b entry) int {
	if c := cmp.Compare(a.nb, b.nb); c != 0 {
		return c
	}

	return cmp.Compare(a.slot, b.slot)
}

// arena owns every edge value; lists refer to it by slot.
type arena struct {
	vals []float64
}

// maxSlots bounds the arena so that every slot id fits the 32-bit index.
var maxSlots = math.MaxInt32

// alloc appends v and returns its slot, or ErrTooLarge once the arena is
// full.
func (a *arena) alloc(v float64) (int32, error) {
	if len(a.vals) >= maxSlots {
		return 0, ErrTooLarge
	}
	a.vals = append(a.vals, v)

	return int32(len(a.vals) - 1), nil
}

// list is one node's adjacency in one direction.
type list struct {
	entries []entry
	arena   *arena
}

var _ sparse.Slotted = (*list)(nil)

func (l *list) Len() int              { return len(l.entries) }
func (l *list) Neighbor(pos int) int  { return int(l.entries[pos].nb) }
func (l *list) Slot(pos int) int      { return int(l.entries[pos].slot) }
func (l *list) Value(pos int) float64 { return l.arena.vals[l.entries[pos].slot] }

func (l *list) SetValue(pos int, v float64) error {
	if pos < 0 || pos >= len(l.entries) {
		return sparse.ErrPosition
	}
	l.arena.vals[l.entries[pos].slot] = v

	return nil
}

func (l *list) Find(neighbor int) (int, bool) {
	return sparse.Search(len(l.entries), l.Neighbor, neighbor)
}

// WriteTo writes a native-endian uint32 count followed by
// (uint32 neighbor, uint32 slot) pairs.
func (l *list) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 4+8*len(l.entries))
	binary.NativeEndian.PutUint32(buf, uint32(len(l.entries)))
	off := 4
	for _, e := range l.entries {
		binary.NativeEndian.PutUint32(buf[off:], uint32(e.nb))
		binary.NativeEndian.PutUint32(buf[off+4:], uint32(e.slot))
		off += 8
	}
	n, err := w.Write(buf)

	return int64(n), err
}

func (l *list) insert(pos int, e entry) {
	l.entries = append(l.entries, entry{})
	copy(l.entries[pos+1:], l.entries[pos:])
	l.entries[pos] = e
}

func (l *list) removeAt(pos int) {
	l.entries = append(l.entries[:pos], l.entries[pos+1:]...)
}
