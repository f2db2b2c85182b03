// SPDX-License-Identifier: MIT
// Package: lsgraph/packed
//
// list.go — zero-copy adjacency lists over the mapping.

package packed

import (
	"encoding/binary"
	"io"
	"unsafe"

	"github.com/katalvlaran/lsgraph/sparse"
)

// list views one node's entries: neighbor words, each followed by a slot
// word when the file has values.
type list struct {
	words    []uint32
	width    int
	values   []float64
	readOnly bool
}

var _ sparse.Slotted = list{}

func (l list) Len() int             { return len(l.words) / l.width }
func (l list) Neighbor(pos int) int { return int(l.words[pos*l.width]) }

func (l list) Slot(pos int) int {
	if l.width == 1 {
		return -1
	}

	return int(l.words[pos*2+1])
}

func (l list) Value(pos int) float64 {
	if l.width == 1 {
		return 1
	}

	return l.values[l.words[pos*2+1]]
}

func (l list) SetValue(pos int, v float64) error {
	if l.width == 1 || l.readOnly {
		return sparse.ErrReadOnly
	}
	if pos < 0 || pos >= l.Len() {
		return sparse.ErrPosition
	}
	l.values[l.words[pos*2+1]] = v

	return nil
}

func (l list) Find(neighbor int) (int, bool) {
	return sparse.Search(l.Len(), l.Neighbor, neighbor)
}

// WriteTo writes the list exactly as stored: a native-endian uint32 count
// followed by the raw entry words.
func (l list) WriteTo(w io.Writer) (int64, error) {
	var head [4]byte
	binary.NativeEndian.PutUint32(head[:], uint32(l.Len()))
	n, err := w.Write(head[:])
	if err != nil || len(l.words) == 0 {
		return int64(n), err
	}
	m, err := w.Write(unsafe.Slice((*byte)(unsafe.Pointer(&l.words[0])), len(l.words)*4))

	return int64(n + m), err
}

// words reinterprets count index words of b starting at byte off.
func words(b []byte, off, count int64) []uint32 {
	if count == 0 {
		return nil
	}

	return unsafe.Slice((*uint32)(unsafe.Pointer(&b[off])), count)
}

// floats reinterprets count values of b starting at byte off.
func floats(b []byte, off, count int64) []float64 {
	if count == 0 {
		return nil
	}

	return unsafe.Slice((*float64)(unsafe.Pointer(&b[off])), count)
}
