package sparse

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// List is a slice-backed Adjacency kept sorted by neighbor id.
// The zero value is an empty list ready for use.
type List struct {
	neighbors []int
	values    []float64
}

// NewList returns a list of the given pairs. The neighbor ids must be
// strictly increasing and len(values) must equal len(neighbors).
func NewList(neighbors []int, values []float64) (*List, error) {
	if len(neighbors) != len(values) {
		return nil, fmt.Errorf("NewList: %d neighbors, %d values: %w", len(neighbors), len(values), ErrPosition)
	}
	for k := 1; k < len(neighbors); k++ {
		if neighbors[k-1] >= neighbors[k] {
			return nil, fmt.Errorf("NewList: neighbor %d after %d is not increasing: %w",
				neighbors[k], neighbors[k-1], ErrPosition)
		}
	}

	return &List{neighbors: neighbors, values: values}, nil
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.neighbors) }

// Neighbor returns the neighbor id at pos.
func (l *List) Neighbor(pos int) int { return l.neighbors[pos] }

// Value returns the value at pos.
func (l *List) Value(pos int) float64 { return l.values[pos] }

// SetValue overwrites the value at pos.
func (l *List) SetValue(pos int, v float64) error {
	if pos < 0 || pos >= len(l.values) {
		return ErrPosition
	}
	l.values[pos] = v

	return nil
}

// Find locates neighbor by binary search.
func (l *List) Find(neighbor int) (int, bool) {
	return Search(len(l.neighbors), l.Neighbor, neighbor)
}

// Set stores v for neighbor, inserting it in order when absent.
// Complexity: O(log n) lookup, O(n) insertion.
func (l *List) Set(neighbor int, v float64) {
	pos, ok := l.Find(neighbor)
	if ok {
		l.values[pos] = v
		return
	}
	l.neighbors = append(l.neighbors, 0)
	l.values = append(l.values, 0)
	copy(l.neighbors[pos+1:], l.neighbors[pos:])
	copy(l.values[pos+1:], l.values[pos:])
	l.neighbors[pos] = neighbor
	l.values[pos] = v
}

// append adds a pair that is known to sort after every current entry.
func (l *List) append(neighbor int, v float64) {
	l.neighbors = append(l.neighbors, neighbor)
	l.values = append(l.values, v)
}

// WriteTo writes a native-endian uint32 count followed by
// (uint32 neighbor, float64 value) pairs.
func (l *List) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 4+12*len(l.neighbors))
	binary.NativeEndian.PutUint32(buf, uint32(len(l.neighbors)))
	off := 4
	for k, nb := range l.neighbors {
		binary.NativeEndian.PutUint32(buf[off:], uint32(nb))
		binary.NativeEndian.PutUint64(buf[off+4:], math.Float64bits(l.values[k]))
		off += 12
	}
	n, err := w.Write(buf)

	return int64(n), err
}
