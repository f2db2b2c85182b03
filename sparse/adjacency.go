package sparse

import (
	"errors"
	"io"
)

// Sentinel errors for adjacency access.
var (
	// ErrReadOnly is returned by SetValue on lists that cannot store values,
	// e.g. valueless or read-only mapped files.
	ErrReadOnly = errors.New("sparse: values are not writable")

	// ErrNotSerializable is returned by WriteTo on scratch variants.
	ErrNotSerializable = errors.New("sparse: adjacency cannot be serialized")

	// ErrPosition is returned when a position is outside [0, Len()).
	ErrPosition = errors.New("sparse: position out of range")
)

// Adjacency is an ordered view of one node's neighbors.
//
// Neighbor ids are strictly increasing with the position. Value reports 1
// for every present edge of a valueless graph.
type Adjacency interface {
	// Len returns the number of entries, zero-valued edges included.
	Len() int

	// Neighbor returns the neighbor id stored at pos.
	Neighbor(pos int) int

	// Value returns the edge value stored at pos.
	Value(pos int) float64

	// SetValue overwrites the edge value stored at pos.
	SetValue(pos int, v float64) error

	// Find returns the position of neighbor, or false when it is absent.
	Find(neighbor int) (int, bool)

	// WriteTo serializes the list as a count followed by its entries.
	WriteTo(w io.Writer) (int64, error)
}

// Slotted is implemented by stored lists whose entries point into a shared
// value arena. Slot reports -1 when the list carries no values.
type Slotted interface {
	Adjacency
	Slot(pos int) int
}

// Search returns the position of neighbor in a list whose neighbor ids are
// produced by at, using binary search over [0, n).
// Complexity: O(log n).
func Search(n int, at func(pos int) int, neighbor int) (int, bool) {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if at(mid) < neighbor {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < n && at(lo) == neighbor {
		return lo, true
	}

	return lo, false
}
