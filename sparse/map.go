package sparse

import (
	"io"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Map is an ephemeral ordered neighbor map, used by algorithms that grow a
// neighbor set by random insertion (spheres, TF-IDF rows, score tables).
//
// Positional access flattens the tree into sorted slices on first use after
// a mutation, so a build-then-read pattern costs O(n log n) overall.
type Map struct {
	tree *treemap.Map

	flat  bool
	keys  []int
	cache []float64
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{tree: treemap.NewWith(utils.IntComparator)}
}

// Put stores v for neighbor, replacing any previous value.
func (m *Map) Put(neighbor int, v float64) {
	m.tree.Put(neighbor, v)
	m.flat = false
}

// Accumulate adds v to the value of neighbor, inserting it when absent.
func (m *Map) Accumulate(neighbor int, v float64) {
	if old, ok := m.tree.Get(neighbor); ok {
		v += old.(float64)
	}
	m.tree.Put(neighbor, v)
	m.flat = false
}

// At returns the value of neighbor and whether it is present.
func (m *Map) At(neighbor int) (float64, bool) {
	v, ok := m.tree.Get(neighbor)
	if !ok {
		return 0, false
	}

	return v.(float64), true
}

// Delete removes neighbor.
func (m *Map) Delete(neighbor int) {
	m.tree.Remove(neighbor)
	m.flat = false
}

// Keys returns the neighbor ids in increasing order.
func (m *Map) Keys() []int {
	m.flatten()
	out := make([]int, len(m.keys))
	copy(out, m.keys)

	return out
}

func (m *Map) flatten() {
	if m.flat {
		return
	}
	m.keys = m.keys[:0]
	m.cache = m.cache[:0]
	it := m.tree.Iterator()
	for it.Next() {
		m.keys = append(m.keys, it.Key().(int))
		m.cache = append(m.cache, it.Value().(float64))
	}
	m.flat = true
}

// Len returns the number of entries.
func (m *Map) Len() int { return m.tree.Size() }

// Neighbor returns the neighbor id at pos.
func (m *Map) Neighbor(pos int) int {
	m.flatten()
	return m.keys[pos]
}

// Value returns the value at pos.
func (m *Map) Value(pos int) float64 {
	m.flatten()
	return m.cache[pos]
}

// SetValue overwrites the value at pos.
func (m *Map) SetValue(pos int, v float64) error {
	m.flatten()
	if pos < 0 || pos >= len(m.keys) {
		return ErrPosition
	}
	m.tree.Put(m.keys[pos], v)
	m.cache[pos] = v

	return nil
}

// Find returns the position of neighbor.
func (m *Map) Find(neighbor int) (int, bool) {
	m.flatten()
	return Search(len(m.keys), func(p int) int { return m.keys[p] }, neighbor)
}

// WriteTo always fails: a Map has no on-disk representation.
func (m *Map) WriteTo(io.Writer) (int64, error) {
	return 0, ErrNotSerializable
}
