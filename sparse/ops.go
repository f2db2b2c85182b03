package sparse

import "math"

// Get returns the value stored for neighbor j, or 0 when j is absent.
// Complexity: O(log n) for the sorted variants.
func Get(a Adjacency, j int) float64 {
	if pos, ok := a.Find(j); ok {
		return a.Value(pos)
	}

	return 0
}

// merge walks a and b in lockstep, skipping stored zeros, and calls fn once
// per distinct neighbor. A side without the neighbor reports 0.
func merge(a, b Adjacency, fn func(j int, x, y float64)) {
	i, k := skipZeros(a, 0), skipZeros(b, 0)
	for i < a.Len() || k < b.Len() {
		switch {
		case k >= b.Len() || (i < a.Len() && a.Neighbor(i) < b.Neighbor(k)):
			fn(a.Neighbor(i), a.Value(i), 0)
			i = skipZeros(a, i+1)
		case i >= a.Len() || b.Neighbor(k) < a.Neighbor(i):
			fn(b.Neighbor(k), 0, b.Value(k))
			k = skipZeros(b, k+1)
		default:
			fn(a.Neighbor(i), a.Value(i), b.Value(k))
			i = skipZeros(a, i+1)
			k = skipZeros(b, k+1)
		}
	}
}

func skipZeros(a Adjacency, pos int) int {
	for pos < a.Len() && a.Value(pos) == 0 {
		pos++
	}

	return pos
}

// Dot1 returns Σ √(a_j·b_j) over the neighbors present in both lists.
func Dot1(a, b Adjacency) float64 {
	var s float64
	merge(a, b, func(_ int, x, y float64) {
		if x != 0 && y != 0 {
			s += math.Sqrt(x * y)
		}
	})

	return s
}

// Dot2 returns the dot product Σ a_j·b_j.
func Dot2(a, b Adjacency) float64 {
	var s float64
	merge(a, b, func(_ int, x, y float64) { s += x * y })

	return s
}

// Norm1 returns Σ |a_j|.
func Norm1(a Adjacency) float64 {
	var s float64
	for p := 0; p < a.Len(); p++ {
		s += math.Abs(a.Value(p))
	}

	return s
}

// Norm2 returns Σ a_j², the squared euclidean norm.
func Norm2(a Adjacency) float64 {
	var s float64
	for p := 0; p < a.Len(); p++ {
		v := a.Value(p)
		s += v * v
	}

	return s
}

// Cos1 returns Dot1(a, b) / √(Norm1(a)·Norm1(b)), or 0 if either list is null.
func Cos1(a, b Adjacency) float64 {
	d := Norm1(a) * Norm1(b)
	if d == 0 {
		return 0
	}

	return Dot1(a, b) / math.Sqrt(d)
}

// Cos2 returns the cosine similarity of a and b, or 0 if either list is null.
func Cos2(a, b Adjacency) float64 {
	d := Norm2(a) * Norm2(b)
	if d == 0 {
		return 0
	}

	return Dot2(a, b) / math.Sqrt(d)
}

// Union returns the ordered union of a and b; common neighbors get the sum
// of both values.
func Union(a, b Adjacency) *List {
	out := &List{}
	merge(a, b, func(j int, x, y float64) { out.append(j, x+y) })

	return out
}

// Intersect returns the neighbors present in both lists, valued by the
// product of both values.
func Intersect(a, b Adjacency) *List {
	out := &List{}
	merge(a, b, func(j int, x, y float64) {
		if x != 0 && y != 0 {
			out.append(j, x*y)
		}
	})

	return out
}

// EqualNonZero reports whether a and b hold the same (neighbor, value)
// sequence once stored zeros are ignored on both sides.
func EqualNonZero(a, b Adjacency) bool {
	i, k := skipZeros(a, 0), skipZeros(b, 0)
	for i < a.Len() && k < b.Len() {
		if a.Neighbor(i) != b.Neighbor(k) || a.Value(i) != b.Value(k) {
			return false
		}
		i, k = skipZeros(a, i+1), skipZeros(b, k+1)
	}

	return i == a.Len() && k == b.Len()
}
