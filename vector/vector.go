package vector

import (
	"math"

	"github.com/katalvlaran/lsgraph/core"
)

// Vector is a dense measure over the nodes of a graph.
type Vector []float64

// New returns a zero vector of length n.
func New(n int) Vector { return make(Vector, n) }

// Uniform returns a vector of length n with every entry 1/n.
func Uniform(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = 1 / float64(n)
	}

	return v
}

// Sum returns Σ v[i].
func (v Vector) Sum() float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s
}

// Average returns the mean entry, 0 for an empty vector.
func (v Vector) Average() float64 {
	if len(v) == 0 {
		return 0
	}

	return v.Sum() / float64(len(v))
}

// Variance returns the population variance E[x²] − E[x]², 0 for an empty
// vector.
func (v Vector) Variance() float64 {
	if len(v) == 0 {
		return 0
	}
	sq := 0.0
	for _, x := range v {
		sq += x * x
	}
	avg := v.Average()

	return sq/float64(len(v)) - avg*avg
}

// Max returns the largest entry and its index, (-Inf, -1) when empty.
func (v Vector) Max() (float64, int) {
	best, at := math.Inf(-1), -1
	for i, x := range v {
		if x > best {
			best, at = x, i
		}
	}

	return best, at
}

// Min returns the smallest entry and its index, (+Inf, -1) when empty.
func (v Vector) Min() (float64, int) {
	best, at := math.Inf(1), -1
	for i, x := range v {
		if x < best {
			best, at = x, i
		}
	}

	return best, at
}

// Scale multiplies every entry by f in place.
func (v Vector) Scale(f float64) {
	for i := range v {
		v[i] *= f
	}
}

// Normalize scales v in place to sum 1 and returns the former sum. A null
// vector is left untouched.
func (v Vector) Normalize() float64 {
	s := v.Sum()
	if s != 0 {
		v.Scale(1 / s)
	}

	return s
}

// Distance1 returns Σ |v[i] − w[i]|, or core.ErrSizeMismatch.
func (v Vector) Distance1(w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, core.ErrSizeMismatch
	}
	d := 0.0
	for i := range v {
		d += math.Abs(v[i] - w[i])
	}

	return d, nil
}
