package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the value of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge value from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. Without an RNG it yields
// DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// ExponentialWeightFn returns a WeightFn sampling Exp(rate).
// Panics if rate ≤ 0. Without an RNG it yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return rng.ExpFloat64() / rate
	}
}

// IntegerWeightFn rounds the values of fn to the nearest integer, keeping
// text dumps of random fixtures short.
func IntegerWeightFn(fn WeightFn) WeightFn {
	return func(rng *rand.Rand) float64 { return math.Round(fn(rng)) }
}
