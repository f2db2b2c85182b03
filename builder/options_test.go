package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsgraph/builder"
)

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithLabels(nil) })
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })

	u := builder.UniformWeightFn(2, 4)
	for i := 0; i < 100; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 4.0)
	}
	assert.Equal(t, builder.DefaultEdgeWeight, u(nil))
	assert.Equal(t, 5.0, builder.UniformWeightFn(5, 5)(rng))
	assert.Panics(t, func() { builder.UniformWeightFn(3, 1) })

	e := builder.ExponentialWeightFn(2)
	assert.GreaterOrEqual(t, e(rng), 0.0)
	assert.Panics(t, func() { builder.ExponentialWeightFn(0) })

	r := builder.IntegerWeightFn(builder.UniformWeightFn(1, 100))(rng)
	assert.Equal(t, float64(int(r)), r)
}

func TestLabelFns(t *testing.T) {
	assert.Equal(t, "12", builder.DecimalLabels(12))
	assert.Equal(t, "p7", builder.PrefixLabels("p")(7))
	for i, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelLabels(i), "index %d", i)
	}
}

func TestSeededWeights_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(9), builder.WithWeightFn(builder.UniformWeightFn(0, 1))}
	a, err := builder.BuildGraph(5, opts, builder.Complete(5))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(9), builder.WithWeightFn(builder.UniformWeightFn(0, 1))}
	b, err := builder.BuildGraph(5, opts, builder.Complete(5))
	require.NoError(t, err)

	va, err := a.At(3, 1)
	require.NoError(t, err)
	vb, err := b.At(3, 1)
	require.NoError(t, err)
	assert.Equal(t, va, vb)
}
