package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsgraph/builder"
	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/mutable"
)

// edges lists g as (i, j) pairs in row-major order.
func edges(t *testing.T, g core.Graph) [][2]int {
	t.Helper()
	var out [][2]int
	require.NoError(t, core.ForEachEdge(g, func(i, j int, _ float64) error {
		out = append(out, [2]int{i, j})
		return nil
	}))
	return out
}

func degrees(t *testing.T, g core.Graph) (out, in []int) {
	t.Helper()
	for i := 0; i < g.NumNodes(); i++ {
		o, err := core.OutDegree(g, i)
		require.NoError(t, err)
		d, err := core.InDegree(g, i)
		require.NoError(t, err)
		out, in = append(out, o), append(in, d)
	}
	return out, in
}

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		opts  []builder.BuilderOption
		ctor  builder.Constructor
		want  [][2]int
		wantE int
	}{
		{name: "Path(4)", n: 4, ctor: builder.Path(4), want: [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{name: "Cycle(3)", n: 3, ctor: builder.Cycle(3), want: [][2]int{{0, 1}, {1, 2}, {2, 0}}},
		{name: "Star(4)", n: 4, ctor: builder.Star(4), want: [][2]int{{0, 1}, {0, 2}, {0, 3}}},
		{
			name: "Wheel(4)", n: 4, ctor: builder.Wheel(4),
			want: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}, {3, 1}},
		},
		{name: "Complete(4)", n: 4, ctor: builder.Complete(4), wantE: 12},
		{name: "Complete(4) bidirectional", n: 4, opts: []builder.BuilderOption{builder.WithBidirectional()}, ctor: builder.Complete(4), wantE: 12},
		{
			name: "CompleteBipartite(2,2)", n: 4, ctor: builder.CompleteBipartite(2, 2),
			want: [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}},
		},
		{
			name: "Grid(2,3)", n: 6, ctor: builder.Grid(2, 3),
			want: [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}},
		},
		{
			name: "Path(3) bidirectional", n: 3, opts: []builder.BuilderOption{builder.WithBidirectional()}, ctor: builder.Path(3),
			want: [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}},
		},
		{name: "Path(2) in a larger graph", n: 5, ctor: builder.Path(2), want: [][2]int{{0, 1}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.NumNodes())
			if tc.want != nil {
				assert.Equal(t, tc.want, edges(t, g))
				return
			}
			assert.Equal(t, tc.wantE, g.NumEdges())
		})
	}
}

func TestBuildGraph_Overlay(t *testing.T) {
	g, err := builder.BuildGraph(4, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.Cycle(4), builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.NumEdges())

	v, err := g.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestBuildGraph_Labels(t *testing.T) {
	g, err := builder.BuildGraph(3, []builder.BuilderOption{builder.WithLabels(builder.PrefixLabels("n"))}, builder.Path(3))
	require.NoError(t, err)
	require.True(t, g.HasLabels())
	l, err := g.Label(2)
	require.NoError(t, err)
	assert.Equal(t, "n2", l)
	assert.Equal(t, 1, g.NodeWithLabel("n1"))
}

func TestBuilders_Errors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		n    int
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", 1, nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", 2, nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Wheel(3)", 3, nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Cycle too large", 3, nil, builder.Cycle(4), builder.ErrTooFewVertices},
		{"Grid(0,3)", 3, nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", 3, nil, builder.CompleteBipartite(0, 1), builder.ErrTooFewVertices},
		{"RandomSparse p>1", 3, seeded, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", 3, nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular d≥n", 3, seeded, builder.RandomRegular(3, 3), builder.ErrTooFewVertices},
		{"RandomRegular odd", 3, append(seeded, builder.WithBidirectional()), builder.RandomRegular(3, 1), builder.ErrTooFewVertices},
		{"RandomRegular no rng", 3, nil, builder.RandomRegular(3, 1), builder.ErrNeedRandSource},
		{"nil constructor", 3, nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.n, tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildGraph(-1, nil)
	assert.Error(t, err)
}

func TestRandomSparse(t *testing.T) {
	build := func(opts ...builder.BuilderOption) *mutable.Graph {
		g, err := builder.BuildGraph(30, opts, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}

	a, b := build(builder.WithSeed(7)), build(builder.WithSeed(7))
	eq, err := core.Equal(a, b)
	require.NoError(t, err)
	assert.True(t, eq, "same seed must give the same graph")
	assert.Greater(t, a.NumEdges(), 0)
	assert.Less(t, a.NumEdges(), 30*29)
	for i := 0; i < 30; i++ {
		has, err := a.Has(i, i)
		require.NoError(t, err)
		assert.False(t, has)
	}

	full, err := builder.BuildGraph(5, []builder.BuilderOption{builder.WithSeed(1), builder.WithLoops()}, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 25, full.NumEdges())

	sym := build(builder.WithSeed(3), builder.WithBidirectional())
	require.NoError(t, core.ForEachEdge(sym, func(i, j int, _ float64) error {
		has, err := sym.Has(j, i)
		require.NoError(t, err)
		assert.True(t, has, "%d→%d has no reverse", i, j)
		return nil
	}))
}

func TestRandomRegular(t *testing.T) {
	g, err := builder.BuildGraph(8, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomRegular(8, 2))
	require.NoError(t, err)
	out, in := degrees(t, g)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2, 2, 2}, out)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2, 2, 2}, in)
	for i := 0; i < 8; i++ {
		has, err := g.Has(i, i)
		require.NoError(t, err)
		assert.False(t, has)
	}

	u, err := builder.BuildGraph(6, []builder.BuilderOption{builder.WithSeed(5), builder.WithBidirectional()}, builder.RandomRegular(6, 3))
	require.NoError(t, err)
	out, in = degrees(t, u)
	assert.Equal(t, []int{3, 3, 3, 3, 3, 3}, out)
	assert.Equal(t, out, in)

	empty, err := builder.BuildGraph(4, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(4, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.NumEdges())
}
