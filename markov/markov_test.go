package markov_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/format"
	"github.com/katalvlaran/lsgraph/markov"
	"github.com/katalvlaran/lsgraph/mutable"
	"github.com/katalvlaran/lsgraph/packed"
	"github.com/katalvlaran/lsgraph/vector"
)

func parse(t *testing.T, text string) *mutable.Graph {
	t.Helper()
	g, err := mutable.ReadEdgeList(strings.NewReader(text))
	require.NoError(t, err)
	return g
}

func at(t *testing.T, g core.Graph, i, j int) float64 {
	t.Helper()
	v, err := g.At(i, j)
	require.NoError(t, err)
	return v
}

func TestStochastify(t *testing.T) {
	const text = "3\nwith values\n0 1,2 2,6\n1 2,5\n"

	g := parse(t, text)
	require.NoError(t, markov.StochastifyRows(g))
	assert.InDelta(t, 0.25, at(t, g, 0, 1), 1e-12)
	assert.InDelta(t, 0.75, at(t, g, 0, 2), 1e-12)
	assert.InDelta(t, 1.0, at(t, g, 1, 2), 1e-12)

	g = parse(t, text)
	require.NoError(t, markov.StochastifyColumns(g))
	assert.InDelta(t, 1.0, at(t, g, 0, 1), 1e-12)
	assert.InDelta(t, 6.0/11, at(t, g, 0, 2), 1e-12)
	assert.InDelta(t, 5.0/11, at(t, g, 1, 2), 1e-12)
}

func TestStochastifyRows_PackedFile(t *testing.T) {
	dir := t.TempDir()
	g := parse(t, "2\nwith values\n0 0,1 1,3\n")

	path := filepath.Join(dir, "values.gph")
	require.NoError(t, format.StoreFull(path, g))
	h, err := packed.Open(path)
	require.NoError(t, err)
	require.NoError(t, markov.StochastifyRows(h))
	require.NoError(t, h.Close())

	h, err = packed.Open(path, packed.WithReadOnly())
	require.NoError(t, err)
	defer h.Close()
	assert.InDelta(t, 0.25, at(t, h, 0, 0), 1e-12)
	assert.InDelta(t, 0.75, at(t, h, 0, 1), 1e-12)

	bare := filepath.Join(dir, "bare.gph")
	require.NoError(t, format.StoreFull(bare, g, format.WithoutValues()))
	b, err := packed.Open(bare)
	require.NoError(t, err)
	defer b.Close()
	assert.Error(t, markov.StochastifyRows(b))
}

func TestInvariantMeasure(t *testing.T) {
	// reversible two-state chain with stationary measure (1/3, 2/3)
	g := parse(t, "2\nwith values\n0 0,0.5 1,0.5\n1 0,0.25 1,0.75\n")

	v, err := markov.InvariantMeasure(g, vector.Vector{1, 0}, 60)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, v[0], 1e-9)
	assert.InDelta(t, 2.0/3, v[1], 1e-9)

	start := vector.Vector{0.5, 0.5}
	_, err = markov.InvariantMeasure(g, start, 3)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{0.5, 0.5}, start)

	_, err = markov.InvariantMeasure(g, vector.Vector{1}, 1)
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
	_, err = markov.InvariantMeasure(g, start, -1)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestPageRank(t *testing.T) {
	// 0 and 2 both point at 1, which points back at 0
	g := parse(t, "3\nno values\n0 1\n1 0\n2 1\n")

	obs, logs := observer.New(zap.DebugLevel)
	v, err := markov.PageRank(g, markov.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v.Sum(), 1e-9)
	assert.Equal(t, []int{1, 0, 2}, markov.Rank(v))
	assert.InDelta(t, 0.05, v[2], 1e-12)
	assert.NotZero(t, logs.FilterMessage("pagerank step").Len())

	v, err = markov.PageRank(g, markov.WithMaxIterations(1))
	assert.ErrorIs(t, err, markov.ErrNotConverged)
	assert.Len(t, v, 3)

	_, err = markov.PageRank(g, markov.WithDamping(0))
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = markov.PageRank(g, markov.WithInitial([]float64{1}))
	assert.ErrorIs(t, err, core.ErrSizeMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = markov.PageRank(g, markov.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPageRank_UniformFixedPoint(t *testing.T) {
	g := parse(t, "3\nno values\n0 1\n1 2\n2 0\n")

	v, err := markov.PageRank(g, markov.WithThreshold(1e-9))
	require.NoError(t, err)
	for _, x := range v {
		assert.InDelta(t, 1.0/3, x, 1e-12)
	}
}

func TestRank(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 0}, markov.Rank(vector.Vector{0.1, 0.5, 0.5, 0.2}))
	assert.Empty(t, markov.Rank(nil))
}

func TestIDFWalk(t *testing.T) {
	// 0→1 (1), 0→2 (1), 1→2 (3): rarer targets gain weight
	g := parse(t, "3\nwith values\n0 1,1 2,1\n1 2,3\n")
	m := vector.Vector{0.5, 0.25, 0.125}

	require.NoError(t, markov.IDFWalk(g, m))
	// −log(1/4) : −log(1/8) = 2 : 3
	assert.InDelta(t, 0.4, at(t, g, 0, 1), 1e-12)
	assert.InDelta(t, 0.6, at(t, g, 0, 2), 1e-12)
	assert.InDelta(t, 1.0, at(t, g, 1, 2), 1e-12)

	assert.ErrorIs(t, markov.IDFWalk(g, vector.Vector{1, 0, 1}), core.ErrInvalidArgument)
	assert.ErrorIs(t, markov.IDFWalk(g, vector.Vector{1}), core.ErrSizeMismatch)
}

func TestSymmetrize(t *testing.T) {
	// directed 3-cycle, uniform invariant measure
	g := parse(t, "3\nno values\n0 1\n1 2\n2 0\n")
	m := vector.Uniform(3)

	require.NoError(t, markov.Symmetrize(g, m))
	assert.Equal(t, 6, g.NumEdges())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				assert.InDelta(t, 0.5, at(t, g, i, j), 1e-12, "%d→%d", i, j)
			}
		}
	}

	assert.ErrorIs(t, markov.Symmetrize(g, vector.Vector{1, 0, 1}), core.ErrInvalidArgument)
	assert.ErrorIs(t, markov.Symmetrize(g, vector.Vector{1}), core.ErrSizeMismatch)
}

func TestReverse(t *testing.T) {
	// 0→1 (1), 1→0 (0.5), 1→1 (0.5) has invariant measure (1/3, 2/3)
	g := parse(t, "2\nwith values\n0 1,1\n1 0,0.5 1,0.5\n")
	m := vector.Vector{1.0 / 3, 2.0 / 3}

	require.NoError(t, markov.Reverse(g, m))
	assert.InDelta(t, 1.0, at(t, g, 0, 1), 1e-12)
	assert.InDelta(t, 0.5, at(t, g, 1, 0), 1e-12)
	assert.InDelta(t, 0.5, at(t, g, 1, 1), 1e-12)

	w, err := markov.InvariantMeasure(g, m, 1)
	require.NoError(t, err)
	assert.InDelta(t, m[0], w[0], 1e-12)
	assert.InDelta(t, m[1], w[1], 1e-12)
}
