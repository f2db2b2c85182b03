package neighborhood_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/format"
	"github.com/katalvlaran/lsgraph/mutable"
	"github.com/katalvlaran/lsgraph/neighborhood"
	"github.com/katalvlaran/lsgraph/packed"
)

// sample: 0→1, 0→2, 1→0, 2→1, 2→3
const sample = "4\nno values\n0 1 2\n1 0\n2 1 3\n"

func parse(t *testing.T, text string) *mutable.Graph {
	t.Helper()
	g, err := mutable.ReadEdgeList(strings.NewReader(text))
	require.NoError(t, err)
	return g
}

func TestDirectedSphere(t *testing.T) {
	g := parse(t, sample)
	tests := []struct {
		dir  string
		want []int
	}{
		{"", []int{0}},
		{"F", []int{1, 2}},
		{"B", []int{1}},
		{"FB", []int{0, 2}},
		{"BF", []int{0}},
		{"FF", []int{0, 1, 3}},
	}
	for _, tc := range tests {
		t.Run("dir="+tc.dir, func(t *testing.T) {
			s, err := neighborhood.DirectedSphere(g, 0, tc.dir)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Keys())
			for p := 0; p < s.Len(); p++ {
				assert.Equal(t, 1.0, s.Value(p))
			}
		})
	}

	_, err := neighborhood.DirectedSphere(g, 0, "FX")
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = neighborhood.DirectedSphere(g, 4, "F")
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestTFIDFAndCosine(t *testing.T) {
	g := parse(t, sample)

	row, err := neighborhood.TFIDF(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, row.Keys())
	v, _ := row.At(1)
	assert.InDelta(t, math.Log(2), v, 1e-12)
	v, _ = row.At(2)
	assert.InDelta(t, math.Log(4), v, 1e-12)

	// rows 0 and 2 share the target 1 (log 2) and differ on log 4 targets
	c, err := neighborhood.Cosine(g, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, c, 1e-12)

	c, err = neighborhood.Cosine(g, 3, 0)
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestRelated(t *testing.T) {
	// 0 and 1 link to the same pages, 4 shares one of them
	g := parse(t, "5\nno values\n0 2 3\n1 2 3\n4 3\n")

	got, err := neighborhood.Related(g, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Node)
	assert.InDelta(t, 1.0, got[0].Value, 1e-12)
	assert.Equal(t, 4, got[1].Node)
	assert.Less(t, got[1].Value, 1.0)
	assert.Greater(t, got[1].Value, 0.0)

	got, err = neighborhood.Related(g, 0, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Node)

	got, err = neighborhood.Related(g, 2, 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRelated_TiesByID(t *testing.T) {
	// 1, 2 and 3 all copy the links of 0
	g := parse(t, "6\nno values\n0 4 5\n1 4 5\n2 4 5\n3 4 5\n")

	got, err := neighborhood.Related(g, 0, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 2}, []int{got[0].Node, got[1].Node})
}

func TestNeighborhood_NeedsIncoming(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.gph")
	require.NoError(t, format.StoreFull(path, parse(t, sample), format.WithOutgoingOnly()))
	h, err := packed.Open(path, packed.WithReadOnly())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	_, err = neighborhood.DirectedSphere(h, 0, "B")
	assert.ErrorIs(t, err, core.ErrNoTranspose)
	_, err = neighborhood.TFIDF(h, 0)
	assert.ErrorIs(t, err, core.ErrNoTranspose)

	s, err := neighborhood.DirectedSphere(h, 0, "F")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.Keys())
}
