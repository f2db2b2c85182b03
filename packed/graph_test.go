package packed_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/format"
	"github.com/katalvlaran/lsgraph/mutable"
	"github.com/katalvlaran/lsgraph/packed"
	"github.com/katalvlaran/lsgraph/sparse"
)

const weighted = "4\nwith values\n0 1,1 2,0.5\n1 0,0.25\n2 1,400 3,123\n3\n"

func parse(t *testing.T, text string) *mutable.Graph {
	t.Helper()
	g, err := mutable.ReadEdgeList(strings.NewReader(text))
	require.NoError(t, err)
	return g
}

func store(t *testing.T, g core.Graph, opts ...format.Option) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g.gph")
	require.NoError(t, format.StoreFull(path, g, opts...))
	return path
}

func open(t *testing.T, path string, opts ...packed.Option) *packed.Graph {
	t.Helper()
	h, err := packed.Open(path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func at(t *testing.T, g core.Graph, i, j int) float64 {
	t.Helper()
	v, err := g.At(i, j)
	require.NoError(t, err)
	return v
}

func equal(t *testing.T, g, h core.Graph) bool {
	t.Helper()
	eq, err := core.Equal(g, h)
	require.NoError(t, err)
	return eq
}

func TestRoundTrip(t *testing.T) {
	g := parse(t, weighted)
	h := open(t, store(t, g), packed.WithVerify())

	assert.True(t, h.Ready())
	assert.Equal(t, 4, h.NumNodes())
	assert.Equal(t, 5, h.NumEdges())
	assert.True(t, h.HasValues())
	assert.True(t, equal(t, g, h))

	var buf bytes.Buffer
	require.NoError(t, core.WriteEdgeList(&buf, h))
	assert.Equal(t, weighted, buf.String())
}

func TestEmptyGraph(t *testing.T) {
	g, err := mutable.New(0)
	require.NoError(t, err)
	h := open(t, store(t, g))
	assert.Equal(t, 0, h.NumNodes())
	assert.Equal(t, 0, h.NumEdges())
}

func TestValuesPersist(t *testing.T) {
	path := store(t, parse(t, weighted))

	h, err := packed.Open(path)
	require.NoError(t, err)
	require.NoError(t, h.Set(0, 1, 7))
	require.NoError(t, h.Add(2, 3, 1))
	assert.ErrorIs(t, h.Set(3, 0, 1), core.ErrUnsupported, "new edges cannot be inserted")
	assert.ErrorIs(t, h.Set(0, 9, 1), core.ErrNodeOutOfRange)
	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	assert.False(t, h.Ready())
	_, err = h.Outgoing(0)
	assert.ErrorIs(t, err, os.ErrClosed)

	h = open(t, path)
	assert.Equal(t, 7.0, at(t, h, 0, 1))
	assert.Equal(t, 124.0, at(t, h, 2, 3))
}

func TestSharedSlots(t *testing.T) {
	g := parse(t, weighted)
	require.NoError(t, g.Remove(2, 1))
	require.NoError(t, g.Set(3, 3, 0))
	h := open(t, store(t, g))
	assert.Equal(t, 5, h.NumEdges(), "dead slots are not written")

	for i := 0; i < h.NumNodes(); i++ {
		row, err := h.Outgoing(i)
		require.NoError(t, err)
		for p := 0; p < row.Len(); p++ {
			j := row.Neighbor(p)
			col, err := h.Incoming(j)
			require.NoError(t, err)
			q, ok := col.Find(i)
			require.True(t, ok, "edge %d→%d missing from incoming", i, j)
			assert.Equal(t, row.(sparse.Slotted).Slot(p), col.(sparse.Slotted).Slot(q))
		}
	}

	col, err := h.Incoming(2)
	require.NoError(t, err)
	require.NoError(t, col.SetValue(0, 3))
	assert.Equal(t, 3.0, at(t, h, 0, 2))
}

func TestTransposePersists(t *testing.T) {
	path := store(t, parse(t, weighted))

	h, err := packed.Open(path)
	require.NoError(t, err)
	require.NoError(t, h.Transpose())
	assert.True(t, h.Transposed())
	assert.Equal(t, 0.25, at(t, h, 0, 1))
	require.NoError(t, h.Close())

	h = open(t, path)
	assert.True(t, h.Transposed())
	assert.Equal(t, 0.25, at(t, h, 0, 1))
	assert.Equal(t, 1.0, at(t, h, 1, 0))
	assert.Equal(t, 0.5, at(t, h, 2, 0))
	assert.Equal(t, 0.0, at(t, h, 0, 2))

	require.NoError(t, h.Transpose())
	assert.False(t, h.Transposed())
	assert.True(t, equal(t, h, parse(t, weighted)))
}

func TestOutgoingOnly(t *testing.T) {
	g := parse(t, weighted)
	h := open(t, store(t, g, format.WithOutgoingOnly()))

	assert.True(t, equal(t, g, h))
	_, err := h.Incoming(0)
	assert.ErrorIs(t, err, core.ErrNoTranspose)
	assert.ErrorIs(t, h.Transpose(), core.ErrNoTranspose)
	assert.False(t, core.HasIncoming(h))

	path := filepath.Join(t.TempDir(), "sym.gph")
	require.NoError(t, format.StoreWithAddedTranspose(path, h))
	s := open(t, path)
	assert.True(t, core.HasIncoming(s))
	assert.Equal(t, 8, s.NumEdges())
}

func TestWithoutValues(t *testing.T) {
	g := parse(t, weighted)
	h := open(t, store(t, g, format.WithoutValues()))

	assert.False(t, h.HasValues())
	assert.Equal(t, 1.0, at(t, h, 2, 1))
	assert.ErrorIs(t, h.Set(2, 1, 4), core.ErrUnsupported)
	assert.ErrorIs(t, h.Scale(2), core.ErrUnsupported)
	row, err := h.Outgoing(2)
	require.NoError(t, err)
	assert.ErrorIs(t, row.SetValue(0, 2), sparse.ErrReadOnly)

	path := filepath.Join(t.TempDir(), "aug.gph")
	assert.ErrorIs(t, format.StoreWithAddedTranspose(path, h), core.ErrUnsupported)
}

func TestAddedTranspose(t *testing.T) {
	g := parse(t, weighted)
	path := filepath.Join(t.TempDir(), "aug.gph")
	require.NoError(t, format.StoreWithAddedTranspose(path, g))
	h := open(t, path, packed.WithVerify())

	assert.Equal(t, 8, h.NumEdges())
	has, err := h.Has(2, 0)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 0.0, at(t, h, 2, 0))
	assert.True(t, equal(t, g, h), "added reverse edges are zero")

	require.NoError(t, h.Set(2, 0, 3))
	assert.Equal(t, 3.0, at(t, h, 2, 0))
	assert.Equal(t, 0.25, at(t, h, 1, 0))
	for i := 0; i < h.NumNodes(); i++ {
		row, err := h.Outgoing(i)
		require.NoError(t, err)
		col, err := h.Incoming(i)
		require.NoError(t, err)
		require.Equal(t, row.Len(), col.Len(), "node %d", i)
		for p := 0; p < row.Len(); p++ {
			assert.Equal(t, row.Neighbor(p), col.Neighbor(p))
		}
	}
}

func TestSubgraph(t *testing.T) {
	g := parse(t, weighted)
	require.NoError(t, g.SetLabels([]string{"a", "b", "c", "d"}))
	keep := []bool{true, false, true, true}

	path := filepath.Join(t.TempDir(), "sub.gph")
	require.NoError(t, format.StoreSubgraph(path, g, keep))
	h := open(t, path, packed.WithVerify())

	want, err := mutable.Restrict(g, keep)
	require.NoError(t, err)
	assert.True(t, equal(t, want, h))
	assert.Equal(t, 2, h.NumEdges())
	assert.Equal(t, 123.0, at(t, h, 1, 2))
	assert.Equal(t, 2, h.NodeWithLabel("d"))

	require.ErrorIs(t, format.StoreSubgraph(path, g, keep[:2]), core.ErrSizeMismatch)

	// from a packed source with only the outgoing direction
	one := open(t, store(t, g, format.WithOutgoingOnly()))
	path2 := filepath.Join(t.TempDir(), "sub2.gph")
	require.NoError(t, format.StoreSubgraph(path2, one, keep))
	assert.True(t, equal(t, want, open(t, path2, packed.WithVerify())))
}

func TestLabels(t *testing.T) {
	g := parse(t, weighted)
	require.NoError(t, g.SetLabels([]string{"zero", "", "two", "three"}))
	h := open(t, store(t, g))

	assert.True(t, h.HasLabels())
	for i, want := range []string{"zero", "", "two", "three"} {
		l, err := h.Label(i)
		require.NoError(t, err)
		assert.Equal(t, want, l)
	}
	assert.Equal(t, 2, h.NodeWithLabel("two"))
	assert.Equal(t, core.NotFound, h.NodeWithLabel("four"))

	plain := open(t, store(t, parse(t, weighted)))
	_, err := plain.Label(0)
	assert.ErrorIs(t, err, core.ErrUnsupported)
	assert.Equal(t, core.NotFound, plain.NodeWithLabel("zero"))
}

func TestReadOnly(t *testing.T) {
	h := open(t, store(t, parse(t, weighted)), packed.WithReadOnly())
	assert.Equal(t, 400.0, at(t, h, 2, 1))
	assert.ErrorIs(t, h.Set(2, 1, 1), core.ErrUnsupported)
	assert.ErrorIs(t, h.Transpose(), core.ErrUnsupported)
	row, err := h.Outgoing(2)
	require.NoError(t, err)
	assert.ErrorIs(t, row.SetValue(0, 1), sparse.ErrReadOnly)
}

func TestExclusiveLock(t *testing.T) {
	path := store(t, parse(t, weighted))
	open(t, path, packed.WithExclusiveLock())
	_, err := packed.Open(path, packed.WithExclusiveLock())
	assert.ErrorIs(t, err, packed.ErrLocked)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := packed.Open(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	short := filepath.Join(dir, "short")
	require.NoError(t, os.WriteFile(short, []byte("GPH"), 0o644))
	_, err = packed.Open(short)
	assert.ErrorIs(t, err, format.ErrTruncated)

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("XYZ\x00\x00\x00\x00\x00\x00\x00\x00\x00"), 0o644))
	_, err = packed.Open(bad)
	assert.ErrorIs(t, err, format.ErrBadMagic)

	data, err := os.ReadFile(store(t, parse(t, weighted)))
	require.NoError(t, err)

	cut := filepath.Join(dir, "cut")
	require.NoError(t, os.WriteFile(cut, data[:len(data)-9], 0o644))
	_, err = packed.Open(cut)
	assert.ErrorIs(t, err, format.ErrTruncated)

	corrupt := filepath.Join(dir, "corrupt")
	broken := append([]byte(nil), data...)
	binary.NativeEndian.PutUint32(broken[8:], 1)
	require.NoError(t, os.WriteFile(corrupt, broken, 0o644))
	_, err = packed.Open(corrupt)
	assert.ErrorIs(t, err, format.ErrCorrupt)
}

func TestScale(t *testing.T) {
	h := open(t, store(t, parse(t, weighted)))
	require.NoError(t, h.Scale(4))
	assert.Equal(t, 1.0, at(t, h, 1, 0))
}

func TestListWriteTo(t *testing.T) {
	h := open(t, store(t, parse(t, weighted)))
	row, err := h.Outgoing(2)
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := row.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(4+2*8), n)
	assert.Equal(t, uint32(2), binary.NativeEndian.Uint32(buf.Bytes()))
	assert.Equal(t, uint32(1), binary.NativeEndian.Uint32(buf.Bytes()[4:]))
}
