package format_test

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/format"
	"github.com/katalvlaran/lsgraph/mutable"
)

func TestLayout(t *testing.T) {
	h := format.Header{Flags: format.FlagValues | format.FlagBoth | format.FlagLabels, Nodes: 3, Edges: 2}
	l := h.Layout()

	assert.Equal(t, int64(12), l.OutTable)
	assert.Equal(t, int64(24), l.InTable)
	assert.Equal(t, int64(36), l.LabelTable)
	assert.Equal(t, int64(48), l.OutArray)
	assert.Equal(t, int64(7), l.ArrayWords)
	assert.Equal(t, int64(76), l.InArray)
	assert.Equal(t, int64(104), l.Values)
	assert.Equal(t, int64(120), l.Labels)

	plain := format.Header{Nodes: 3, Edges: 2}.Layout()
	assert.Equal(t, int64(-1), plain.InTable)
	assert.Equal(t, int64(-1), plain.Values)
	assert.Equal(t, int64(5), plain.ArrayWords)
	assert.Equal(t, int64(12+12+20), plain.End)
}

func TestParseHeader(t *testing.T) {
	b := make([]byte, 64)
	format.Header{Flags: format.FlagBoth, Nodes: 1, Edges: 0}.Encode(b)
	h, err := format.ParseHeader(b, int64(len(b)))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), h.Nodes)
	assert.Equal(t, 1, h.Width())

	_, err = format.ParseHeader(b[:8], 8)
	assert.ErrorIs(t, err, format.ErrTruncated)

	_, err = format.ParseHeader(b, 16)
	assert.ErrorIs(t, err, format.ErrTruncated)

	b[format.FlagsOffset] = byte(format.FlagTransposed)
	_, err = format.ParseHeader(b, int64(len(b)))
	assert.ErrorIs(t, err, format.ErrCorrupt)

	b[format.FlagsOffset] = 0x80
	_, err = format.ParseHeader(b, int64(len(b)))
	assert.ErrorIs(t, err, format.ErrCorrupt)

	copy(b, "GPX")
	_, err = format.ParseHeader(b, int64(len(b)))
	assert.ErrorIs(t, err, format.ErrBadMagic)
}

// TestStoreFull_Bytes checks the exact bytes of a two-node file.
func TestStoreFull_Bytes(t *testing.T) {
	g, err := mutable.ReadEdgeList(strings.NewReader("2\nwith values\n0 1,2.5\n1 1,-1\n"))
	require.NoError(t, err)
	require.NoError(t, g.SetLabels([]string{"a", "bc"}))

	path := filepath.Join(t.TempDir(), "g.gph")
	require.NoError(t, format.StoreFull(path, g))
	b, err := os.ReadFile(path)
	require.NoError(t, err)

	u32 := func(off int) uint32 { return binary.NativeEndian.Uint32(b[off:]) }
	f64 := func(off int) float64 { return math.Float64frombits(binary.NativeEndian.Uint64(b[off:])) }

	h, err := format.ParseHeader(b, int64(len(b)))
	require.NoError(t, err)
	assert.Equal(t, format.FlagValues|format.FlagBoth|format.FlagLabels, h.Flags)
	assert.Equal(t, uint32(2), h.Edges)
	l := h.Layout()

	// out table and array: node 0 -> (1, slot 0); node 1 -> (1, slot 1)
	assert.Equal(t, []uint32{0, 3}, []uint32{u32(int(l.OutTable)), u32(int(l.OutTable) + 4)})
	out := int(l.OutArray)
	assert.Equal(t, []uint32{1, 1, 0, 1, 1, 1}, []uint32{u32(out), u32(out + 4), u32(out + 8), u32(out + 12), u32(out + 16), u32(out + 20)})

	// in array: node 0 -> none; node 1 -> (0, slot 0), (1, slot 1)
	in := int(l.InArray)
	assert.Equal(t, []uint32{0, 1}, []uint32{u32(int(l.InTable)), u32(int(l.InTable) + 4)})
	assert.Equal(t, []uint32{0, 2, 0, 0, 1, 1}, []uint32{u32(in), u32(in + 4), u32(in + 8), u32(in + 12), u32(in + 16), u32(in + 20)})

	assert.Equal(t, 2.5, f64(int(l.Values)))
	assert.Equal(t, -1.0, f64(int(l.Values)+8))
	assert.Equal(t, []uint32{0, 2}, []uint32{u32(int(l.LabelTable)), u32(int(l.LabelTable) + 4)})
	assert.Equal(t, "a\x00bc\x00", string(b[l.Labels:]))
}

func TestStore_Errors(t *testing.T) {
	g, err := mutable.New(2)
	require.NoError(t, err)

	err = format.StoreFull(filepath.Join(t.TempDir(), "missing", "g.gph"), g)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = format.StoreSubgraph(filepath.Join(t.TempDir(), "g.gph"), g, []bool{true})
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
}
