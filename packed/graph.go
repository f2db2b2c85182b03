// SPDX-License-Identifier: MIT
// Package: lsgraph/packed
//
// graph.go — Open/Close and the core.Graph implementation.

package packed

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/format"
	"github.com/katalvlaran/lsgraph/sparse"
)

// ErrLocked is returned by Open with WithExclusiveLock when another holder
// has the file locked.
var ErrLocked = errors.New("packed: file is locked")

// direction holds the offset table and adjacency array of one direction.
type direction struct {
	table []uint32
	array []uint32
}

// Graph is a core.Graph served from a memory-mapped graph file.
type Graph struct {
	path string
	file *os.File
	data []byte
	size int64

	header   format.Header
	n        int
	width    int
	out, in  direction
	hasIn    bool
	values   []float64
	labelIdx []uint32
	labels   []byte

	readOnly bool
	locked   bool
	log      *zap.Logger
}

var _ core.Graph = (*Graph)(nil)

// Open maps the graph file at path. The file must have been written by one
// of the format.Store* functions.
func Open(path string, opts ...Option) (*Graph, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	flag := os.O_RDWR
	if o.readOnly {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("Open(%s): %w", path, err)
	}
	g := &Graph{path: path, file: f, readOnly: o.readOnly, log: o.log}
	if err = g.init(o); err != nil {
		_ = g.Close()
		return nil, fmt.Errorf("Open(%s): %w", path, err)
	}
	g.log.Debug("graph mapped",
		zap.String("path", path),
		zap.Int("nodes", g.n),
		zap.Uint32("edges", g.header.Edges),
		zap.Bool("values", g.HasValues()),
		zap.Bool("both", g.hasIn),
		zap.Bool("transposed", g.Transposed()))

	return g, nil
}

func (g *Graph) init(o options) error {
	if o.lock {
		if err := lockFile(g.file); err != nil {
			return err
		}
		g.locked = true
	}
	st, err := g.file.Stat()
	if err != nil {
		return err
	}
	g.size = st.Size()
	if g.size < format.HeaderSize {
		return fmt.Errorf("%d bytes: %w", g.size, format.ErrTruncated)
	}
	if g.data, err = mapFile(g.file, int(g.size), !o.readOnly); err != nil {
		return fmt.Errorf("mmap: %w", err)
	}
	if g.header, err = format.ParseHeader(g.data, g.size); err != nil {
		return err
	}
	if err = g.bind(); err != nil {
		return err
	}
	if o.verify {
		return g.verify()
	}

	return nil
}

// bind builds the views over the mapping and checks the offset tables.
// Complexity: O(N).
func (g *Graph) bind() error {
	h := g.header
	l := h.Layout()
	g.n = int(h.Nodes)
	g.width = h.Width()
	n := int64(h.Nodes)

	g.out = direction{table: words(g.data, l.OutTable, n), array: words(g.data, l.OutArray, l.ArrayWords)}
	if err := g.checkTable(g.out, "outgoing"); err != nil {
		return err
	}
	if h.Flags.Has(format.FlagBoth) {
		g.hasIn = true
		g.in = direction{table: words(g.data, l.InTable, n), array: words(g.data, l.InArray, l.ArrayWords)}
		if err := g.checkTable(g.in, "incoming"); err != nil {
			return err
		}
	}
	if h.Flags.Has(format.FlagValues) {
		g.values = floats(g.data, l.Values, int64(h.Edges))
	}
	if h.Flags.Has(format.FlagLabels) {
		g.labelIdx = words(g.data, l.LabelTable, n)
		g.labels = g.data[l.Labels:]
		for i, off := range g.labelIdx {
			if int(off) >= len(g.labels) {
				return fmt.Errorf("label %d at %d beyond %d: %w", i, off, len(g.labels), format.ErrCorrupt)
			}
		}
	}
	if h.Flags.Has(format.FlagTransposed) {
		g.out, g.in = g.in, g.out
	}

	return nil
}

func (g *Graph) checkTable(d direction, name string) error {
	total := 0
	for i, off := range d.table {
		if int(off) >= len(d.array) {
			return fmt.Errorf("%s list %d at %d beyond %d: %w", name, i, off, len(d.array), format.ErrCorrupt)
		}
		count := int(d.array[off])
		if int(off)+1+count*g.width > len(d.array) {
			return fmt.Errorf("%s list %d overruns the array: %w", name, i, format.ErrCorrupt)
		}
		total += count
	}
	if total != int(g.header.Edges) {
		return fmt.Errorf("%s lists hold %d edges, header says %d: %w", name, total, g.header.Edges, format.ErrCorrupt)
	}

	return nil
}

// verify checks every entry of every stored list.
// Complexity: O(N + E).
func (g *Graph) verify() error {
	dirs := []direction{g.out}
	if g.hasIn {
		dirs = append(dirs, g.in)
	}
	for _, d := range dirs {
		for i := 0; i < g.n; i++ {
			l := g.list(d, i)
			for p := 0; p < l.Len(); p++ {
				if nb := l.Neighbor(p); nb >= g.n || (p > 0 && nb <= l.Neighbor(p-1)) {
					return fmt.Errorf("node %d entry %d: neighbor %d: %w", i, p, nb, format.ErrCorrupt)
				}
				if s := l.Slot(p); s >= int(g.header.Edges) {
					return fmt.Errorf("node %d entry %d: slot %d: %w", i, p, s, format.ErrCorrupt)
				}
			}
		}
	}

	return nil
}

// Ready reports whether the file is mapped.
func (g *Graph) Ready() bool { return g.data != nil }

// Path returns the path given to Open.
func (g *Graph) Path() string { return g.path }

// Size returns the file size in bytes.
func (g *Graph) Size() int64 { return g.size }

// Header returns the header as read at Open. The transposed bit reflects the
// orientation at Open time; see Transposed for the current one.
func (g *Graph) Header() format.Header { return g.header }

// Transposed reports whether the stored directions are currently swapped.
func (g *Graph) Transposed() bool {
	return g.data != nil && format.Flags(g.data[format.FlagsOffset]).Has(format.FlagTransposed)
}

// Flush synchronously writes modified pages back to the file.
func (g *Graph) Flush() error {
	if g.data == nil || g.readOnly {
		return nil
	}
	if err := flush(g.data); err != nil {
		return fmt.Errorf("Flush(%s): %w", g.path, err)
	}

	return nil
}

// Close flushes and unmaps the file and releases it. Closing twice is a
// no-op.
func (g *Graph) Close() error {
	var errs []error
	if g.data != nil {
		if !g.readOnly {
			errs = append(errs, flush(g.data))
		}
		errs = append(errs, unmap(g.data))
		g.data = nil
		g.out, g.in, g.values, g.labels, g.labelIdx = direction{}, direction{}, nil, nil, nil
	}
	if g.file != nil {
		if g.locked {
			errs = append(errs, unlockFile(g.file))
			g.locked = false
		}
		errs = append(errs, g.file.Close())
		g.file = nil
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("Close(%s): %w", g.path, err)
	}

	return nil
}

func (g *Graph) NumNodes() int   { return g.n }
func (g *Graph) NumEdges() int   { return int(g.header.Edges) }
func (g *Graph) HasValues() bool { return g.header.Flags.Has(format.FlagValues) }
func (g *Graph) HasLabels() bool { return g.header.Flags.Has(format.FlagLabels) }

func (g *Graph) list(d direction, i int) list {
	off := d.table[i]
	count := d.array[off]
	return list{
		words:    d.array[off+1 : off+1+count*uint32(g.width)],
		width:    g.width,
		values:   g.values,
		readOnly: g.readOnly,
	}
}

func (g *Graph) checkOpen() error {
	if g.data == nil {
		return fmt.Errorf("%s: %w", g.path, os.ErrClosed)
	}

	return nil
}

// Outgoing returns the successors of i.
func (g *Graph) Outgoing(i int) (sparse.Adjacency, error) {
	if err := g.checkOpen(); err != nil {
		return nil, err
	}
	if err := core.CheckNode(g.n, i); err != nil {
		return nil, err
	}

	return g.list(g.out, i), nil
}

// Incoming returns the predecessors of j, or core.ErrNoTranspose when the
// file stores the outgoing direction only.
func (g *Graph) Incoming(j int) (sparse.Adjacency, error) {
	if err := g.checkOpen(); err != nil {
		return nil, err
	}
	if !g.hasIn {
		return nil, fmt.Errorf("Incoming(%d): %w", j, core.ErrNoTranspose)
	}
	if err := core.CheckNode(g.n, j); err != nil {
		return nil, err
	}

	return g.list(g.in, j), nil
}

// find locates edge i→j.
func (g *Graph) find(op string, i, j int) (list, int, bool, error) {
	if err := g.checkOpen(); err != nil {
		return list{}, 0, false, err
	}
	if err := core.CheckNode(g.n, i); err != nil {
		return list{}, 0, false, fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
	}
	if err := core.CheckNode(g.n, j); err != nil {
		return list{}, 0, false, fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
	}
	row := g.list(g.out, i)
	pos, ok := row.Find(j)

	return row, pos, ok, nil
}

// At returns the value of edge i→j, or 0 when absent.
// Complexity: O(log d).
func (g *Graph) At(i, j int) (float64, error) {
	row, pos, ok, err := g.find("At", i, j)
	if err != nil || !ok {
		return 0, err
	}

	return row.Value(pos), nil
}

// Has reports whether edge i→j exists.
func (g *Graph) Has(i, j int) (bool, error) {
	_, _, ok, err := g.find("Has", i, j)

	return ok, err
}

func (g *Graph) writable(op string) error {
	if g.readOnly {
		return fmt.Errorf("%s: read-only mapping: %w", op, core.ErrUnsupported)
	}
	if !g.HasValues() {
		return fmt.Errorf("%s: file has no values: %w", op, core.ErrUnsupported)
	}

	return nil
}

// Set overwrites the value of the existing edge i→j. A missing edge
// returns core.ErrUnsupported since the structure of the file is fixed.
func (g *Graph) Set(i, j int, v float64) error {
	return g.update("Set", i, j, func(float64) float64 { return v })
}

// Add adds v to the value of the existing edge i→j.
func (g *Graph) Add(i, j int, v float64) error {
	return g.update("Add", i, j, func(old float64) float64 { return old + v })
}

func (g *Graph) update(op string, i, j int, fn func(float64) float64) error {
	row, pos, ok, err := g.find(op, i, j)
	if err != nil {
		return err
	}
	if err = g.writable(op); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s(%d,%d): edge not in file: %w", op, i, j, core.ErrUnsupported)
	}

	return row.SetValue(pos, fn(row.Value(pos)))
}

// Scale multiplies every value in the file by v.
// Complexity: O(E).
func (g *Graph) Scale(v float64) error {
	if err := g.checkOpen(); err != nil {
		return err
	}
	if err := g.writable("Scale"); err != nil {
		return err
	}
	for k := range g.values {
		g.values[k] *= v
	}

	return nil
}

// Transpose reverses every edge by flipping the transposed bit in the file
// header. The header page is flushed before the in-memory views are
// swapped; on flush failure the bit is restored and the error returned.
// Complexity: O(1) plus one page flush.
func (g *Graph) Transpose() error {
	if err := g.checkOpen(); err != nil {
		return err
	}
	if !g.hasIn {
		return fmt.Errorf("Transpose(%s): %w", g.path, core.ErrNoTranspose)
	}
	if g.readOnly {
		return fmt.Errorf("Transpose(%s): read-only mapping: %w", g.path, core.ErrUnsupported)
	}

	g.data[format.FlagsOffset] ^= byte(format.FlagTransposed)
	page := min(os.Getpagesize(), len(g.data))
	if err := flush(g.data[:page]); err != nil {
		g.data[format.FlagsOffset] ^= byte(format.FlagTransposed)
		return fmt.Errorf("Transpose(%s): %w", g.path, err)
	}
	g.out, g.in = g.in, g.out
	g.log.Debug("graph transposed", zap.String("path", g.path), zap.Bool("transposed", g.Transposed()))

	return nil
}

// Label returns the label of node i.
func (g *Graph) Label(i int) (string, error) {
	if err := g.checkOpen(); err != nil {
		return "", err
	}
	if err := core.CheckNode(g.n, i); err != nil {
		return "", err
	}
	if !g.HasLabels() {
		return "", fmt.Errorf("Label(%d): %w", i, core.ErrUnsupported)
	}
	s := g.labels[g.labelIdx[i]:]
	if end := bytes.IndexByte(s, 0); end >= 0 {
		s = s[:end]
	}

	return string(s), nil
}

// NodeWithLabel returns the first node labeled s, or core.NotFound.
// Complexity: O(N + label bytes).
func (g *Graph) NodeWithLabel(s string) int {
	if !g.HasLabels() {
		return core.NotFound
	}
	for i := 0; i < g.n; i++ {
		if l, err := g.Label(i); err == nil && l == s {
			return i
		}
	}

	return core.NotFound
}
