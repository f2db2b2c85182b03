// SPDX-License-Identifier: MIT
// Package: lsgraph/format
//
// writer.go — the streaming writer shared by every Store* function.
//
// Passes:
//  1. outgoing lists; every emitted edge takes the next slot, and its
//     target is recorded so slot k is the k-th recorded entry;
//  2. incoming lists; slots recovered by binary search in the records, or
//     the records inverted when the source has no incoming view;
//  3. values, by re-walking the rows in pass-1 order;
//  4. labels;
//  5. edge count and offset tables backfilled in the header region.

package format

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/internal/fsutil"
)

// source describes the graph to write, already renumbered.
type source struct {
	nodes  int
	flags  Flags
	rows   func(i int, emit func(j int, v float64)) error
	cols   func(j int, emit func(i int)) error // nil: derive from rows
	labels func(i int) (string, error)
}

// recorder keeps the pass-1 targets: row i owns targets[start[i]:start[i+1]]
// and the slot of targets[k] is k.
type recorder struct {
	start   []int
	targets []int32
}

func (r *recorder) slot(i, j int) (int, bool) {
	row := r.targets[r.start[i]:r.start[i+1]]
	k := sort.Search(len(row), func(p int) bool { return int(row[p]) >= j })
	if k < len(row) && int(row[k]) == j {
		return r.start[i] + k, true
	}

	return 0, false
}

// invert builds, for every node, the sorted (source, slot) pairs of its
// incoming edges by counting sort over the records.
func (r *recorder) invert(n int) (start []int, sources, slots []int32) {
	start = make([]int, n+1)
	for _, j := range r.targets {
		start[j+1]++
	}
	for j := 0; j < n; j++ {
		start[j+1] += start[j]
	}
	fill := append([]int(nil), start[:n]...)
	sources = make([]int32, len(r.targets))
	slots = make([]int32, len(r.targets))
	for i := 0; i < n; i++ {
		for k := r.start[i]; k < r.start[i+1]; k++ {
			j := r.targets[k]
			sources[fill[j]] = int32(i)
			slots[fill[j]] = int32(k)
			fill[j]++
		}
	}

	return start, sources, slots
}

// wordWriter tracks the byte position of a buffered stream.
type wordWriter struct {
	w   *bufio.Writer
	pos int64
	buf [8]byte
	err error
}

func (ww *wordWriter) u32(v uint32) {
	if ww.err != nil {
		return
	}
	binary.NativeEndian.PutUint32(ww.buf[:4], v)
	_, ww.err = ww.w.Write(ww.buf[:4])
	ww.pos += IndexSize
}

func (ww *wordWriter) f64(v float64) {
	if ww.err != nil {
		return
	}
	binary.NativeEndian.PutUint64(ww.buf[:], math.Float64bits(v))
	_, ww.err = ww.w.Write(ww.buf[:])
	ww.pos += ValueSize
}

func (ww *wordWriter) bytes(b []byte) {
	if ww.err != nil {
		return
	}
	_, ww.err = ww.w.Write(b)
	ww.pos += int64(len(b))
}

func (ww *wordWriter) pad(to int64) {
	for ww.pos%to != 0 && ww.err == nil {
		ww.err = ww.w.WriteByte(0)
		ww.pos++
	}
}

// write streams src into path through a temporary file.
func write(path string, src source, log *zap.Logger) error {
	if src.nodes > math.MaxInt32 {
		return fmt.Errorf("%s: %d nodes: %w", path, src.nodes, ErrTooLarge)
	}
	return fsutil.WriteAtomic(path, func(f *os.File) error {
		return writeTo(f, src, log)
	})
}

func writeTo(f *os.File, src source, log *zap.Logger) error {
	n := src.nodes
	tables := 1
	if src.flags.Has(FlagBoth) {
		tables++
	}
	if src.flags.Has(FlagLabels) {
		tables++
	}
	withValues := src.flags.Has(FlagValues)

	ww := &wordWriter{w: bufio.NewWriterSize(f, 1<<20)}
	ww.bytes(make([]byte, HeaderSize+IndexSize*tables*n))

	// pass 1: outgoing
	rec := &recorder{start: make([]int, n+1)}
	outOff := make([]uint32, n)
	arrayStart := ww.pos
	var rowErr error
	for i := 0; i < n; i++ {
		outOff[i] = uint32((ww.pos - arrayStart) / IndexSize)
		first := len(rec.targets)
		err := src.rows(i, func(j int, _ float64) {
			if j < 0 || j >= n {
				rowErr = fmt.Errorf("row %d: neighbor %d not in [0,%d): %w", i, j, n, ErrCorrupt)
				return
			}
			rec.targets = append(rec.targets, int32(j))
		})
		if err == nil {
			err = rowErr
		}
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if len(rec.targets) > math.MaxInt32 {
			return fmt.Errorf("write: %w", ErrTooLarge)
		}
		rec.start[i+1] = len(rec.targets)
		ww.u32(uint32(len(rec.targets) - first))
		for k := first; k < len(rec.targets); k++ {
			ww.u32(uint32(rec.targets[k]))
			if withValues {
				ww.u32(uint32(k))
			}
		}
	}
	edges := len(rec.targets)
	log.Debug("outgoing lists written", zap.Int("nodes", n), zap.Int("edges", edges))

	// pass 2: incoming
	var inOff []uint32
	if src.flags.Has(FlagBoth) {
		inOff = make([]uint32, n)
		arrayStart = ww.pos
		if err := writeIncoming(ww, src, rec, inOff, arrayStart, withValues); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}

	// pass 3: values
	if withValues {
		ww.pad(ValueSize)
		for i := 0; i < n; i++ {
			if err := src.rows(i, func(_ int, v float64) { ww.f64(v) }); err != nil {
				return fmt.Errorf("write: values of %d: %w", i, err)
			}
		}
	}

	// pass 4: labels
	var labelOff []uint32
	if src.flags.Has(FlagLabels) {
		labelOff = make([]uint32, n)
		labelStart := ww.pos
		for i := 0; i < n; i++ {
			s, err := src.labels(i)
			if err != nil {
				return fmt.Errorf("write: label %d: %w", i, err)
			}
			labelOff[i] = uint32(ww.pos - labelStart)
			ww.bytes(append([]byte(s), 0))
		}
	}

	if ww.err != nil {
		return fmt.Errorf("write: %w", ww.err)
	}
	if err := ww.w.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	// pass 5: header and tables
	head := make([]byte, HeaderSize+IndexSize*tables*n)
	h := Header{Flags: src.flags, Nodes: uint32(n), Edges: uint32(edges)}
	h.Encode(head)
	off := HeaderSize
	for _, table := range [][]uint32{outOff, inOff, labelOff} {
		for _, v := range table {
			binary.NativeEndian.PutUint32(head[off:], v)
			off += IndexSize
		}
	}
	if _, err := f.WriteAt(head, 0); err != nil {
		return fmt.Errorf("write: header: %w", err)
	}
	log.Debug("graph file written",
		zap.String("path", f.Name()),
		zap.Int("nodes", n),
		zap.Int("edges", edges),
		zap.Int64("bytes", ww.pos))

	return nil
}

func writeIncoming(ww *wordWriter, src source, rec *recorder, inOff []uint32, arrayStart int64, withValues bool) error {
	n := src.nodes
	if src.cols == nil {
		start, sources, slots := rec.invert(n)
		for j := 0; j < n; j++ {
			inOff[j] = uint32((ww.pos - arrayStart) / IndexSize)
			ww.u32(uint32(start[j+1] - start[j]))
			for k := start[j]; k < start[j+1]; k++ {
				ww.u32(uint32(sources[k]))
				if withValues {
					ww.u32(uint32(slots[k]))
				}
			}
		}
		return nil
	}

	width := 1
	if withValues {
		width = 2
	}
	var entries []uint32
	total := 0
	for j := 0; j < n; j++ {
		inOff[j] = uint32((ww.pos - arrayStart) / IndexSize)
		entries = entries[:0]
		var colErr error
		err := src.cols(j, func(i int) {
			if colErr != nil {
				return
			}
			slot, ok := 0, false
			if i >= 0 && i < n {
				slot, ok = rec.slot(i, j)
			}
			if !ok {
				colErr = fmt.Errorf("incoming %d←%d has no outgoing match: %w", j, i, ErrCorrupt)
				return
			}
			entries = append(entries, uint32(i))
			if withValues {
				entries = append(entries, uint32(slot))
			}
		})
		if err == nil {
			err = colErr
		}
		if err != nil {
			return err
		}
		ww.u32(uint32(len(entries) / width))
		for _, e := range entries {
			ww.u32(e)
		}
		total += len(entries) / width
	}
	if total != len(rec.targets) {
		return fmt.Errorf("%d incoming entries for %d edges: %w", total, len(rec.targets), ErrCorrupt)
	}

	return nil
}
