// SPDX-License-Identifier: MIT
// Package: lsgraph/format
//
// header.go — header parsing and section layout.

package format

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Sentinel errors for file validation.
var (
	// ErrBadMagic indicates that the file does not start with "GPH".
	ErrBadMagic = errors.New("format: bad magic")

	// ErrTruncated indicates a file shorter than its header requires.
	ErrTruncated = errors.New("format: truncated file")

	// ErrCorrupt indicates inconsistent offsets, counts or flags.
	ErrCorrupt = errors.New("format: corrupt file")

	// ErrTooLarge indicates counts beyond the 32-bit index type.
	ErrTooLarge = errors.New("format: graph too large for 32-bit indices")
)

// Magic is the three-byte file signature.
const Magic = "GPH"

// Fixed sizes, in bytes.
const (
	IndexSize  = 4
	ValueSize  = 8
	HeaderSize = 12

	offFlags = 3
	offNodes = 4
	offEdges = 8
)

// Flags is the fourth header byte.
type Flags uint8

const (
	// FlagValues marks files carrying a value array.
	FlagValues Flags = 1 << iota
	// FlagBoth marks files carrying the incoming direction.
	FlagBoth
	// FlagLabels marks files carrying node labels.
	FlagLabels
	// FlagTransposed marks files whose stored directions are swapped.
	FlagTransposed

	knownFlags = FlagValues | FlagBoth | FlagLabels | FlagTransposed
)

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// FlagsOffset is the byte offset of the flags byte, flipped in place by
// packed.Graph.Transpose.
const FlagsOffset = offFlags

// Header is the fixed part of a graph file.
type Header struct {
	Flags Flags
	Nodes uint32
	Edges uint32
}

// Width returns the number of index words per adjacency entry.
func (h Header) Width() int {
	if h.Flags.Has(FlagValues) {
		return 2
	}

	return 1
}

// Layout holds the byte offset of every section; absent sections are -1.
type Layout struct {
	OutTable   int64
	InTable    int64
	LabelTable int64
	OutArray   int64
	InArray    int64
	Values     int64
	Labels     int64
	// ArrayWords is the length of each adjacency array in index words.
	ArrayWords int64
	// End is the offset just past the last fixed-size section.
	End int64
}

// Layout computes the section offsets implied by h.
func (h Header) Layout() Layout {
	n, e := int64(h.Nodes), int64(h.Edges)
	l := Layout{InTable: -1, LabelTable: -1, InArray: -1, Values: -1, Labels: -1}
	l.ArrayWords = n + int64(h.Width())*e

	off := int64(HeaderSize)
	l.OutTable = off
	off += IndexSize * n
	if h.Flags.Has(FlagBoth) {
		l.InTable = off
		off += IndexSize * n
	}
	if h.Flags.Has(FlagLabels) {
		l.LabelTable = off
		off += IndexSize * n
	}
	l.OutArray = off
	off += IndexSize * l.ArrayWords
	if h.Flags.Has(FlagBoth) {
		l.InArray = off
		off += IndexSize * l.ArrayWords
	}
	if h.Flags.Has(FlagValues) {
		off = align(off, ValueSize)
		l.Values = off
		off += ValueSize * e
	}
	if h.Flags.Has(FlagLabels) {
		l.Labels = off
	}
	l.End = off

	return l
}

func align(off, to int64) int64 {
	if r := off % to; r != 0 {
		return off + to - r
	}

	return off
}

// Encode writes the 12-byte header into b.
func (h Header) Encode(b []byte) {
	copy(b, Magic)
	b[offFlags] = byte(h.Flags)
	binary.NativeEndian.PutUint32(b[offNodes:], h.Nodes)
	binary.NativeEndian.PutUint32(b[offEdges:], h.Edges)
}

// ParseHeader decodes and validates the header at the start of b. size is
// the total file size used to check that the fixed sections fit.
func ParseHeader(b []byte, size int64) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("ParseHeader: %d bytes: %w", len(b), ErrTruncated)
	}
	if string(b[:len(Magic)]) != Magic {
		return Header{}, fmt.Errorf("ParseHeader: %q: %w", b[:len(Magic)], ErrBadMagic)
	}
	h := Header{
		Flags: Flags(b[offFlags]),
		Nodes: binary.NativeEndian.Uint32(b[offNodes:]),
		Edges: binary.NativeEndian.Uint32(b[offEdges:]),
	}
	if h.Flags&^knownFlags != 0 {
		return Header{}, fmt.Errorf("ParseHeader: flags %#x: %w", h.Flags, ErrCorrupt)
	}
	if h.Flags.Has(FlagTransposed) && !h.Flags.Has(FlagBoth) {
		return Header{}, fmt.Errorf("ParseHeader: transposed single-direction file: %w", ErrCorrupt)
	}
	if h.Nodes > math.MaxInt32 || h.Edges > math.MaxInt32 {
		return Header{}, fmt.Errorf("ParseHeader: %d nodes, %d edges: %w", h.Nodes, h.Edges, ErrTooLarge)
	}
	if l := h.Layout(); l.End > size {
		return Header{}, fmt.Errorf("ParseHeader: need %d bytes, have %d: %w", l.End, size, ErrTruncated)
	}

	return h, nil
}

// ReadHeader reads and validates the header from the start of r.
func ReadHeader(r io.ReaderAt, size int64) (Header, error) {
	var b [HeaderSize]byte
	if _, err := r.ReadAt(b[:], 0); err != nil {
		if errors.Is(err, io.EOF) {
			return Header{}, fmt.Errorf("ReadHeader: %w", ErrTruncated)
		}
		return Header{}, fmt.Errorf("ReadHeader: %w", err)
	}

	return ParseHeader(b[:], size)
}
