// SPDX-License-Identifier: MIT
// Package: lsgraph/mutable
//
// graph.go — Graph type, construction and point operations.

package mutable

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/sparse"
)

// Sentinel errors specific to the in-memory store.
var (
	// ErrBatchOpen is returned by point operations while a BatchInserter
	// has not been closed.
	ErrBatchOpen = errors.New("mutable: batch insertion in progress")

	// ErrTooLarge is returned when a node count or the value arena would
	// outgrow the 32-bit index type. Dead cells count towards the arena.
	ErrTooLarge = errors.New("mutable: graph too large")
)

// Graph is the in-memory implementation of core.Graph.
type Graph struct {
	out, in []list
	arena   *arena
	edges   int
	labels  []string
	batch   *BatchInserter
	log     *zap.Logger
}

var _ core.Graph = (*Graph)(nil)

// New returns a graph with n nodes and no edges.
// Complexity: O(n).
func New(n int, opts ...Option) (*Graph, error) {
	if n < 0 || n > math.MaxInt32 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrTooLarge)
	}
	o := newOptions(opts...)
	a := &arena{vals: make([]float64, 0, o.capacity)}
	g := &Graph{
		out:   make([]list, n),
		in:    make([]list, n),
		arena: a,
		log:   o.log,
	}
	for i := range g.out {
		g.out[i].arena = a
		g.in[i].arena = a
	}

	return g, nil
}

func (g *Graph) NumNodes() int   { return len(g.out) }
func (g *Graph) NumEdges() int   { return g.edges }
func (g *Graph) HasValues() bool { return true }
func (g *Graph) HasLabels() bool { return g.labels != nil }

// SlotCount returns the size of the value arena, dead cells included.
func (g *Graph) SlotCount() int { return len(g.arena.vals) }

// Outgoing returns the successors of i.
func (g *Graph) Outgoing(i int) (sparse.Adjacency, error) {
	if err := core.CheckNode(len(g.out), i); err != nil {
		return nil, err
	}

	return &g.out[i], nil
}

// Incoming returns the predecessors of j.
func (g *Graph) Incoming(j int) (sparse.Adjacency, error) {
	if err := core.CheckNode(len(g.in), j); err != nil {
		return nil, err
	}

	return &g.in[j], nil
}

func (g *Graph) check(op string, i, j int) error {
	if g.batch != nil {
		return fmt.Errorf("%s(%d,%d): %w", op, i, j, ErrBatchOpen)
	}
	if err := core.CheckNode(len(g.out), i); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
	}
	if err := core.CheckNode(len(g.out), j); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
	}

	return nil
}

// At returns the value of edge i→j, or 0 when the edge is absent.
func (g *Graph) At(i, j int) (float64, error) {
	if err := g.check("At", i, j); err != nil {
		return 0, err
	}
	row := &g.out[i]
	if pos, ok := row.Find(j); ok {
		return row.Value(pos), nil
	}

	return 0, nil
}

// Has reports whether edge i→j exists, zero-valued or not.
func (g *Graph) Has(i, j int) (bool, error) {
	if err := g.check("Has", i, j); err != nil {
		return false, err
	}
	_, ok := g.out[i].Find(j)

	return ok, nil
}

// Set stores v on edge i→j, creating the edge when absent.
func (g *Graph) Set(i, j int, v float64) error {
	if err := g.check("Set", i, j); err != nil {
		return err
	}
	if err := g.set(i, j, v); err != nil {
		return fmt.Errorf("Set(%d,%d): %w", i, j, err)
	}

	return nil
}

// set assumes validated indices.
func (g *Graph) set(i, j int, v float64) error {
	row := &g.out[i]
	pos, ok := row.Find(j)
	if ok {
		return row.SetValue(pos, v)
	}
	slot, err := g.arena.alloc(v)
	if err != nil {
		return err
	}
	row.insert(pos, entry{nb: int32(j), slot: slot})
	col := &g.in[j]
	cpos, _ := col.Find(i)
	col.insert(cpos, entry{nb: int32(i), slot: slot})
	g.edges++

	return nil
}

// Add adds v to edge i→j, creating it with value v when absent.
func (g *Graph) Add(i, j int, v float64) error {
	if err := g.check("Add", i, j); err != nil {
		return err
	}
	row := &g.out[i]
	if pos, ok := row.Find(j); ok {
		return row.SetValue(pos, row.Value(pos)+v)
	}
	if err := g.set(i, j, v); err != nil {
		return fmt.Errorf("Add(%d,%d): %w", i, j, err)
	}

	return nil
}

// Remove deletes edge i→j. Its slot is zeroed and left behind as a dead
// cell. Removing an absent edge is a no-op.
func (g *Graph) Remove(i, j int) error {
	if err := g.check("Remove", i, j); err != nil {
		return err
	}
	row := &g.out[i]
	pos, ok := row.Find(j)
	if !ok {
		return nil
	}
	g.arena.vals[row.entries[pos].slot] = 0
	row.removeAt(pos)
	col := &g.in[j]
	if cpos, found := col.Find(i); found {
		col.removeAt(cpos)
	}
	g.edges--

	return nil
}

// Scale multiplies every edge value by v.
// Complexity: O(SlotCount).
func (g *Graph) Scale(v float64) error {
	for k := range g.arena.vals {
		g.arena.vals[k] *= v
	}

	return nil
}

// Transpose swaps the outgoing and incoming tables. It fails with
// ErrBatchOpen while a batch is open.
// Complexity: O(1).
func (g *Graph) Transpose() error {
	if g.batch != nil {
		return fmt.Errorf("Transpose: %w", ErrBatchOpen)
	}
	g.out, g.in = g.in, g.out

	return nil
}

// Label returns the label of node i. Unlabeled graphs report
// core.ErrUnsupported.
func (g *Graph) Label(i int) (string, error) {
	if err := core.CheckNode(len(g.out), i); err != nil {
		return "", err
	}
	if g.labels == nil {
		return "", fmt.Errorf("Label(%d): %w", i, core.ErrUnsupported)
	}

	return g.labels[i], nil
}

// NodeWithLabel returns the first node labeled s, or core.NotFound.
// Complexity: O(N).
func (g *Graph) NodeWithLabel(s string) int {
	for i, l := range g.labels {
		if l == s {
			return i
		}
	}

	return core.NotFound
}

// SetLabel assigns s to node i, enabling labels on first use.
func (g *Graph) SetLabel(i int, s string) error {
	if err := core.CheckNode(len(g.out), i); err != nil {
		return err
	}
	if g.labels == nil {
		g.labels = make([]string, len(g.out))
	}
	g.labels[i] = s

	return nil
}

// SetLabels replaces every label at once.
func (g *Graph) SetLabels(labels []string) error {
	if len(labels) != len(g.out) {
		return fmt.Errorf("SetLabels: %d labels for %d nodes: %w", len(labels), len(g.out), core.ErrSizeMismatch)
	}
	g.labels = append(make([]string, 0, len(labels)), labels...)

	return nil
}
