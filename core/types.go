package core

import (
	"errors"

	"github.com/katalvlaran/lsgraph/sparse"
)

// Sentinel errors shared by every graph store.
var (
	// ErrNodeOutOfRange indicates a node id outside [0, NumNodes()).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrUnsupported indicates an operation the store cannot perform,
	// such as inserting a new edge into a packed file.
	ErrUnsupported = errors.New("core: operation not supported")

	// ErrNoTranspose indicates that the incoming direction is not stored.
	ErrNoTranspose = errors.New("core: incoming direction not stored")

	// ErrSizeMismatch indicates that a mask, labeling or vector length
	// differs from the node count.
	ErrSizeMismatch = errors.New("core: size mismatch")

	// ErrInvalidArgument indicates a malformed argument.
	ErrInvalidArgument = errors.New("core: invalid argument")
)

// NotFound is returned by NodeWithLabel when no node carries the label.
const NotFound = -1

// Graph is a directed, edge-valued graph over dense node ids.
type Graph interface {
	// NumNodes returns N.
	NumNodes() int

	// NumEdges returns the number of live edges, stored zeros included.
	NumEdges() int

	// HasValues reports whether edges carry values. Without values every
	// present edge reads as 1.
	HasValues() bool

	// HasLabels reports whether nodes carry string labels.
	HasLabels() bool

	// Outgoing returns the sorted list of successors of i.
	Outgoing(i int) (sparse.Adjacency, error)

	// Incoming returns the sorted list of predecessors of j.
	Incoming(j int) (sparse.Adjacency, error)

	// At returns the value of edge i→j, or 0 when absent.
	At(i, j int) (float64, error)

	// Set stores v on edge i→j.
	Set(i, j int, v float64) error

	// Add adds v to edge i→j.
	Add(i, j int, v float64) error

	// Scale multiplies every edge value by v.
	Scale(v float64) error

	// Transpose reverses every edge in O(1).
	Transpose() error

	// Label returns the label of node i.
	Label(i int) (string, error)

	// NodeWithLabel returns the first node carrying label s, or NotFound.
	NodeWithLabel(s string) int
}
