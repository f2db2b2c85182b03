// Package core defines the Graph contract implemented by every lsgraph store,
// the sentinel errors shared across packages, and the store-independent
// helpers built on that contract (equality, degrees, the text dump).
//
// A Graph has N nodes with dense ids in [0, N) and at most one directed,
// float64-valued edge per ordered pair. Each node exposes two ordered
// adjacency views:
//
//	Outgoing(i)  neighbors j with an edge i→j, sorted by j
//	Incoming(j)  neighbors i with an edge i→j, sorted by i
//
// Both views of the same edge share one value slot, so a write through
// either one is observed through the other. Stores that persist only the
// outgoing direction return ErrNoTranspose from Incoming.
//
// Implementations:
//
//	mutable.Graph   in-memory, fully mutable, always carries both directions
//	packed.Graph    memory-mapped file; existing values are mutable, the
//	                structure is fixed
//
// Zero-valued edges:
//
// A stored zero is a real edge for structural queries (Len, Find, NumEdges,
// iteration, serialization) and contributes 0 to numeric routines. Equal is
// the one place where stored zeros are treated as absent.
//
// Errors:
//
//	ErrNodeOutOfRange   node id outside [0, N)
//	ErrUnsupported      operation not available on this store
//	ErrNoTranspose      the incoming direction is not stored
//	ErrSizeMismatch     an argument's length disagrees with the graph
//	ErrInvalidArgument  malformed argument
//
// Graphs are not safe for concurrent use; callers serialize access.
package core
