// Package sparse defines the Adjacency contract shared by every graph store
// in lsgraph, together with the numeric routines written once against it.
//
// An Adjacency is one node's neighbor list: an ordered sequence of
// (neighbor, value) pairs sorted by increasing neighbor id. Three variants
// implement it:
//
//   - the sorted-slice lists of mutable.Graph (values in a shared arena);
//   - the zero-copy lists of packed.Graph (views into a memory mapping);
//   - List and Map from this package, used as scratch space by algorithms.
//
// Positions 0..Len()-1 replace iterators. Value and SetValue address the
// edge at a position; for the two stored variants the write lands in the
// slot shared by the outgoing and incoming views of the same edge.
//
// Generic routines:
//
//   - Get(a, j)               value of neighbor j, 0 when absent
//   - Dot1, Dot2              Σ√(a·b) and Σ a·b over common neighbors
//   - Norm1, Norm2            Σ|a| and Σ a²
//   - Cos1, Cos2              normalized Dot1 / Dot2
//   - Union, Intersect        ordered merges (sum / product of values)
//   - EqualNonZero            comparison that ignores stored zeros
//
// Every merge is a single linear pass over the two sorted lists, so its cost
// is O(a.Len() + b.Len()). Stored zeros are skipped by every numeric routine.
package sparse
