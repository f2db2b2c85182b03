// SPDX-License-Identifier: MIT
// Package: lsgraph/mutable
//
// Package mutable implements core.Graph entirely in memory.
//
// Layout:
//
//	arena     []float64           one slot per edge ever created
//	out[i]    [](neighbor, slot)  sorted by neighbor
//	in[j]     [](neighbor, slot)  sorted by neighbor
//
// Both lists of an edge point at the same arena slot, so SetValue through
// either view is observed through the other. Transpose swaps out and in in
// O(1).
//
// Removal zeroes the slot and drops both index entries; the slot itself
// stays in the arena as a dead cell until Compact (or a packed write, which
// renumbers slots) reclaims it. NumEdges counts live edges, SlotCount the
// arena size.
//
// Bulk loading goes through a BatchInserter: Add appends unordered entries
// in O(1) and Close sorts every touched list once, collapsing duplicate
// pairs onto the first inserted value.
//
// Complexity:
//
//	At, Find            O(log d)
//	Set (new edge)      O(d_out(i) + d_in(j)) for the ordered insert
//	Remove              O(d_out(i) + d_in(j))
//	Batch Add / Close   O(1) / O(Σ d log d) over touched lists
//	Transpose           O(1)
//
// A Graph is not safe for concurrent use.
package mutable
