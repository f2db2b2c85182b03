// SPDX-License-Identifier: MIT
// Package: lsgraph/format
//
// Package format defines the on-disk graph layout read by package packed and
// the writers that produce it from any core.Graph.
//
// Layout (native byte order; I = uint32 index, V = float64 value):
//
//	offset 0   "GPH" + flags byte
//	           bit0 values, bit1 both directions, bit2 labels, bit3 transposed
//	offset 4   I node count
//	offset 8   I edge count
//	offset 12  I out offsets[n]
//	           I in offsets[n]        (both directions only)
//	           I label offsets[n]     (labels only)
//	           out array              per node: count, then (neighbor, slot)
//	                                  or just neighbor without values
//	           in array               (both directions only), same shape
//	           padding to 8
//	           V values[edge count]   (values only)
//	           labels                 NUL-terminated, in node order
//
// List offsets count index words from the start of their array; label
// offsets count bytes from the start of the label area. Each array holds
// n + width·e words, width being 2 with values and 1 without.
//
// Writers:
//
//	StoreFull(path, g)                copy of g, dead mutable slots dropped
//	StoreWithAddedTranspose(path, g)  G ∪ Gᵀ, added reverse edges valued 0
//	StoreSubgraph(path, g, keep)      induced subgraph, nodes renumbered
//
// Every writer streams a temporary file in the destination directory and
// renames it into place once synced, so readers never observe a partial
// file. Slots are assigned fresh in outgoing-pass order; the outgoing and
// incoming entries of an edge always carry the same slot.
package format
