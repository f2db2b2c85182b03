// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted hop distances, parent links and visit order.
//
// What
//
//   - BFS explores nodes in non-decreasing hop distance from a start node
//     and returns a BFSResult (Order, Depth, Parent).
//   - Walk is the allocation-light primitive underneath: it takes a
//     caller-owned visited slice, so repeated walks over one graph (such as
//     weakly connected component labeling) share a single O(N) buffer.
//   - Direction selects outgoing (Forward), incoming (Backward) or both
//     views (Both); Both on a graph without incoming lists fails with
//     core.ErrNoTranspose.
//
// Determinism
//
//	Adjacency lists are sorted by neighbor id and neighbors are enqueued in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and result slices
//
// Errors
//
//	ErrGraphNil, core.ErrNodeOutOfRange, ErrOptionViolation, ErrVisitedSize,
//	context errors and hook errors, all wrapped with %w.
package bfs
