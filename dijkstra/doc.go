// Package dijkstra computes single-source shortest paths over a core.Graph
// whose edge values are non-negative costs.
//
// Overview:
//
//   - Dijkstra expands nodes in order of increasing distance from the source
//     using a binary min-heap with lazy decrease-key (stale entries are
//     skipped when popped).
//   - Works on any store: mutable.Graph and packed.Graph alike. Graphs
//     without values cost 1 per edge, giving hop counts.
//   - Stored zero values are present edges of cost 0.
//
// Options:
//
//   - WithMaxDistance(d): nodes farther than d stay unreached.
//   - WithInfEdgeThreshold(t): edges with value ≥ t are impassable.
//   - WithDirection(Backward): follow incoming lists, i.e. distances to the
//     source instead of from it.
//   - WithContext(ctx): cancellation, checked every 1024 pops.
//
// Errors (sentinel):
//
//   - ErrGraphNil:        the graph is nil.
//   - ErrNegativeWeight:  an edge value is negative (full scan before start).
//   - ErrBadMaxDistance:  WithMaxDistance(d) with d < 0.
//   - ErrBadInfThreshold: WithInfEdgeThreshold(t) with t ≤ 0.
//   - core.ErrNodeOutOfRange for a bad source.
//
// Complexity:
//
//   - Time:  O((N + E) log E)
//   - Space: O(N + E) for the distance and parent slices and the heap.
package dijkstra
