// Package components labels strongly and weakly connected components of a
// core.Graph and derives per-component structure from those labelings.
//
// What
//
//   - StronglyConnected runs an iterative Kosaraju: a full-forest DFS
//     yields the finish order, then reverse-graph reachability is labeled
//     from nodes taken by decreasing finish time.
//   - WeaklyConnected labels the underlying undirected graph with a
//     multi-source BFS over outgoing and incoming lists.
//   - Condensation collapses each component to one node.
//   - Count, Sizes, Largest and Mask inspect a labeling.
//
// Labelings are []int of length N holding 1-based component ids; 0 marks
// an unassigned node. Graphs without a stored incoming direction are first
// copied into a mutable.Graph, which always keeps both.
//
// Complexity: O(V + E) time and O(V) extra memory for both labelings, plus
// O(V + E) for the copy when the incoming direction is missing.
package components
