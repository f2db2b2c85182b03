// Package dfs implements iterative depth-first search over a core.Graph,
// plus the algorithms built directly on it: plain reachability and
// topological sort.
//
// What:
//
//   - DFS: single-source or forest traversal with pre-order (OnVisit) and
//     post-order (OnExit) hooks, returning the finish order, parent links
//     and visited flags.
//   - Reach: marks everything reachable from a root into a caller-owned
//     visited slice; the building block of Kosaraju's second pass.
//   - TopologicalSort: reverse finish order of a DAG, or ErrCycleDetected.
//
// Every traversal runs on an explicit stack of (node, adjacency, cursor)
// frames, so graphs with paths of millions of nodes cannot overflow the
// goroutine stack. Direction selects the outgoing (Forward), incoming
// (Backward) or both (Both) adjacency views.
//
// Complexity:
//
//   - DFS, Reach, TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - core.ErrNodeOutOfRange  start node outside [0, N)
//   - core.ErrNoTranspose     Backward/Both on a graph without incoming lists
//   - ErrCycleDetected        TopologicalSort on a cyclic graph
//   - context.Canceled        traversal canceled via WithContext
//   - hook errors             propagated from OnVisit or OnExit
package dfs
