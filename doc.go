// Package lsgraph stores and analyzes large directed, edge-valued graphs:
// build them from text edge lists, keep them in a compact binary file that
// is memory-mapped on open, and run component, Markov-chain and
// neighborhood analyses on either representation.
//
// What is in the box?
//
//	sparse/        Adjacency: ordered (neighbor, value) lists and the
//	               dot/norm/cosine/union/intersection kernels over them
//	core/          the Graph contract shared by both stores, sentinel
//	               errors, the text edge-list writer and edge helpers
//	mutable/       in-memory editable store: edge-list parser, batch
//	               insertion, restrict/merge/transpose
//	format/        the binary file layout and its three writers (full,
//	               with added transpose, induced subgraph)
//	packed/        memory-mapped store over a binary file: value
//	               mutation and O(1) transpose, no structural edits
//	bfs/, dfs/     iterative traversals with hooks and cancellation
//	components/    strongly and weakly connected components, condensation
//	dijkstra/      single-source cheapest paths over edge values
//	neighborhood/  directed spheres, TF-IDF cosine, related nodes
//	vector/        dense node vectors, their file format, v·G and G·v
//	markov/        stochastic normalization, invariant measure, PageRank,
//	               symmetrization and time reversal
//	builder/       deterministic synthetic graphs for tests and benchmarks
//	cmd/lsg        command-line driver over all of the above
//
// Node ids are dense integers in [0, N). Both stores satisfy core.Graph, so
// every algorithm runs unchanged on a freshly parsed edge list or on a
// multi-gigabyte file mapped from disk.
//
// Quick example:
//
//	g, _ := mutable.ReadEdgeList(r)
//	_ = format.StoreFull("web.gph", g)
//	p, _ := packed.Open("web.gph", packed.WithReadOnly())
//	defer p.Close()
//	comp, _ := components.StronglyConnected(p)
//	id, size := components.Largest(comp)
package lsgraph
