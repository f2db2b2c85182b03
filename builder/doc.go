// SPDX-License-Identifier: MIT
// Package: lsgraph/builder
//
// Package builder generates deterministic fixture graphs as *mutable.Graph
// values, for tests, examples, benchmarks and the CLI.
//
// Model:
//
//   - BuildGraph(n, opts, cons...) allocates an n-node mutable graph and runs
//     every Constructor against it in order. Constructors overlay their edges
//     on nodes 0..k-1 of that graph, so Cycle(5) followed by Star(5) yields a
//     wheel-like fixture. An edge that already exists keeps its value.
//   - Edges are directed. WithBidirectional emits the reverse of every edge
//     too, which turns the classic topologies into their undirected forms.
//   - Values come from a WeightFn (default: the constant DefaultEdgeWeight).
//   - Labels come from an optional LabelFn (WithLabels).
//
// Constructors:
//
//   - Path(n), Cycle(n), Star(n), Wheel(n), Complete(n)
//   - CompleteBipartite(n1, n2), Grid(rows, cols)
//   - RandomSparse(n, p): each ordered pair independently with probability p
//   - RandomRegular(n, d): every node with out- and in-degree d
//
// Determinism: the same n, options, seed and constructor order always give
// the same graph. Stochastic constructors need WithSeed or WithRand.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, all wrapped with the constructor name.
package builder
