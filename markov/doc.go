// SPDX-License-Identifier: MIT
// Package: lsgraph/markov
//
// Package markov treats a value-carrying graph as the transition matrix of
// a Markov chain, G(i,j) being the probability of stepping from i to j.
//
// What
//
//   - StochastifyRows / StochastifyColumns normalize every nonzero row or
//     column to sum 1, in place, through Adjacency.SetValue (so they work
//     on mutable graphs and on writable packed files alike).
//   - InvariantMeasure iterates v ← v·G a fixed number of times.
//   - PageRank iterates v ← d·v·G + (1−d)/N until the largest relative
//     change of an entry drops below a threshold.
//   - Rank orders nodes by decreasing score.
//   - Symmetrize and Reverse rebuild a chain from its invariant measure.
//
// Progress of the iterative routines is reported at debug level through an
// optional *zap.Logger (WithLogger).
package markov
