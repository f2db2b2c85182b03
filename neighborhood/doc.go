// Package neighborhood explores the few-hop surroundings of a node: directed
// spheres, TF-IDF weighted link rows and the cosine "related nodes" ranking
// built from them.
//
// Directions are words over {F, B}. Starting from {node}, each F replaces
// the current set by the union of its outgoing neighbors and each B by the
// union of its incoming neighbors, so "FB" is the set of nodes sharing an
// out-link target with node (co-citation) and "BF" the set of nodes linked
// from a common source (bibliographic coupling).
//
// TF-IDF rows weight every outgoing value v of node i toward j by
// log(N / indegree(j)), damping links to hubs. Related ranks the nodes of
// the FB and BF spheres by the cosine of their TF-IDF rows to the query.
//
// All functions need the incoming direction and fail with
// core.ErrNoTranspose on a store that lacks it.
package neighborhood
