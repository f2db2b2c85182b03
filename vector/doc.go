// Package vector provides dense per-node measures ([]float64 indexed by
// node id) with their two file formats and the products with a graph used
// by the Markov-chain routines.
//
// Binary format: the four bytes "MSR0", a uint32 count, then count float64
// values, all in native byte order (the same convention as graph files).
// Text format: the count on the first line, then one value per line.
package vector
