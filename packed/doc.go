// SPDX-License-Identifier: MIT
// Package: lsgraph/packed
//
// Package packed serves a graph file written by package format straight from
// a shared memory mapping.
//
// Open maps the whole file and builds zero-copy views over the offset tables,
// the adjacency arrays and the value array; nothing is decoded up front.
// Adjacency lists returned by Outgoing and Incoming are slices into the
// mapping, and a write through SetValue lands in the file's value array,
// visible at once to every other mapping of the file.
//
// Mutation rules:
//
//   - the value of an existing edge may be changed (Set, Add, Scale);
//   - inserting an edge returns core.ErrUnsupported;
//   - Transpose flips the transposed bit in the file header, so the
//     orientation persists; it needs a file storing both directions.
//
// Transpose flushes the header page before swapping the in-memory views. If
// the flush fails the bit is restored and nothing changes, so the mapping
// and the file never disagree on orientation.
//
// Close flushes (msync) and unmaps the file; values written before Close
// are durable after it returns. Concurrent writers across processes must be
// serialized by the caller, e.g. with WithExclusiveLock.
//
// Open checks the header and the offset tables in O(N) but not the list
// entries. A file with a neighbor or slot word out of range opens fine and
// makes later lookups panic, so callers reading files they did not write
// should pass WithVerify, which checks every entry in O(N + E).
//
// Errors from Open:
//
//	format.ErrBadMagic    not a graph file
//	format.ErrTruncated   file shorter than its header requires
//	format.ErrCorrupt     inconsistent tables, or entries failing WithVerify
//	ErrLocked             WithExclusiveLock and another holder
package packed
