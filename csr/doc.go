// Package csr defines the compressed-sparse-row graph representation
// (CSRGraph) and the edge-ingest normalizer that builds one from a raw
// coordinate edge list.
//
// CSRGraph is immutable once built: Build is the only constructor, and no
// method on CSRGraph ever mutates RowPtr or ColIdx. All kernels in package
// components hold a read-only borrow of a CSRGraph for the duration of one
// call; no locking is required because nothing ever writes to it again.
//
// Invariants (see spec, unchanged here):
//
//   - Undirected closure: for every stored edge (u,v) with u != v, (v,u)
//     is also stored.
//   - No self-loops when DropSelfLoops was requested.
//   - No duplicate edges within a vertex's adjacency slice.
//   - ColIdx within each row is sorted ascending.
package csr
