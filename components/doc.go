// Package components implements the four connected-components kernels
// (BFS, sequential label-propagation, loop-parallel label-propagation,
// thread-pool label-propagation) plus the label utilities shared by all
// four (CountUnique, Canonicalize, Snapshot).
//
// All four kernels are semantically equivalent: they partition a graph's
// vertices into the same connected components. BFS produces dense IDs in
// [0,k) assigned in discovery order; the three label-propagation kernels
// produce, for each vertex, the minimum vertex ID reachable from it — a
// value in [0,n) that is not generally dense. Use Canonicalize to compare
// the two conventions (see the round-trip law in the package's tests).
package components
