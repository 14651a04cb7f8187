// File: labels.go
// Role: C7 — label utilities shared by all four kernels: counting
// distinct labels, canonicalizing to dense IDs, and snapshotting an
// atomic label vector into a plain one.
package components

import "sync/atomic"

// CountUnique returns the number of distinct values among labels[:n].
// Valid because every label-propagation output value lies in [0,n) and
// every BFS output value lies in [0,k) ⊆ [0,n).
//
// Complexity: O(n) time, O(n) space.
func CountUnique(labels []int32, n int) int {
	seen := make([]bool, n)
	k := 0
	for _, l := range labels[:n] {
		if !seen[l] {
			seen[l] = true
			k++
		}
	}
	return k
}

// Canonicalize returns a new label vector whose distinct values are
// exactly [0,k), assigned in order of first appearance in labels. It does
// not mutate labels. Useful for comparing a label-propagation partition
// against the BFS oracle, or two parallel runs against each other —
// kernels guarantee identical partitions, not identical label values.
func Canonicalize(labels []int32) []int32 {
	out := make([]int32, len(labels))
	assigned := make(map[int32]int32, len(labels))
	var next int32
	for i, l := range labels {
		id, ok := assigned[l]
		if !ok {
			id = next
			assigned[l] = id
			next++
		}
		out[i] = id
	}
	return out
}

// Snapshot copies an atomic label vector (as used internally by
// LPParallelLoop) into a plain []int32 of the same length.
func Snapshot(atomicLabels []atomic.Int32) []int32 {
	out := make([]int32, len(atomicLabels))
	for i := range atomicLabels {
		out[i] = atomicLabels[i].Load()
	}
	return out
}

// SamePartition reports whether two label vectors induce the same
// partition of [0,len(a)) after canonicalization, i.e. the same vertices
// are grouped together regardless of which representative ID each group
// was assigned.
func SamePartition(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := Canonicalize(a), Canonicalize(b)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}
	return true
}
