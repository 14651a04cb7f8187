// File: lpseq.go
// Role: C4 — single-threaded label-propagation with active/next-active
// frontier bitmaps. This is the template the parallel kernels (C5, C6)
// parallelize; its relax step and double-buffering scheme are shared
// verbatim by LPParallelPool.
package components

import "github.com/katalvlaran/gocc/csr"

// LPSequential assigns labels[v] = the minimum vertex ID reachable from v.
// labels must have length g.N; it is overwritten in full.
//
// Complexity: O((N+M) * rounds), rounds bounded by the graph's diameter.
func LPSequential(g *csr.CSRGraph, labels []int32) {
	n := int(g.N)
	if n == 0 {
		return
	}

	cur := labels[:n]
	next := make([]int32, n)
	for v := range cur {
		cur[v] = int32(v)
	}

	active := make([]bool, n)
	nextActive := make([]bool, n)
	for v := range active {
		active[v] = true
	}

	for {
		changed := false
		copy(next, cur)
		for u := 0; u < n; u++ {
			if !active[u] {
				continue
			}
			newLabel := cur[u]
			for _, v := range g.Neighbors(int32(u)) {
				if cur[v] < newLabel {
					newLabel = cur[v]
				}
			}
			if newLabel < cur[u] {
				next[u] = newLabel
				nextActive[u] = true
				for _, v := range g.Neighbors(int32(u)) {
					nextActive[v] = true
				}
				changed = true
			}
		}

		cur, next = next, cur
		active, nextActive = nextActive, active
		for i := range nextActive {
			nextActive[i] = false
		}

		if !changed {
			break
		}
	}

	if &cur[0] != &labels[0] {
		copy(labels, cur)
	}
}
