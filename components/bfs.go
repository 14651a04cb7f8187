// File: bfs.go
// Role: C3 — sequential multi-source BFS, the correctness oracle every
// other kernel's partition is checked against.
package components

import "github.com/katalvlaran/gocc/csr"

// BFS assigns every vertex a dense component ID in [0,k), discovered in
// vertex-index order. labels must have length g.N; it is overwritten in
// full. Two vertices share a label iff a path connects them.
//
// Complexity: O(N + M). Sequential; no concurrency.
func BFS(g *csr.CSRGraph, labels []int32) {
	n := int(g.N)
	for i := range labels[:n] {
		labels[i] = -1
	}
	if n == 0 {
		return
	}

	queue := make([]int32, 0, n)
	var current int32
	for s := int32(0); s < g.N; s++ {
		if labels[s] != -1 {
			continue
		}
		labels[s] = current
		queue = queue[:0]
		queue = append(queue, s)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.Neighbors(u) {
				if labels[v] == -1 {
					labels[v] = current
					queue = append(queue, v)
				}
			}
		}
		current++
	}
}
