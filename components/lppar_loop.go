// File: lppar_loop.go
// Role: C5 — shared-memory parallel label-propagation using a persistent
// work-stealing pool (concurrency.Pool) and lock-free atomic relaxation of
// vertex labels.
//
// Memory ordering: relaxed loads/stores/CAS suffice because labels are
// monotonically non-increasing (any observed value is a safe upper bound
// on the vertex's final label), and convergence is witnessed by reading
// anyChanged after the pool's internal WaitGroup join, which establishes
// happens-before against every relaxed write of that round.
package components

import (
	"sync/atomic"

	"github.com/katalvlaran/gocc/concurrency"
	"github.com/katalvlaran/gocc/csr"
)

// LPParallelLoop computes labels[v] = the minimum vertex ID reachable from
// v using a work-stealing parallel-for over [0,n) each round. chunkSize
// controls the batch size handed to each worker by the shared atomic work
// counter (spec.md suggests starting around 1024); chunkSize <= 0 uses 1024.
//
// labels must have length g.N; it is overwritten in full.
func LPParallelLoop(g *csr.CSRGraph, labels []int32, chunkSize int) {
	n := int(g.N)
	if n == 0 {
		return
	}
	if chunkSize <= 0 {
		chunkSize = 1024
	}

	atomicLabels := make([]atomic.Int32, n)
	for v := 0; v < n; v++ {
		atomicLabels[v].Store(int32(v))
	}

	workers := n
	if cpus := concurrency.DefaultWorkers(); cpus < workers {
		workers = cpus
	}
	pool := concurrency.NewPool(workers)
	defer pool.Close()

	var anyChanged atomic.Bool
	for {
		anyChanged.Store(false)
		pool.ParallelForAtomicBatched(n, chunkSize, func(start, end int) {
			localChanged := false
			for u := start; u < end; u++ {
				if relaxAtomic(g, atomicLabels, int32(u)) {
					localChanged = true
				}
			}
			if localChanged {
				anyChanged.Store(true)
			}
		})
		if !anyChanged.Load() {
			break
		}
	}

	for v := 0; v < n; v++ {
		labels[v] = atomicLabels[v].Load()
	}
}

// relaxAtomic performs one relax step on vertex u: it lowers u's label to
// the minimum of its current label and its neighbors' current labels, and
// optimistically pushes that minimum onto each neighbor too (a
// convergence-preserving heuristic that may do redundant work — see
// DESIGN.md). Reports whether u's own label was lowered.
func relaxAtomic(g *csr.CSRGraph, labels []atomic.Int32, u int32) bool {
	old := labels[u].Load()
	newLabel := old
	for _, v := range g.Neighbors(u) {
		if nv := labels[v].Load(); nv < newLabel {
			newLabel = nv
		}
	}

	improved := newLabel < old
	if improved {
		casDown(&labels[u], newLabel)
		for _, v := range g.Neighbors(u) {
			casDown(&labels[v], newLabel)
		}
	}
	return improved
}

// casDown lowers *a to at most newVal via a CAS loop, retrying only while
// the observed value is still greater than newVal. Labels only ever
// decrease, so a failed CAS (another goroutine got there first) simply
// means the loop re-reads and either stops (already <= newVal) or retries.
func casDown(a *atomic.Int32, newVal int32) {
	for {
		old := a.Load()
		if old <= newVal {
			return
		}
		if a.CompareAndSwap(old, newVal) {
			return
		}
	}
}
