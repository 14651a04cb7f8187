// File: lppar_pool.go
// Role: C6 — worker-pool parallel label-propagation kernel. A fixed pool
// of goroutines (the realization of spec's "OS-level worker threads": Go
// multiplexes goroutines over OS threads, and a persistent pool of them is
// the idiomatic vehicle for this scheduling model — see DESIGN.md)
// coordinated by one concurrency.Barrier, parallelizing LPSequential's
// double-buffered frontier template across either static blocks or a
// shared atomic work counter.
//
// Convergence detection is unanimous: workers only publish "changed" after
// their own relaxation pass for the round completes, and the leader reads
// the global flag strictly after a barrier rendezvous, so no interleaving
// can observe false convergence.
package components

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/gocc/concurrency"
	"github.com/katalvlaran/gocc/csr"
)

// StaticChunkSize is the sentinel chunkSize value selecting static block
// partitioning in LPParallelPool (one fixed range per thread, reused every
// round) instead of dynamic chunking via a shared atomic counter.
const StaticChunkSize = 1

// lpPoolState is the state shared by every worker goroutine in one
// LPParallelPool call, swapped by the leader (goroutine 0) between rounds.
type lpPoolState struct {
	cur, next            []int32
	activeCur, activeNext []atomic.Bool
	anyChanged            atomic.Bool
	nextVertex            atomic.Int32
	terminate             atomic.Bool
}

// LPParallelPool computes labels[v] = the minimum vertex ID reachable from
// v using numThreads persistent goroutines coordinated by a barrier.
// chunkSize == StaticChunkSize selects static block partitioning (thread t
// permanently owns vertices [t*ceil(n/T), (t+1)*ceil(n/T))); any larger
// chunkSize selects dynamic chunking via a shared atomic work counter.
//
// labels must have length g.N; it is overwritten in full.
func LPParallelPool(g *csr.CSRGraph, labels []int32, numThreads, chunkSize int) {
	n := int(g.N)
	if n == 0 {
		return
	}
	if numThreads <= 0 {
		numThreads = concurrency.DefaultWorkers()
	}
	if numThreads > n {
		numThreads = n
	}

	state := &lpPoolState{
		cur:        make([]int32, n),
		next:       make([]int32, n),
		activeCur:  make([]atomic.Bool, n),
		activeNext: make([]atomic.Bool, n),
	}
	for v := 0; v < n; v++ {
		state.cur[v] = int32(v)
		state.activeCur[v].Store(true)
	}

	barrier := concurrency.NewBarrier(numThreads)
	perThread := (n + numThreads - 1) / numThreads

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for id := 0; id < numThreads; id++ {
		go func(id int) {
			defer wg.Done()
			runPoolWorker(id, numThreads, perThread, chunkSize, n, g, state, barrier)
		}(id)
	}
	wg.Wait()

	copy(labels[:n], state.cur[:n])
}

func runPoolWorker(id, numThreads, perThread, chunkSize, n int, g *csr.CSRGraph, state *lpPoolState, barrier *concurrency.Barrier) {
	for {
		if id == 0 {
			state.nextVertex.Store(0)
			state.anyChanged.Store(false)
		}
		barrier.Wait() // (1) reset complete before work starts

		var localChanged bool
		if chunkSize <= StaticChunkSize {
			start := id * perThread
			end := start + perThread
			if end > n {
				end = n
			}
			if start < n {
				localChanged = relaxRange(g, state, start, end)
			}
		} else {
			for {
				start := int(state.nextVertex.Add(int32(chunkSize))) - chunkSize
				if start >= n {
					break
				}
				end := start + chunkSize
				if end > n {
					end = n
				}
				if relaxRange(g, state, start, end) {
					localChanged = true
				}
			}
		}
		if localChanged {
			state.anyChanged.Store(true)
		}
		barrier.Wait() // (2) end-of-work

		if id == 0 {
			if !state.anyChanged.Load() {
				state.terminate.Store(true)
			} else {
				state.cur, state.next = state.next, state.cur
				state.activeCur, state.activeNext = state.activeNext, state.activeCur
				for i := range state.activeNext {
					state.activeNext[i].Store(false)
				}
			}
		}
		barrier.Wait() // (3) termination check

		if state.terminate.Load() {
			return
		}
	}
}

// relaxRange runs the sequential relax step (see LPSequential) over
// [start,end), a range owned exclusively by the calling worker for this
// round, so writes into state.next and state.activeNext within the range
// never race with another worker's writes to a disjoint range. Writes to
// state.activeNext for a *neighbor* outside the range may coincide with
// another worker's write to the same index — that race is benign (both
// possible outcomes store true) and modeled as a relaxed atomic store.
func relaxRange(g *csr.CSRGraph, state *lpPoolState, start, end int) bool {
	changed := false
	for u := start; u < end; u++ {
		state.next[u] = state.cur[u]
		if !state.activeCur[u].Load() {
			continue
		}
		newLabel := state.cur[u]
		for _, v := range g.Neighbors(int32(u)) {
			if state.cur[v] < newLabel {
				newLabel = state.cur[v]
			}
		}
		if newLabel < state.cur[u] {
			state.next[u] = newLabel
			state.activeNext[u].Store(true)
			for _, v := range g.Neighbors(int32(u)) {
				state.activeNext[v].Store(true)
			}
			changed = true
		}
	}
	return changed
}
