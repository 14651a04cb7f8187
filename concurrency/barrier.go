// File: barrier.go
// Role: a reusable (cyclic) rendezvous point for a fixed number of
// participants, used by the thread-pool kernel (C6) to coordinate the
// three rendezvous points per round (reset / end-of-work /
// termination-check). No third-party package in this module's dependency
// surface provides a cyclic barrier, so it is built directly on
// sync.Mutex/sync.Cond — see DESIGN.md.
package concurrency

import "sync"

// Barrier blocks a fixed number of participants at Wait until all of them
// have arrived, then releases them together and rolls over to the next
// generation so the same Barrier instance can be reused across an
// unbounded number of rounds.
type Barrier struct {
	mu        sync.Mutex
	cond      *sync.Cond
	n         int
	count     int
	gen       uint64
}

// NewBarrier creates a Barrier for n participants. n must be >= 1.
func NewBarrier(n int) *Barrier {
	b := &Barrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks the calling goroutine until n goroutines have called Wait
// for the current generation, then releases all of them simultaneously.
func (b *Barrier) Wait() {
	b.mu.Lock()
	gen := b.gen
	b.count++
	if b.count == b.n {
		// Last arrival: start the next generation and wake everyone.
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
