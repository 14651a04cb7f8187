// Package bench implements C8, the benchmark harness: it runs a selected
// connected-components kernel a configurable number of times over the same
// CSR graph and records wall-clock durations, without touching file I/O or
// CLI concerns (those belong to cmd/gocc and package output).
package bench

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gocc/ccerr"
	"github.com/katalvlaran/gocc/components"
	"github.com/katalvlaran/gocc/csr"
	"github.com/katalvlaran/gocc/internal/colog"
)

// Algorithm names the kernel to run, matching the CLI's --algorithm values.
type Algorithm string

const (
	AlgorithmBFS            Algorithm = "bfs"
	AlgorithmLPSequential    Algorithm = "lp-seq"
	AlgorithmLPParallelLoop  Algorithm = "lp-par-loop"
	AlgorithmLPParallelPool  Algorithm = "lp-par-pool"
)

// Config describes one harness invocation.
type Config struct {
	Graph     *csr.CSRGraph
	Algorithm Algorithm
	Runs      int
	Threads   int // used by lp-par-pool only; lp-par-loop sizes its own pool from GOMAXPROCS
	ChunkSize int
	Logger    colog.Logger // may be nil; nil means no logging
}

// Result is the outcome of Harness.Run: the last-computed label vector
// (every run should converge to the same partition) plus one duration per
// run for benchmarking.
type Result struct {
	Labels    []int32
	Durations []time.Duration
}

// Harness runs a Config's selected kernel Runs times.
type Harness struct {
	cfg Config
}

// New validates cfg and returns a ready-to-run Harness.
func New(cfg Config) (*Harness, error) {
	if cfg.Graph == nil {
		return nil, fmt.Errorf("%w: nil graph", ccerr.ErrBadArgument)
	}
	if cfg.Runs <= 0 {
		return nil, fmt.Errorf("%w: runs must be positive, got %d", ccerr.ErrBadArgument, cfg.Runs)
	}
	switch cfg.Algorithm {
	case AlgorithmBFS, AlgorithmLPSequential, AlgorithmLPParallelLoop, AlgorithmLPParallelPool:
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ccerr.ErrBadArgument, cfg.Algorithm)
	}
	if cfg.Logger == nil {
		cfg.Logger = colog.Null{}
	}
	return &Harness{cfg: cfg}, nil
}

// Run executes the configured kernel cfg.Runs times, returning the final
// label vector and one duration per run.
func (h *Harness) Run() (*Result, error) {
	n := int(h.cfg.Graph.N)
	durations := make([]time.Duration, h.cfg.Runs)
	labels := make([]int32, n)

	kernel, err := h.kernelFunc()
	if err != nil {
		return nil, err
	}

	h.cfg.Logger.Info("harness starting", "algorithm", string(h.cfg.Algorithm), "runs", h.cfg.Runs, "n", n)
	for i := 0; i < h.cfg.Runs; i++ {
		start := time.Now()
		kernel(labels)
		durations[i] = time.Since(start)
		h.cfg.Logger.Debug("run complete", "i", i, "elapsed", durations[i].String())
	}
	h.cfg.Logger.Info("harness done", "algorithm", string(h.cfg.Algorithm))

	return &Result{Labels: labels, Durations: durations}, nil
}

// kernelFunc closes over h.cfg.Graph/Threads/ChunkSize and returns a
// func(labels []int32) that runs the selected algorithm once.
func (h *Harness) kernelFunc() (func(labels []int32), error) {
	g := h.cfg.Graph
	switch h.cfg.Algorithm {
	case AlgorithmBFS:
		return func(labels []int32) { components.BFS(g, labels) }, nil
	case AlgorithmLPSequential:
		return func(labels []int32) { components.LPSequential(g, labels) }, nil
	case AlgorithmLPParallelLoop:
		chunk := h.cfg.ChunkSize
		return func(labels []int32) { components.LPParallelLoop(g, labels, chunk) }, nil
	case AlgorithmLPParallelPool:
		threads, chunk := h.cfg.Threads, h.cfg.ChunkSize
		return func(labels []int32) { components.LPParallelPool(g, labels, threads, chunk) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ccerr.ErrBadArgument, h.cfg.Algorithm)
	}
}

// AverageSeconds reduces a Result's Durations to a mean, for CSV reporting.
func (r *Result) AverageSeconds() float64 {
	if len(r.Durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range r.Durations {
		total += d
	}
	return total.Seconds() / float64(len(r.Durations))
}
