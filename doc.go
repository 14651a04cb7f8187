// Command-and-library module gocc computes connected components of large
// undirected sparse graphs and benchmarks four equivalent kernels against
// each other.
//
// Organized as:
//
//	csr/          — immutable compressed-sparse-row graph + normalizer (C1/C2)
//	components/   — BFS, sequential and parallel label-propagation kernels,
//	                label utilities (C3-C7)
//	concurrency/  — worker pool and cyclic barrier backing the parallel kernels
//	ingest/       — Matrix Market and MATLAB binary file parsing
//	bench/        — the benchmark harness (C8)
//	runspec/      — thread/chunk-size spec grammar shared by the CLI
//	output/       — label and CSV writers
//	cmd/gocc/     — the CLI tying the above together
//	ccerr/        — sentinel errors shared across packages
//	internal/colog — the leveled logger used for progress reporting
package gocc
