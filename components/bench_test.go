package components_test

import (
	"testing"

	"github.com/katalvlaran/gocc/components"
	"github.com/katalvlaran/gocc/csr"
)

// benchSinkLabels prevents the compiler from eliminating the kernel calls
// below as dead code.
var benchSinkLabels []int32

func buildRingGraph(n int) *csr.CSRGraph {
	recs := make([]csr.EdgeRecord, n)
	for i := 0; i < n; i++ {
		recs[i] = csr.EdgeRecord{I: int32(i + 1), J: int32((i+1)%n + 1)}
	}
	g, err := csr.Build(n, n, recs, true, true)
	if err != nil {
		panic(err)
	}
	return g
}

func BenchmarkBFS_Ring10k(b *testing.B) {
	g := buildRingGraph(10_000)
	labels := make([]int32, g.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		components.BFS(g, labels)
		benchSinkLabels = labels
	}
}

func BenchmarkLPSequential_Ring10k(b *testing.B) {
	g := buildRingGraph(10_000)
	labels := make([]int32, g.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		components.LPSequential(g, labels)
		benchSinkLabels = labels
	}
}

func BenchmarkLPParallelLoop_Ring10k(b *testing.B) {
	g := buildRingGraph(10_000)
	labels := make([]int32, g.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		components.LPParallelLoop(g, labels, 1024)
		benchSinkLabels = labels
	}
}

func BenchmarkLPParallelPool_Ring10k(b *testing.B) {
	g := buildRingGraph(10_000)
	labels := make([]int32, g.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		components.LPParallelPool(g, labels, 8, 32)
		benchSinkLabels = labels
	}
}
