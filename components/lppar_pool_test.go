package components_test

import (
	"testing"

	"github.com/katalvlaran/gocc/components"
	"github.com/katalvlaran/gocc/csr"
)

func runLPParallelPool(g *csr.CSRGraph, numThreads, chunkSize int) []int32 {
	labels := make([]int32, g.N)
	components.LPParallelPool(g, labels, numThreads, chunkSize)
	return labels
}

// TestLPParallelPool_ThreadChunkInvariance is scenario 6 from spec §8:
// for every graph, every (T, chunk_size) combination must agree on k and
// on the label partition (up to canonicalization).
func TestLPParallelPool_ThreadChunkInvariance(t *testing.T) {
	graphs := map[string]*csr.CSRGraph{
		"triangle":       triangleGraph(),
		"twoDisjoint":    twoDisjointEdgesGraph(),
		"path5":          pathGraph5(),
		"isolatedClique": isolatedVertexAmongCliqueGraph(),
		"star5":          starGraph5(),
	}
	threadCounts := []int{1, 2, 4, 8}
	chunkSizes := []int{components.StaticChunkSize, 32, 1024}

	for name, g := range graphs {
		oracle := runBFS(g)
		wantK := components.CountUnique(oracle, len(oracle))
		for _, threads := range threadCounts {
			for _, chunk := range chunkSizes {
				got := runLPParallelPool(g, threads, chunk)
				if k := components.CountUnique(got, len(got)); k != wantK {
					t.Fatalf("%s T=%d chunk=%d: k=%d, want %d", name, threads, chunk, k, wantK)
				}
				if !components.SamePartition(oracle, got) {
					t.Fatalf("%s T=%d chunk=%d: partition %v != oracle %v", name, threads, chunk, got, oracle)
				}
			}
		}
	}
}

func TestLPParallelPool_StaticAndDynamicAgree(t *testing.T) {
	g := pathGraph5()
	static := runLPParallelPool(g, 4, components.StaticChunkSize)
	dynamic := runLPParallelPool(g, 4, 2)
	if !components.SamePartition(static, dynamic) {
		t.Fatalf("static %v and dynamic %v disagree", static, dynamic)
	}
}

func TestLPParallelPool_EmptyGraph(t *testing.T) {
	g, err := csr.Build(0, 0, nil, true, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	labels := make([]int32, 0)
	components.LPParallelPool(g, labels, 4, 32) // must not panic
}

func TestLPParallelPool_SingleVertex(t *testing.T) {
	g, err := csr.Build(1, 1, nil, true, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	labels := runLPParallelPool(g, 4, 32)
	assertLabelsEqual(t, labels, []int32{0})
}
