package components_test

import (
	"testing"

	"github.com/katalvlaran/gocc/components"
	"github.com/katalvlaran/gocc/csr"
)

func runLPParallelLoop(g *csr.CSRGraph, chunkSize int) []int32 {
	labels := make([]int32, g.N)
	components.LPParallelLoop(g, labels, chunkSize)
	return labels
}

func TestLPParallelLoop_MatchesSequentialPartition(t *testing.T) {
	graphs := []*csr.CSRGraph{
		triangleGraph(), twoDisjointEdgesGraph(), pathGraph5(),
		isolatedVertexAmongCliqueGraph(), starGraph5(),
	}
	for _, g := range graphs {
		want := runLPSeq(g)
		for _, chunk := range []int{1, 32, 1024} {
			got := runLPParallelLoop(g, chunk)
			if !components.SamePartition(want, got) {
				t.Fatalf("chunk=%d: partition %v != sequential %v", chunk, got, want)
			}
		}
	}
}

func TestLPParallelLoop_EdgeClosure(t *testing.T) {
	g := isolatedVertexAmongCliqueGraph()
	labels := runLPParallelLoop(g, 1)
	for u := int32(0); u < g.N; u++ {
		for _, v := range g.Neighbors(u) {
			if labels[u] != labels[v] {
				t.Fatalf("edge (%d,%d): labels %d != %d", u, v, labels[u], labels[v])
			}
		}
	}
}

func TestLPParallelLoop_EmptyGraph(t *testing.T) {
	g, err := csr.Build(0, 0, nil, true, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	labels := make([]int32, 0)
	components.LPParallelLoop(g, labels, 1024) // must not panic
}

func TestLPParallelLoop_Idempotent(t *testing.T) {
	g := pathGraph5()
	a := runLPParallelLoop(g, 32)
	b := runLPParallelLoop(g, 32)
	if !components.SamePartition(a, b) {
		t.Fatalf("two runs disagree: %v vs %v", a, b)
	}
}
