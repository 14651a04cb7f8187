package components_test

import (
	"testing"

	"github.com/katalvlaran/gocc/components"
	"github.com/katalvlaran/gocc/csr"
)

func runBFS(g *csr.CSRGraph) []int32 {
	labels := make([]int32, g.N)
	components.BFS(g, labels)
	return labels
}

func TestBFS_Triangle(t *testing.T) {
	labels := runBFS(triangleGraph())
	assertLabelsEqual(t, labels, []int32{0, 0, 0})
}

func TestBFS_TwoDisjointEdges(t *testing.T) {
	labels := runBFS(twoDisjointEdgesGraph())
	assertLabelsEqual(t, labels, []int32{0, 0, 1, 1})
}

func TestBFS_IsolatedVertexAmongClique(t *testing.T) {
	labels := runBFS(isolatedVertexAmongCliqueGraph())
	if k := components.CountUnique(labels, len(labels)); k != 2 {
		t.Fatalf("k = %d, want 2", k)
	}
}

func TestBFS_EmptyGraph(t *testing.T) {
	g, err := csr.Build(0, 0, nil, true, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	labels := make([]int32, 0)
	components.BFS(g, labels) // must not panic on n=0
	if len(labels) != 0 {
		t.Fatalf("labels = %v, want empty", labels)
	}
}

func TestBFS_SingleVertexNoEdges(t *testing.T) {
	g, err := csr.Build(1, 1, nil, true, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	labels := runBFS(g)
	assertLabelsEqual(t, labels, []int32{0})
}

func TestBFS_DenseLabelsInDiscoveryOrder(t *testing.T) {
	labels := runBFS(pathGraph5())
	for _, l := range labels {
		if l != 0 {
			t.Fatalf("labels = %v, want all 0 for a single connected path", labels)
		}
	}
}

func assertLabelsEqual(t *testing.T, got, want []int32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
}
