package components_test

import "github.com/katalvlaran/gocc/csr"

// buildSym builds a symmetrized, self-loop/duplicate-free CSR graph over
// n vertices from a list of undirected (1-based) edges, mirroring the
// concrete scenarios in spec §8.
func buildSym(n int, edges [][2]int32) *csr.CSRGraph {
	recs := make([]csr.EdgeRecord, len(edges))
	for i, e := range edges {
		recs[i] = csr.EdgeRecord{I: e[0], J: e[1]}
	}
	g, err := csr.Build(n, n, recs, true, true)
	if err != nil {
		panic(err)
	}
	return g
}

func triangleGraph() *csr.CSRGraph {
	return buildSym(3, [][2]int32{{1, 2}, {2, 3}, {1, 3}})
}

func twoDisjointEdgesGraph() *csr.CSRGraph {
	return buildSym(4, [][2]int32{{1, 2}, {3, 4}})
}

func pathGraph5() *csr.CSRGraph {
	return buildSym(5, [][2]int32{{1, 2}, {2, 3}, {3, 4}, {4, 5}})
}

func isolatedVertexAmongCliqueGraph() *csr.CSRGraph {
	return buildSym(4, [][2]int32{{1, 2}, {1, 3}, {2, 3}})
}

func starGraph5() *csr.CSRGraph {
	return buildSym(5, [][2]int32{{1, 2}, {1, 3}, {1, 4}, {1, 5}})
}
