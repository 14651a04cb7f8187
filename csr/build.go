// File: build.go
// Role: Edge Ingest & Normalizer (C2) — turns a raw coordinate edge list
// into an immutable CSRGraph.
package csr

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gocc/ccerr"
)

// maxReasonableEdges bounds the edge buffer (len(records), doubled when
// symmetrizing) so an oversized record list fails fast with ErrOutOfMemory
// instead of attempting a huge allocation.
const maxReasonableEdges = 1 << 34

// Build runs the Edge Ingest & Normalizer (C2) algorithm: it converts
// 1-based coordinate records to 0-based, optionally symmetrizes and drops
// self-loops, sorts lexicographically by (u,v), deduplicates, and lays out
// the CSR row_ptr/col_idx arrays.
//
// m and n are the declared matrix dimensions (M, N from the source file's
// header); the resulting graph has N = max(m, n) vertices. Records whose
// 0-based index falls outside [0, N) are discarded.
//
// Build never fails on well-formed input; it returns ccerr.ErrOutOfMemory
// only if the symmetrized buffer size would exceed an internal sanity
// bound, matching the allocation-failure contract described for kernels.
func Build(m, n int, records []EdgeRecord, symmetrize, dropSelfLoops bool) (*CSRGraph, error) {
	vertexCount := m
	if n > vertexCount {
		vertexCount = n
	}
	if vertexCount < 0 {
		vertexCount = 0
	}
	nVert := int32(vertexCount)

	cap64 := int64(len(records))
	if symmetrize {
		cap64 *= 2
	}
	if cap64 > maxReasonableEdges {
		return nil, fmt.Errorf("csr: requested edge buffer of %d exceeds limit: %w", cap64, ccerr.ErrOutOfMemory)
	}

	// Step 1-2: allocate and populate the raw (possibly symmetrized) edge buffer.
	buf := make([]int64, 0, cap64)
	for _, rec := range records {
		u := rec.I - 1
		v := rec.J - 1
		if u < 0 || u >= nVert || v < 0 || v >= nVert {
			continue
		}
		buf = append(buf, packEdge(u, v))
		if symmetrize && u != v {
			buf = append(buf, packEdge(v, u))
		}
	}

	// Step 3: sort lexicographically by (u,v). The packed int64 key already
	// orders (u,v) pairs lexicographically, so a plain numeric sort suffices.
	sort.Slice(buf, func(i, j int) bool { return buf[i] < buf[j] })

	// Step 4: sweep once, dropping self-loops (if requested) and duplicates.
	write := 0
	for read := 0; read < len(buf); read++ {
		u, v := unpackEdge(buf[read])
		if dropSelfLoops && u == v {
			continue
		}
		if write > 0 {
			pu, pv := unpackEdge(buf[write-1])
			if pu == u && pv == v {
				continue
			}
		}
		buf[write] = buf[read]
		write++
	}
	buf = buf[:write]

	// Step 5: row_ptr via counting + prefix sum.
	rowPtr := make([]int64, nVert+1)
	for _, e := range buf {
		u, _ := unpackEdge(e)
		rowPtr[u+1]++
	}
	for u := int32(0); u < nVert; u++ {
		rowPtr[u+1] += rowPtr[u]
	}

	// Step 6: scatter column values. buf is already sorted by (u,v), so a
	// single sequential pass fills each row's slice in ascending order —
	// equivalent to, and cheaper than, tracking a per-row cursor.
	colIdx := make([]int32, len(buf))
	for i, e := range buf {
		_, v := unpackEdge(e)
		colIdx[i] = v
	}

	return &CSRGraph{
		N:      nVert,
		M:      int64(len(buf)),
		RowPtr: rowPtr,
		ColIdx: colIdx,
	}, nil
}

// packEdge encodes (u,v) into a single int64 so that numeric ordering
// matches lexicographic ordering of the pair.
func packEdge(u, v int32) int64 {
	return int64(u)<<32 | int64(uint32(v))
}

func unpackEdge(e int64) (int32, int32) {
	return int32(e >> 32), int32(uint32(e))
}
