// Package ingest turns the two file formats spec §6 names (ASCII
// coordinate Matrix Market, and MATLAB level-5 binary) into a Coordinate:
// declared dimensions plus a raw []csr.EdgeRecord list. Only structure is
// extracted — numeric values are read (where the format requires reading
// past them) and discarded, matching spec.md §6's "value is ignored —
// only structure is used."
//
// Package ingest is a thin adapter: it performs no symmetrization,
// deduplication, or CSR layout — that is csr.Build's job (C2).
package ingest

import "github.com/katalvlaran/gocc/csr"

// Coordinate is the parsed-but-not-yet-normalized result of reading a
// matrix file: its declared dimensions and raw edge records.
type Coordinate struct {
	M, N, NZ int
	Records  []csr.EdgeRecord

	// Symmetric is true when the source file declares itself symmetric,
	// skew-symmetric, or Hermitian (Matrix Market) — meaning the caller
	// should treat it as implicitly symmetrized even if csr.Build's own
	// symmetrize flag was not requested. See SPEC_FULL.md §4.1.
	Symmetric bool
}
