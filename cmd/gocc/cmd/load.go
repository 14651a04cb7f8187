package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/gocc/ccerr"
	"github.com/katalvlaran/gocc/csr"
	"github.com/katalvlaran/gocc/ingest"
)

// loadGraph reads path (dispatching on extension: ".mtx"/".mm" for Matrix
// Market, ".mat" for MATLAB binary) and builds the CSR graph. The graph is
// symmetrized when symmetrize is true or the source file declares itself
// symmetric.
func loadGraph(path string, symmetrize, dropSelfLoops bool) (*csr.CSRGraph, error) {
	coord, err := readCoordinate(path)
	if err != nil {
		return nil, err
	}

	effectiveSymmetrize := symmetrize || coord.Symmetric
	g, err := csr.Build(coord.M, coord.N, coord.Records, effectiveSymmetrize, dropSelfLoops)
	if err != nil {
		return nil, fmt.Errorf("building CSR graph: %w", err)
	}
	return g, nil
}

func readCoordinate(path string) (*ingest.Coordinate, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".mat"):
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ccerr.ErrIoError, path, err)
		}
		defer f.Close()
		return ingest.ParseMATFile(f)
	case strings.HasSuffix(lower, ".mtx"), strings.HasSuffix(lower, ".mm"):
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ccerr.ErrIoError, path, err)
		}
		defer f.Close()
		return ingest.ParseMatrixMarket(f)
	default:
		return nil, fmt.Errorf("%w: unrecognized matrix file extension for %s (want .mtx, .mm, or .mat)", ccerr.ErrBadArgument, path)
	}
}
