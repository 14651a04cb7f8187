package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gocc/ccerr"
	"github.com/katalvlaran/gocc/csr"
)

// ParseMatrixMarket reads the NIST Matrix Market "coordinate" text format
// (spec.md §6): a %%MatrixMarket banner, comment lines, a dimension line
// "M N NZ", then NZ data lines "I J [value...]". Indices are 1-based, as
// the format itself declares, and are passed through unchanged — csr.Build
// performs the 1-based to 0-based conversion.
//
// Only the "matrix coordinate" object/format combination is supported;
// dense "array" format returns ccerr.ErrUnsupported. A "symmetric",
// "skew-symmetric", or "hermitian" banner sets Coordinate.Symmetric.
func ParseMatrixMarket(r io.Reader) (*Coordinate, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	object, format, field, symmetry, err := readBanner(scanner)
	if err != nil {
		return nil, err
	}
	if object != "matrix" {
		return nil, fmt.Errorf("%w: matrix market object %q unsupported", ccerr.ErrUnsupported, object)
	}
	if format != "coordinate" {
		return nil, fmt.Errorf("%w: matrix market format %q unsupported (only coordinate)", ccerr.ErrUnsupported, format)
	}

	valuesPerRecord, err := fieldValueCount(field)
	if err != nil {
		return nil, err
	}

	m, n, nz, err := readDimensionLine(scanner)
	if err != nil {
		return nil, err
	}

	records := make([]csr.EdgeRecord, 0, nz)
	read := 0
	for read < nz {
		line, ok := nextDataLine(scanner)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d data lines, got %d", ccerr.ErrBadFormat, nz, read)
		}
		fields := strings.Fields(line)
		if len(fields) < 2+valuesPerRecord {
			return nil, fmt.Errorf("%w: malformed data line %q", ccerr.ErrBadFormat, line)
		}
		i, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: row index %q: %v", ccerr.ErrBadFormat, fields[0], err)
		}
		j, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: col index %q: %v", ccerr.ErrBadFormat, fields[1], err)
		}
		records = append(records, csr.EdgeRecord{I: int32(i), J: int32(j)})
		read++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ccerr.ErrIoError, err)
	}

	return &Coordinate{
		M: m, N: n, NZ: nz,
		Records:   records,
		Symmetric: symmetry != "general",
	}, nil
}

func readBanner(scanner *bufio.Scanner) (object, format, field, symmetry string, err error) {
	if !scanner.Scan() {
		return "", "", "", "", fmt.Errorf("%w: empty matrix market file", ccerr.ErrBadFormat)
	}
	banner := strings.Fields(scanner.Text())
	if len(banner) != 5 || strings.ToLower(banner[0]) != "%%matrixmarket" {
		return "", "", "", "", fmt.Errorf("%w: missing or malformed %%%%MatrixMarket banner", ccerr.ErrBadFormat)
	}
	return strings.ToLower(banner[1]), strings.ToLower(banner[2]), strings.ToLower(banner[3]), strings.ToLower(banner[4]), nil
}

func fieldValueCount(field string) (int, error) {
	switch field {
	case "pattern":
		return 0, nil
	case "real", "integer":
		return 1, nil
	case "complex":
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: matrix market field %q unsupported", ccerr.ErrUnsupported, field)
	}
}

func readDimensionLine(scanner *bufio.Scanner) (m, n, nz int, err error) {
	line, ok := nextDataLine(scanner)
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: missing dimension line", ccerr.ErrBadFormat)
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: dimension line %q must have 3 fields", ccerr.ErrBadFormat, line)
	}
	vals := make([]int, 3)
	for k, f := range fields {
		v, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: dimension field %q: %v", ccerr.ErrBadFormat, f, convErr)
		}
		vals[k] = v
	}
	return vals[0], vals[1], vals[2], nil
}

// nextDataLine returns the next non-blank, non-comment line.
func nextDataLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return line, true
	}
	return "", false
}
