package ingest

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/gocc/ccerr"
	"github.com/katalvlaran/gocc/csr"
)

// MAT5 data types (subset relevant to numeric/sparse arrays).
const (
	miINT8       = 1
	miUINT8      = 2
	miINT16      = 3
	miUINT16     = 4
	miINT32      = 5
	miUINT32     = 6
	miSINGLE     = 7
	miDOUBLE     = 9
	miMATRIX     = 14
	miCOMPRESSED = 15
)

// MAT5 array classes.
const (
	mxCellClass   = 1
	mxStructClass = 2
	mxSparseClass = 5
	mxDoubleClass = 6
)

const mat5HeaderLen = 128

// ParseMATFile reads a best-effort subset of the MATLAB level-5 binary
// format (".mat" files): it takes field "A" of a top-level struct variable
// (the "Problem.A" convention used by the University of Florida /
// SuiteSparse Matrix Collection) or, failing that, the first sparse or
// numeric matrix in the file, and extracts its nonzero structure. The
// struct variable's name is not checked: any top-level struct with a field
// "A" qualifies, and when several do, the last one in the file is used.
// A file with neither returns ccerr.ErrUnsupported.
//
// Only what spec.md §6 requires is implemented: structural positions of
// nonzero entries, 1-based (matching ParseMatrixMarket's contract — MAT5's
// own zero-based Ir/Jc arrays are rebased by +1 here). Values, cell arrays,
// character arrays, and nested structs beyond one level of "Problem.A"
// descent are out of scope; see SPEC_FULL.md §4.1.
func ParseMATFile(r io.ReadSeeker) (*Coordinate, error) {
	header := make([]byte, mat5HeaderLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: reading MAT5 header: %v", ccerr.ErrBadFormat, err)
	}
	endianTag := header[126:128]
	var order binary.ByteOrder
	switch {
	case bytes.Equal(endianTag, []byte("MI")):
		order = binary.LittleEndian
	case bytes.Equal(endianTag, []byte("IM")):
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: unrecognized MAT5 endian indicator", ccerr.ErrBadFormat)
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ccerr.ErrIoError, err)
	}

	var problemA *mat5Array
	var firstNumeric *mat5Array

	buf := bytes.NewReader(rest)
	for buf.Len() > 0 {
		elem, err := readElement(buf, order)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if elem.dataType != miMATRIX {
			continue
		}
		arr, err := parseMatrixElement(elem.data, order)
		if err != nil {
			return nil, err
		}
		if arr == nil {
			continue
		}
		if arr.class == mxStructClass {
			if field := arr.fields["A"]; field != nil {
				problemA = field
			}
		} else if (arr.class == mxSparseClass || arr.class == mxDoubleClass) && firstNumeric == nil {
			firstNumeric = arr
		}
	}

	chosen := problemA
	if chosen == nil {
		chosen = firstNumeric
	}
	if chosen == nil {
		return nil, fmt.Errorf("%w: no Problem.A or sparse/numeric matrix found in MAT5 file", ccerr.ErrUnsupported)
	}

	return matrixToCoordinate(chosen), nil
}

// mat5Element is a raw (type, payload) pair after compression has been
// transparently unwrapped.
type mat5Element struct {
	dataType int
	data     []byte
}

func readElement(r *bytes.Reader, order binary.ByteOrder) (mat5Element, error) {
	var tagWord [4]byte
	if _, err := io.ReadFull(r, tagWord[:]); err != nil {
		if err == io.EOF {
			return mat5Element{}, io.EOF
		}
		return mat5Element{}, fmt.Errorf("%w: reading element tag: %v", ccerr.ErrBadFormat, err)
	}
	word := order.Uint32(tagWord[:])
	if upper := word >> 16; upper != 0 {
		// Small Data Element Format: size in upper 2 bytes, type in lower 2.
		dataType := int(word & 0xFFFF)
		size := int(upper)
		payload := make([]byte, 8)
		if _, err := io.ReadFull(r, payload[4:]); err != nil {
			return mat5Element{}, fmt.Errorf("%w: small element payload: %v", ccerr.ErrBadFormat, err)
		}
		copy(payload, tagWord[:])
		return mat5Element{dataType: dataType, data: payload[4 : 4+size]}, nil
	}

	dataType := int(order.Uint32(tagWord[:]))
	var sizeWord [4]byte
	if _, err := io.ReadFull(r, sizeWord[:]); err != nil {
		return mat5Element{}, fmt.Errorf("%w: reading element size: %v", ccerr.ErrBadFormat, err)
	}
	size := int(order.Uint32(sizeWord[:]))
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return mat5Element{}, fmt.Errorf("%w: reading element payload: %v", ccerr.ErrBadFormat, err)
	}
	padded := (size + 7) &^ 7
	if padded > size {
		if _, err := r.Seek(int64(padded-size), io.SeekCurrent); err != nil {
			return mat5Element{}, fmt.Errorf("%w: skipping element padding: %v", ccerr.ErrBadFormat, err)
		}
	}

	if dataType == miCOMPRESSED {
		zr, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return mat5Element{}, fmt.Errorf("%w: inflating compressed element: %v", ccerr.ErrBadFormat, err)
		}
		defer zr.Close()
		inflated, err := io.ReadAll(zr)
		if err != nil {
			return mat5Element{}, fmt.Errorf("%w: inflating compressed element: %v", ccerr.ErrBadFormat, err)
		}
		return readElement(bytes.NewReader(inflated), order)
	}

	return mat5Element{dataType: dataType, data: payload}, nil
}

// mat5Array is a parsed miMATRIX element.
type mat5Array struct {
	class     int
	dims      []int32
	ir, jc    []int32 // sparse only; jc has len = cols+1
	nonzero   []bool  // dense only; column-major flattening of value != 0
	fields    map[string]*mat5Array
}

func parseMatrixElement(data []byte, order binary.ByteOrder) (*mat5Array, error) {
	r := bytes.NewReader(data)

	flagsElem, err := readElement(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: array flags: %v", ccerr.ErrBadFormat, err)
	}
	if len(flagsElem.data) < 8 {
		return nil, fmt.Errorf("%w: truncated array flags", ccerr.ErrBadFormat)
	}
	class := int(flagsElem.data[0]) & 0xFF

	dimsElem, err := readElement(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: array dimensions: %v", ccerr.ErrBadFormat, err)
	}
	dims := decodeInt32Payload(dimsElem, order)

	// Array name — read and discard.
	if _, err := readElement(r, order); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: array name: %v", ccerr.ErrBadFormat, err)
	}

	arr := &mat5Array{class: class, dims: dims}

	switch class {
	case mxStructClass:
		return parseStructBody(r, order, arr)
	case mxSparseClass:
		return parseSparseBody(r, order, arr)
	case mxCellClass:
		return arr, nil // cell contents not needed for this spec's scope
	default:
		return parseNumericBody(r, order, arr)
	}
}

func parseStructBody(r *bytes.Reader, order binary.ByteOrder, arr *mat5Array) (*mat5Array, error) {
	fieldNameLenElem, err := readElement(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: struct field name length: %v", ccerr.ErrBadFormat, err)
	}
	fieldNameLen := 4
	if len(fieldNameLenElem.data) >= 4 {
		fieldNameLen = int(order.Uint32(fieldNameLenElem.data[:4]))
	}

	namesElem, err := readElement(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: struct field names: %v", ccerr.ErrBadFormat, err)
	}
	var names []string
	for off := 0; off+fieldNameLen <= len(namesElem.data); off += fieldNameLen {
		raw := namesElem.data[off : off+fieldNameLen]
		names = append(names, string(bytes.TrimRight(raw, "\x00")))
	}

	numElements := 1
	for _, d := range arr.dims {
		numElements *= int(d)
	}

	arr.fields = make(map[string]*mat5Array, len(names))
	for elemIdx := 0; elemIdx < numElements; elemIdx++ {
		for _, name := range names {
			fieldElem, err := readElement(r, order)
			if err == io.EOF {
				return arr, nil
			}
			if err != nil {
				return nil, fmt.Errorf("%w: struct field %q: %v", ccerr.ErrBadFormat, name, err)
			}
			if fieldElem.dataType != miMATRIX {
				continue
			}
			child, err := parseMatrixElement(fieldElem.data, order)
			if err != nil {
				return nil, err
			}
			if _, exists := arr.fields[name]; !exists {
				arr.fields[name] = child
			}
		}
	}
	return arr, nil
}

func parseSparseBody(r *bytes.Reader, order binary.ByteOrder, arr *mat5Array) (*mat5Array, error) {
	irElem, err := readElement(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: sparse ir: %v", ccerr.ErrBadFormat, err)
	}
	jcElem, err := readElement(r, order)
	if err != nil {
		return nil, fmt.Errorf("%w: sparse jc: %v", ccerr.ErrBadFormat, err)
	}
	arr.ir = decodeInt32Payload(irElem, order)
	arr.jc = decodeInt32Payload(jcElem, order)
	return arr, nil
}

func parseNumericBody(r *bytes.Reader, order binary.ByteOrder, arr *mat5Array) (*mat5Array, error) {
	prElem, err := readElement(r, order)
	if err == io.EOF {
		return arr, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: numeric data: %v", ccerr.ErrBadFormat, err)
	}
	arr.nonzero = decodeNonzeroMask(prElem, order)
	return arr, nil
}

func decodeInt32Payload(elem mat5Element, order binary.ByteOrder) []int32 {
	switch elem.dataType {
	case miINT32, miUINT32:
		out := make([]int32, len(elem.data)/4)
		for i := range out {
			out[i] = int32(order.Uint32(elem.data[i*4:]))
		}
		return out
	case miINT16, miUINT16:
		out := make([]int32, len(elem.data)/2)
		for i := range out {
			out[i] = int32(order.Uint16(elem.data[i*2:]))
		}
		return out
	case miINT8, miUINT8:
		out := make([]int32, len(elem.data))
		for i, b := range elem.data {
			out[i] = int32(b)
		}
		return out
	default:
		return nil
	}
}

func decodeNonzeroMask(elem mat5Element, order binary.ByteOrder) []bool {
	switch elem.dataType {
	case miDOUBLE:
		n := len(elem.data) / 8
		out := make([]bool, n)
		for i := 0; i < n; i++ {
			bits := order.Uint64(elem.data[i*8:])
			out[i] = bits != 0
		}
		return out
	case miSINGLE:
		n := len(elem.data) / 4
		out := make([]bool, n)
		for i := 0; i < n; i++ {
			bits := order.Uint32(elem.data[i*4:])
			out[i] = bits != 0
		}
		return out
	default:
		ints := decodeInt32Payload(elem, order)
		out := make([]bool, len(ints))
		for i, v := range ints {
			out[i] = v != 0
		}
		return out
	}
}

// matrixToCoordinate converts a parsed sparse or dense mat5Array into 1-based
// edge records, matching ParseMatrixMarket's index contract.
func matrixToCoordinate(arr *mat5Array) *Coordinate {
	rows, cols := 0, 0
	if len(arr.dims) >= 2 {
		rows, cols = int(arr.dims[0]), int(arr.dims[1])
	}

	var records []csr.EdgeRecord
	if arr.class == mxSparseClass && arr.jc != nil {
		for col := 0; col < len(arr.jc)-1; col++ {
			start, end := arr.jc[col], arr.jc[col+1]
			for k := start; k < end && int(k) < len(arr.ir); k++ {
				row := arr.ir[k]
				records = append(records, csr.EdgeRecord{I: row + 1, J: int32(col) + 1})
			}
		}
	} else if arr.nonzero != nil {
		// MATLAB dense arrays are stored column-major.
		for col := 0; col < cols; col++ {
			for row := 0; row < rows; row++ {
				idx := col*rows + row
				if idx < len(arr.nonzero) && arr.nonzero[idx] {
					records = append(records, csr.EdgeRecord{I: int32(row) + 1, J: int32(col) + 1})
				}
			}
		}
	}

	return &Coordinate{M: rows, N: cols, NZ: len(records), Records: records}
}
