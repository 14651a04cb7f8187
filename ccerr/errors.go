// Package ccerr declares the sentinel error taxonomy shared across gocc's
// ingest, csr, components, bench, and cmd packages.
//
// Callers branch on these with errors.Is; every exported function that can
// fail documents which of these it returns (or wraps via %w).
package ccerr

import "errors"

var (
	// ErrBadFormat indicates a malformed header or dimension line in an
	// input file.
	ErrBadFormat = errors.New("ccerr: bad file format")

	// ErrUnsupported indicates the input is not a sparse coordinate matrix
	// (e.g. a dense array, or a MAT5 element type gocc does not decode).
	ErrUnsupported = errors.New("ccerr: unsupported matrix type")

	// ErrOutOfMemory indicates a buffer allocation failed or would exceed a
	// sane size bound.
	ErrOutOfMemory = errors.New("ccerr: allocation failed")

	// ErrIoError indicates an underlying file read or write failed.
	ErrIoError = errors.New("ccerr: i/o error")

	// ErrBadArgument indicates an invalid CLI option: non-positive run
	// count, empty output directory, an out-of-range thread/chunk spec, or
	// an unknown algorithm name.
	ErrBadArgument = errors.New("ccerr: bad argument")
)
