// Package output writes the benchmark harness's results to disk: one label
// per line, a timings CSV that gains one column per configuration (one row
// per run) without disturbing existing columns, and a
// threads/chunk-size/average-seconds surface CSV
// for `gocc sweep`.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/gocc/ccerr"
)

// EnsureDir creates dir (and any missing parents) if it does not exist.
func EnsureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: empty output directory", ccerr.ErrBadArgument)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ccerr.ErrIoError, dir, err)
	}
	return nil
}

// WriteLabels writes one int32 label per line to path.
func WriteLabels(path string, labels []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ccerr.ErrIoError, path, err)
	}
	defer f.Close()

	for _, l := range labels {
		if _, err := fmt.Fprintln(f, l); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ccerr.ErrIoError, path, err)
		}
	}
	return nil
}

// AppendTimingsColumn appends a new CSV column named header with values
// seconds to path, creating the file if it does not yet exist. Existing
// columns and rows are preserved; any column (old or new) shorter than the
// tallest is padded with empty cells so every row has equal width.
func AppendTimingsColumn(path, header string, seconds []float64) error {
	rows, readErr := readCSVIfExists(path)
	if readErr != nil {
		return readErr
	}

	var headerRow []string
	var dataRows [][]string
	if len(rows) > 0 {
		headerRow = rows[0]
		dataRows = rows[1:]
	}
	headerRow = append(headerRow, header)

	newCol := make([]string, len(seconds))
	for i, s := range seconds {
		newCol[i] = strconv.FormatFloat(s, 'g', -1, 64)
	}

	height := len(dataRows)
	if len(newCol) > height {
		height = len(newCol)
	}
	width := len(headerRow)

	out := make([][]string, 0, height+1)
	out = append(out, headerRow)
	for i := 0; i < height; i++ {
		var row []string
		if i < len(dataRows) {
			row = append(row, dataRows[i]...)
		}
		for len(row) < width-1 {
			row = append(row, "")
		}
		if i < len(newCol) {
			row = append(row, newCol[i])
		} else {
			row = append(row, "")
		}
		out = append(out, row)
	}

	return writeCSV(path, out)
}

func readCSVIfExists(path string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ccerr.ErrIoError, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ccerr.ErrBadFormat, path, err)
	}
	return rows, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ccerr.ErrIoError, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ccerr.ErrIoError, path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", ccerr.ErrIoError, path, err)
	}
	return nil
}

// SurfaceRow is one (threads, chunk_size, average_seconds) measurement for
// WriteSurfaceCSV.
type SurfaceRow struct {
	Threads        int
	ChunkSize      int
	AverageSeconds float64
}

// WriteSurfaceCSV writes the threads/chunk-size/average-seconds sweep
// surface used by `gocc sweep`.
func WriteSurfaceCSV(path string, rows []SurfaceRow) error {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, []string{"threads", "chunk_size", "average_seconds"})
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Threads),
			strconv.Itoa(r.ChunkSize),
			strconv.FormatFloat(r.AverageSeconds, 'g', -1, 64),
		})
	}
	return writeCSV(path, out)
}
