package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gocc/output"
)

func TestWriteLabels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.txt")
	if err := output.WriteLabels(path, []int32{0, 0, 1, 2}); err != nil {
		t.Fatalf("WriteLabels: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "0\n0\n1\n2\n"
	if string(data) != want {
		t.Fatalf("got %q, want %q", data, want)
	}
}

func TestAppendTimingsColumn_CreatesThenAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timings.csv")

	if err := output.AppendTimingsColumn(path, "bfs", []float64{1.0, 2.0}); err != nil {
		t.Fatalf("AppendTimingsColumn (first): %v", err)
	}
	if err := output.AppendTimingsColumn(path, "lp-seq", []float64{3.0}); err != nil {
		t.Fatalf("AppendTimingsColumn (second): %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[0] != "bfs,lp-seq" {
		t.Fatalf("header = %q, want %q", lines[0], "bfs,lp-seq")
	}
	if lines[1] != "1,3" {
		t.Fatalf("row1 = %q, want %q", lines[1], "1,3")
	}
	if lines[2] != "2," {
		t.Fatalf("row2 = %q, want %q (padded)", lines[2], "2,")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := output.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("dir %s not created", dir)
	}
}

func TestWriteSurfaceCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surface.csv")
	rows := []output.SurfaceRow{
		{Threads: 1, ChunkSize: 32, AverageSeconds: 0.5},
		{Threads: 2, ChunkSize: 32, AverageSeconds: 0.3},
	}
	if err := output.WriteSurfaceCSV(path, rows); err != nil {
		t.Fatalf("WriteSurfaceCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "threads,chunk_size,average_seconds\n") {
		t.Fatalf("unexpected header in %q", data)
	}
}
