package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/gocc/ccerr"
	"github.com/katalvlaran/gocc/ingest"
)

func TestParseMatrixMarket_PatternCoordinate(t *testing.T) {
	src := `%%MatrixMarket matrix coordinate pattern general
% a triangle
3 3 3
1 2
2 3
1 3
`
	c, err := ingest.ParseMatrixMarket(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMatrixMarket: %v", err)
	}
	if c.M != 3 || c.N != 3 || c.NZ != 3 {
		t.Fatalf("dims = %d,%d,%d, want 3,3,3", c.M, c.N, c.NZ)
	}
	if len(c.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(c.Records))
	}
	if c.Records[0].I != 1 || c.Records[0].J != 2 {
		t.Fatalf("Records[0] = %+v, want {1 2}", c.Records[0])
	}
	if c.Symmetric {
		t.Fatalf("Symmetric = true, want false for general banner")
	}
}

func TestParseMatrixMarket_RealValuesIgnored(t *testing.T) {
	src := `%%MatrixMarket matrix coordinate real symmetric
2 2 1
1 2 3.14159
`
	c, err := ingest.ParseMatrixMarket(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMatrixMarket: %v", err)
	}
	if !c.Symmetric {
		t.Fatalf("Symmetric = false, want true for symmetric banner")
	}
	if c.Records[0].I != 1 || c.Records[0].J != 2 {
		t.Fatalf("Records[0] = %+v, want {1 2}", c.Records[0])
	}
}

func TestParseMatrixMarket_MissingBanner(t *testing.T) {
	_, err := ingest.ParseMatrixMarket(strings.NewReader("1 2 3\n1 2\n"))
	if !errors.Is(err, ccerr.ErrBadFormat) {
		t.Fatalf("err = %v, want ErrBadFormat", err)
	}
}

func TestParseMatrixMarket_DenseArrayUnsupported(t *testing.T) {
	src := "%%MatrixMarket matrix array real general\n2 2\n1.0\n2.0\n3.0\n4.0\n"
	_, err := ingest.ParseMatrixMarket(strings.NewReader(src))
	if !errors.Is(err, ccerr.ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestParseMatrixMarket_TruncatedDataSection(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate pattern general\n3 3 3\n1 2\n"
	_, err := ingest.ParseMatrixMarket(strings.NewReader(src))
	if !errors.Is(err, ccerr.ErrBadFormat) {
		t.Fatalf("err = %v, want ErrBadFormat", err)
	}
}
