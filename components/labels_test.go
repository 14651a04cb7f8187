package components_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/gocc/components"
)

func TestCountUnique(t *testing.T) {
	if k := components.CountUnique([]int32{0, 0, 2, 2}, 4); k != 2 {
		t.Fatalf("k = %d, want 2", k)
	}
	if k := components.CountUnique([]int32{0, 1, 2, 3}, 4); k != 4 {
		t.Fatalf("k = %d, want 4", k)
	}
}

func TestCanonicalize_FirstAppearanceOrder(t *testing.T) {
	got := components.Canonicalize([]int32{3, 3, 0, 0, 3})
	want := []int32{0, 0, 1, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("canonicalize = %v, want %v", got, want)
		}
	}
}

func TestSamePartition(t *testing.T) {
	a := []int32{0, 0, 2, 2}
	b := []int32{5, 5, 1, 1}
	if !components.SamePartition(a, b) {
		t.Fatalf("%v and %v should be the same partition", a, b)
	}
	c := []int32{0, 1, 2, 2}
	if components.SamePartition(a, c) {
		t.Fatalf("%v and %v should differ", a, c)
	}
}

func TestSnapshot(t *testing.T) {
	atomicLabels := make([]atomic.Int32, 3)
	atomicLabels[0].Store(7)
	atomicLabels[1].Store(2)
	atomicLabels[2].Store(9)
	got := components.Snapshot(atomicLabels)
	assertLabelsEqual(t, got, []int32{7, 2, 9})
}
