package geom

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec{3, 4}
	b := Vec{1, -2}

	if got := a.Add(b); got != (Vec{4, 2}) {
		t.Fatalf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec{2, 6}) {
		t.Fatalf("Sub = %v, want {2 6}", got)
	}
	if got := a.Scale(2); got != (Vec{6, 8}) {
		t.Fatalf("Scale = %v, want {6 8}", got)
	}
	if got := a.Len(); got != 5 {
		t.Fatalf("Len = %v, want 5", got)
	}
	if got := a.Dist(Vec{0, 0}); got != 5 {
		t.Fatalf("Dist = %v, want 5", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec{3, 4}.Normalize()
	if math.Abs(v.Len()-1) > 1e-9 {
		t.Fatalf("normalized length = %v, want 1", v.Len())
	}
	if got := (Vec{}).Normalize(); got != (Vec{}) {
		t.Fatalf("zero vector Normalize = %v, want zero", got)
	}
}

func TestCellDistances(t *testing.T) {
	a := Cell{1, 2}
	b := Cell{4, 6}
	if got := ManhattanDist(a, b); got != 7 {
		t.Fatalf("ManhattanDist = %d, want 7", got)
	}
	if got := ManhattanDist(b, a); got != 7 {
		t.Fatalf("ManhattanDist not symmetric: %d", got)
	}
	if got := EuclideanDist(a, b); got != 5 {
		t.Fatalf("EuclideanDist = %v, want 5", got)
	}
}

func TestCellCenterRoundTrip(t *testing.T) {
	for _, c := range []Cell{{0, 0}, {1, 1}, {5, 9}, {13, 26}} {
		if got := CellOf(CellCenter(c, 16), 16); got != c {
			t.Fatalf("round trip of %v = %v", c, got)
		}
	}
	if got := CellCenter(Cell{2, 3}, 16); got != (Vec{40, 56}) {
		t.Fatalf("CellCenter = %v, want {40 56}", got)
	}
	if got := CellOf(Vec{15.9, 16.1}, 16); got != (Cell{0, 1}) {
		t.Fatalf("CellOf = %v, want {0 1}", got)
	}
}
