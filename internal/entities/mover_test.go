package entities

import (
	"math"
	"testing"

	"github.com/carlosperfil/pacman/internal/geom"
)

func TestStepTowardClampsOnArrival(t *testing.T) {
	m := NewMover(geom.Cell{Col: 0, Row: 0}, 16, 3)
	target := geom.Vec{X: 8 + 7, Y: 8}

	m.StepToward(target)
	if m.Pos != (geom.Vec{X: 11, Y: 8}) {
		t.Fatalf("Pos = %v after first step", m.Pos)
	}
	m.StepToward(target)
	m.StepToward(target)
	if m.Pos != target {
		t.Fatalf("Pos = %v, want exactly %v", m.Pos, target)
	}
	// Standing on the target stays put
	m.StepToward(target)
	if m.Pos != target {
		t.Fatalf("Pos moved off target: %v", m.Pos)
	}
}

func TestStepTowardFractionalSpeedNoOvershoot(t *testing.T) {
	m := NewMover(geom.Cell{Col: 0, Row: 0}, 16, 1.5)
	target := geom.Vec{X: 8, Y: 8 + 4}

	for i := 0; i < 10; i++ {
		m.StepToward(target)
	}
	if m.Pos != target {
		t.Fatalf("Pos = %v, want %v", m.Pos, target)
	}
}

func TestStepTowardSetsDominantAxisDir(t *testing.T) {
	cases := []struct {
		target geom.Vec
		want   Direction
	}{
		{geom.Vec{X: 40, Y: 9}, DirRight},
		{geom.Vec{X: -40, Y: 9}, DirLeft},
		{geom.Vec{X: 9, Y: 40}, DirDown},
		{geom.Vec{X: 9, Y: -40}, DirUp},
	}
	for _, tc := range cases {
		m := NewMover(geom.Cell{Col: 0, Row: 0}, 16, 2)
		m.StepToward(tc.target)
		if m.CurrentDir != tc.want {
			t.Fatalf("toward %v: CurrentDir = %v, want %v", tc.target, m.CurrentDir, tc.want)
		}
	}
}

func TestStepTowardDiagonalSpeedBound(t *testing.T) {
	m := NewMover(geom.Cell{Col: 0, Row: 0}, 16, 2)
	start := m.Pos
	m.StepToward(geom.Vec{X: 100, Y: 100})
	if d := m.Pos.Dist(start); math.Abs(d-2) > 1e-9 {
		t.Fatalf("moved %v px in one tick, want 2", d)
	}
}

func TestAlignedAndNearCellCenter(t *testing.T) {
	m := NewMover(geom.Cell{Col: 1, Row: 1}, 16, 2)
	if !m.AlignedToCellCenter() {
		t.Fatal("spawned mover should be aligned")
	}
	m.Pos.X += 3
	if m.AlignedToCellCenter() {
		t.Fatal("3px off center should not count as aligned")
	}
	if !m.NearCellCenter() {
		t.Fatal("3px off center should still be near")
	}
	m.Pos.X += 3
	if m.NearCellCenter() {
		t.Fatal("6px off center should not be near")
	}
	m.SnapToCenter()
	if !m.AlignedToCellCenter() {
		t.Fatal("SnapToCenter should align the mover")
	}
}

func TestCellPos(t *testing.T) {
	m := NewMover(geom.Cell{Col: 3, Row: 2}, 16, 2)
	if got := m.CellPos(); got != (geom.Cell{Col: 3, Row: 2}) {
		t.Fatalf("CellPos = %v, want (3,2)", got)
	}
}
