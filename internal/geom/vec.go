package geom

import "math"

// Vec is a point or displacement in pixel space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Normalize returns the unit vector in v's direction. The zero vector
// is returned unchanged.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{v.X / l, v.Y / l}
}

// Cell is a grid coordinate. Col grows rightward, Row downward.
type Cell struct {
	Col, Row int
}

func ManhattanDist(a, b Cell) int {
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}

func EuclideanDist(a, b Cell) float64 {
	return math.Hypot(float64(a.Col-b.Col), float64(a.Row-b.Row))
}

// CellCenter returns the pixel center of c for the given cell size.
func CellCenter(c Cell, cellSize int) Vec {
	s := float64(cellSize)
	return Vec{float64(c.Col)*s + s/2, float64(c.Row)*s + s/2}
}

// CellOf returns the cell containing the pixel point v.
func CellOf(v Vec, cellSize int) Cell {
	s := float64(cellSize)
	return Cell{int(math.Floor(v.X / s)), int(math.Floor(v.Y / s))}
}
