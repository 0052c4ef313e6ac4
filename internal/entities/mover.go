package entities

import (
	"math"

	"github.com/carlosperfil/pacman/internal/geom"
	"github.com/carlosperfil/pacman/internal/path"
)

const (
	// Use alignment threshold to catch cell centers at high speeds
	alignmentThreshold = 1.0
	nearCenterDist     = 5.0
	// WaypointReachDist is how close a mover must get to a waypoint
	// before advancing to the next one.
	WaypointReachDist = 12.0
)

// Mover is the shared movement state composed into Player and Ghost:
// a pixel position, a speed in pixels per tick and a facing direction.
type Mover struct {
	Pos        geom.Vec
	Speed      float64
	CurrentDir Direction
	CellSize   int
}

func NewMover(spawn geom.Cell, cellSize int, speed float64) Mover {
	return Mover{
		Pos:      geom.CellCenter(spawn, cellSize),
		Speed:    speed,
		CellSize: cellSize,
	}
}

func (m *Mover) CellPos() geom.Cell {
	return geom.CellOf(m.Pos, m.CellSize)
}

func (m *Mover) cellCenter() geom.Vec {
	return geom.CellCenter(m.CellPos(), m.CellSize)
}

func (m *Mover) AlignedToCellCenter() bool {
	c := m.cellCenter()
	return math.Abs(m.Pos.X-c.X) < alignmentThreshold && math.Abs(m.Pos.Y-c.Y) < alignmentThreshold
}

// NearCellCenter reports whether the mover is close enough to its cell
// center to interact with the tile (pellet pickup).
func (m *Mover) NearCellCenter() bool {
	c := m.cellCenter()
	return math.Abs(m.Pos.X-c.X) < nearCenterDist && math.Abs(m.Pos.Y-c.Y) < nearCenterDist
}

func (m *Mover) SnapToCenter() {
	m.Pos = m.cellCenter()
}

// CanMove reports whether a step in dir is open from the current cell.
// Off the grid vertically is blocked; X wraps through the tunnels.
func (m *Mover) CanMove(dir Direction, isWall path.WallChecker, mapW, mapH int) bool {
	if dir == DirNone {
		return false
	}
	dx, dy := DirDelta(dir)
	c := m.CellPos()
	nx, ny := c.Col+dx, c.Row+dy
	if nx < 0 {
		nx = mapW - 1
	}
	if nx >= mapW {
		nx = 0
	}
	if ny < 0 || ny >= mapH {
		return false
	}
	return !isWall(nx, ny)
}

// GridStep advances one tick of cell-to-cell movement: move along
// CurrentDir when open, otherwise snap to the cell center to avoid
// jitter. X wraps through the tunnels.
func (m *Mover) GridStep(isWall path.WallChecker, mapW, mapH int) {
	if m.CanMove(m.CurrentDir, isWall, mapW, mapH) {
		dx, dy := DirDelta(m.CurrentDir)
		m.Pos.X += float64(dx) * m.Speed
		m.Pos.Y += float64(dy) * m.Speed
	} else {
		m.SnapToCenter()
	}
	m.wrapX(mapW)
}

func (m *Mover) wrapX(mapW int) {
	maxX := float64(mapW * m.CellSize)
	if m.Pos.X < 0 {
		m.Pos.X += maxX
	}
	if m.Pos.X >= maxX {
		m.Pos.X -= maxX
	}
}

// StepToward moves up to Speed pixels straight at target, clamping
// onto it when the remaining distance is shorter than one step.
// Fractional speeds cannot overshoot. CurrentDir follows the dominant
// axis of travel.
func (m *Mover) StepToward(target geom.Vec) {
	delta := target.Sub(m.Pos)
	dist := delta.Len()
	if dist == 0 {
		return
	}
	if dist <= m.Speed {
		m.Pos = target
	} else {
		m.Pos = m.Pos.Add(delta.Normalize().Scale(m.Speed))
	}
	if math.Abs(delta.X) >= math.Abs(delta.Y) {
		if delta.X > 0 {
			m.CurrentDir = DirRight
		} else {
			m.CurrentDir = DirLeft
		}
	} else {
		if delta.Y > 0 {
			m.CurrentDir = DirDown
		} else {
			m.CurrentDir = DirUp
		}
	}
}
