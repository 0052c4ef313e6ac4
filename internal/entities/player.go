package entities

import (
	"github.com/carlosperfil/pacman/internal/geom"
	"github.com/carlosperfil/pacman/internal/path"
)

type Player struct {
	Mover
	DesiredDir Direction
	Lives      int
	PowerTicks int
}

func NewPlayer(spawn geom.Cell, cellSize int, speed float64, lives int) *Player {
	return &Player{
		Mover: NewMover(spawn, cellSize, speed),
		Lives: lives,
	}
}

// Step advances one tick: apply the buffered turn when aligned to a
// cell center, then move. The power-up timer counts down here too.
func (p *Player) Step(isWall path.WallChecker, mapW, mapH int) {
	if p.DesiredDir != DirNone && p.AlignedToCellCenter() &&
		p.CanMove(p.DesiredDir, isWall, mapW, mapH) {
		p.CurrentDir = p.DesiredDir
	}
	p.GridStep(isWall, mapW, mapH)

	if p.PowerTicks > 0 {
		p.PowerTicks--
	}
}

// PowerUp starts a fresh power window. Eating another power pellet
// resets the timer, it does not stack.
func (p *Player) PowerUp(ticks int) {
	p.PowerTicks = ticks
}

func (p *Player) Powered() bool {
	return p.PowerTicks > 0
}

// LoseLife removes a life and reports whether any remain.
func (p *Player) LoseLife() bool {
	p.Lives--
	return p.Lives > 0
}

// ResetTo puts the player back at a spawn cell after a life is lost.
// Lives and score are untouched.
func (p *Player) ResetTo(spawn geom.Cell) {
	p.Pos = geom.CellCenter(spawn, p.CellSize)
	p.CurrentDir = DirNone
	p.DesiredDir = DirNone
	p.PowerTicks = 0
}
