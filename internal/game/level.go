package game

import (
	"github.com/carlosperfil/pacman/internal/entities"
	"github.com/carlosperfil/pacman/internal/maze"
	"github.com/carlosperfil/pacman/internal/path"
)

const ghostCount = 4

// Construction order doubles as the fixed per-tick update order.
var ghostRoster = [ghostCount]struct {
	personality entities.Personality
	spawn       string
}{
	{entities.PersonalityChaser, maze.SpawnGhostRed},
	{entities.PersonalityAmbusher, maze.SpawnGhostPink},
	{entities.PersonalityFlanker, maze.SpawnGhostCyan},
	{entities.PersonalityWanderer, maze.SpawnGhostOrange},
}

// Level is one playthrough of one map: the board, the player, the four
// ghosts, score and tick counter. It is the single writer of all game
// state; collaborators observe through the event queue.
type Level struct {
	Map    *maze.Map
	Player *entities.Player
	Ghosts [ghostCount]*entities.Ghost

	Score int
	Tick  int

	combo    int // ghosts eaten inside the current power window
	complete bool
	gameOver bool

	events []Event
}

// NewLevel builds a level on m with difficulty tuning applied once,
// before the first tick. lives is carried in from the campaign.
func NewLevel(m *maze.Map, heuristic path.Heuristic, lives int) *Level {
	tuning := entities.TuningFor(m.Difficulty)
	finder := path.NewFinder(m.Width, m.Height, m.IsWall, heuristic)
	corners := m.CornerAnchors()

	l := &Level{Map: m}
	l.Player = entities.NewPlayer(m.MustSpawn(maze.SpawnPlayer), m.CellSize, playerSpeed, lives)
	for i, slot := range ghostRoster {
		l.Ghosts[i] = entities.NewGhost(slot.personality, m.MustSpawn(slot.spawn),
			corners, m.CellSize, tuning, finder, m.IsWall)
	}
	return l
}

// Step advances exactly one tick. The pass order is fixed: player
// movement, ghosts, pellet collision, ghost contact, level-complete
// check. A finished level ignores further steps.
func (l *Level) Step() {
	if l.complete || l.gameOver {
		return
	}
	l.Tick++

	// 1. Player: buffered turn, grid step, power countdown
	l.Player.Step(l.Map.IsWall, l.Map.Width, l.Map.Height)
	if !l.Player.Powered() {
		l.combo = 0
	}

	// 2. Ghosts, all targeting the same snapshot
	w := entities.World{
		PlayerPos:  l.Player.Pos,
		PlayerCell: l.Player.CellPos(),
		PlayerDir:  l.Player.CurrentDir,
		RedCell:    l.Ghosts[0].CellPos(),
		MapW:       l.Map.Width,
		MapH:       l.Map.Height,
	}
	for i, g := range l.Ghosts {
		was := g.State
		g.Step(w)
		if was == entities.GhostReturning && g.State == entities.GhostSpawnDelay {
			l.emit(Event{Type: EventGhostReturned, Cell: g.CellPos(), Ghost: i})
		}
	}

	// 3. Pellets, eaten when the player is close to the cell center
	if l.Player.NearCellCenter() {
		cell := l.Player.CellPos()
		if ate, power := l.Map.EatPelletAt(cell.Col, cell.Row); ate {
			if power {
				l.Score += powerPelletPoints
				l.Player.PowerUp(powerWindowTicks)
				l.combo = 0
				for _, g := range l.Ghosts {
					switch g.State {
					case entities.GhostScatter, entities.GhostChase, entities.GhostVulnerable:
						g.MakeVulnerable()
					}
				}
				l.emit(Event{Type: EventPowerPelletEaten, Points: powerPelletPoints, Cell: cell, Ghost: -1})
				l.emit(Event{Type: EventGhostsVulnerable, Cell: cell, Ghost: -1})
			} else {
				l.Score += pelletPoints
				l.emit(Event{Type: EventPelletEaten, Points: pelletPoints, Cell: cell, Ghost: -1})
			}
		}
	}

	// 4. Ghost contact
	lifeLost := false
	radius := collisionRadius(l.Map.CellSize)
	for i, g := range l.Ghosts {
		if l.Player.Pos.Dist(g.Pos) >= radius {
			continue
		}
		switch g.State {
		case entities.GhostVulnerable:
			pts := ghostBasePoints << l.combo
			if pts > ghostMaxPoints {
				pts = ghostMaxPoints
			}
			l.combo++
			l.Score += pts
			g.Eaten()
			l.emit(Event{Type: EventGhostEaten, Points: pts, Cell: g.CellPos(), Ghost: i})
		case entities.GhostReturning:
			// Eyes on the way home pass through the player
		default:
			lifeLost = true
			l.emit(Event{Type: EventLifeLost, Cell: l.Player.CellPos(), Ghost: i})
			if l.Player.LoseLife() {
				l.resetPositions()
			} else {
				l.gameOver = true
				l.emit(Event{Type: EventGameOver, Ghost: -1})
			}
		}
		if lifeLost {
			break
		}
	}

	// 5. Level complete, skipped on a life-loss tick
	if !lifeLost && l.Map.PelletsRemaining() == 0 {
		l.complete = true
		l.emit(Event{Type: EventLevelComplete, Ghost: -1})
	}
}

// resetPositions puts everyone back at their spawns after a life is
// lost. Pellets already eaten stay eaten.
func (l *Level) resetPositions() {
	l.Player.ResetTo(l.Map.MustSpawn(maze.SpawnPlayer))
	for _, g := range l.Ghosts {
		g.Reset()
	}
	l.combo = 0
}

func (l *Level) Complete() bool { return l.complete }
func (l *Level) GameOver() bool { return l.gameOver }

// DrainEvents returns the events raised since the last drain and
// empties the queue.
func (l *Level) DrainEvents() []Event {
	ev := l.events
	l.events = nil
	return ev
}

func (l *Level) emit(e Event) { l.events = append(l.events, e) }
