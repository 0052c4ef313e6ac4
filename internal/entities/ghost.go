package entities

import (
	"fmt"

	"github.com/carlosperfil/pacman/internal/geom"
	"github.com/carlosperfil/pacman/internal/path"
)

type GhostState int

const (
	GhostSpawnDelay GhostState = iota
	GhostScatter
	GhostChase
	GhostVulnerable
	GhostReturning
)

func (s GhostState) String() string {
	switch s {
	case GhostSpawnDelay:
		return "spawn_delay"
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostVulnerable:
		return "vulnerable"
	case GhostReturning:
		return "returning"
	default:
		return "unknown"
	}
}

type Personality int

const (
	PersonalityChaser   Personality = iota // red: straight at the player
	PersonalityAmbusher                    // pink: ahead of the player
	PersonalityFlanker                     // cyan: pincer with the chaser
	PersonalityWanderer                    // orange: bold far, shy near
)

// Behavior tuning shared by all ghosts.
const (
	AmbushLookahead      = 4    // cells ahead of the player
	FlankerLookahead     = 2    // cells ahead for the pincer midpoint
	WandererRetreatDist  = 80.0 // px; closer than this, retreat
	targetScanRadius     = 4    // cells scanned for flee and fallback targets
	targetDriftCells     = 2.0  // rebuild the path when the goal moves this far
	returningSpeedFactor = 2.0
	cornerReachedCells   = 1.0
)

// World is the read-only snapshot a ghost targets against. The
// orchestrator builds one per tick; ghosts never touch live game
// state.
type World struct {
	PlayerPos  geom.Vec
	PlayerCell geom.Cell
	PlayerDir  Direction
	RedCell    geom.Cell
	MapW, MapH int
}

// Ghost is an adversary: shared movement plus a state machine, a
// targeting personality and an A* path it follows waypoint by
// waypoint.
type Ghost struct {
	Mover
	Personality Personality
	State       GhostState

	home    geom.Cell
	corners [4]geom.Cell
	tuning  Tuning

	stateTicks int        // countdown for spawn delay / vulnerability
	modeTicks  int        // scatter/chase alternation countdown
	afterDelay GhostState // state entered when the spawn delay ends
	scatterIdx int        // current corner in the clockwise patrol

	finder *path.Finder
	isWall path.WallChecker

	path     []geom.Cell
	pathIdx  int
	recalcIn int
	lastGoal geom.Cell
	hasGoal  bool
}

// NewGhost places a ghost at its home cell in SpawnDelay. Corners are
// the map's anchors in order top-left, top-right, bottom-right,
// bottom-left; each personality patrols from its own corner.
func NewGhost(p Personality, home geom.Cell, corners [4]geom.Cell, cellSize int, tuning Tuning, finder *path.Finder, isWall path.WallChecker) *Ghost {
	return &Ghost{
		Mover:       NewMover(home, cellSize, tuning.Speed),
		Personality: p,
		State:       GhostSpawnDelay,
		home:        home,
		corners:     corners,
		tuning:      tuning,
		stateTicks:  tuning.SpawnDelayTicks,
		afterDelay:  GhostScatter,
		scatterIdx:  homeCornerIndex(p),
		finder:      finder,
		isWall:      isWall,
	}
}

// Corner assignment: red top-right, pink top-left, cyan bottom-right,
// orange bottom-left.
func homeCornerIndex(p Personality) int {
	switch p {
	case PersonalityChaser:
		return 1
	case PersonalityAmbusher:
		return 0
	case PersonalityFlanker:
		return 2
	default:
		return 3
	}
}

func (g *Ghost) Home() geom.Cell { return g.home }

func (g *Ghost) ScatterCorner() geom.Cell { return g.corners[g.scatterIdx] }

// VulnerableTicksLeft reports the remaining vulnerability window, 0 in
// any other state. The renderer flashes the ghost when it runs low.
func (g *Ghost) VulnerableTicksLeft() int {
	if g.State != GhostVulnerable {
		return 0
	}
	return g.stateTicks
}

// PathLen reports the remaining waypoints, for the debug overlay.
func (g *Ghost) PathLen() int {
	if g.pathIdx >= len(g.path) {
		return 0
	}
	return len(g.path) - g.pathIdx
}

// Step advances the ghost one tick: timed transitions first, then
// targeting, path upkeep and movement.
func (g *Ghost) Step(w World) {
	g.tickTimers()
	if g.State == GhostSpawnDelay {
		return
	}
	g.Speed = g.speedFor(g.State)
	target := g.targetCell(w)
	g.followPath(target)

	if g.State == GhostReturning && g.Pos.Dist(geom.CellCenter(g.home, g.CellSize)) < WaypointReachDist {
		g.arriveHome()
	}
}

func (g *Ghost) tickTimers() {
	switch g.State {
	case GhostSpawnDelay:
		g.stateTicks--
		if g.stateTicks <= 0 {
			g.enterMode(g.afterDelay)
		}
	case GhostScatter:
		g.modeTicks--
		if g.modeTicks <= 0 {
			g.enterMode(GhostChase)
		}
	case GhostChase:
		g.modeTicks--
		if g.modeTicks <= 0 {
			g.enterMode(GhostScatter)
		}
	case GhostVulnerable:
		g.stateTicks--
		if g.stateTicks <= 0 {
			g.enterMode(GhostChase)
		}
	}
}

func (g *Ghost) enterMode(s GhostState) {
	switch s {
	case GhostScatter:
		g.modeTicks = g.tuning.ScatterTicks
	case GhostChase:
		g.modeTicks = g.tuning.ChaseTicks
	default:
		panic(fmt.Sprintf("ghost: enterMode(%v)", s))
	}
	g.State = s
	g.dropPath()
}

func (g *Ghost) speedFor(s GhostState) float64 {
	switch s {
	case GhostVulnerable:
		v := g.tuning.Speed - 1.0
		if v < 1.0 {
			v = 1.0
		}
		return v
	case GhostReturning:
		return g.tuning.Speed * returningSpeedFactor
	default:
		return g.tuning.Speed
	}
}

// MakeVulnerable reacts to a power pellet. Eating another pellet
// while already vulnerable restarts the window. Ghosts in SpawnDelay
// or Returning must be filtered out by the caller; vulnerability has
// no meaning there.
func (g *Ghost) MakeVulnerable() {
	switch g.State {
	case GhostScatter, GhostChase, GhostVulnerable:
		g.State = GhostVulnerable
		g.stateTicks = g.tuning.VulnerableTicks
		g.dropPath()
	default:
		panic(fmt.Sprintf("ghost: MakeVulnerable in state %v", g.State))
	}
}

// Eaten sends a vulnerable ghost home. Any other state is an
// orchestrator bug.
func (g *Ghost) Eaten() {
	if g.State != GhostVulnerable {
		panic(fmt.Sprintf("ghost: Eaten in state %v", g.State))
	}
	g.State = GhostReturning
	g.stateTicks = 0
	g.dropPath()
}

func (g *Ghost) arriveHome() {
	g.SnapToCenter()
	g.State = GhostSpawnDelay
	g.stateTicks = g.tuning.SpawnDelayTicks
	// After being eaten the ghost rejoins the hunt directly
	g.afterDelay = GhostChase
	g.dropPath()
}

// Reset returns the ghost to its initial spawn condition after the
// player loses a life.
func (g *Ghost) Reset() {
	g.Pos = geom.CellCenter(g.home, g.CellSize)
	g.CurrentDir = DirNone
	g.State = GhostSpawnDelay
	g.stateTicks = g.tuning.SpawnDelayTicks
	g.afterDelay = GhostScatter
	g.scatterIdx = homeCornerIndex(g.Personality)
	g.dropPath()
}

func (g *Ghost) dropPath() {
	g.path = nil
	g.pathIdx = 0
	g.recalcIn = 0
	g.hasGoal = false
}

// --- Targeting ---

func (g *Ghost) targetCell(w World) geom.Cell {
	switch g.State {
	case GhostScatter:
		return g.scatterTarget()
	case GhostChase:
		return g.chaseTarget(w)
	case GhostVulnerable:
		return g.fleeTarget(w)
	case GhostReturning:
		return g.home
	default:
		panic(fmt.Sprintf("ghost: targetCell in state %v", g.State))
	}
}

func (g *Ghost) scatterTarget() geom.Cell {
	corner := g.corners[g.scatterIdx]
	if geom.EuclideanDist(g.CellPos(), corner) <= cornerReachedCells {
		// Corner reached, patrol on to the next one clockwise
		g.scatterIdx = (g.scatterIdx + 1) % len(g.corners)
		corner = g.corners[g.scatterIdx]
	}
	return corner
}

func (g *Ghost) chaseTarget(w World) geom.Cell {
	switch g.Personality {
	case PersonalityChaser:
		return w.PlayerCell
	case PersonalityAmbusher:
		return g.aheadOfPlayer(w, AmbushLookahead)
	case PersonalityFlanker:
		ahead := g.aheadOfPlayer(w, FlankerLookahead)
		mid := geom.Cell{
			Col: (ahead.Col + w.RedCell.Col) / 2,
			Row: (ahead.Row + w.RedCell.Row) / 2,
		}
		return g.nearestOpen(mid, w, w.PlayerCell)
	case PersonalityWanderer:
		if g.Pos.Dist(w.PlayerPos) > WandererRetreatDist {
			return w.PlayerCell
		}
		return g.corners[homeCornerIndex(g.Personality)]
	default:
		panic(fmt.Sprintf("ghost: unknown personality %d", g.Personality))
	}
}

// aheadOfPlayer projects k cells along the player's direction,
// backing off toward the player until the cell is walkable.
func (g *Ghost) aheadOfPlayer(w World, k int) geom.Cell {
	dx, dy := DirDelta(w.PlayerDir)
	if dx == 0 && dy == 0 {
		return w.PlayerCell
	}
	for i := k; i > 0; i-- {
		c := geom.Cell{Col: w.PlayerCell.Col + dx*i, Row: w.PlayerCell.Row + dy*i}
		if c.Col >= 0 && c.Col < w.MapW && c.Row >= 0 && c.Row < w.MapH && !g.isWall(c.Col, c.Row) {
			return c
		}
	}
	return w.PlayerCell
}

// nearestOpen finds the closest walkable cell to c by expanding ring
// scan, falling back to fallback when nothing opens within the scan.
func (g *Ghost) nearestOpen(c geom.Cell, w World, fallback geom.Cell) geom.Cell {
	if c.Col >= 0 && c.Col < w.MapW && c.Row >= 0 && c.Row < w.MapH && !g.isWall(c.Col, c.Row) {
		return c
	}
	for r := 1; r <= targetScanRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				x, y := c.Col+dx, c.Row+dy
				if x >= 0 && x < w.MapW && y >= 0 && y < w.MapH && !g.isWall(x, y) {
					return geom.Cell{Col: x, Row: y}
				}
			}
		}
	}
	return fallback
}

// fleeTarget picks the walkable cell in the scan neighborhood that is
// farthest from the player. The ghost's own cell is always a
// candidate, so there is always a target.
func (g *Ghost) fleeTarget(w World) geom.Cell {
	own := g.CellPos()
	best := own
	bestDist := -1.0
	for dy := -targetScanRadius; dy <= targetScanRadius; dy++ {
		for dx := -targetScanRadius; dx <= targetScanRadius; dx++ {
			x, y := own.Col+dx, own.Row+dy
			if x < 0 || x >= w.MapW || y < 0 || y >= w.MapH || g.isWall(x, y) {
				continue
			}
			d := geom.EuclideanDist(geom.Cell{Col: x, Row: y}, w.PlayerCell)
			if d > bestDist {
				bestDist = d
				best = geom.Cell{Col: x, Row: y}
			}
		}
	}
	return best
}

// --- Path upkeep and movement ---

func (g *Ghost) followPath(target geom.Cell) {
	g.recalcIn--
	needs := g.pathIdx >= len(g.path) ||
		g.recalcIn <= 0 ||
		(g.hasGoal && geom.EuclideanDist(target, g.lastGoal) > targetDriftCells)

	if needs {
		g.path = g.finder.Find(g.CellPos(), target)
		g.pathIdx = 0
		g.lastGoal = target
		g.hasGoal = true
		g.recalcIn = g.tuning.RecomputeTicks
		if len(g.path) == 0 {
			// Target unreachable: hold this tick and retry later. A
			// scatter corner that cannot be reached is skipped.
			if g.State == GhostScatter {
				g.scatterIdx = (g.scatterIdx + 1) % len(g.corners)
			}
			return
		}
	}

	for g.pathIdx < len(g.path) {
		wp := geom.CellCenter(g.path[g.pathIdx], g.CellSize)
		if g.Pos.Dist(wp) >= WaypointReachDist {
			g.StepToward(wp)
			return
		}
		g.pathIdx++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
