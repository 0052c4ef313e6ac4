package maze

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/carlosperfil/pacman/internal/geom"
)

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
	TilePower
)

// Spawn position keys required in every map.
const (
	SpawnPlayer      = "player"
	SpawnGhostRed    = "ghost_red"
	SpawnGhostPink   = "ghost_pink"
	SpawnGhostCyan   = "ghost_cyan"
	SpawnGhostOrange = "ghost_orange"
)

// RequiredSpawns lists the spawn keys a valid map must define.
var RequiredSpawns = []string{
	SpawnPlayer, SpawnGhostRed, SpawnGhostPink, SpawnGhostCyan, SpawnGhostOrange,
}

// Map is a loaded board: tiles, spawn cells and live pellet count.
// The orchestrator is the only mutator (pellet removal).
type Map struct {
	Name       string
	Difficulty int
	CellSize   int
	Width      int
	Height     int
	Tiles      [][]Tile

	spawns  map[string]geom.Cell
	pellets int
}

func (m *Map) IsWall(x, y int) bool {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return true
	}
	return m.Tiles[y][x] == TileWall
}

func (m *Map) Walkable(x, y int) bool {
	return !m.IsWall(x, y)
}

// EatPelletAt removes a pellet/power pellet at grid cell and returns (ate, power)
func (m *Map) EatPelletAt(x, y int) (bool, bool) {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return false, false
	}
	switch m.Tiles[y][x] {
	case TilePellet:
		m.Tiles[y][x] = TileEmpty
		m.pellets--
		return true, false
	case TilePower:
		m.Tiles[y][x] = TileEmpty
		m.pellets--
		return true, true
	}
	return false, false
}

func (m *Map) PelletsRemaining() int { return m.pellets }

// Spawn returns the named spawn cell.
func (m *Map) Spawn(name string) (geom.Cell, bool) {
	c, ok := m.spawns[name]
	return c, ok
}

// MustSpawn returns the named spawn cell and panics when it is absent.
// Validation guarantees the required spawns exist, so a miss here is a
// caller bug.
func (m *Map) MustSpawn(name string) geom.Cell {
	c, ok := m.spawns[name]
	if !ok {
		panic("maze: missing spawn " + name)
	}
	return c
}

// CornerAnchors returns the walkable cells nearest the four map
// corners, in order top-left, top-right, bottom-right, bottom-left.
func (m *Map) CornerAnchors() [4]geom.Cell {
	corners := [4]geom.Cell{
		{Col: 0, Row: 0},
		{Col: m.Width - 1, Row: 0},
		{Col: m.Width - 1, Row: m.Height - 1},
		{Col: 0, Row: m.Height - 1},
	}
	var anchors [4]geom.Cell
	for i, corner := range corners {
		anchors[i] = m.nearestWalkable(corner)
	}
	return anchors
}

func (m *Map) nearestWalkable(c geom.Cell) geom.Cell {
	if m.Walkable(c.Col, c.Row) {
		return c
	}
	// Expanding ring scan; row-major within each ring keeps it stable
	for r := 1; r < m.Width+m.Height; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				x, y := c.Col+dx, c.Row+dy
				if m.Walkable(x, y) {
					return geom.Cell{Col: x, Row: y}
				}
			}
		}
	}
	return c
}

// PixelSize returns the board dimensions in pixels.
func (m *Map) PixelSize() (w, h int) {
	return m.Width * m.CellSize, m.Height * m.CellSize
}

// Clone deep-copies the map so a level can consume pellets without
// touching the loaded original.
func (m *Map) Clone() *Map {
	c := *m
	c.Tiles = make([][]Tile, len(m.Tiles))
	for y, row := range m.Tiles {
		c.Tiles[y] = append([]Tile(nil), row...)
	}
	c.spawns = make(map[string]geom.Cell, len(m.spawns))
	for k, v := range m.spawns {
		c.spawns[k] = v
	}
	return &c
}

func (m *Map) Draw(dst *ebiten.Image) {
	wallColor := color.RGBA{R: 33, G: 33, B: 255, A: 255}
	pelletColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	ts := m.CellSize
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			px := float32(x * ts)
			py := float32(y * ts)
			cx := px + float32(ts)/2
			cy := py + float32(ts)/2

			switch m.Tiles[y][x] {
			case TileWall:
				vector.DrawFilledRect(dst, px, py, float32(ts), float32(ts), wallColor, false)
			case TilePellet:
				vector.DrawFilledCircle(dst, cx, cy, float32(ts)/8, pelletColor, true)
			case TilePower:
				vector.DrawFilledCircle(dst, cx, cy, float32(ts)/4, pelletColor, true)
			}
		}
	}
}

func countPellets(tiles [][]Tile) int {
	n := 0
	for _, row := range tiles {
		for _, t := range row {
			if t == TilePellet || t == TilePower {
				n++
			}
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
