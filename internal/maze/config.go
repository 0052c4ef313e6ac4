package maze

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/carlosperfil/pacman/internal/geom"
)

const (
	DefaultCellSize   = 16
	DefaultDifficulty = 50
	maxDifficulty     = 200
)

// mapConfig mirrors the on-disk JSON map format.
type mapConfig struct {
	Metadata struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Difficulty  *int   `json:"difficulty"`
		CellSize    int    `json:"cell_size"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
	} `json:"metadata"`
	Layout         [][]int                  `json:"layout"`
	SpawnPositions map[string]spawnPosition `json:"spawn_positions"`
}

type spawnPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Load reads and validates a JSON map file. Any defect in the file is
// an error; the game never starts on a half-valid board.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// Parse decodes and validates raw JSON map data.
func Parse(data []byte) (*Map, error) {
	var cfg mapConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}

	if len(cfg.Layout) == 0 || len(cfg.Layout[0]) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}
	height := len(cfg.Layout)
	width := len(cfg.Layout[0])
	for y, row := range cfg.Layout {
		if len(row) != width {
			return nil, fmt.Errorf("layout row %d has %d cells, want %d", y, len(row), width)
		}
	}
	if cfg.Metadata.Width != 0 && cfg.Metadata.Width != width {
		return nil, fmt.Errorf("metadata width %d does not match layout width %d", cfg.Metadata.Width, width)
	}
	if cfg.Metadata.Height != 0 && cfg.Metadata.Height != height {
		return nil, fmt.Errorf("metadata height %d does not match layout height %d", cfg.Metadata.Height, height)
	}

	difficulty := DefaultDifficulty
	if cfg.Metadata.Difficulty != nil {
		difficulty = *cfg.Metadata.Difficulty
	}
	if difficulty < 0 || difficulty > maxDifficulty {
		return nil, fmt.Errorf("difficulty %d out of range 0-%d", difficulty, maxDifficulty)
	}

	cellSize := cfg.Metadata.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}
	if cellSize < 0 {
		return nil, fmt.Errorf("cell size %d is negative", cellSize)
	}

	tiles := make([][]Tile, height)
	for y, row := range cfg.Layout {
		tiles[y] = make([]Tile, width)
		for x, v := range row {
			switch v {
			case 0:
				tiles[y][x] = TileEmpty
			case 1:
				tiles[y][x] = TileWall
			case 2:
				tiles[y][x] = TilePellet
			case 3:
				tiles[y][x] = TilePower
			default:
				return nil, fmt.Errorf("layout cell (%d,%d) has unknown value %d", x, y, v)
			}
		}
	}

	m := &Map{
		Name:       cfg.Metadata.Name,
		Difficulty: difficulty,
		CellSize:   cellSize,
		Width:      width,
		Height:     height,
		Tiles:      tiles,
		spawns:     make(map[string]geom.Cell, len(cfg.SpawnPositions)),
		pellets:    countPellets(tiles),
	}
	if m.pellets == 0 {
		return nil, fmt.Errorf("map has no pellets")
	}

	for name, pos := range cfg.SpawnPositions {
		m.spawns[name] = geom.Cell{Col: pos.X, Row: pos.Y}
	}
	for _, name := range RequiredSpawns {
		c, ok := m.spawns[name]
		if !ok {
			return nil, fmt.Errorf("missing spawn position %q", name)
		}
		if c.Col < 0 || c.Col >= width || c.Row < 0 || c.Row >= height {
			return nil, fmt.Errorf("spawn %q at (%d,%d) is out of bounds", name, c.Col, c.Row)
		}
		if tiles[c.Row][c.Col] == TileWall {
			return nil, fmt.Errorf("spawn %q at (%d,%d) is inside a wall", name, c.Col, c.Row)
		}
	}

	return m, nil
}

// AvailableMaps loads every *.json map in dir sorted by ascending
// difficulty. The ordering is the campaign order.
func AvailableMaps(dir string) ([]*Map, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan maps: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no map files in %s", dir)
	}
	sort.Strings(paths)

	maps := make([]*Map, 0, len(paths))
	for _, p := range paths {
		m, err := Load(p)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	sort.SliceStable(maps, func(i, j int) bool {
		return maps[i].Difficulty < maps[j].Difficulty
	})
	return maps, nil
}
