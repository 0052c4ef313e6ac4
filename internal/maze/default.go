package maze

import "github.com/carlosperfil/pacman/internal/geom"

// defaultMaze is the built-in board. '#' wall, '.' pellet, 'o' power
// pellet, spaces open. Row 13 is the wrap-around tunnel.
var defaultMaze = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##### ## #####.#     ",
	"     #.##          ##.#     ",
	"     #.## ###  ### ##.#     ",
	"######.## #      # ##.######",
	"      .   #      #   .      ",
	"######.## #      # ##.######",
	"     #.## ######## ##.#     ",
	"     #.##          ##.#     ",
	"     #.## ######## ##.#     ",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......  .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// DefaultMap builds the compiled-in board with its canonical spawns.
func DefaultMap() *Map {
	tiles := parseMaze(defaultMaze)
	m := &Map{
		Name:       "Classic",
		Difficulty: DefaultDifficulty,
		CellSize:   DefaultCellSize,
		Width:      len(tiles[0]),
		Height:     len(tiles),
		Tiles:      tiles,
		spawns: map[string]geom.Cell{
			SpawnPlayer:      {Col: 13, Row: 22},
			SpawnGhostRed:    {Col: 12, Row: 13},
			SpawnGhostPink:   {Col: 15, Row: 13},
			SpawnGhostCyan:   {Col: 12, Row: 12},
			SpawnGhostOrange: {Col: 15, Row: 12},
		},
	}
	m.pellets = countPellets(tiles)
	return m
}

func parseMaze(lines []string) [][]Tile {
	h := len(lines)
	w := len(lines[0])
	grid := make([][]Tile, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]Tile, w)
		for x := 0; x < w; x++ {
			switch lines[y][x] {
			case '#':
				grid[y][x] = TileWall
			case '.':
				grid[y][x] = TilePellet
			case 'o':
				grid[y][x] = TilePower
			default:
				grid[y][x] = TileEmpty
			}
		}
	}
	return grid
}
