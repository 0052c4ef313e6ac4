package path

import (
	"math"

	"github.com/carlosperfil/pacman/internal/geom"
)

// WallChecker reports whether the cell at (col, row) blocks movement.
// Out-of-bounds queries must report true.
type WallChecker func(col, row int) bool

type Heuristic int

const (
	HeuristicManhattan Heuristic = iota
	HeuristicEuclidean
)

// Step cost 10 per move so the Euclidean heuristic keeps one decimal
// of precision in integer math. Flooring keeps it admissible.
const (
	costStep        = 10
	costUnreachable = 1<<30 - 1
)

// Neighbor expansion order is fixed: up, down, left, right
var neighborDeltas = [4][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
}

// --- Min-heap for the open set ---

type heapEntry struct {
	idx int // flat grid index (row*width + col)
	f   int // g + heuristic
	seq int // insertion order, breaks f ties
}

func entryLess(a, b heapEntry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !entryLess((*h)[i], (*h)[parent]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		small := left
		if right := left + 1; right < len(*h) && entryLess((*h)[right], (*h)[left]) {
			small = right
		}
		if !entryLess((*h)[small], (*h)[i]) {
			break
		}
		(*h)[i], (*h)[small] = (*h)[small], (*h)[i]
		i = small
	}
	return e
}

// --- Finder ---

// Finder runs A* over a 4-connected grid. Results are deterministic:
// equal-cost frontiers expand in insertion order.
type Finder struct {
	w, h      int
	isWall    WallChecker
	heuristic Heuristic
}

func NewFinder(w, h int, isWall WallChecker, heuristic Heuristic) *Finder {
	return &Finder{w: w, h: h, isWall: isWall, heuristic: heuristic}
}

func (f *Finder) estimate(a, b geom.Cell) int {
	switch f.heuristic {
	case HeuristicEuclidean:
		return int(math.Floor(geom.EuclideanDist(a, b) * costStep))
	default:
		return geom.ManhattanDist(a, b) * costStep
	}
}

func (f *Finder) inBounds(c geom.Cell) bool {
	return c.Col >= 0 && c.Col < f.w && c.Row >= 0 && c.Row < f.h
}

// Find returns the cells from start (exclusive) to goal (inclusive),
// each adjacent to the previous. It returns nil when the goal is
// unreachable, start equals goal, or either endpoint is blocked.
func (f *Finder) Find(start, goal geom.Cell) []geom.Cell {
	if start == goal {
		return nil
	}
	if !f.inBounds(start) || !f.inBounds(goal) {
		return nil
	}
	if f.isWall(start.Col, start.Row) || f.isWall(goal.Col, goal.Row) {
		return nil
	}

	size := f.w * f.h
	gScore := make([]int, size)
	for i := range gScore {
		gScore[i] = costUnreachable
	}
	closed := make([]bool, size)
	from := make([]int32, size)
	for i := range from {
		from[i] = -1
	}

	startIdx := start.Row*f.w + start.Col
	goalIdx := goal.Row*f.w + goal.Col

	var open minHeap
	seq := 0
	gScore[startIdx] = 0
	open.push(heapEntry{idx: startIdx, f: f.estimate(start, goal), seq: seq})
	seq++

	for len(open) > 0 {
		cur := open.pop()
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true
		if cur.idx == goalIdx {
			return f.reconstruct(from, startIdx, goalIdx)
		}

		col := cur.idx % f.w
		row := cur.idx / f.w
		for _, d := range neighborDeltas {
			nc, nr := col+d[0], row+d[1]
			if nc < 0 || nc >= f.w || nr < 0 || nr >= f.h {
				continue
			}
			nIdx := nr*f.w + nc
			if closed[nIdx] || f.isWall(nc, nr) {
				continue
			}
			ng := gScore[cur.idx] + costStep
			if ng >= gScore[nIdx] {
				continue
			}
			gScore[nIdx] = ng
			from[nIdx] = int32(cur.idx)
			open.push(heapEntry{
				idx: nIdx,
				f:   ng + f.estimate(geom.Cell{Col: nc, Row: nr}, goal),
				seq: seq,
			})
			seq++
		}
	}
	return nil
}

func (f *Finder) reconstruct(from []int32, startIdx, goalIdx int) []geom.Cell {
	var rev []geom.Cell
	for idx := goalIdx; idx != startIdx; idx = int(from[idx]) {
		rev = append(rev, geom.Cell{Col: idx % f.w, Row: idx / f.w})
	}
	// Reverse in place: rev was built goal to start
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
