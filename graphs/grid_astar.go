package graphs

import (
	"fmt"
	"math"

	"github.com/WomB0ComB0/pathfind/pqueue"
)

// gridOffsets are the 4-directional neighbor moves: N, E, S, W.
var gridOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// gridNode is the per-cell search record of the grid A*: scores, the
// parent link for path reconstruction, and open/closed membership.
type gridNode struct {
	g, h, f float64 // accumulated cost, heuristic, and their sum
	parent  int     // index of the cell this one was best reached from
	open    bool    // currently in the open heap
	closed  bool    // finalized; its g is authoritative
}

// AStar finds a cheapest 4-connected path from start to goal over m
// interpreted as a V×V grid of enter-costs: the cost of stepping into
// cell (X, Y) is the matrix entry at row Y, column X, and an Inf entry
// is a wall. The start cell's own enter-cost is not charged.
//
// The search is the same open/closed heap-driven loop as the generic
// engine in package astar, specialized to grid-local neighbor
// generation and the Manhattan-distance heuristic (admissible under
// 4-connectivity with non-negative costs). Unlike the generic engine
// it keeps explicit open-set membership per cell and rescores improved
// cells in place rather than pushing duplicates.
//
// Returns the inclusive start→goal cell sequence and its total cost.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. start and goal must lie inside the grid (ErrIndexOutOfBounds).
//  3. Neither endpoint may be a wall (ErrNoPath).
//  4. Enter-costs must be non-negative; violations surface as
//     ErrNegativeWeight when the cell is first reached.
//
// Complexity: Time O(V² log V) worst case, Space O(V²) for the cell
// arena.
func AStar(m *AdjacencyMatrix, start, goal Cell) ([]Cell, float64, error) {
	// 1) Validate the input matrix.
	if m == nil {
		return nil, 0, ErrNilMatrix
	}

	// 2) Validate both endpoints are inside the grid.
	n := m.n
	if !inBounds(n, start) {
		return nil, 0, matrixErrorf("AStar", start.Y, start.X, ErrIndexOutOfBounds)
	}
	if !inBounds(n, goal) {
		return nil, 0, matrixErrorf("AStar", goal.Y, goal.X, ErrIndexOutOfBounds)
	}

	// 3) Walled endpoints can never be connected.
	if math.IsInf(m.data[start.Y*n+start.X], 1) || math.IsInf(m.data[goal.Y*n+goal.X], 1) {
		return nil, 0, ErrNoPath
	}

	// 4) Build the cell arena. Index is row-major: y*n + x.
	arena := make([]gridNode, n*n)
	for i := range arena {
		arena[i].g = Inf
		arena[i].parent = -1
	}

	// The open set orders cell indices by their current f score.
	open, err := pqueue.New(func(idx int) float64 { return arena[idx].f })
	if err != nil {
		return nil, 0, err
	}

	startIdx := start.Y*n + start.X
	goalIdx := goal.Y*n + goal.X

	arena[startIdx].g = 0
	arena[startIdx].h = manhattan(start, goal)
	arena[startIdx].f = arena[startIdx].h
	arena[startIdx].open = true
	open.Push(startIdx)

	// 5) Main loop: finalize the cheapest open cell, stop on goal,
	//    otherwise relax its orthogonal neighbors.
	var (
		current, x, y, nx, ny, nIdx int
		enter, tentative            float64
	)
	for open.Len() > 0 {
		current, err = open.Pop()
		if err != nil {
			return nil, 0, err
		}
		arena[current].open = false
		arena[current].closed = true

		// The first finalized goal pop is authoritative.
		if current == goalIdx {
			return rebuildPath(arena, n, startIdx, goalIdx), arena[goalIdx].g, nil
		}

		x, y = current%n, current/n
		for _, d := range gridOffsets {
			nx, ny = x+d[0], y+d[1]
			if nx < 0 || nx >= n || ny < 0 || ny >= n {
				continue
			}
			nIdx = ny*n + nx
			if arena[nIdx].closed {
				continue
			}

			// A wall cell cannot be entered.
			enter = m.data[nIdx]
			if math.IsInf(enter, 1) {
				continue
			}
			if enter < 0 {
				return nil, 0, fmt.Errorf("graphs: AStar: cell (%d,%d) cost=%v: %w", nx, ny, enter, ErrNegativeWeight)
			}

			tentative = arena[current].g + enter
			if tentative >= arena[nIdx].g {
				continue
			}

			// Strictly better route: update the record, then either
			// rescore the already-open cell or push it fresh.
			arena[nIdx].g = tentative
			arena[nIdx].h = manhattan(Cell{X: nx, Y: ny}, goal)
			arena[nIdx].f = tentative + arena[nIdx].h
			arena[nIdx].parent = current
			if arena[nIdx].open {
				if err = open.Rescore(nIdx); err != nil {
					return nil, 0, err
				}
			} else {
				arena[nIdx].open = true
				open.Push(nIdx)
			}
		}
	}

	// Open set exhausted: the goal is walled off.
	return nil, 0, ErrNoPath
}

// inBounds reports whether c lies within an n×n grid.
func inBounds(n int, c Cell) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

// manhattan is the 4-connectivity distance lower bound |dx| + |dy|.
func manhattan(a, b Cell) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return float64(dx + dy)
}

// rebuildPath walks the parent links from the goal back to the start
// and reverses the cell sequence into start→goal order.
func rebuildPath(arena []gridNode, n, startIdx, goalIdx int) []Cell {
	var indices []int
	for idx := goalIdx; idx != -1; idx = arena[idx].parent {
		indices = append(indices, idx)
		if idx == startIdx {
			break
		}
	}

	path := make([]Cell, len(indices))
	for i, idx := range indices {
		path[len(indices)-1-i] = Cell{X: idx % n, Y: idx / n}
	}

	return path
}
