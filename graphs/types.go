// Package graphs defines the shared types and sentinel errors for the
// dense matrix algorithms and the grid A*.
package graphs

import (
	"errors"
	"math"
)

// Inf marks the absence of an edge (or a wall, for the grid A*).
// Relaxation loops skip +Inf operands, and float64 +Inf saturates under
// addition, so no overflow-prone integer sentinel is needed.
var Inf = math.Inf(1)

// Sentinel errors returned by the graphs package.
var (
	// ErrInvalidDimensions indicates that a requested matrix size is not positive.
	ErrInvalidDimensions = errors.New("graphs: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a vertex or cell index lies outside the matrix.
	ErrIndexOutOfBounds = errors.New("graphs: index out of bounds")

	// ErrNilMatrix indicates that a nil *AdjacencyMatrix was passed to an algorithm.
	ErrNilMatrix = errors.New("graphs: matrix is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// by an algorithm that requires non-negative weights.
	ErrNegativeWeight = errors.New("graphs: negative edge weight encountered")

	// ErrNegativeCycle indicates that Bellman-Ford detected a cycle whose
	// total weight is negative, making shortest distances unbounded.
	ErrNegativeCycle = errors.New("graphs: negative-weight cycle detected")

	// ErrNoPath indicates that the grid A* exhausted its open set without
	// connecting start and goal. It is an expected outcome for walled-off
	// goals, not a failure mode.
	ErrNoPath = errors.New("graphs: no path between start and goal")
)

// Cell identifies a grid position for the grid A*. X is the column and
// Y is the row; the enter-cost of a cell is the matrix entry at
// (row Y, column X).
type Cell struct {
	X, Y int
}
