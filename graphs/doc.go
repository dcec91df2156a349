// Package graphs provides shortest-path computations over explicit,
// dense adjacency matrices: Floyd-Warshall (all-pairs), Dijkstra
// (single-source), Bellman-Ford (single-source with negative weights),
// and a grid-specialized A*.
//
// Overview:
//
//   - AdjacencyMatrix is a square, row-major float64 matrix with
//     bounds-checked access. Off-diagonal 0 means "no edge" for the
//     matrix algorithms; the Inf sentinel (+Inf) marks an explicitly
//     impassable entry and, for the grid A*, a wall.
//   - Unlike the generic engine in package astar, these algorithms work
//     on a fully materialized graph of bounded size: the entire V×V
//     weight structure exists upfront, and no function injection is
//     involved.
//
// Choosing an algorithm:
//
//   - FloydWarshall: every-pair distances in O(V³); dense and simple.
//   - Dijkstra:      one-source distances in O(V²); selection by linear
//     scan, which beats a heap on dense matrices.
//   - BellmanFord:   one-source distances in O(V·E); tolerates negative
//     edge weights and detects negative cycles.
//   - AStar:         one start→goal path over the matrix read as a V×V
//     grid of enter-costs, 4-connected, Manhattan heuristic, driven by
//     a pqueue open set.
//
// Numeric model:
//
//   - All weights are float64; +Inf is the "no path" / "wall" value.
//     Arithmetic with +Inf saturates (x + Inf = Inf), so there is no
//     silent overflow as with a large finite integer sentinel, and the
//     relaxation loops skip +Inf operands anyway.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidDimensions, ErrIndexOutOfBounds, ErrNilMatrix: input
//     validation — explicit range errors instead of undefined behavior.
//   - ErrNegativeWeight: Dijkstra and FloydWarshall pre-scan the matrix
//     and fail fast on negative weights.
//   - ErrNegativeCycle: reported by BellmanFord after its verification
//     round.
//   - ErrNoPath: the grid A* could not connect start and goal. Expected
//     outcome, not a failure.
//
// Scaling limits (documented, not bugs): O(V³) Floyd-Warshall and
// O(V²) Dijkstra are unsuitable beyond a few thousand vertices; use the
// generic astar engine with an implicit graph instead.
//
// Thread safety: an AdjacencyMatrix is not synchronized; share it
// read-only or synchronize externally.
package graphs
