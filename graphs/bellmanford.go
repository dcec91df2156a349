package graphs

import "math"

// BellmanFord computes single-source shortest distances from src over
// m, tolerating negative edge weights.
//
// The matrix is read as directed entries: m[i][j] is the weight of the
// edge i→j, and off-diagonal 0 or Inf means "no edge". Note that
// AddEdge writes both directions, so a negative weight recorded through
// AddEdge immediately forms the two-vertex negative cycle i→j→i; build
// negative-weight graphs with directed Set calls.
//
// Returns the distance slice (Inf for unreachable vertices), or
// ErrNegativeCycle if a cycle of negative total weight is reachable —
// shortest distances are then unbounded below and meaningless.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. src must be a valid vertex index (ErrIndexOutOfBounds).
//
// Complexity: Time O(V·E) with E ≤ V², i.e. O(V³) worst case on a
// dense matrix; Space O(V).
func BellmanFord(m *AdjacencyMatrix, src int) ([]float64, error) {
	// 1) Validate the input matrix.
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 2) Validate the source index.
	if src < 0 || src >= m.n {
		return nil, matrixErrorf("BellmanFord", src, 0, ErrIndexOutOfBounds)
	}

	// 3) Initialize: every vertex unreachable except the source.
	n := m.n
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = Inf
	}
	dist[src] = 0

	// 4) V-1 rounds of full edge relaxation. Skipping rounds once no
	//    relaxation fires is a standard early exit.
	var (
		round, u, v int
		w, cand     float64
		changed     bool
	)
	for round = 0; round < n-1; round++ {
		changed = false
		for u = 0; u < n; u++ {
			if math.IsInf(dist[u], 1) { // nothing to propagate from u yet
				continue
			}
			for v = 0; v < n; v++ {
				w = m.data[u*n+v]
				if u == v || w == 0 || math.IsInf(w, 1) {
					continue
				}
				cand = dist[u] + w
				if cand < dist[v] {
					dist[v] = cand
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	// 5) Verification round: any further improvement proves a reachable
	//    negative cycle.
	for u = 0; u < n; u++ {
		if math.IsInf(dist[u], 1) {
			continue
		}
		for v = 0; v < n; v++ {
			w = m.data[u*n+v]
			if u == v || w == 0 || math.IsInf(w, 1) {
				continue
			}
			if dist[u]+w < dist[v] {
				return nil, ErrNegativeCycle
			}
		}
	}

	return dist, nil
}
