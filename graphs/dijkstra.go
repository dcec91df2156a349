package graphs

import "math"

// Dijkstra computes single-source shortest distances from src over m.
//
// The returned slice maps each vertex index to its minimum distance
// from src, with Inf for unreachable vertices. Off-diagonal 0 or Inf
// entries mean "no edge".
//
// Selection is an O(V) linear scan over unvisited vertices rather than
// a heap: on a dense V×V matrix every relaxation round touches V
// entries anyway, so the scan is the right tool and the total cost is
// O(V²). For sparse or implicit graphs use the astar package instead.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. src must be a valid vertex index (ErrIndexOutOfBounds).
//  3. No entry may be negative (ErrNegativeWeight).
//
// Complexity: Time O(V²), Space O(V).
func Dijkstra(m *AdjacencyMatrix, src int) ([]float64, error) {
	// 1) Validate the input matrix.
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 2) Validate the source index.
	if src < 0 || src >= m.n {
		return nil, matrixErrorf("Dijkstra", src, 0, ErrIndexOutOfBounds)
	}

	// 3) Fail fast on negative weights.
	if err := m.scanNegative("Dijkstra"); err != nil {
		return nil, err
	}

	// 4) Initialize: every vertex unreachable except the source.
	n := m.n
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = Inf
	}
	dist[src] = 0
	visited := make([]bool, n)

	// 5) Main loop: V rounds of pick-nearest-unvisited, then relax its
	//    outgoing edges.
	var (
		round, u, v int
		w, cand     float64
	)
	for round = 0; round < n; round++ {
		// Select the unvisited vertex with the smallest tentative
		// distance. If only Inf remains, the reachable set is done.
		u = -1
		for v = 0; v < n; v++ {
			if !visited[v] && !math.IsInf(dist[v], 1) && (u < 0 || dist[v] < dist[u]) {
				u = v
			}
		}
		if u < 0 {
			break
		}
		visited[u] = true

		// Relax every edge leaving u. A zero or Inf entry is no edge.
		for v = 0; v < n; v++ {
			w = m.data[u*n+v]
			if visited[v] || w == 0 || math.IsInf(w, 1) {
				continue
			}
			cand = dist[u] + w
			if cand < dist[v] {
				dist[v] = cand
			}
		}
	}

	return dist, nil
}
