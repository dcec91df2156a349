package graphs

import "math"

// FloydWarshall computes all-pairs shortest distances over m and
// returns them as a fresh n×n matrix; m itself is never mutated.
//
// Input convention (adjacency): off-diagonal 0 or Inf means "no edge";
// any other value is a direct edge weight. The result uses the
// distance convention: diagonal 0, Inf for unreachable pairs.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. No entry may be negative (ErrNegativeWeight) — negative-weight
//     cycles make the relaxation meaningless; use BellmanFord for
//     single-source queries over negative weights.
//
// Determinism: the loop order is fixed (k → i → j), so accumulation
// order is stable across runs.
//
// Complexity: Time O(V³), Space O(V²) for the returned matrix.
func FloydWarshall(m *AdjacencyMatrix) (*AdjacencyMatrix, error) {
	// 1) Validate the input matrix.
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 2) Fail fast on negative weights.
	if err := m.scanNegative("FloydWarshall"); err != nil {
		return nil, err
	}

	// 3) Copy into a distance matrix: diagonal 0, off-diagonal 0 → Inf.
	dist := m.Clone()
	initDistances(dist)

	// 4) Relax through every intermediate vertex with the fixed k→i→j
	//    order, skipping +Inf operands (no path through k).
	n := dist.n
	data := dist.data
	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row offsets in the flat buffer
		ik, kj, cand float64 // distances i→k, k→j and the candidate via k
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) { // k cannot reach j
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	return dist, nil
}

// initDistances rewrites an adjacency matrix into a distance matrix
// in place: diagonal entries become 0 and off-diagonal zeros (absent
// edges) become Inf. Explicit Inf entries are already "no path".
// Complexity: O(n²).
func initDistances(d *AdjacencyMatrix) {
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			switch {
			case i == j:
				d.data[i*d.n+j] = 0
			case d.data[i*d.n+j] == 0:
				d.data[i*d.n+j] = Inf
			}
		}
	}
}
