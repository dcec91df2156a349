package graphs

import "fmt"

// AdjacencyMatrix is a square, row-major matrix of edge weights.
// n is the vertex count and data holds n*n elements, data[r*n+c] being
// the weight of the edge r→c. Off-diagonal 0 means "no edge" to the
// matrix algorithms; Inf marks an explicitly impassable entry.
type AdjacencyMatrix struct {
	n    int       // number of vertices (rows == cols)
	data []float64 // flat backing storage, length n*n
}

// matrixErrorf wraps an underlying error with method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("graphs: %s(%d,%d): %w", method, row, col, err)
}

// New creates an n×n AdjacencyMatrix initialized to zeros (no edges).
// Returns ErrInvalidDimensions if n is not positive.
// Complexity: O(n²) time and memory.
func New(n int) (*AdjacencyMatrix, error) {
	// Validate the requested order before allocating.
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &AdjacencyMatrix{n: n, data: make([]float64, n*n)}, nil
}

// Size returns the number of vertices (the matrix order).
// Complexity: O(1).
func (m *AdjacencyMatrix) Size() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or reports an explicit
// range error — never undefined behavior on bad indices.
// Complexity: O(1).
func (m *AdjacencyMatrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.n {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At retrieves the weight of the edge row→col.
// Complexity: O(1).
func (m *AdjacencyMatrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes the weight of the edge row→col. Any float64 weight is
// accepted, including Inf (no edge) and negatives (for Bellman-Ford);
// algorithms that require non-negative weights pre-scan and fail fast.
// Complexity: O(1).
func (m *AdjacencyMatrix) Set(row, col int, weight float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = weight

	return nil
}

// AddEdge records an undirected edge v1—v2 with the given weight,
// writing both directions.
// Complexity: O(1).
func (m *AdjacencyMatrix) AddEdge(v1, v2 int, weight float64) error {
	if err := m.Set(v1, v2, weight); err != nil {
		return err
	}

	return m.Set(v2, v1, weight)
}

// Row returns a copy of row r, so callers cannot mutate the matrix
// through the returned slice.
// Complexity: O(n).
func (m *AdjacencyMatrix) Row(r int) ([]float64, error) {
	if r < 0 || r >= m.n {
		return nil, matrixErrorf("Row", r, 0, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.n)
	copy(out, m.data[r*m.n:(r+1)*m.n])

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *AdjacencyMatrix) Clone() *AdjacencyMatrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &AdjacencyMatrix{n: m.n, data: data}
}

// scanNegative reports the first negative weight in the matrix, used by
// the algorithms whose correctness requires non-negative weights.
func (m *AdjacencyMatrix) scanNegative(algo string) error {
	var r, c int
	for r = 0; r < m.n; r++ {
		for c = 0; c < m.n; c++ {
			if w := m.data[r*m.n+c]; w < 0 {
				return fmt.Errorf("graphs: %s: edge %d→%d weight=%v: %w", algo, r, c, w, ErrNegativeWeight)
			}
		}
	}

	return nil
}
