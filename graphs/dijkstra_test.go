// Package graphs_test contains unit tests for the dense matrix
// algorithms: Dijkstra, Floyd-Warshall, Bellman-Ford and the grid A*.
package graphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WomB0ComB0/pathfind/graphs"
)

// buildCycle4 constructs the reference 4-vertex cycle:
// 0-1=1, 1-2=2, 2-3=1, 3-0=4, undirected.
func buildCycle4(t *testing.T) *graphs.AdjacencyMatrix {
	t.Helper()
	m, err := graphs.New(4)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(0, 1, 1))
	require.NoError(t, m.AddEdge(1, 2, 2))
	require.NoError(t, m.AddEdge(2, 3, 1))
	require.NoError(t, m.AddEdge(3, 0, 4))

	return m
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestDijkstra_NilMatrix(t *testing.T) {
	_, err := graphs.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, graphs.ErrNilMatrix)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	m, err := graphs.New(2)
	require.NoError(t, err)

	_, err = graphs.Dijkstra(m, 2)
	assert.ErrorIs(t, err, graphs.ErrIndexOutOfBounds)

	_, err = graphs.Dijkstra(m, -1)
	assert.ErrorIs(t, err, graphs.ErrIndexOutOfBounds)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	m, err := graphs.New(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, -4))

	_, err = graphs.Dijkstra(m, 0)
	assert.ErrorIs(t, err, graphs.ErrNegativeWeight)
}

// ------------------------------------------------------------------------
// 2. Reference scenario: the 4-vertex cycle.
// ------------------------------------------------------------------------

func TestDijkstra_Cycle4(t *testing.T) {
	m := buildCycle4(t)

	dist, err := graphs.Dijkstra(m, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 3, 4}, dist)
}

// ------------------------------------------------------------------------
// 3. Unreachable vertices stay at Inf.
// ------------------------------------------------------------------------

func TestDijkstra_DisconnectedComponent(t *testing.T) {
	// 0—1 connected; 2 and 3 form their own island.
	m, err := graphs.New(4)
	require.NoError(t, err)
	require.NoError(t, m.AddEdge(0, 1, 2))
	require.NoError(t, m.AddEdge(2, 3, 1))

	dist, err := graphs.Dijkstra(m, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, dist[0])
	assert.Equal(t, 2.0, dist[1])
	assert.Equal(t, graphs.Inf, dist[2])
	assert.Equal(t, graphs.Inf, dist[3])
}

// ------------------------------------------------------------------------
// 4. Single vertex: the trivial graph.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex(t *testing.T) {
	m, err := graphs.New(1)
	require.NoError(t, err)

	dist, err := graphs.Dijkstra(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, dist)
}

// ------------------------------------------------------------------------
// 5. Explicit Inf entries behave as missing edges.
// ------------------------------------------------------------------------

func TestDijkstra_InfEdgeIsWall(t *testing.T) {
	// 0→1 exists only as an Inf entry: vertex 1 must stay unreachable,
	// while the detour 0—2—1 provides the finite route.
	m, err := graphs.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, graphs.Inf))
	require.NoError(t, m.AddEdge(0, 2, 3))
	require.NoError(t, m.AddEdge(2, 1, 4))

	dist, err := graphs.Dijkstra(m, 0)
	require.NoError(t, err)

	assert.Equal(t, 7.0, dist[1], "route must go around the Inf entry")
	assert.Equal(t, 3.0, dist[2])
}
