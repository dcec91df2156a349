// Package pqueue_test contains unit tests for the score-function
// binary min-heap. They validate construction errors, the heap-order
// invariant under mixed push/pop sequences, size accounting, the
// empty-queue protocol, and rescoring after external score changes.
package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WomB0ComB0/pathfind/pqueue"
)

// identity scores an int by its own value — the simplest total order.
func identity(v int) float64 { return float64(v) }

// ------------------------------------------------------------------------
// 1. Construction: nil score function must be rejected.
// ------------------------------------------------------------------------

func TestNew_NilScore(t *testing.T) {
	q, err := pqueue.New[int](nil)
	assert.Nil(t, q)                           // no queue on invalid input
	assert.ErrorIs(t, err, pqueue.ErrNilScore) // expect sentinel
}

func TestNew_Empty(t *testing.T) {
	q, err := pqueue.New(identity)
	require.NoError(t, err)
	assert.Zero(t, q.Len()) // a fresh queue holds nothing
}

// ------------------------------------------------------------------------
// 2. Empty-queue protocol: Pop and Peek fail loudly, never silently.
// ------------------------------------------------------------------------

func TestPop_Empty(t *testing.T) {
	q, err := pqueue.New(identity)
	require.NoError(t, err)

	_, err = q.Pop()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)

	_, err = q.Peek()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

// ------------------------------------------------------------------------
// 3. Heap invariant: pops come out in ascending score order.
// ------------------------------------------------------------------------

func TestPushPop_AscendingOrder(t *testing.T) {
	q, err := pqueue.New(identity)
	require.NoError(t, err)

	// Push a fixed permutation; expect the sorted sequence back out.
	for _, v := range []int{5, 3, 8, 1, 9, 2, 7} {
		q.Push(v)
	}

	want := []int{1, 2, 3, 5, 7, 8, 9}
	for _, w := range want {
		got, popErr := q.Pop()
		require.NoError(t, popErr)
		assert.Equal(t, w, got)
	}
	assert.Zero(t, q.Len())
}

func TestPushPop_RandomizedInvariant(t *testing.T) {
	q, err := pqueue.New(identity)
	require.NoError(t, err)

	// Deterministic seed so failures are reproducible.
	r := rand.New(rand.NewSource(42))
	values := r.Perm(500)
	for _, v := range values {
		q.Push(v)
	}

	// Interleave: pop half, push them back shifted, then drain fully.
	var drained []int
	for i := 0; i < 250; i++ {
		v, popErr := q.Pop()
		require.NoError(t, popErr)
		drained = append(drained, v)
	}
	for _, v := range drained {
		q.Push(v)
	}

	prev := -1
	for q.Len() > 0 {
		v, popErr := q.Pop()
		require.NoError(t, popErr)
		assert.GreaterOrEqual(t, v, prev, "pop order must be non-decreasing")
		prev = v
	}
}

// ------------------------------------------------------------------------
// 4. Size accounting: n pushes and m pops leave exactly n-m elements.
// ------------------------------------------------------------------------

func TestLen_Accounting(t *testing.T) {
	q, err := pqueue.New(identity)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	assert.Equal(t, 10, q.Len())

	for i := 0; i < 4; i++ {
		_, popErr := q.Pop()
		require.NoError(t, popErr)
	}
	assert.Equal(t, 6, q.Len())
}

// ------------------------------------------------------------------------
// 5. Peek: reports the minimum without consuming it.
// ------------------------------------------------------------------------

func TestPeek_DoesNotRemove(t *testing.T) {
	q, err := pqueue.New(identity)
	require.NoError(t, err)

	q.Push(4)
	q.Push(2)
	q.Push(6)

	top, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, top)
	assert.Equal(t, 3, q.Len()) // Peek must not shrink the queue
}

// ------------------------------------------------------------------------
// 6. Rescore: external score changes are honored after Rescore.
// ------------------------------------------------------------------------

func TestRescore_LoweredElementPopsFirst(t *testing.T) {
	// Scores live in an external map, the pattern a best-first search uses.
	scores := map[string]float64{"a": 10, "b": 20, "c": 30}
	q, err := pqueue.New(func(id string) float64 { return scores[id] })
	require.NoError(t, err)

	q.Push("a")
	q.Push("b")
	q.Push("c")

	// Lower c below everything, then tell the queue about it.
	scores["c"] = 1
	require.NoError(t, q.Rescore("c"))

	got, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "c", got, "rescored-lower element must pop no later than any higher-scored one")
}

func TestRescore_RaisedElementPopsLater(t *testing.T) {
	scores := map[string]float64{"a": 1, "b": 2, "c": 3}
	q, err := pqueue.New(func(id string) float64 { return scores[id] })
	require.NoError(t, err)

	q.Push("a")
	q.Push("b")
	q.Push("c")

	// Raise a above everything and repair its slot.
	scores["a"] = 99
	require.NoError(t, q.Rescore("a"))

	var order []string
	for q.Len() > 0 {
		v, popErr := q.Pop()
		require.NoError(t, popErr)
		order = append(order, v)
	}
	assert.Equal(t, []string{"b", "c", "a"}, order)
}

func TestRescore_Absent(t *testing.T) {
	q, err := pqueue.New(identity)
	require.NoError(t, err)

	q.Push(1)
	assert.ErrorIs(t, q.Rescore(7), pqueue.ErrNotInQueue)
}

// ------------------------------------------------------------------------
// 7. Equal scores: all tied elements come out before any higher score.
// ------------------------------------------------------------------------

func TestTies_GroupedByScore(t *testing.T) {
	scores := map[string]float64{"x1": 5, "x2": 5, "x3": 5, "y": 9}
	q, err := pqueue.New(func(id string) float64 { return scores[id] })
	require.NoError(t, err)

	for _, id := range []string{"y", "x1", "x2", "x3"} {
		q.Push(id)
	}

	var first3 []string
	for i := 0; i < 3; i++ {
		v, popErr := q.Pop()
		require.NoError(t, popErr)
		first3 = append(first3, v)
	}
	sort.Strings(first3)
	assert.Equal(t, []string{"x1", "x2", "x3"}, first3, "tied minimum scores must drain before higher ones")

	last, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "y", last)
}
