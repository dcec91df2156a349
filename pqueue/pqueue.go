package pqueue

// Queue is a binary min-heap of values of type T, ordered by an
// external score function supplied at construction time.
//
// The zero value is not usable; construct with New.
type Queue[T comparable] struct {
	score ScoreFunc[T] // external scoring; re-evaluated at each comparison
	items []T          // flat backing storage, items[0] is the minimum
	pos   map[T]int    // value → current heap index, maintained on every swap
}

// New constructs an empty Queue ordered by score.
// Returns ErrNilScore if score is nil.
// Complexity: O(1).
func New[T comparable](score ScoreFunc[T]) (*Queue[T], error) {
	// Validate the scoring function before accepting any elements.
	if score == nil {
		return nil, ErrNilScore
	}

	return &Queue[T]{
		score: score,
		items: make([]T, 0),
		pos:   make(map[T]int),
	}, nil
}

// Len returns the number of elements currently held.
// Complexity: O(1).
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Push inserts v and restores heap order by sifting it toward the root
// while its score is smaller than its parent's.
// Complexity: O(log n).
func (q *Queue[T]) Push(v T) {
	// Append at the last slot, then repair the path up to the root.
	q.items = append(q.items, v)
	q.pos[v] = len(q.items) - 1
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the minimum-scored element.
// Returns ErrEmptyQueue if the queue holds no elements.
// Complexity: O(log n).
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	n := len(q.items)
	if n == 0 {
		return zero, ErrEmptyQueue
	}

	// The root is the minimum by the heap invariant.
	root := q.items[0]
	delete(q.pos, root)

	// Move the last element into the vacated root slot and shrink.
	last := q.items[n-1]
	q.items[n-1] = zero // release the reference for GC
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.pos[last] = 0
		q.siftDown(0)
	}

	return root, nil
}

// Peek returns the minimum-scored element without removing it.
// Returns ErrEmptyQueue if the queue holds no elements.
// Complexity: O(1).
func (q *Queue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}

	return q.items[0], nil
}

// Rescore restores heap order for v after its externally computed score
// has changed. The element is located via the position map in O(1) and
// re-sunk or re-bubbled from its current slot.
// Returns ErrNotInQueue if v is not currently held.
// Complexity: O(log n).
func (q *Queue[T]) Rescore(v T) error {
	i, ok := q.pos[v]
	if !ok {
		return ErrNotInQueue
	}

	// Repair downward first; if nothing moved the violation (if any)
	// is toward the root, so repair upward instead.
	if !q.siftDown(i) {
		q.siftUp(i)
	}

	return nil
}

// less reports whether the element at index i scores strictly below the
// element at index j. Scores are recomputed on demand.
func (q *Queue[T]) less(i, j int) bool {
	return q.score(q.items[i]) < q.score(q.items[j])
}

// swap exchanges slots i and j and keeps the position map consistent.
func (q *Queue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i]] = i
	q.pos[q.items[j]] = j
}

// siftUp moves the element at index i toward the root while it scores
// below its parent.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

// siftDown moves the element at index i away from the root while either
// child scores below it, always descending into the smaller-scored
// child. Reports whether the element moved at all.
func (q *Queue[T]) siftDown(i int) bool {
	n := len(q.items)
	start := i
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && q.less(right, left) {
			smallest = right
		}
		if !q.less(smallest, i) {
			break
		}
		q.swap(i, smallest)
		i = smallest
	}

	return i > start
}
