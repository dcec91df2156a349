// Package pqueue provides a generic binary min-heap priority queue
// ordered by a caller-supplied score function.
//
// Overview:
//
//   - The queue stores element values directly (no wrapper items); their
//     ordering score is recomputed by calling the score function at every
//     comparison, never cached inside the heap.
//   - Because scores live outside the queue (typically in a map the
//     caller mutates during a search), the queue exposes Rescore to
//     restore heap order after an element's external score changes.
//   - Rescore is O(log n): the queue maintains a value → position map
//     updated on every swap, so the affected slot is located in O(1)
//     and re-sunk / re-bubbled directly.
//
// When to use:
//
//   - As the open set of a best-first search (A*, Dijkstra, greedy),
//     where f-scores change as shorter paths are discovered.
//   - Anywhere a multiset must be consumed in ascending score order
//     with interleaved insertions.
//
// Contracts:
//
//   - Scores must be totally ordered: a score function returning NaN
//     violates the caller contract and yields unspecified ordering.
//   - Duplicate values may be pushed; all copies of a value necessarily
//     share one score (score is a pure function of the value), so the
//     queue tracks a single position per value.
//   - Ties are broken by heap position, not insertion order. Best-first
//     search correctness does not depend on tie direction.
//
// Error handling (sentinel errors):
//
//   - ErrNilScore:   New was given a nil score function.
//   - ErrEmptyQueue: Pop or Peek was called on an empty queue.
//   - ErrNotInQueue: Rescore was given a value not currently held.
//
// Complexity:
//
//   - Push, Pop, Rescore: O(log n) swaps, each swap invoking the score
//     function at most twice.
//   - Peek, Len: O(1).
//
// Thread safety: a Queue is owned by a single goroutine; synchronize
// externally if shared.
package pqueue
