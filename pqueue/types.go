// Package pqueue defines the score-function type and sentinel errors
// for the binary min-heap priority queue.
package pqueue

import "errors"

// Sentinel errors returned by Queue operations.
var (
	// ErrNilScore indicates that New was called with a nil score function.
	ErrNilScore = errors.New("pqueue: score function must be non-nil")

	// ErrEmptyQueue indicates that Pop or Peek was called on an empty queue.
	// Callers that prefer to poll should check Len() > 0 first.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrNotInQueue indicates that Rescore was called with a value that is
	// not currently held by the queue.
	ErrNotInQueue = errors.New("pqueue: value not in queue")
)

// ScoreFunc computes the ordering score of a value. It is invoked at
// every heap comparison, so updates to external state backing the score
// (e.g. a distance map mutated by a search) are observed immediately.
//
// The returned score must be totally ordered: NaN is a caller-contract
// violation and leaves the ordering unspecified.
type ScoreFunc[T comparable] func(T) float64
