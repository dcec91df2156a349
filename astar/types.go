// Package astar defines the injected function types, configuration
// options, result shape, and sentinel errors for the generic A* engine.
package astar

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilSuccessors indicates that no successor-generation function was provided.
	ErrNilSuccessors = errors.New("astar: successors function must be non-nil")

	// ErrNilGoal indicates that no goal predicate was provided.
	ErrNilGoal = errors.New("astar: goal predicate must be non-nil")

	// ErrNoPath indicates that the open set was exhausted, or the MaxCost
	// cap was reached, without any node satisfying the goal predicate.
	// It is an expected outcome for unreachable goals, not a failure mode.
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrNegativeCost indicates that the edge-cost function returned a
	// negative value, which breaks the optimality guarantee.
	ErrNegativeCost = errors.New("astar: negative edge cost encountered")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative
	// value; heuristics must be non-negative (and admissible for optimality).
	ErrNegativeHeuristic = errors.New("astar: negative heuristic encountered")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value,
	// which is not meaningful as an exploration cap.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// SuccessorsFunc generates the neighbors reachable from node n.
// It must terminate quickly and may return zero elements.
type SuccessorsFunc[N comparable] func(n N) []N

// HeuristicFunc estimates the remaining cost from node n to a goal.
// It must be non-negative; it must additionally never overestimate the
// true remaining cost (admissibility) for Search to guarantee optimal
// paths.
type HeuristicFunc[N comparable] func(n N) float64

// GoalFunc reports whether node n satisfies the search goal.
// It should be a pure predicate with no side effects.
type GoalFunc[N comparable] func(n N) bool

// CostFunc returns the cost of the edge entering next from prev.
// It must be non-negative.
type CostFunc[N comparable] func(next, prev N) float64

// Result is the outcome of a successful Search.
type Result[N comparable] struct {
	// Path is the ordered node sequence from start to goal, inclusive.
	Path []N

	// Cost is the goal node's accumulated g score: the exact sum of edge
	// costs along Path. It is deliberately not the f score, so it stays
	// correct even when the heuristic is non-zero at the goal.
	Cost float64

	// Expanded is the number of nodes finalized (popped and processed)
	// before the goal was reached.
	Expanded int
}

// Options configures the behavior of Search.
//
// Heuristic – estimate of remaining cost; nil means the zero heuristic,
//
//	degrading the search to uniform-cost (Dijkstra) order.
//
// Cost      – edge-cost function; nil means constant unit cost 1.
// MaxCost   – exploration cap on accumulated g scores; nodes whose g
//
//	exceeds it end the search. Must be ≥ 0. Default +Inf (no cap).
type Options[N comparable] struct {
	Heuristic HeuristicFunc[N] // estimated remaining cost, or nil for zero
	Cost      CostFunc[N]      // edge cost, or nil for unit cost
	MaxCost   float64          // maximum g score to explore
}

// Option represents a functional option for configuring Search.
type Option[N comparable] func(*Options[N])

// WithHeuristic supplies the heuristic guiding the search.
// The heuristic must be non-negative and, for optimality, admissible.
func WithHeuristic[N comparable](h HeuristicFunc[N]) Option[N] {
	return func(o *Options[N]) {
		o.Heuristic = h
	}
}

// WithEdgeCost supplies the edge-cost function.
// Costs must be non-negative; the default is constant 1.
func WithEdgeCost[N comparable](c CostFunc[N]) Option[N] {
	return func(o *Options[N]) {
		o.Cost = c
	}
}

// WithMaxCost caps exploration: once the cheapest open node's g score
// exceeds max, the search stops and reports ErrNoPath.
// Must pass a non-negative value; negative values cause ErrBadMaxCost.
func WithMaxCost[N comparable](max float64) Option[N] {
	return func(o *Options[N]) {
		if max < 0 {
			// Panic to signal invalid configuration early, as functional
			// option constructors cannot return errors.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with the
// defaults used by Search before functional options are applied.
//
// Defaults:
//   - Heuristic: nil (zero heuristic — uniform-cost order).
//   - Cost:      nil (constant unit cost 1).
//   - MaxCost:   +Inf (no exploration cap).
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Heuristic: nil,
		Cost:      nil,
		MaxCost:   math.Inf(1),
	}
}
