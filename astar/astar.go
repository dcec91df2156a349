// Package astar implements generic A* best-first search over implicit
// graphs defined by injected successor, heuristic, goal and cost
// functions.
//
// Algorithm notes:
//
//   - Standard A*: g[start] = 0, f[start] = h(start); repeatedly pop the
//     minimum-f node, finalize it, and relax its successors.
//   - "Lazy decrease-key": improving a node's g pushes a duplicate heap
//     entry rather than reordering in place; stale copies are skipped on
//     pop via the closed map.
//   - The first finalized node satisfying the goal terminates the search
//     and its parent chain is the returned path.
package astar

import (
	"fmt"

	"github.com/WomB0ComB0/pathfind/pqueue"
)

// Search finds a minimum-cost path from start to any node satisfying
// goal, over the implicit graph generated by successors. Behavior is
// customized through functional options (WithHeuristic, WithEdgeCost,
// WithMaxCost).
//
// Returns:
//
//   - Result with the inclusive start→goal path, its exact g cost, and
//     the number of expanded nodes, when a goal is reachable.
//   - The zero Result and ErrNoPath when the open set is exhausted (or
//     the MaxCost cap is hit) without satisfying goal.
//   - The zero Result and a precondition error (ErrNilSuccessors,
//     ErrNilGoal, ErrNegativeCost, ErrNegativeHeuristic) on contract
//     violations.
//
// Preconditions and validation (in order):
//  1. successors must be non-nil (ErrNilSuccessors).
//  2. goal must be non-nil (ErrNilGoal).
//  3. Heuristic and cost values are checked for negativity as they are
//     observed; the first violation aborts the search.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the discovered subgraph.
//   - Space: O(V + E) for the score maps and the open heap.
func Search[N comparable](
	start N,
	successors SuccessorsFunc[N],
	goal GoalFunc[N],
	opts ...Option[N],
) (Result[N], error) {
	var zero Result[N]

	// 1) Build and validate Options.
	cfg := DefaultOptions[N]()
	var opt Option[N]
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate the successor generator is provided.
	if successors == nil {
		return zero, ErrNilSuccessors
	}

	// 3) Validate the goal predicate is provided.
	if goal == nil {
		return zero, ErrNilGoal
	}

	// 4) Substitute defaults for the optional injected functions.
	//    A nil heuristic degrades A* to uniform-cost (Dijkstra) order;
	//    a nil cost function weighs every edge 1.
	heuristic := cfg.Heuristic
	if heuristic == nil {
		heuristic = func(N) float64 { return 0 }
	}
	cost := cfg.Cost
	if cost == nil {
		cost = func(N, N) float64 { return 1 }
	}

	// 5) Prepare per-call state. All maps default to "+Inf" semantics:
	//    a node absent from gScore has no known route yet.
	r := &runner[N]{
		successors: successors,
		heuristic:  heuristic,
		cost:       cost,
		goal:       goal,
		maxCost:    cfg.MaxCost,
		gScore:     make(map[N]float64),
		fScore:     make(map[N]float64),
		parent:     make(map[N]N),
		closed:     make(map[N]bool),
	}

	// 6) The open set orders nodes by their current f score. The score
	//    is read from the map at every comparison, so f updates are
	//    observed without an explicit decrease-key.
	open, err := pqueue.New(func(n N) float64 { return r.fScore[n] })
	if err != nil {
		return zero, err
	}
	r.open = open

	// 7) Seed the search frontier with the start node.
	if err = r.seed(start); err != nil {
		return zero, err
	}

	// 8) Run the main loop.
	return r.process(start)
}

// runner holds the mutable state for a single Search execution.
type runner[N comparable] struct {
	successors SuccessorsFunc[N] // neighbor generation; caller-injected
	heuristic  HeuristicFunc[N]  // remaining-cost estimate, non-negative
	cost       CostFunc[N]       // edge cost, non-negative
	goal       GoalFunc[N]       // termination predicate
	maxCost    float64           // exploration cap on g scores

	gScore map[N]float64    // node → cheapest known cost from start
	fScore map[N]float64    // node → g + heuristic, the open-set key
	parent map[N]N          // node → predecessor on its cheapest route
	closed map[N]bool       // node → finalized (stale heap copies skipped)
	open   *pqueue.Queue[N] // frontier, keyed by fScore

	expanded int // nodes finalized so far
}

// seed initializes the score maps for start and pushes it onto the
// open heap. Fails if the heuristic is negative at start.
func (r *runner[N]) seed(start N) error {
	h, err := r.estimate(start)
	if err != nil {
		return err
	}
	r.gScore[start] = 0
	r.fScore[start] = h
	r.open.Push(start)

	return nil
}

// process is the core A* loop: pop the minimum-f node, finalize it,
// check the goal, and relax its successors.
func (r *runner[N]) process(start N) (Result[N], error) {
	var zero Result[N]
	for r.open.Len() > 0 {
		// 1) Pop the node with the smallest f score.
		current, err := r.open.Pop()
		if err != nil {
			return zero, err
		}

		// 2) Skip stale duplicates of already-finalized nodes.
		if r.closed[current] {
			continue
		}

		// 3) Stop exploring once the cheapest open route exceeds the cap;
		//    everything still in the heap is at least as expensive.
		if r.gScore[current] > r.maxCost {
			break
		}

		// 4) Finalize: the popped g score is now authoritative.
		r.closed[current] = true
		r.expanded++

		// 5) Goal check on pop, never on generation — popping is what
		//    certifies the route as minimal.
		if r.goal(current) {
			return Result[N]{
				Path:     r.reconstruct(start, current),
				Cost:     r.gScore[current],
				Expanded: r.expanded,
			}, nil
		}

		// 6) Relax every successor of the finalized node.
		if err = r.relax(current); err != nil {
			return zero, err
		}
	}

	// Open set exhausted (or cap reached) without reaching a goal.
	return zero, ErrNoPath
}

// relax attempts to improve the recorded route to each successor of u.
// A strictly better tentative g updates the score maps and parent link
// and pushes a (possibly duplicate) heap entry.
func (r *runner[N]) relax(u N) error {
	var w, tentative, h float64
	var err error
	for _, next := range r.successors(u) {
		// Finalized nodes cannot be improved under non-negative costs.
		if r.closed[next] {
			continue
		}

		// Validate the edge cost as it is observed.
		w = r.cost(next, u)
		if w < 0 {
			return fmt.Errorf("%w: cost(%v, %v) = %v", ErrNegativeCost, next, u, w)
		}

		tentative = r.gScore[u] + w

		// Skip unless strictly better than the best known route. The
		// strict comparison avoids duplicate pushes on equal routes.
		if best, seen := r.gScore[next]; seen && tentative >= best {
			continue
		}

		h, err = r.estimate(next)
		if err != nil {
			return err
		}

		r.gScore[next] = tentative
		r.fScore[next] = tentative + h
		r.parent[next] = u

		// Lazy decrease-key: push a fresh entry and let any stale copy
		// be discarded via the closed map when popped.
		r.open.Push(next)
	}

	return nil
}

// estimate evaluates the heuristic at n, rejecting negative values.
func (r *runner[N]) estimate(n N) (float64, error) {
	h := r.heuristic(n)
	if h < 0 {
		return 0, fmt.Errorf("%w: heuristic(%v) = %v", ErrNegativeHeuristic, n, h)
	}

	return h, nil
}

// reconstruct rebuilds the start→goal path by walking the parent map
// backwards from the goal, then reversing in place.
func (r *runner[N]) reconstruct(start, goalNode N) []N {
	path := []N{goalNode}
	current := goalNode
	for current != start {
		prev, ok := r.parent[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	// Reverse into start→goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
