// Package astar provides a generic A* best-first search over an
// implicit graph defined entirely by caller-injected functions.
//
// Overview:
//
//   - The engine is parameterized over any comparable node type N and
//     never inspects node structure: nodes are only compared, stored as
//     map keys, and passed back to the caller's functions.
//   - The graph is implicit: a SuccessorsFunc generates neighbors on
//     demand, a GoalFunc decides termination, and optional
//     HeuristicFunc/CostFunc shape the search. With the default zero
//     heuristic the search degrades to uniform-cost (Dijkstra) order;
//     with the default unit cost every edge weighs 1.
//   - The open set is a pqueue.Queue keyed by f = g + h. Improved
//     routes push duplicate entries ("lazy decrease-key"); stale copies
//     are discarded on pop via a closed map, the same strategy a lazy
//     Dijkstra uses.
//
// Contract:
//
//   - The first pop that satisfies the goal is authoritative: the search
//     terminates immediately and returns that node's path and g cost.
//     With a non-negative admissible heuristic this is the optimal path.
//   - Result.Cost is the accumulated g score of the goal, not its f
//     score — the true path cost regardless of the heuristic's value at
//     the goal.
//   - If the start node already satisfies the goal, the result is the
//     single-node path [start] with cost 0.
//
// Preconditions (caller responsibility):
//
//   - The heuristic must be non-negative; a negative value is detected
//     when observed and reported as ErrNegativeHeuristic.
//   - Edge costs must be non-negative; violations are reported as
//     ErrNegativeCost.
//   - On an infinite implicit graph whose goal is unsatisfiable the
//     search neither terminates nor bounds its memory; termination is a
//     caller contract. Use WithMaxCost to bound exploration.
//
// Error handling (sentinel errors):
//
//   - ErrNilSuccessors, ErrNilGoal: required functions missing.
//   - ErrNoPath: the open set was exhausted (or the WithMaxCost cap was
//     reached) without satisfying the goal. This is an expected outcome,
//     not a failure — check with errors.Is.
//   - ErrNegativeCost, ErrNegativeHeuristic: precondition violations.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the discovered portion of the graph,
//     as for lazy-decrease-key Dijkstra, improved in practice by the
//     heuristic's guidance.
//   - Space: O(V) for the g/f/parent/closed maps plus up to O(E) stale
//     heap entries.
//
// Thread safety: a single Search call owns all of its state; concurrent
// Search calls are independent and safe.
package astar
