// Package pathfind is an in-memory toolkit for shortest-path search —
// from a reusable generic A* engine down to the binary heap that
// drives it.
//
// 🚀 What is pathfind?
//
//	A small, focused library that brings together:
//		• pqueue: a generic binary min-heap ordered by a caller-supplied
//		  score function, with O(log n) rescoring
//		• astar:  a generic A* engine over an implicit graph defined by
//		  injected successor/heuristic/goal/cost functions
//		• graphs: dense adjacency-matrix classics — Floyd-Warshall,
//		  Dijkstra, Bellman-Ford — plus a grid-specialized A*
//
// ✨ Why choose pathfind?
//
//   - Minimal API, clear naming — search engines, nothing else
//   - Explicit contracts — sentinel errors, no undefined behavior
//   - Pure Go — no cgo, in-memory only, no I/O of any kind
//   - Extensible — the generic engine knows nothing about your node
//     type beyond map-key comparability
//
// Under the hood, everything is organized under three subpackages:
//
//	astar/  — generic A* search with function-injection polymorphism
//	graphs/ — dense matrix algorithms (APSP, SSSP) & grid A*
//	pqueue/ — score-function binary min-heap shared by both engines
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a four-vertex cycle; Dijkstra from 0 over weights
//	0-1=1, 1-2=2, 2-3=1, 3-0=4 yields distances [0, 1, 3, 4].
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/WomB0ComB0/pathfind
package pathfind
