package pqueue_test

import (
	"fmt"

	"github.com/WomB0ComB0/pathfind/pqueue"
)

// ExampleQueue demonstrates draining a queue in ascending score order.
func ExampleQueue() {
	q, _ := pqueue.New(func(v int) float64 { return float64(v) })

	q.Push(3)
	q.Push(1)
	q.Push(2)

	for q.Len() > 0 {
		v, _ := q.Pop()
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

// ExampleQueue_Rescore shows the external-score pattern: scores live in
// a map the caller mutates, and Rescore repairs heap order afterwards.
func ExampleQueue_Rescore() {
	dist := map[string]float64{"a": 4, "b": 7}
	q, _ := pqueue.New(func(id string) float64 { return dist[id] })

	q.Push("a")
	q.Push("b")

	// A shorter route to b is discovered.
	dist["b"] = 1
	_ = q.Rescore("b")

	top, _ := q.Pop()
	fmt.Println(top)
	// Output:
	// b
}
