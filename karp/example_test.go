package karp_test

import (
	"errors"
	"fmt"

	"github.com/NikitaAnosov/matala-7-algo/core"
	"github.com/NikitaAnosov/matala-7-algo/karp"
)

// ExampleMaxMeanCycle finds the most profitable cycle per edge in a small
// digraph with both positive and negative weights.
func ExampleMaxMeanCycle() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("A", "C", 2)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("B", "A", -4)
	_, _ = g.AddEdge("C", "A", 2)

	cycle, mean, err := karp.MaxMeanCycle(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cycle=%v mean=%.1f\n", cycle, mean)
	// Output:
	// cycle=[C A C] mean=2.0
}

// ExampleMaxMeanCycle_selfLoop shows that a self-loop is a first-class cycle
// of length one (the graph must opt in with WithLoops).
func ExampleMaxMeanCycle_selfLoop() {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("D", "D", 7)
	_, _ = g.AddEdge("E", "D", 1)

	cycle, mean, _ := karp.MaxMeanCycle(g)
	fmt.Printf("cycle=%v mean=%.1f\n", cycle, mean)
	// Output:
	// cycle=[D D] mean=7.0
}

// ExampleMaxMeanCycle_noCycle shows the explicit error on an acyclic graph.
func ExampleMaxMeanCycle_noCycle() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)

	_, _, err := karp.MaxMeanCycle(g)
	fmt.Println(errors.Is(err, karp.ErrNoCycle))
	// Output:
	// true
}

// ExampleMinMeanCycle finds the cheapest cycle per edge in the same graph as
// ExampleMaxMeanCycle.
func ExampleMinMeanCycle() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("A", "C", 2)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("B", "A", -4)
	_, _ = g.AddEdge("C", "A", 2)

	cycle, mean, _ := karp.MinMeanCycle(g)
	fmt.Printf("cycle=%v mean=%.1f\n", cycle, mean)
	// Output:
	// cycle=[A B A] mean=-0.5
}
