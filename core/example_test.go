package core_test

import (
	"fmt"

	"github.com/NikitaAnosov/matala-7-algo/core"
)

// ExampleNewGraph builds a small weighted digraph and shows the deterministic
// enumeration order: vertices lexicographic, regardless of insertion order.
func ExampleNewGraph() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("B", "C", 2.5)
	_, _ = g.AddEdge("A", "B", 1)

	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount())
	// Output:
	// [A B C]
	// 2
}

// ExampleGraph_Neighbors shows that a directed edge is visible only from its
// source vertex.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("u", "v", 4)

	uIDs, _ := g.NeighborIDs("u")
	vIDs, _ := g.NeighborIDs("v")
	fmt.Println(uIDs)
	fmt.Println(vIDs)
	// Output:
	// [v]
	// []
}
