// SPDX-License-Identifier: MIT

package topology_test

import (
	"fmt"

	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/topology"
)

// ExampleInsert splices "bird" into the animal→fly relation.
func ExampleInsert() {
	g := core.NewGraph()
	_, _ = g.AddEdge("animal", "fly", core.WithType("eats"))

	if err := topology.Insert(g, "bird", "animal", "fly"); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e, e.Type)
	}
	// Output:
	// animal->bird eats
	// bird->fly eats
}

// ExampleCut removes b from a chain while keeping a connected to c.
func ExampleCut() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")

	_ = topology.Cut(g, "b")
	fmt.Println(g.Edges(), g.HasNode("b"))
	// Output: [a->c] true
}
