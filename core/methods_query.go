// SPDX-License-Identifier: MIT

// File: methods_query.go
// Role: Whole-graph queries (density, completeness), pruning, world positions,
// score storage and layout stepping.

package core

import "fmt"

// Density thresholds used by IsDense and IsSparse.
const (
	DenseThreshold  = 0.65
	SparseThreshold = 0.35
)

// Density returns 2E / (V(V-1)), or 0 for fewer than two nodes.
// A pair linked in both directions counts twice.
func (g *Graph) Density() float64 {
	n := float64(len(g.nodes))
	if n < 2 {
		return 0
	}

	return 2 * float64(len(g.edges)) / (n * (n - 1))
}

// IsComplete reports whether the density is exactly 1.
func (g *Graph) IsComplete() bool { return g.Density() == 1.0 }

// IsDense reports whether the density exceeds DenseThreshold.
func (g *Graph) IsDense() bool { return g.Density() > DenseThreshold }

// IsSparse reports whether the density is below SparseThreshold.
func (g *Graph) IsSparse() bool { return g.Density() < SparseThreshold }

// Prune removes every node with depth or fewer neighbors.
// Prune(0) drops isolated nodes; Prune(1) drops leaves as well.
// A single pass is made: nodes that become leaves by the pruning itself stay.
func (g *Graph) Prune(depth int) {
	var doomed []string
	for _, n := range g.nodes {
		if n.links.Len() <= depth {
			doomed = append(doomed, n.id)
		}
	}
	for _, id := range doomed {
		// ids come from g.nodes, so removal cannot miss.
		_ = g.RemoveNode(id)
	}
}

// Position returns n's raw position scaled into world coordinates.
func (g *Graph) Position(n *Node) Vector {
	return Vector{X: n.X * g.spacing, Y: n.Y * g.spacing}
}

// Update steps the attached layout engine the given number of times.
//
// Errors: ErrNoLayout.
func (g *Graph) Update(iterations int) error {
	if g.layout == nil {
		return ErrNoLayout
	}
	for i := 0; i < iterations; i++ {
		g.layout.Step(g)
	}

	return nil
}

// SetWeights stores eigenvector weights on every node. Nodes absent from
// scores receive 0. Scores stay valid until the next structural change.
func (g *Graph) SetWeights(scores map[string]float64) {
	for _, n := range g.nodes {
		n.weight = score{value: scores[n.id], ok: true}
	}
	g.scored = true
}

// SetCentralities stores betweenness centralities on every node, like SetWeights.
func (g *Graph) SetCentralities(scores map[string]float64) {
	for _, n := range g.nodes {
		n.centrality = score{value: scores[n.id], ok: true}
	}
	g.scored = true
}

// invalidate evicts the adjacency cache and resets every stored score.
func (g *Graph) invalidate() {
	if g.adjacency != nil {
		g.logger.Debug("adjacency evicted", "graph", g.key)
	}
	g.adjacency = nil
	if !g.scored {
		return
	}
	for _, n := range g.nodes {
		n.weight, n.centrality = score{}, score{}
	}
	g.scored = false
}

// String summarizes the graph.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(nodes=%d, edges=%d)", len(g.nodes), len(g.edges))
}
