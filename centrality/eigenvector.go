// SPDX-License-Identifier: MIT

// File: eigenvector.go
// Role: Eigenvector centrality by power iteration.
// Contract:
//   - Start vector is uniform 1/n.
//   - Each iteration: v[a] = Σ over arcs a→b of (0.01 + v0[b] × cost × rating[a]),
//     then v is rescaled to sum to 1.
//   - Stop once Σ|v − v0| < Tolerance × n; after Iterations rounds without
//     convergence, warn and return all zeros.
//   - With Directed and Reversed, a's arcs are its incoming edges, so a node
//     nothing points to scores 0.

package centrality

import (
	"math"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/semgraph/core"
)

// Eigenvector computes eigenvector centrality, stores it on the nodes as their
// weight and returns it.
//
// The defaults iterate over undirected adjacency, where Reversed has no effect.
// Bipartite graphs (paths, stars, trees) oscillate there and score all zeros
// after a warning; pass WithDirected(true) to rank nodes by incoming edges.
//
// Errors: ErrGraphNil, ErrOptionViolation.
func Eigenvector(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	_, span := tracer.Start(o.Ctx, "centrality.Eigenvector")
	defer span.End()

	adj := g.Adjacency(core.AdjacencyOptions{
		Directed:  o.Directed,
		Reversed:  o.Reversed,
		Heuristic: o.Heuristic,
	})
	ids := adj.IDs()
	n := len(ids)

	v0 := make(Scores, n)
	for _, id := range ids {
		v0[id] = 1 / float64(n)
	}

	converged, iter := false, 0
	for iter = 1; iter <= o.Iterations && n > 0; iter++ {
		v := make(Scores, n)
		for _, id := range ids {
			r := o.rating(id)
			for _, arc := range adj.Arcs(id) {
				v[id] += baseline + v0[arc.To]*arc.Cost*r
			}
		}
		rescale(v)

		change := 0.0
		for _, id := range ids {
			change += math.Abs(v[id] - v0[id])
		}
		v0 = v
		if change < float64(n)*o.Tolerance {
			converged = true
			break
		}
	}
	span.SetAttributes(
		attribute.Int("nodes", n),
		attribute.Int("iterations", min(iter, o.Iterations)),
		attribute.Bool("converged", converged || n == 0),
	)

	if !converged && n > 0 {
		o.Logger.Warn("eigenvector centrality did not converge",
			"iterations", o.Iterations, "tolerance", o.Tolerance, "nodes", n)
		for id := range v0 {
			v0[id] = 0
		}
	} else if o.Normalized {
		v0.normalize()
	}
	g.SetWeights(v0)

	return v0, nil
}

// rescale makes the scores sum to 1; an all-zero vector is left as is.
func rescale(v Scores) {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	if sum == 0 {
		return
	}
	for id := range v {
		v[id] /= sum
	}
}
