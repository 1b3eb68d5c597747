// SPDX-License-Identifier: MIT

// File: betweenness.go
// Role: Brandes betweenness over weighted shortest paths.
// Contract:
//   - Forward pass per source: Dijkstra tracking sigma (number of shortest
//     paths, 1 at the source) and predecessor lists. An equal-cost alternative
//     adds to both instead of replacing them.
//   - Backward pass over the settle order (non-increasing distance):
//     delta[v] += sigma[v]/sigma[w] × (1 + delta[w]).
//   - Undirected graphs count every pair in both directions; normalization
//     by the maximum removes the factor.
// Complexity:
//   - Time O(V·(V + E) log V), space O(V + E).

package centrality

import (
	"container/heap"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/semgraph/core"
)

// tieEpsilon is the distance difference under which two paths are equally short.
const tieEpsilon = 1e-9

// Betweenness computes the betweenness centrality of every node, stores it on
// the nodes and returns it.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrNegativeCost.
func Betweenness(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	_, span := tracer.Start(o.Ctx, "centrality.Betweenness", trace.WithAttributes(
		attribute.Int("nodes", g.NodeCount()),
		attribute.Bool("directed", o.Directed),
	))
	defer span.End()

	adj := g.Adjacency(core.AdjacencyOptions{Directed: o.Directed, Heuristic: o.Heuristic})
	cb := make(Scores, adj.Len())
	for _, id := range adj.IDs() {
		cb[id] = 0
	}
	for _, s := range adj.IDs() {
		fw, err := forward(adj, s)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		fw.accumulate(s, cb)
	}
	if o.Normalized {
		cb.normalize()
	}
	g.SetCentralities(cb)

	return cb, nil
}

// brandesPass holds the result of one forward pass.
type brandesPass struct {
	stack []string // settle order, non-decreasing distance
	sigma map[string]float64
	pred  map[string][]string
}

// forward runs the Dijkstra phase from s.
func forward(adj *core.Adjacency, s string) (*brandesPass, error) {
	n := adj.Len()
	fw := &brandesPass{
		stack: make([]string, 0, n),
		sigma: map[string]float64{s: 1},
		pred:  make(map[string][]string, n),
	}
	dist := map[string]float64{s: 0}
	settled := make(map[string]bool, n)

	pq := &distPQ{}
	heap.Push(pq, &distItem{id: s, dist: 0})
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*distItem)
		v := item.id
		if settled[v] {
			continue
		}
		settled[v] = true
		fw.stack = append(fw.stack, v)

		for _, arc := range adj.Arcs(v) {
			if arc.Cost < 0 {
				return nil, fmt.Errorf("%w: %q->%q = %g", ErrNegativeCost, v, arc.To, arc.Cost)
			}
			w := arc.To
			if settled[w] {
				continue
			}
			nd := dist[v] + arc.Cost
			dw, seen := dist[w]
			switch {
			case !seen || nd < dw-tieEpsilon:
				dist[w] = nd
				fw.sigma[w] = fw.sigma[v]
				fw.pred[w] = []string{v}
				heap.Push(pq, &distItem{id: w, dist: nd, seq: pq.next()})
			case math.Abs(nd-dw) <= tieEpsilon:
				fw.sigma[w] += fw.sigma[v]
				fw.pred[w] = append(fw.pred[w], v)
			}
		}
	}

	return fw, nil
}

// accumulate runs the backward phase, adding dependencies of source s into cb.
func (fw *brandesPass) accumulate(s string, cb Scores) {
	delta := make(map[string]float64, len(fw.stack))
	for i := len(fw.stack) - 1; i >= 0; i-- {
		w := fw.stack[i]
		for _, v := range fw.pred[w] {
			delta[v] += fw.sigma[v] / fw.sigma[w] * (1 + delta[w])
		}
		if w != s {
			cb[w] += delta[w]
		}
	}
}
