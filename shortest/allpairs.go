// SPDX-License-Identifier: MIT

// File: allpairs.go
// Role: Dense all-pairs distances with a predecessor table (Floyd–Warshall).
// Contract:
//   - Distances live in a flat row-major buffer indexed by node insertion order.
//   - +Inf marks "no path"; the diagonal is 0.
//   - pred[i*n+j] is the node preceding j on the cheapest i→j path, -1 if none.
// Complexity:
//   - Time O(V³), space O(V²). Intended for small graphs only.
// Determinism:
//   - Fixed k→i→j loop order with strict improvement only.

package shortest

import (
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/semgraph/core"
)

// AllPairsResult holds all-pairs distances and the predecessor table.
type AllPairsResult struct {
	ids   []string
	index map[string]int
	dist  []float64
	pred  []int
}

// AllPairs computes the cheapest distance between every ordered pair of nodes.
//
// Errors: ErrGraphNil, ErrNegativeCost.
func AllPairs(g *core.Graph, opts ...Option) (*AllPairsResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	_, span := tracer.Start(o.Ctx, "shortest.AllPairs")
	defer span.End()

	adj := g.Adjacency(o.adjacency())
	res, err := initAllPairs(adj)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	res.floydWarshall()
	span.SetAttributes(
		attribute.Int("nodes", len(res.ids)),
		attribute.Bool("directed", o.Directed),
	)

	return res, nil
}

// initAllPairs fills the buffers with direct arc costs.
func initAllPairs(adj *core.Adjacency) (*AllPairsResult, error) {
	ids := adj.IDs()
	n := len(ids)
	res := &AllPairsResult{
		ids:   ids,
		index: make(map[string]int, n),
		dist:  make([]float64, n*n),
		pred:  make([]int, n*n),
	}
	for i, id := range ids {
		res.index[id] = i
	}
	inf := math.Inf(1)
	for i := range res.dist {
		res.dist[i] = inf
		res.pred[i] = -1
	}
	for i, id := range ids {
		res.dist[i*n+i] = 0
		for _, arc := range adj.Arcs(id) {
			if arc.Cost < 0 {
				return nil, fmt.Errorf("%w: %q->%q = %g", ErrNegativeCost, id, arc.To, arc.Cost)
			}
			j := res.index[arc.To]
			if arc.Cost < res.dist[i*n+j] {
				res.dist[i*n+j] = arc.Cost
				res.pred[i*n+j] = i
			}
		}
	}

	return res, nil
}

// floydWarshall relaxes every pair through every intermediate node in place.
func (r *AllPairsResult) floydWarshall() {
	n := len(r.ids)
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	data, pred := r.dist, r.pred
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					pred[baseI+j] = pred[baseK+j]
				}
			}
		}
	}
}

// IDs returns the node ids in matrix order.
func (r *AllPairsResult) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)

	return out
}

// Distance returns the cheapest u→v distance; ok is false for unknown ids or
// when v is unreachable from u.
func (r *AllPairsResult) Distance(u, v string) (float64, bool) {
	i, okU := r.index[u]
	j, okV := r.index[v]
	if !okU || !okV {
		return math.Inf(1), false
	}
	d := r.dist[i*len(r.ids)+j]

	return d, !math.IsInf(d, 1)
}

// Distances returns every reachable u→v distance as nested maps.
func (r *AllPairsResult) Distances() map[string]map[string]float64 {
	n := len(r.ids)
	out := make(map[string]map[string]float64, n)
	for i, u := range r.ids {
		row := make(map[string]float64)
		for j, v := range r.ids {
			if d := r.dist[i*n+j]; !math.IsInf(d, 1) {
				row[v] = d
			}
		}
		out[u] = row
	}

	return out
}

// Path reconstructs the cheapest u→v path from the predecessor table.
// It returns nil for unknown ids or an unreachable v, and [u] when u == v.
func (r *AllPairsResult) Path(u, v string) []string {
	i, okU := r.index[u]
	j, okV := r.index[v]
	if !okU || !okV {
		return nil
	}
	if i == j {
		return []string{u}
	}
	n := len(r.ids)
	if r.pred[i*n+j] < 0 {
		return nil
	}
	rev := []string{v}
	for cur := j; cur != i; {
		cur = r.pred[i*n+cur]
		rev = append(rev, r.ids[cur])
	}
	path := make([]string, len(rev))
	for k, id := range rev {
		path[len(rev)-1-k] = id
	}

	return path
}
