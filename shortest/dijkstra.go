// SPDX-License-Identifier: MIT

// File: dijkstra.go
// Role: Single-pair and single-source Dijkstra over core.Adjacency.
// Complexity:
//   - Each node is settled at most once; each arc may push one heap entry.
//   - Time O((V + E) log V), space O(V + E).
// Determinism:
//   - Heap ties are broken by push order; arcs are scanned in adjacency order,
//     which follows edge insertion order.

package shortest

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/semgraph/core"
)

// ShortestPath returns the cheapest node sequence from source to target, both included.
//
// Returns ok == false (and a nil path) when target is unreachable.
//
// Errors: ErrGraphNil, core.ErrNodeNotFound, ErrNegativeCost.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if _, err := g.Node(source); err != nil {
		return nil, false, err
	}
	if _, err := g.Node(target); err != nil {
		return nil, false, err
	}
	o := resolve(opts)

	r := newRunner(g.Adjacency(o.adjacency()))
	r.target = target
	if err := r.run(source); err != nil {
		return nil, false, err
	}
	if !r.visited[target] {
		return nil, false, nil
	}

	return r.pathTo(target), true, nil
}

// ShortestPaths returns, for every node, the cheapest path from source.
// Unreachable nodes map to a nil path; the source maps to [source].
//
// Errors: ErrGraphNil, core.ErrNodeNotFound, ErrNegativeCost.
func ShortestPaths(g *core.Graph, source string, opts ...Option) (map[string][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := g.Node(source); err != nil {
		return nil, err
	}
	o := resolve(opts)

	adj := g.Adjacency(o.adjacency())
	r := newRunner(adj)
	if err := r.run(source); err != nil {
		return nil, err
	}

	out := make(map[string][]string, adj.Len())
	for _, id := range adj.IDs() {
		if r.visited[id] {
			out[id] = r.pathTo(id)
		} else {
			out[id] = nil
		}
	}

	return out, nil
}

// runner encapsulates the mutable state of one Dijkstra run.
type runner struct {
	adj     *core.Adjacency
	target  string // "" runs to exhaustion
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     int
}

func newRunner(adj *core.Adjacency) *runner {
	n := adj.Len()
	return &runner{
		adj:     adj,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// run settles nodes from source until the heap drains or target is settled.
func (r *runner) run(source string) error {
	heap.Init(&r.pq)
	r.dist[source] = 0
	r.push(source, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			// Stale entry left by a later improvement.
			continue
		}
		r.visited[u] = true
		if u == r.target {
			return nil
		}
		if err := r.relax(u, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax improves every unsettled neighbor of u reachable at a lower cost.
func (r *runner) relax(u string, du float64) error {
	for _, arc := range r.adj.Arcs(u) {
		if arc.Cost < 0 {
			return fmt.Errorf("%w: %q->%q = %g", ErrNegativeCost, u, arc.To, arc.Cost)
		}
		if r.visited[arc.To] {
			continue
		}
		nd := du + arc.Cost
		if d, ok := r.dist[arc.To]; ok && nd >= d {
			continue
		}
		r.dist[arc.To] = nd
		r.prev[arc.To] = u
		r.push(arc.To, nd)
	}

	return nil
}

func (r *runner) push(id string, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// pathTo walks predecessors back from id to the source.
func (r *runner) pathTo(id string) []string {
	var rev []string
	for cur, ok := id, true; ok; cur, ok = r.prev[cur] {
		rev = append(rev, cur)
	}
	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   string
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem by (dist, seq), used with lazy decrease-key:
// improved distances push a new entry and stale entries are skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
