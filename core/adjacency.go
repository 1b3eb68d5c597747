// SPDX-License-Identifier: MIT

// File: adjacency.go
// Role: Adjacency builder and its single-entry cache.
// Contract:
//   - Arc cost is 1 − 0.5×weight plus the heuristic cost, so heavier edges are cheaper.
//   - Undirected mode mirrors each arc; reversed mode flips each edge first.
//   - Stochastic mode divides each row by its sum (rows summing to 0 are kept).
//   - The cache key is (directed, reversed, stochastic, heuristic identity).
//     Every structural change or weight write evicts the entry.
// Determinism:
//   - Rows follow node insertion order; arcs follow edge insertion order.
//     A later edge overwriting an arc keeps the arc's original position.

package core

// Heuristic adds a caller-defined cost to every arc id1→id2.
//
// Heuristics are compared by pointer identity in the adjacency cache: two
// heuristics built from the same function are distinct cache keys. Reuse one
// *Heuristic across calls to share the cached map.
type Heuristic struct {
	fn func(id1, id2 string) float64
}

// NewHeuristic wraps fn. A nil fn costs 0 everywhere.
func NewHeuristic(fn func(id1, id2 string) float64) *Heuristic {
	return &Heuristic{fn: fn}
}

// Cost returns the extra cost of the arc id1→id2. A nil Heuristic costs 0.
func (h *Heuristic) Cost(id1, id2 string) float64 {
	if h == nil || h.fn == nil {
		return 0
	}

	return h.fn(id1, id2)
}

// AdjacencyOptions selects how edges become arcs.
type AdjacencyOptions struct {
	// Directed keeps only the edge direction; otherwise arcs are mirrored.
	Directed bool
	// Reversed flips every edge, measuring incoming instead of outgoing influence.
	Reversed bool
	// Stochastic renormalizes each row to sum to 1.
	Stochastic bool
	// Heuristic adds a per-arc cost; nil for none.
	Heuristic *Heuristic
}

// Arc is one outgoing entry of an adjacency row.
type Arc struct {
	To   string
	Cost float64
}

// Adjacency maps every node id to its outgoing arcs.
// Values returned by Graph.Adjacency are shared with the cache and must be
// treated as read-only.
type Adjacency struct {
	ids  []string
	arcs map[string][]Arc
	pos  map[string]map[string]int
}

type adjacencyKey struct {
	directed   bool
	reversed   bool
	stochastic bool
	heuristic  *Heuristic
}

type cachedAdjacency struct {
	key adjacencyKey
	adj *Adjacency
}

func keyOf(opts AdjacencyOptions) adjacencyKey {
	return adjacencyKey{
		directed:   opts.Directed,
		reversed:   opts.Reversed,
		stochastic: opts.Stochastic,
		heuristic:  opts.Heuristic,
	}
}

// Adjacency returns the adjacency for opts, from the cache when the key matches.
//
// Complexity: O(1) on a hit, O(V + E) on a rebuild.
func (g *Graph) Adjacency(opts AdjacencyOptions) *Adjacency {
	key := keyOf(opts)
	if g.adjacency != nil && g.adjacency.key == key {
		recordAdjacency(true, key)
		return g.adjacency.adj
	}

	adj := g.BuildAdjacency(opts)
	g.adjacency = &cachedAdjacency{key: key, adj: adj}
	recordAdjacency(false, key)
	g.logger.Debug("adjacency rebuilt",
		"nodes", len(g.nodes), "edges", len(g.edges),
		"directed", opts.Directed, "reversed", opts.Reversed, "stochastic", opts.Stochastic)

	return adj
}

// BuildAdjacency builds a fresh adjacency for opts without touching the cache.
func (g *Graph) BuildAdjacency(opts AdjacencyOptions) *Adjacency {
	a := &Adjacency{
		ids:  make([]string, 0, len(g.nodes)),
		arcs: make(map[string][]Arc, len(g.nodes)),
		pos:  make(map[string]map[string]int, len(g.nodes)),
	}
	for _, n := range g.nodes {
		a.ids = append(a.ids, n.id)
		a.arcs[n.id] = nil
		a.pos[n.id] = make(map[string]int)
	}

	for _, e := range g.edges {
		id1, id2 := e.node1.id, e.node2.id
		if opts.Reversed {
			id1, id2 = id2, id1
		}
		cost := 1.0 - 0.5*e.weight + opts.Heuristic.Cost(id1, id2)
		a.set(id1, id2, cost)
		if !opts.Directed {
			a.set(id2, id1, cost)
		}
	}

	if opts.Stochastic {
		for _, id := range a.ids {
			row := a.arcs[id]
			sum := 0.0
			for _, arc := range row {
				sum += arc.Cost
			}
			if sum == 0 {
				continue
			}
			for i := range row {
				row[i].Cost /= sum
			}
		}
	}

	return a
}

func (a *Adjacency) set(id1, id2 string, cost float64) {
	if i, ok := a.pos[id1][id2]; ok {
		a.arcs[id1][i].Cost = cost
		return
	}
	a.pos[id1][id2] = len(a.arcs[id1])
	a.arcs[id1] = append(a.arcs[id1], Arc{To: id2, Cost: cost})
}

// IDs returns the row ids in node insertion order. The slice is a copy.
func (a *Adjacency) IDs() []string {
	out := make([]string, len(a.ids))
	copy(out, a.ids)

	return out
}

// Len returns the number of rows.
func (a *Adjacency) Len() int { return len(a.ids) }

// Has reports whether id has a row.
func (a *Adjacency) Has(id string) bool {
	_, ok := a.arcs[id]

	return ok
}

// Arcs returns the outgoing arcs of id. The slice must not be modified.
func (a *Adjacency) Arcs(id string) []Arc { return a.arcs[id] }

// Cost returns the cost of the arc id1→id2.
func (a *Adjacency) Cost(id1, id2 string) (float64, bool) {
	i, ok := a.pos[id1][id2]
	if !ok {
		return 0, false
	}

	return a.arcs[id1][i].Cost, true
}

// Equal reports whether a and b hold the same rows and arcs in the same order.
func (a *Adjacency) Equal(b *Adjacency) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.ids) != len(b.ids) {
		return false
	}
	for i, id := range a.ids {
		if b.ids[i] != id {
			return false
		}
		ra, rb := a.arcs[id], b.arcs[id]
		if len(ra) != len(rb) {
			return false
		}
		for j := range ra {
			if ra[j] != rb[j] {
				return false
			}
		}
	}

	return true
}
