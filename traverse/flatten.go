// SPDX-License-Identifier: MIT

package traverse

import "github.com/katalvlaran/semgraph/core"

// flattener holds the visited bookkeeping of one Flatten call.
type flattener struct {
	traversable Traversable
	order       []*core.Node
	budget      map[string]int
}

// Flatten returns n and every node reachable from it within depth hops,
// following only traversable edges, in first-reached order.
//
// A node already reached is expanded again only when it is reached with a
// strictly larger remaining depth than before, so a short detour never
// hides nodes that a direct route would reach.
//
// Depth 0 yields [n]. A nil n yields nil.
// Complexity: O(V + E) per distinct depth budget, bounded by O(depth·(V + E)).
func Flatten(n *core.Node, depth int, traversable Traversable) []*core.Node {
	if n == nil {
		return nil
	}
	f := &flattener{
		traversable: orAny(traversable),
		budget:      make(map[string]int),
	}
	f.expand(n, depth)

	return f.order
}

func (f *flattener) expand(n *core.Node, depth int) {
	if _, seen := f.budget[n.ID()]; !seen {
		f.order = append(f.order, n)
	}
	f.budget[n.ID()] = depth
	if depth < 1 {
		return
	}
	for _, m := range n.Links().Nodes() {
		if d, seen := f.budget[m.ID()]; seen && d >= depth-1 {
			continue
		}
		if follow(f.traversable, n, m) {
			f.expand(m, depth-1)
		}
	}
}

// Fringe returns the closure of depth hops around every leaf (single-neighbor)
// node of g, without duplicates. Fringe(g, 0, nil) returns the leaves themselves.
//
// Errors: ErrGraphNil.
func Fringe(g *core.Graph, depth int, traversable Traversable) ([]*core.Node, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []*core.Node
	seen := make(map[string]struct{})
	for _, n := range g.Nodes() {
		if n.Degree() != 1 {
			continue
		}
		for _, m := range Flatten(n, depth, traversable) {
			if _, dup := seen[m.ID()]; dup {
				continue
			}
			seen[m.ID()] = struct{}{}
			out = append(out, m)
		}
	}

	return out, nil
}
