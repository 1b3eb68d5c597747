// SPDX-License-Identifier: MIT

package traverse

import "github.com/katalvlaran/semgraph/core"

// dfsWalker encapsulates the mutable state of one depth-first walk.
type dfsWalker struct {
	visit       Visit
	traversable Traversable
	visited     map[string]bool
}

// DepthFirst walks from n depth-first, calling visit on each newly reached node.
// It returns true as soon as visit returns true, false once the walk is exhausted.
//
// Complexity: O(V + E) over the reachable part of the graph.
func DepthFirst(n *core.Node, visit Visit, traversable Traversable) bool {
	if n == nil {
		return false
	}
	w := &dfsWalker{
		visit:       orNever(visit),
		traversable: orAny(traversable),
		visited:     make(map[string]bool),
	}

	return w.traverse(n)
}

// traverse marks n, visits it, then recurses into followable unvisited neighbors.
func (w *dfsWalker) traverse(n *core.Node) bool {
	w.visited[n.ID()] = true
	if w.visit(n) {
		return true
	}
	for _, m := range n.Links().Nodes() {
		if w.visited[m.ID()] || !follow(w.traversable, n, m) {
			continue
		}
		if w.traverse(m) {
			return true
		}
	}

	return false
}

// BreadthFirst walks from n in FIFO order, calling visit on each newly reached node.
// It returns true as soon as visit returns true, false once the walk is exhausted.
//
// Complexity: O(V + E) over the reachable part of the graph.
func BreadthFirst(n *core.Node, visit Visit, traversable Traversable) bool {
	if n == nil {
		return false
	}
	visit, traversable = orNever(visit), orAny(traversable)

	queue := []*core.Node{n}
	queued := map[string]bool{n.ID(): true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visit(cur) {
			return true
		}
		for _, m := range cur.Links().Nodes() {
			if queued[m.ID()] || !follow(traversable, cur, m) {
				continue
			}
			queued[m.ID()] = true
			queue = append(queue, m)
		}
	}

	return false
}

// Reachable returns the ids of every node reachable from n, n included, in BFS order.
func Reachable(n *core.Node, traversable Traversable) []string {
	var ids []string
	BreadthFirst(n, func(m *core.Node) bool {
		ids = append(ids, m.ID())
		return false
	}, traversable)

	return ids
}
