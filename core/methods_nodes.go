// SPDX-License-Identifier: MIT

// File: methods_nodes.go
// Role: Node lifecycle: add (idempotent), lookup, enumeration, removal.
// Contract:
//   - AddNode never duplicates an id; the existing node is returned unchanged.
//   - RemoveNode deletes every incident edge and updates both endpoints' Links.
//   - Any structural change evicts the adjacency cache and resets scores.

package core

import "fmt"

// AddNode returns the node with the given id, creating it first if needed.
//
// Behavior:
//   - Existing id: returns that node; opts are ignored.
//   - New id: resolves DefaultNodeConfig + opts, calls the node factory,
//     registers and appends the node, evicts the cache.
//
// Errors: ErrEmptyID, ErrBadFactory.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if n, ok := g.index[id]; ok {
		return n, nil
	}

	cfg := DefaultNodeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := g.nodeFactory(id, cfg)
	if n == nil || n.id != id {
		return nil, fmt.Errorf("%w: node %q", ErrBadFactory, id)
	}
	n.owner = g.key
	n.links = newLinks()
	n.weight, n.centrality = score{}, score{}

	g.index[id] = n
	g.nodes = append(g.nodes, n)
	g.invalidate()

	return n, nil
}

// Node returns the node with the given id.
//
// Errors: ErrNodeNotFound wrapped with the missing id.
func (g *Graph) Node(id string) (*Node, error) {
	n, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n, nil
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Nodes returns the nodes in insertion order. The slice is a copy.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns the node ids in insertion order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.id
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// RemoveNode deletes the node and every edge touching it.
//
// The neighbors' Links forget the removed node. The removed node is detached:
// its Owner becomes "" and its Links empty.
//
// Errors: ErrNodeNotFound.
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id string) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if !e.Touches(n) {
			kept = append(kept, e)
			continue
		}
		e.Other(n).links.unlink(n.id)
		e.owner = ""
	}
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	delete(g.index, id)
	for i, m := range g.nodes {
		if m == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	n.owner = ""
	n.links = newLinks()
	g.invalidate()

	return nil
}
