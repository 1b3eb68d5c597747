// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle: add (idempotent per direction), lookup, weight writes, removal.
// Contract:
//   - A's link to B yields the edge used to reach B from A: A→B if it exists,
//     otherwise the reverse B→A.
//   - Weight writes go through SetEdgeWeight so the adjacency cache is evicted.

package core

import "fmt"

// AddEdge returns the edge id1→id2, creating missing endpoints and the edge as needed.
//
// Behavior:
//   - An existing forward edge id1→id2 is returned unchanged; opts are ignored.
//   - Otherwise a new edge is appended; id1's link to id2 references it, and
//     id2's link to id1 references an existing reverse edge, else the new edge.
//
// Errors: ErrEmptyID, ErrSelfLoop, ErrBadFactory.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id1, id2 string, opts ...EdgeOption) (*Edge, error) {
	if id1 != "" && id1 == id2 {
		return nil, fmt.Errorf("%w: %q", ErrSelfLoop, id1)
	}
	n1, err := g.AddNode(id1)
	if err != nil {
		return nil, err
	}
	n2, err := g.AddNode(id2)
	if err != nil {
		return nil, err
	}

	existing, linked := n1.links.Edge(id2)
	if linked && existing.node1 == n1 {
		return existing, nil
	}

	cfg := DefaultEdgeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := g.edgeFactory(n1, n2, cfg)
	if e == nil || e.node1 != n1 || e.node2 != n2 {
		return nil, fmt.Errorf("%w: edge %q->%q", ErrBadFactory, id1, id2)
	}
	e.owner = g.key
	g.edges = append(g.edges, e)

	n1.links.link(n2, e)
	if linked {
		n2.links.link(n1, existing)
	} else {
		n2.links.link(n1, e)
	}
	g.invalidate()

	return e, nil
}

// Edge returns the edge used to reach id2 from id1, in either direction.
//
// Errors: ErrNodeNotFound, ErrEdgeNotFound (both name the ids).
func (g *Graph) Edge(id1, id2 string) (*Edge, error) {
	n1, err := g.Node(id1)
	if err != nil {
		return nil, err
	}
	e, ok := n1.links.Edge(id2)
	if !ok {
		return nil, fmt.Errorf("%w: %q-%q", ErrEdgeNotFound, id1, id2)
	}

	return e, nil
}

// DirectedEdge returns the edge id1→id2 only, ignoring a reverse edge.
func (g *Graph) DirectedEdge(id1, id2 string) (*Edge, bool) {
	n1, ok := g.index[id1]
	if !ok {
		return nil, false
	}
	e, ok := n1.links.Edge(id2)
	if !ok || e.node1 != n1 {
		return nil, false
	}

	return e, true
}

// Edges returns the edges in insertion order. The slice is a copy.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// SetEdgeWeight writes the weight of e and evicts the adjacency cache.
//
// Errors: ErrForeignEdge if e is nil or not owned by g.
func (g *Graph) SetEdgeWeight(e *Edge, w float64) error {
	if err := g.owns(e); err != nil {
		return err
	}
	e.weight = w
	g.invalidate()

	return nil
}

// RemoveEdge deletes e and updates both endpoints' Links.
//
// A link that referenced e is re-pointed at the surviving reverse edge when
// one exists; otherwise the endpoints stop being neighbors.
//
// Errors: ErrForeignEdge.
// Complexity: O(E).
func (g *Graph) RemoveEdge(e *Edge) error {
	if err := g.owns(e); err != nil {
		return err
	}
	for i, cur := range g.edges {
		if cur == e {
			copy(g.edges[i:], g.edges[i+1:])
			g.edges[len(g.edges)-1] = nil
			g.edges = g.edges[:len(g.edges)-1]
			break
		}
	}

	n1, n2 := e.node1, e.node2
	var reverse *Edge
	if r, ok := n2.links.Edge(n1.id); ok && r != e && r.node1 == n2 {
		reverse = r
	}
	relink := func(from, to *Node) {
		cur, ok := from.links.Edge(to.id)
		if !ok || cur != e {
			return
		}
		if reverse != nil {
			from.links.link(to, reverse)
		} else {
			from.links.unlink(to.id)
		}
	}
	relink(n1, n2)
	relink(n2, n1)

	e.owner = ""
	g.invalidate()

	return nil
}

// owns validates that e belongs to g.
func (g *Graph) owns(e *Edge) error {
	if e == nil || e.owner != g.key {
		return ErrForeignEdge
	}

	return nil
}
