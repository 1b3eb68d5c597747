// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Copying and clearing graph instances.
// Contract:
//   - Copies get a fresh owner key, a fresh layout engine and uncomputed scores.
//   - Node and edge configurations are copied by value; Data payloads are shared.

package core

// Copy returns a structurally independent clone of g.
//
// Complexity: O(V + E).
func (g *Graph) Copy() *Graph {
	// Every id exists, so CopyNodes cannot fail on lookup.
	c, err := g.CopyNodes(g.NodeIDs())
	if err != nil {
		g.logger.Error("copy failed", "err", err)
		return g.cloneEmpty()
	}

	return c
}

// CopyNodes returns a new graph holding the given nodes, in the given order,
// plus every edge whose endpoints are both among them.
//
// Duplicate ids are copied once.
//
// Errors: ErrNodeNotFound for an unknown id; factory errors from the target graph.
// Complexity: O(k + E).
func (g *Graph) CopyNodes(ids []string) (*Graph, error) {
	c := g.cloneEmpty()
	for _, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		if _, err = c.AddNode(id, WithNodeConfig(n.Config())); err != nil {
			return nil, err
		}
	}
	for _, e := range g.edges {
		if !c.HasNode(e.node1.id) || !c.HasNode(e.node2.id) {
			continue
		}
		if _, err := c.AddEdge(e.node1.id, e.node2.id, WithEdgeConfig(e.Config())); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Clear removes every node and edge and resets the layout engine.
// Configuration (spacing, factories, logger) is preserved.
func (g *Graph) Clear() {
	for _, n := range g.nodes {
		n.owner = ""
		n.links = newLinks()
	}
	for _, e := range g.edges {
		e.owner = ""
	}
	g.index = make(map[string]*Node)
	g.nodes = nil
	g.edges = nil
	if g.layout != nil {
		g.layout = g.layout.Fresh()
	}
	g.scored = false
	g.invalidate()
}

// cloneEmpty returns a graph with g's configuration and no nodes.
func (g *Graph) cloneEmpty() *Graph {
	opts := []GraphOption{
		WithSpacing(g.spacing),
		WithNodeFactory(g.nodeFactory),
		WithEdgeFactory(g.edgeFactory),
		WithLogger(g.logger),
	}
	if g.layout != nil {
		opts = append(opts, WithLayout(g.layout.Fresh()))
	}

	return NewGraph(opts...)
}
