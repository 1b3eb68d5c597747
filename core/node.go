// SPDX-License-Identifier: MIT

package core

// NewNode is the default NodeFactory.
func NewNode(id string, cfg NodeConfig) *Node {
	return &Node{
		id:          id,
		X:           cfg.X,
		Y:           cfg.Y,
		Fixed:       cfg.Fixed,
		Radius:      cfg.Radius,
		Label:       cfg.Label,
		Fill:        cfg.Fill,
		Stroke:      cfg.Stroke,
		StrokeWidth: cfg.StrokeWidth,
		Data:        cfg.Data,
	}
}

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// Owner returns the key of the graph that owns n, or "" for a detached node.
func (n *Node) Owner() GraphKey { return n.owner }

// Links returns the neighbor index. It is never nil for a node added to a graph.
func (n *Node) Links() *Links { return n.links }

// Degree returns the number of distinct neighbors.
func (n *Node) Degree() int { return n.links.Len() }

// Weight returns the eigenvector weight and whether it has been computed.
func (n *Node) Weight() (float64, bool) { return n.weight.value, n.weight.ok }

// Centrality returns the betweenness centrality and whether it has been computed.
func (n *Node) Centrality() (float64, bool) { return n.centrality.value, n.centrality.ok }

// Config returns the node's current configuration, suitable for WithNodeConfig.
func (n *Node) Config() NodeConfig {
	return NodeConfig{
		X:           n.X,
		Y:           n.Y,
		Fixed:       n.Fixed,
		Radius:      n.Radius,
		Label:       n.Label,
		Fill:        n.Fill,
		Stroke:      n.Stroke,
		StrokeWidth: n.StrokeWidth,
		Data:        n.Data,
	}
}

// String returns the node id.
func (n *Node) String() string { return n.id }
