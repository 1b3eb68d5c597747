// SPDX-License-Identifier: MIT

package core

import "fmt"

// NewEdge is the default EdgeFactory.
func NewEdge(n1, n2 *Node, cfg EdgeConfig) *Edge {
	return &Edge{
		node1:       n1,
		node2:       n2,
		weight:      cfg.Weight,
		Length:      cfg.Length,
		Type:        cfg.Type,
		Stroke:      cfg.Stroke,
		StrokeWidth: cfg.StrokeWidth,
		Data:        cfg.Data,
	}
}

// Node1 returns the source endpoint.
func (e *Edge) Node1() *Node { return e.node1 }

// Node2 returns the target endpoint.
func (e *Edge) Node2() *Node { return e.node2 }

// Owner returns the key of the graph that owns e.
func (e *Edge) Owner() GraphKey { return e.owner }

// Weight returns the edge weight.
func (e *Edge) Weight() float64 { return e.weight }

// Other returns the endpoint opposite n, or nil if n is not an endpoint.
func (e *Edge) Other(n *Node) *Node {
	switch n {
	case e.node1:
		return e.node2
	case e.node2:
		return e.node1
	}

	return nil
}

// Touches reports whether n is one of the endpoints.
func (e *Edge) Touches(n *Node) bool { return e.node1 == n || e.node2 == n }

// Config returns the edge's current configuration, suitable for WithEdgeConfig.
func (e *Edge) Config() EdgeConfig {
	return EdgeConfig{
		Weight:      e.weight,
		Length:      e.Length,
		Type:        e.Type,
		Stroke:      e.Stroke,
		StrokeWidth: e.StrokeWidth,
		Data:        e.Data,
	}
}

// String formats the edge as "id1->id2".
func (e *Edge) String() string { return fmt.Sprintf("%s->%s", e.node1.id, e.node2.id) }
