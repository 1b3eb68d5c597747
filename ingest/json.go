// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/semgraph/core"
)

// Document is the JSON graph format.
//
//	{"spacing": 10,
//	 "nodes": [{"id": "a", "x": 0, "y": 1, "fixed": true, "label": "A"}],
//	 "edges": [{"source": "a", "target": "b", "weight": 0.5, "type": "is-a"}]}
//
// Optional numeric fields left out take the core defaults. A positive
// spacing overrides any spacing passed as a GraphOption.
type Document struct {
	Spacing float64   `json:"spacing,omitempty"`
	Nodes   []NodeDoc `json:"nodes"`
	Edges   []EdgeDoc `json:"edges"`
}

// NodeDoc is one node entry. Weight and Centrality are written by
// DocumentOf when computed and ignored on load.
type NodeDoc struct {
	ID          string   `json:"id"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Fixed       bool     `json:"fixed,omitempty"`
	Radius      *float64 `json:"radius,omitempty"`
	Label       string   `json:"label,omitempty"`
	Fill        string   `json:"fill,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`
	Data        any      `json:"data,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Centrality  *float64 `json:"centrality,omitempty"`
}

// EdgeDoc is one edge entry.
type EdgeDoc struct {
	Source      string   `json:"source"`
	Target      string   `json:"target"`
	Weight      float64  `json:"weight,omitempty"`
	Length      *float64 `json:"length,omitempty"`
	Type        string   `json:"type,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`
	Data        any      `json:"data,omitempty"`
}

// JSONLoader reads Document values.
type JSONLoader struct{}

// Name returns "json".
func (JSONLoader) Name() string { return "json" }

// Load decodes a Document from r and builds it.
//
// Errors: ErrMalformed for undecodable input or an invalid node/edge.
func (JSONLoader) Load(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return doc.Build(opts...)
}

// Build creates a graph holding the document's nodes, then its edges, in order.
//
// Errors: ErrMalformed wrapping core errors (empty ids, self loops).
func (d Document) Build(opts ...core.GraphOption) (*core.Graph, error) {
	if d.Spacing > 0 {
		opts = append(opts, core.WithSpacing(d.Spacing))
	}
	g := core.NewGraph(opts...)
	for i, n := range d.Nodes {
		if _, err := g.AddNode(n.ID, core.WithNodeConfig(n.config())); err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", ErrMalformed, i, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.Source, e.Target, core.WithEdgeConfig(e.config())); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s->%s): %w", ErrMalformed, i, e.Source, e.Target, err)
		}
	}

	return g, nil
}

func (n NodeDoc) config() core.NodeConfig {
	cfg := core.DefaultNodeConfig()
	cfg.X, cfg.Y = n.X, n.Y
	cfg.Fixed = n.Fixed
	if n.Radius != nil {
		cfg.Radius = *n.Radius
	}
	cfg.Label = n.Label
	cfg.Fill = n.Fill
	cfg.Stroke = n.Stroke
	if n.StrokeWidth != nil {
		cfg.StrokeWidth = *n.StrokeWidth
	}
	cfg.Data = n.Data

	return cfg
}

func (e EdgeDoc) config() core.EdgeConfig {
	cfg := core.DefaultEdgeConfig()
	cfg.Weight = e.Weight
	if e.Length != nil {
		cfg.Length = *e.Length
	}
	cfg.Type = e.Type
	cfg.Stroke = e.Stroke
	if e.StrokeWidth != nil {
		cfg.StrokeWidth = *e.StrokeWidth
	}
	cfg.Data = e.Data

	return cfg
}

// DocumentOf snapshots g. Positions are raw (unscaled); computed scores are included.
func DocumentOf(g *core.Graph) Document {
	doc := Document{
		Spacing: g.Spacing(),
		Nodes:   make([]NodeDoc, 0, g.NodeCount()),
		Edges:   make([]EdgeDoc, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		cfg := n.Config()
		nd := NodeDoc{
			ID:          n.ID(),
			X:           cfg.X,
			Y:           cfg.Y,
			Fixed:       cfg.Fixed,
			Radius:      &cfg.Radius,
			Label:       cfg.Label,
			Fill:        cfg.Fill,
			Stroke:      cfg.Stroke,
			StrokeWidth: &cfg.StrokeWidth,
			Data:        cfg.Data,
		}
		if w, ok := n.Weight(); ok {
			nd.Weight = &w
		}
		if c, ok := n.Centrality(); ok {
			nd.Centrality = &c
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, e := range g.Edges() {
		cfg := e.Config()
		doc.Edges = append(doc.Edges, EdgeDoc{
			Source:      e.Node1().ID(),
			Target:      e.Node2().ID(),
			Weight:      cfg.Weight,
			Length:      &cfg.Length,
			Type:        cfg.Type,
			Stroke:      cfg.Stroke,
			StrokeWidth: &cfg.StrokeWidth,
			Data:        cfg.Data,
		})
	}

	return doc
}

// WriteJSON encodes DocumentOf(g) to w, indented.
func WriteJSON(w io.Writer, g *core.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(DocumentOf(g))
}
