// SPDX-License-Identifier: MIT

// File: options.go
// Role: Graph options and the typed per-entity configurations with their defaults.
// Contract:
//   - NodeConfig/EdgeConfig hold only presentation and payload fields; structural
//     fields (id, endpoints) are arguments of AddNode/AddEdge.
//   - Defaults are applied first, then options in call order.

package core

import "github.com/charmbracelet/log"

// Defaults used when no option overrides them.
const (
	// DefaultSpacing scales raw node positions into world coordinates.
	DefaultSpacing = 10.0

	// DefaultRadius is the node radius read by renderers.
	DefaultRadius = 5.0

	// DefaultEdgeLength is the rest length of an edge.
	DefaultEdgeLength = 1.0

	// DefaultStrokeWidth is the node/edge stroke width read by renderers.
	DefaultStrokeWidth = 1.0
)

// GraphOption configures a Graph in NewGraph.
type GraphOption func(g *Graph)

// WithSpacing sets the world-coordinate scale. Non-positive values are ignored.
func WithSpacing(spacing float64) GraphOption {
	return func(g *Graph) {
		if spacing > 0 {
			g.spacing = spacing
		}
	}
}

// WithLayout attaches a layout engine stepped by Graph.Update.
func WithLayout(l Layout) GraphOption {
	return func(g *Graph) { g.layout = l }
}

// WithNodeFactory overrides the constructor used by AddNode (and AddEdge for
// missing endpoints). A nil factory restores NewNode.
func WithNodeFactory(f NodeFactory) GraphOption {
	return func(g *Graph) {
		if f == nil {
			f = NewNode
		}
		g.nodeFactory = f
	}
}

// WithEdgeFactory overrides the constructor used by AddEdge. A nil factory restores NewEdge.
func WithEdgeFactory(f EdgeFactory) GraphOption {
	return func(g *Graph) {
		if f == nil {
			f = NewEdge
		}
		g.edgeFactory = f
	}
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l *log.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// NodeConfig is the typed configuration of a node.
//
// Defaults: position (0,0), not fixed, Radius 5, StrokeWidth 1, empty styling.
type NodeConfig struct {
	X, Y        float64
	Fixed       bool
	Radius      float64
	Label       string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Data        any
}

// DefaultNodeConfig returns the configuration applied before any NodeOption.
func DefaultNodeConfig() NodeConfig {
	return NodeConfig{Radius: DefaultRadius, StrokeWidth: DefaultStrokeWidth}
}

// NodeOption customizes a NodeConfig.
type NodeOption func(cfg *NodeConfig)

// WithPosition sets the raw starting position.
func WithPosition(x, y float64) NodeOption {
	return func(cfg *NodeConfig) { cfg.X, cfg.Y = x, y }
}

// WithFixed pins the node so layout engines never move it.
func WithFixed() NodeOption {
	return func(cfg *NodeConfig) { cfg.Fixed = true }
}

// WithRadius sets the node radius.
func WithRadius(r float64) NodeOption {
	return func(cfg *NodeConfig) { cfg.Radius = r }
}

// WithLabel sets the display label.
func WithLabel(label string) NodeOption {
	return func(cfg *NodeConfig) { cfg.Label = label }
}

// WithNodeStyle sets fill, stroke color and stroke width.
func WithNodeStyle(fill, stroke string, width float64) NodeOption {
	return func(cfg *NodeConfig) {
		cfg.Fill, cfg.Stroke, cfg.StrokeWidth = fill, stroke, width
	}
}

// WithNodeData attaches a caller payload.
func WithNodeData(data any) NodeOption {
	return func(cfg *NodeConfig) { cfg.Data = data }
}

// WithNodeConfig replaces the whole configuration, e.g. to clone a node's settings.
func WithNodeConfig(c NodeConfig) NodeOption {
	return func(cfg *NodeConfig) { *cfg = c }
}

// EdgeConfig is the typed configuration of an edge.
//
// Defaults: Weight 0, Length 1, StrokeWidth 1, empty Type.
type EdgeConfig struct {
	Weight      float64
	Length      float64
	Type        string
	Stroke      string
	StrokeWidth float64
	Data        any
}

// DefaultEdgeConfig returns the configuration applied before any EdgeOption.
func DefaultEdgeConfig() EdgeConfig {
	return EdgeConfig{Length: DefaultEdgeLength, StrokeWidth: DefaultStrokeWidth}
}

// EdgeOption customizes an EdgeConfig.
type EdgeOption func(cfg *EdgeConfig)

// WithWeight sets the edge weight. Heavier edges are cheaper to traverse.
func WithWeight(w float64) EdgeOption {
	return func(cfg *EdgeConfig) { cfg.Weight = w }
}

// WithLength sets the layout rest length.
func WithLength(l float64) EdgeOption {
	return func(cfg *EdgeConfig) { cfg.Length = l }
}

// WithType sets the relation tag.
func WithType(t string) EdgeOption {
	return func(cfg *EdgeConfig) { cfg.Type = t }
}

// WithEdgeStyle sets stroke color and width.
func WithEdgeStyle(stroke string, width float64) EdgeOption {
	return func(cfg *EdgeConfig) { cfg.Stroke, cfg.StrokeWidth = stroke, width }
}

// WithEdgeData attaches a caller payload.
func WithEdgeData(data any) EdgeOption {
	return func(cfg *EdgeConfig) { cfg.Data = data }
}

// WithEdgeConfig replaces the whole configuration, e.g. to copy an edge's settings.
func WithEdgeConfig(c EdgeConfig) EdgeOption {
	return func(cfg *EdgeConfig) { *cfg = c }
}
