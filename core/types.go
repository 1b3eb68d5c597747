// SPDX-License-Identifier: MIT

// File: types.go
// Role: Node, Edge, Links and Graph, the sentinel errors returned by graph
// operations, and the Layout seam stepped by Graph.Update.
//
// Errors:
//
//	ErrEmptyID       - node id is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - requested edge does not exist.
//	ErrSelfLoop      - an edge from a node to itself was requested.
//	ErrForeignEdge   - an edge or node owned by another graph was passed in.
//	ErrBadFactory    - a node/edge factory returned an unusable value.
//	ErrNoLayout      - Update was called on a graph without a layout engine.

package core

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyID indicates that the provided node id is empty.
	ErrEmptyID = errors.New("core: node id is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge from a node to itself was requested.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrForeignEdge indicates an edge or node that belongs to another graph.
	ErrForeignEdge = errors.New("core: edge belongs to another graph")

	// ErrBadFactory indicates a factory returned nil or a node with the wrong id.
	ErrBadFactory = errors.New("core: factory returned an invalid value")

	// ErrNoLayout indicates Update was called without a layout engine attached.
	ErrNoLayout = errors.New("core: graph has no layout engine")
)

// GraphKey identifies the Graph that owns a node or edge.
type GraphKey string

// Vector is a 2D position or force.
type Vector struct {
	X, Y float64
}

// score is a lazily computed value; ok == false means "not yet computed".
type score struct {
	value float64
	ok    bool
}

// Node is a vertex of a Graph.
//
// X and Y are raw layout coordinates; Graph.Position scales them into world
// coordinates. Force is the layout accumulator and is reset after every step.
// Styling fields are never read by the algorithms.
type Node struct {
	id    string
	owner GraphKey
	links *Links

	X, Y  float64
	Force Vector
	Fixed bool

	Radius      float64
	Label       string
	Fill        string
	Stroke      string
	StrokeWidth float64

	// Data carries a caller payload. It is shared by reference on Copy.
	Data any

	weight     score
	centrality score
}

// Edge connects Node1 to Node2.
//
// The weight is read through Weight and written through Graph.SetEdgeWeight so
// that the owning graph can evict its adjacency cache.
type Edge struct {
	node1, node2 *Node
	owner        GraphKey
	weight       float64

	// Length is the rest length used by layout engines.
	Length float64

	// Type is an opaque relation tag for domain use, e.g. "is-a".
	Type string

	Stroke      string
	StrokeWidth float64

	// Data carries a caller payload. It is shared by reference on Copy.
	Data any
}

// Links is the per-node neighbor index: neighbors in insertion order plus the
// edge used to reach each one.
type Links struct {
	order []*Node
	edges map[string]*Edge
}

// Layout is a simulation that moves node positions one step at a time.
// The layout package provides the spring implementation.
type Layout interface {
	// Step advances the simulation by one iteration over g.
	Step(g *Graph)
	// Iterations reports how many steps have been taken.
	Iterations() int
	// Fresh returns an engine with the same configuration and no state.
	Fresh() Layout
}

// NodeFactory constructs a node for id from a resolved configuration.
// Custom factories let loaders attach domain variants while every algorithm
// keeps working on *Node.
type NodeFactory func(id string, cfg NodeConfig) *Node

// EdgeFactory constructs an edge between two nodes from a resolved configuration.
type EdgeFactory func(n1, n2 *Node, cfg EdgeConfig) *Edge

// Graph owns a set of nodes and edges.
//
// Fields:
//   - index:     id → node.
//   - nodes:     nodes in insertion order.
//   - edges:     edges in insertion order.
//   - adjacency: last built adjacency map and its key; nil once evicted.
//   - scored:    true while any node holds a computed score.
type Graph struct {
	key   GraphKey
	index map[string]*Node
	nodes []*Node
	edges []*Edge

	adjacency *cachedAdjacency
	scored    bool

	spacing     float64
	layout      Layout
	nodeFactory NodeFactory
	edgeFactory EdgeFactory
	logger      *log.Logger
}

// NewGraph creates an empty Graph configured by opts.
//
// Defaults: spacing 10, no layout engine, NewNode/NewEdge factories,
// log.Default() logger.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		key:         GraphKey(uuid.NewString()),
		index:       make(map[string]*Node),
		spacing:     DefaultSpacing,
		nodeFactory: NewNode,
		edgeFactory: NewEdge,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Key returns the graph's owner key. Every node and edge it owns reports the same key.
func (g *Graph) Key() GraphKey { return g.key }

// Spacing returns the world-coordinate scale applied to raw node positions.
func (g *Graph) Spacing() float64 { return g.spacing }

// Layout returns the attached layout engine, or nil.
func (g *Graph) Layout() Layout { return g.layout }

// Logger returns the graph's logger.
func (g *Graph) Logger() *log.Logger { return g.logger }
