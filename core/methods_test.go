// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph lifecycle contracts.
//
// Purpose:
//   - Lock in idempotent AddNode/AddEdge semantics and the Links direction rule.
//   - Validate removal bookkeeping on both endpoints.
//   - Anchor lookup errors that name the missing id.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/core"
)

// TestGraph_AddNodeIdempotent VERIFIES that AddNode never duplicates an id.
func TestGraph_AddNodeIdempotent(t *testing.T) {
	g := core.NewGraph()

	// Stage 1: empty ids are rejected.
	_, err := g.AddNode("")
	require.ErrorIs(t, err, core.ErrEmptyID)

	// Stage 2: second call returns the same object and ignores options.
	a1, err := g.AddNode("a", core.WithLabel("first"))
	require.NoError(t, err)
	a2, err := g.AddNode("a", core.WithLabel("second"))
	require.NoError(t, err)
	assert.Same(t, a1, a2)
	assert.Equal(t, "first", a2.Label)
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, g.Key(), a1.Owner())

	// Stage 3: defaults are applied.
	assert.Equal(t, core.DefaultRadius, a1.Radius)
	_, computed := a1.Weight()
	assert.False(t, computed)
}

// TestGraph_AddEdgeLinks VERIFIES the forward/reverse Links rule.
func TestGraph_AddEdgeLinks(t *testing.T) {
	g := core.NewGraph()

	// Stage 1: A→B creates both nodes; B's link to A yields the same edge.
	ab, err := g.AddEdge("A", "B", core.WithWeight(0.5))
	require.NoError(t, err)
	a, _ := g.Node("A")
	b, _ := g.Node("B")
	viaA, ok := a.Links().Edge("B")
	require.True(t, ok)
	viaB, ok := b.Links().Edge("A")
	require.True(t, ok)
	assert.Same(t, ab, viaA)
	assert.Same(t, ab, viaB)

	// Stage 2: repeating A→B returns the same edge.
	again, err := g.AddEdge("A", "B", core.WithWeight(1))
	require.NoError(t, err)
	assert.Same(t, ab, again)
	assert.Equal(t, 0.5, again.Weight())
	assert.Equal(t, 1, g.EdgeCount())

	// Stage 3: B→A is a separate object; each side links to its own outgoing edge.
	ba, err := g.AddEdge("B", "A")
	require.NoError(t, err)
	assert.NotSame(t, ab, ba)
	viaA, _ = a.Links().Edge("B")
	viaB, _ = b.Links().Edge("A")
	assert.Same(t, ab, viaA)
	assert.Same(t, ba, viaB)
	assert.Equal(t, 1, a.Degree())

	// Stage 4: self-loops are refused.
	_, err = g.AddEdge("A", "A")
	require.ErrorIs(t, err, core.ErrSelfLoop)
}

// TestGraph_LookupErrors VERIFIES that lookup failures name the missing id.
func TestGraph_LookupErrors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("x", "y")
	require.NoError(t, err)

	_, err = g.Node("ghost")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Contains(t, err.Error(), `"ghost"`)

	_, err = g.Edge("x", "ghost")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Contains(t, err.Error(), "ghost")

	e, err := g.Edge("y", "x")
	require.NoError(t, err)
	assert.Equal(t, "x", e.Node1().ID())

	_, ok := g.DirectedEdge("y", "x")
	assert.False(t, ok)
}

// TestGraph_RemoveNode VERIFIES incident edges and neighbor Links are cleaned up.
func TestGraph_RemoveNode(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	require.NoError(t, g.RemoveNode("c"))
	assert.Equal(t, []string{"a", "b", "d"}, g.NodeIDs())
	assert.Equal(t, 1, g.EdgeCount())

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	d, _ := g.Node("d")
	assert.False(t, a.Links().Has("c"))
	assert.False(t, b.Links().Has("c"))
	assert.Equal(t, 0, d.Degree())

	err := g.RemoveNode("c")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_RemoveEdge VERIFIES Links are updated and relinked to a surviving reverse edge.
func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	ab, _ := g.AddEdge("a", "b")
	ba, _ := g.AddEdge("b", "a")
	a, _ := g.Node("a")
	b, _ := g.Node("b")

	// Stage 1: removing A→B leaves A linked through B→A.
	require.NoError(t, g.RemoveEdge(ab))
	viaA, ok := a.Links().Edge("b")
	require.True(t, ok)
	assert.Same(t, ba, viaA)
	viaB, _ := b.Links().Edge("a")
	assert.Same(t, ba, viaB)

	// Stage 2: removing the last edge unlinks both sides.
	require.NoError(t, g.RemoveEdge(ba))
	assert.False(t, a.Links().Has("b"))
	assert.False(t, b.Links().Has("a"))
	assert.Equal(t, 0, g.EdgeCount())

	// Stage 3: a removed edge is no longer owned.
	require.ErrorIs(t, g.RemoveEdge(ba), core.ErrForeignEdge)
}

// TestGraph_SetEdgeWeightForeign VERIFIES weight writes are confined to the owner.
func TestGraph_SetEdgeWeightForeign(t *testing.T) {
	g1, g2 := core.NewGraph(), core.NewGraph()
	e, _ := g1.AddEdge("a", "b")

	require.ErrorIs(t, g2.SetEdgeWeight(e, 1), core.ErrForeignEdge)
	require.ErrorIs(t, g1.SetEdgeWeight(nil, 1), core.ErrForeignEdge)
	require.NoError(t, g1.SetEdgeWeight(e, 1))
	assert.Equal(t, 1.0, e.Weight())
}

// TestGraph_ScoresReset VERIFIES stored scores are dropped on topology changes.
func TestGraph_ScoresReset(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	g.SetWeights(map[string]float64{"a": 1, "b": 0.5})
	g.SetCentralities(map[string]float64{"a": 0})

	b, _ := g.Node("b")
	w, ok := b.Weight()
	require.True(t, ok)
	assert.Equal(t, 0.5, w)
	c, ok := b.Centrality()
	require.True(t, ok)
	assert.Equal(t, 0.0, c)

	_, _ = g.AddNode("c")
	_, ok = b.Weight()
	assert.False(t, ok)
	_, ok = b.Centrality()
	assert.False(t, ok)
}

type concept struct{ Gloss string }

// TestGraph_Factories VERIFIES custom factories are used for nodes and edges.
func TestGraph_Factories(t *testing.T) {
	nodeFactory := func(id string, cfg core.NodeConfig) *core.Node {
		cfg.Data = concept{Gloss: "about " + id}
		return core.NewNode(id, cfg)
	}
	edgeFactory := func(n1, n2 *core.Node, cfg core.EdgeConfig) *core.Edge {
		if cfg.Type == "" {
			cfg.Type = "is-related-to"
		}
		return core.NewEdge(n1, n2, cfg)
	}
	g := core.NewGraph(core.WithNodeFactory(nodeFactory), core.WithEdgeFactory(edgeFactory))

	e, err := g.AddEdge("bird", "animal")
	require.NoError(t, err)
	assert.Equal(t, "is-related-to", e.Type)
	assert.Equal(t, concept{Gloss: "about bird"}, e.Node1().Data)

	bad := core.NewGraph(core.WithNodeFactory(func(string, core.NodeConfig) *core.Node { return nil }))
	_, err = bad.AddNode("x")
	assert.True(t, errors.Is(err, core.ErrBadFactory))
}

// TestGraph_DensityAndPrune VERIFIES the density helpers and single-pass pruning.
func TestGraph_DensityAndPrune(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0.0, g.Density())

	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		_, _ = g.AddEdge(p[0], p[1])
	}
	assert.True(t, g.IsComplete())
	assert.True(t, g.IsDense())

	_, _ = g.AddEdge("c", "leaf")
	_, _ = g.AddNode("alone")
	assert.InDelta(t, 0.4, g.Density(), 1e-12)

	g.Prune(0)
	assert.False(t, g.HasNode("alone"))
	g.Prune(1)
	assert.Equal(t, []string{"a", "b", "c"}, g.NodeIDs())
}

// TestGraph_Position VERIFIES world coordinates are raw positions times spacing.
func TestGraph_Position(t *testing.T) {
	g := core.NewGraph(core.WithSpacing(4))
	n, _ := g.AddNode("n", core.WithPosition(1.5, -2))

	assert.Equal(t, core.Vector{X: 6, Y: -8}, g.Position(n))
	require.ErrorIs(t, g.Update(1), core.ErrNoLayout)
}
