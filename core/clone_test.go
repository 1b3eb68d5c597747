// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/core"
)

type triple struct {
	from, to string
	weight   float64
}

func triples(g *core.Graph) []triple {
	var out []triple
	for _, e := range g.Edges() {
		out = append(out, triple{e.Node1().ID(), e.Node2().ID(), e.Weight()})
	}
	return out
}

// stubLayout counts steps so Copy/Clear can be checked for a fresh engine.
type stubLayout struct{ steps int }

func (s *stubLayout) Step(*core.Graph) { s.steps++ }
func (s *stubLayout) Iterations() int { return s.steps }
func (s *stubLayout) Fresh() core.Layout { return &stubLayout{} }

func TestGraph_CopyIndependent(t *testing.T) {
	src := core.NewGraph(core.WithSpacing(3), core.WithLayout(&stubLayout{}))
	_, _ = src.AddEdge("a", "b", core.WithWeight(0.25), core.WithType("is-a"))
	_, _ = src.AddEdge("b", "c", core.WithLength(2))
	_, _ = src.AddNode("d", core.WithPosition(1, 1), core.WithFixed())
	require.NoError(t, src.Update(5))
	src.SetWeights(map[string]float64{"a": 1})

	cp := src.Copy()

	// Stage 1: identical ids, edge triples and configuration.
	assert.Equal(t, src.NodeIDs(), cp.NodeIDs())
	assert.Equal(t, triples(src), triples(cp))
	assert.Equal(t, 3.0, cp.Spacing())
	assert.NotEqual(t, src.Key(), cp.Key())
	d, _ := cp.Node("d")
	assert.True(t, d.Fixed)
	e, _ := cp.Edge("a", "b")
	assert.Equal(t, "is-a", e.Type)

	// Stage 2: fresh layout and uncomputed scores.
	assert.Equal(t, 0, cp.Layout().Iterations())
	a, _ := cp.Node("a")
	_, ok := a.Weight()
	assert.False(t, ok)

	// Stage 3: mutating the copy leaves the source alone.
	require.NoError(t, cp.SetEdgeWeight(e, 1))
	require.NoError(t, cp.RemoveNode("c"))
	a.X = 42
	assert.Equal(t, []string{"a", "b", "c", "d"}, src.NodeIDs())
	srcA, _ := src.Node("a")
	assert.Equal(t, 0.0, srcA.X)
	srcE, _ := src.Edge("a", "b")
	assert.Equal(t, 0.25, srcE.Weight())
}

func TestGraph_CopyNodesSubset(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "b")

	sub, err := g.CopyNodes([]string{"c", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, sub.NodeIDs())
	assert.Equal(t, []triple{{"b", "c", 0}, {"c", "b", 0}}, triples(sub))

	_, err = g.CopyNodes([]string{"zz"})
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_Clear(t *testing.T) {
	layout := &stubLayout{}
	g := core.NewGraph(core.WithLayout(layout))
	e, _ := g.AddEdge("a", "b")
	require.NoError(t, g.Update(2))

	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.Layout().Iterations())
	assert.ErrorIs(t, g.SetEdgeWeight(e, 1), core.ErrForeignEdge)
}
