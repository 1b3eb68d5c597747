// SPDX-License-Identifier: MIT

package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/topology"
)

func graphOf(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	return g
}

func edgeStrings(g *core.Graph) []string {
	out := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, e.String())
	}
	return out
}

func TestUnlink(t *testing.T) {
	g := graphOf(t, [2]string{"a", "b"}, [2]string{"b", "a"}, [2]string{"a", "c"}, [2]string{"b", "c"})

	// Stage 1: only the a–b pair, both directions.
	require.NoError(t, topology.Unlink(g, "a", "b"))
	assert.Equal(t, []string{"a->c", "b->c"}, edgeStrings(g))
	a, _ := g.Node("a")
	assert.False(t, a.Links().Has("b"))

	// Stage 2: everything touching c.
	require.NoError(t, topology.Unlink(g, "c", ""))
	assert.Empty(t, edgeStrings(g))
	assert.Equal(t, 3, g.NodeCount())

	require.ErrorIs(t, topology.Unlink(g, "zz", ""), core.ErrNodeNotFound)
	require.ErrorIs(t, topology.Unlink(g, "a", "zz"), core.ErrNodeNotFound)
	require.ErrorIs(t, topology.Unlink(nil, "a", ""), topology.ErrGraphNil)
}

func TestRedirect(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("x", "a", core.WithWeight(0.5), core.WithType("is-a"))
	require.NoError(t, err)
	_, err = g.AddEdge("a", "y", core.WithLength(3))
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b")
	require.NoError(t, err)

	require.NoError(t, topology.Redirect(g, "a", "b"))
	assert.Equal(t, []string{"x->b", "b->y"}, edgeStrings(g))

	e, ok := g.DirectedEdge("x", "b")
	require.True(t, ok)
	assert.Equal(t, 0.5, e.Weight())
	assert.Equal(t, "is-a", e.Type)
	e, ok = g.DirectedEdge("b", "y")
	require.True(t, ok)
	assert.Equal(t, 3.0, e.Length)

	a, _ := g.Node("a")
	assert.Equal(t, 0, a.Degree())

	require.ErrorIs(t, topology.Redirect(g, "b", "b"), core.ErrSelfLoop)
	require.ErrorIs(t, topology.Redirect(g, "b", "zz"), core.ErrNodeNotFound)
}

func TestCut(t *testing.T) {
	g := graphOf(t, [2]string{"a", "b"}, [2]string{"b", "c"})

	require.NoError(t, topology.Cut(g, "b"))
	assert.Equal(t, []string{"a->c"}, edgeStrings(g))
	assert.True(t, g.HasNode("b"))
	b, _ := g.Node("b")
	assert.Equal(t, 0, b.Degree())
}

func TestCut_Fan(t *testing.T) {
	g := graphOf(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"b", "d"})

	require.NoError(t, topology.Cut(g, "b"))
	assert.Equal(t, []string{"a->c", "a->d", "d->c", "c->d"}, edgeStrings(g))
}

func TestInsert(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", core.WithWeight(0.25))
	require.NoError(t, err)

	require.NoError(t, topology.Insert(g, "m", "a", "b"))
	assert.Equal(t, []string{"a->m", "m->b"}, edgeStrings(g))
	e, ok := g.DirectedEdge("m", "b")
	require.True(t, ok)
	assert.Equal(t, 0.25, e.Weight())
}

func TestInsert_Reverse(t *testing.T) {
	g := graphOf(t, [2]string{"b", "a"})

	require.NoError(t, topology.Insert(g, "m", "a", "b"))
	assert.Equal(t, []string{"b->m", "m->a"}, edgeStrings(g))
}

func TestInsert_NoDirectEdge(t *testing.T) {
	g := graphOf(t, [2]string{"a", "b"}, [2]string{"b", "c"})
	before := edgeStrings(g)

	err := topology.Insert(g, "m", "a", "c")
	require.ErrorIs(t, err, topology.ErrNoDirectEdge)
	assert.Equal(t, before, edgeStrings(g))
	assert.False(t, g.HasNode("m"))

	require.ErrorIs(t, topology.Insert(g, "a", "a", "b"), core.ErrSelfLoop)
}
