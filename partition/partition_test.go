// SPDX-License-Identifier: MIT

package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/builder"
	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/partition"
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

func TestPartition_TwoTriangles(t *testing.T) {
	g := graphOf(t,
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"},
		[2]string{"x", "y"}, [2]string{"y", "z"}, [2]string{"z", "x"},
	)

	parts, err := partition.Partition(g)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, []string{"a", "b", "c"}, parts[0].NodeIDs())
	assert.Equal(t, []string{"x", "y", "z"}, parts[1].NodeIDs())
	for _, p := range parts {
		assert.Equal(t, 3, p.EdgeCount())
		assert.True(t, partition.IsClique(p))
		assert.NotEqual(t, g.Key(), p.Key())
	}
}

func TestPartition_SizeOrderAndIsolated(t *testing.T) {
	g := graphOf(t, [2]string{"p", "q"}, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"d", "c"})
	_, err := g.AddNode("solo")
	require.NoError(t, err)

	parts, err := partition.Partition(g)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, []string{"a", "b", "c", "d"}, parts[0].NodeIDs())
	assert.Equal(t, []string{"p", "q"}, parts[1].NodeIDs())
	assert.Equal(t, []string{"solo"}, parts[2].NodeIDs())
}

func TestPartition_IgnoresDirection(t *testing.T) {
	// b is reachable from a and c only against edge direction.
	g := graphOf(t, [2]string{"a", "b"}, [2]string{"c", "b"})

	parts, err := partition.Partition(g)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, 3, parts[0].NodeCount())
}

func TestPartition_CopiesAreIndependent(t *testing.T) {
	g := graphOf(t, [2]string{"a", "b"})
	parts, err := partition.Partition(g)
	require.NoError(t, err)

	require.NoError(t, parts[0].RemoveNode("a"))
	assert.True(t, g.HasNode("a"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestPartition_Empty(t *testing.T) {
	parts, err := partition.Partition(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, parts)

	_, err = partition.Partition(nil)
	require.ErrorIs(t, err, partition.ErrGraphNil)
}

func TestClique(t *testing.T) {
	// Triangle a,b,c with a tail c–d.
	g := graphOf(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}, [2]string{"c", "d"})

	c, err := partition.Clique(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, c)

	c, err = partition.Clique(g, "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, c)

	_, err = partition.Clique(g, "zz")
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.False(t, partition.IsClique(g))
	assert.False(t, partition.IsClique(nil))
}

func TestCliques(t *testing.T) {
	g := graphOf(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}, [2]string{"c", "d"})

	cs, err := partition.Cliques(g, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, cs)

	cs, err = partition.Cliques(g, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"c", "d"}}, cs)
}

func TestCliques_Complete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	require.True(t, partition.IsClique(g))

	cs, err := partition.Cliques(g, 0)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Len(t, cs[0], 5)
}
