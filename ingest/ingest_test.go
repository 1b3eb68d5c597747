// SPDX-License-Identifier: MIT

package ingest_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/centrality"
	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/ingest"
)

const sampleJSON = `{
  "spacing": 2,
  "nodes": [
    {"id": "tree", "x": 1, "y": 2, "fixed": true, "label": "Tree", "radius": 8},
    {"id": "nest", "data": {"kind": "place"}}
  ],
  "edges": [
    {"source": "tree", "target": "nest", "weight": 0.5, "type": "has", "length": 3},
    {"source": "nest", "target": "bird"}
  ]
}`

func TestJSONLoader(t *testing.T) {
	g, err := ingest.JSONLoader{}.Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"tree", "nest", "bird"}, g.NodeIDs())
	assert.Equal(t, 2.0, g.Spacing())

	tree, err := g.Node("tree")
	require.NoError(t, err)
	assert.True(t, tree.Fixed)
	assert.Equal(t, "Tree", tree.Label)
	assert.Equal(t, 8.0, tree.Radius)
	assert.Equal(t, core.Vector{X: 2, Y: 4}, g.Position(tree))

	nest, _ := g.Node("nest")
	assert.Equal(t, core.DefaultRadius, nest.Radius)
	assert.Equal(t, map[string]any{"kind": "place"}, nest.Data)

	e, ok := g.DirectedEdge("tree", "nest")
	require.True(t, ok)
	assert.Equal(t, 0.5, e.Weight())
	assert.Equal(t, "has", e.Type)
	assert.Equal(t, 3.0, e.Length)

	e, ok = g.DirectedEdge("nest", "bird")
	require.True(t, ok)
	assert.Equal(t, core.DefaultEdgeLength, e.Length)
}

func TestJSONLoader_Malformed(t *testing.T) {
	_, err := ingest.JSONLoader{}.Load(strings.NewReader(`{"nodes": [`))
	require.ErrorIs(t, err, ingest.ErrMalformed)

	_, err = ingest.JSONLoader{}.Load(strings.NewReader(`{"nodes": [{"id": ""}]}`))
	require.ErrorIs(t, err, ingest.ErrMalformed)
	require.ErrorIs(t, err, core.ErrEmptyID)

	_, err = ingest.JSONLoader{}.Load(strings.NewReader(`{"edges": [{"source": "a", "target": "a"}]}`))
	require.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestJSON_RoundTripWithScores(t *testing.T) {
	g, err := ingest.JSONLoader{}.Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	_, err = centrality.Betweenness(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ingest.WriteJSON(&buf, g))

	back, err := ingest.JSONLoader{}.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.NodeIDs(), back.NodeIDs())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())

	doc := ingest.DocumentOf(g)
	require.NotNil(t, doc.Nodes[1].Centrality)
	assert.Equal(t, 1.0, *doc.Nodes[1].Centrality)
	assert.Nil(t, doc.Nodes[1].Weight)
}

func TestCSVLoader_Positional(t *testing.T) {
	in := "# comment\na,b,0.5\nb, c\n\nc,a,1\n"
	g, err := ingest.CSVLoader{}.Load(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, g.NodeIDs())
	assert.Equal(t, 3, g.EdgeCount())
	e, ok := g.DirectedEdge("a", "b")
	require.True(t, ok)
	assert.Equal(t, 0.5, e.Weight())
	e, ok = g.DirectedEdge("b", "c")
	require.True(t, ok)
	assert.Equal(t, 0.0, e.Weight())
}

func TestCSVLoader_Header(t *testing.T) {
	in := "relation,To,From,strength\nis-a,animal,bird,0.25\n"
	g, err := ingest.CSVLoader{}.Load(strings.NewReader(in), core.WithSpacing(4))
	require.NoError(t, err)

	e, ok := g.DirectedEdge("bird", "animal")
	require.True(t, ok)
	assert.Equal(t, 0.25, e.Weight())
	assert.Equal(t, "is-a", e.Type)
	assert.Equal(t, 4.0, g.Spacing())
}

func TestCSVLoader_Malformed(t *testing.T) {
	for name, in := range map[string]string{
		"short":    "a\n",
		"weight":   "a,b,heavy\n",
		"selfloop": "a,a\n",
		"quote":    "a,\"b\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ingest.CSVLoader{}.Load(strings.NewReader(in))
			require.ErrorIs(t, err, ingest.ErrMalformed)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o600))

	g, err := ingest.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	path = filepath.Join(dir, "g.JSON")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o600))
	g, err = ingest.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())

	_, err = ingest.LoadFile(filepath.Join(dir, "g.xml"))
	require.ErrorIs(t, err, ingest.ErrUnsupportedFormat)

	_, err = ingest.LoadFile(filepath.Join(dir, "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	l, err := ingest.ForFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, "csv", l.Name())
}
