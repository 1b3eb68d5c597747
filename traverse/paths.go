// SPDX-License-Identifier: MIT

package traverse

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/semgraph/core"
)

// pathWalker collects simple paths between two ids.
type pathWalker struct {
	target string
	length int
	onPath map[string]bool
	path   []string
	found  [][]string
}

// Paths returns every simple path from id1 to id2 with at most length nodes,
// following Links in either direction. Shorter paths come first; paths of
// equal length keep discovery order.
//
// A path from a node to itself is [id1]. Unknown ids yield no paths.
//
// Errors: ErrGraphNil.
// Complexity: exponential in length; intended for short bounds.
func Paths(g *core.Graph, id1, id2 string, length int) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	start, err := g.Node(id1)
	if err != nil || !g.HasNode(id2) {
		return nil, nil
	}
	w := &pathWalker{target: id2, length: length, onPath: make(map[string]bool)}
	w.walk(start)
	sort.SliceStable(w.found, func(i, j int) bool { return len(w.found[i]) < len(w.found[j]) })

	return w.found, nil
}

func (w *pathWalker) walk(n *core.Node) {
	if len(w.path) >= w.length {
		return
	}
	w.path = append(w.path, n.ID())
	defer func() { w.path = w.path[:len(w.path)-1] }()

	if n.ID() == w.target {
		w.found = append(w.found, append([]string(nil), w.path...))
		return
	}
	w.onPath[n.ID()] = true
	defer delete(w.onPath, n.ID())
	for _, m := range n.Links().Nodes() {
		if !w.onPath[m.ID()] {
			w.walk(m)
		}
	}
}

// EdgesOf returns the edges linking consecutive ids of path.
//
// Errors: ErrGraphNil, core.ErrNodeNotFound, core.ErrEdgeNotFound.
func EdgesOf(g *core.Graph, path []string) ([]*core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(path) < 2 {
		return nil, nil
	}
	edges := make([]*core.Edge, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		e, err := g.Edge(path[i-1], path[i])
		if err != nil {
			return nil, fmt.Errorf("traverse: path step %d: %w", i, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}
