// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/semgraph/core"
)

// Metric selects which stored node score Ranked orders by.
type Metric int

const (
	// ByWeight orders by eigenvector weight.
	ByWeight Metric = iota
	// ByCentrality orders by betweenness centrality.
	ByCentrality
)

// Ranked returns the nodes whose score is at least threshold, highest first.
// Ties keep node insertion order.
//
// Scores already stored on the nodes are reused; if any node lacks one, the
// metric is computed for the whole graph with opts first.
//
// Errors: ErrGraphNil, ErrOptionViolation, and errors of the computation.
func Ranked(g *core.Graph, by Metric, threshold float64, opts ...Option) ([]*core.Node, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	read := func(n *core.Node) (float64, bool) { return n.Weight() }
	compute := Eigenvector
	switch by {
	case ByWeight:
	case ByCentrality:
		read = func(n *core.Node) (float64, bool) { return n.Centrality() }
		compute = Betweenness
	default:
		return nil, fmt.Errorf("%w: metric %d", ErrOptionViolation, by)
	}

	nodes := g.Nodes()
	for _, n := range nodes {
		if _, ok := read(n); !ok {
			if _, err := compute(g, opts...); err != nil {
				return nil, err
			}
			break
		}
	}

	score := func(n *core.Node) float64 {
		v, _ := read(n)
		return v
	}
	out := make([]*core.Node, 0, len(nodes))
	for _, n := range nodes {
		if score(n) >= threshold {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return score(out[i]) > score(out[j]) })

	return out, nil
}
