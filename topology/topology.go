// SPDX-License-Identifier: MIT

// Package topology provides structural edits over core.Graph composed from
// AddEdge and RemoveEdge.
//
// Edges created by an edit copy the configuration of the edge they replace
// (weight, length, type, styling, data). Adding an edge that already exists
// keeps the existing one, so edits never duplicate edges.
//
//   - Unlink(g, a, "") removes every edge touching a; Unlink(g, a, b) only those between a and b.
//   - Redirect(g, a, b) re-points every edge touching a onto b, then unlinks a.
//   - Cut(g, id) bridges the neighbors of id around it, then unlinks id.
//   - Insert(g, id, a, b) splices id into the a–b edge (both directions).
//
// Nodes are never removed: an unlinked node stays in g, isolated.
package topology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/semgraph/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("topology: graph is nil")
	// ErrNoDirectEdge is returned by Insert when a and b are not adjacent.
	ErrNoDirectEdge = errors.New("topology: no direct edge")
)

// Unlink removes the edges between a and b, or every edge touching a when b is "".
//
// Errors: ErrGraphNil; core.ErrNodeNotFound.
// Complexity: O(E²) worst case, O(E) when few edges match.
func Unlink(g *core.Graph, a, b string) error {
	if g == nil {
		return ErrGraphNil
	}
	na, err := g.Node(a)
	if err != nil {
		return err
	}
	var nb *core.Node
	if b != "" {
		if nb, err = g.Node(b); err != nil {
			return err
		}
	}
	for _, e := range touching(g, na) {
		if nb != nil && !e.Touches(nb) {
			continue
		}
		if err = g.RemoveEdge(e); err != nil {
			return err
		}
	}

	return nil
}

// Redirect moves every edge touching a onto b, keeping direction and
// configuration, then unlinks a. Edges between a and b are dropped.
//
// Errors: ErrGraphNil; core.ErrNodeNotFound; core.ErrSelfLoop when a == b.
func Redirect(g *core.Graph, a, b string) error {
	if g == nil {
		return ErrGraphNil
	}
	na, err := g.Node(a)
	if err != nil {
		return err
	}
	nb, err := g.Node(b)
	if err != nil {
		return err
	}
	if na == nb {
		return fmt.Errorf("%w: redirect %q onto itself", core.ErrSelfLoop, a)
	}
	for _, e := range touching(g, na) {
		switch {
		case e.Node1() == na && e.Node2() != nb:
			err = copyEdge(g, e, b, e.Node2().ID())
		case e.Node2() == na && e.Node1() != nb:
			err = copyEdge(g, e, e.Node1().ID(), b)
		}
		if err != nil {
			return err
		}
	}

	return Unlink(g, a, "")
}

// Cut removes id from the flow of the graph: for every edge x→id and every
// other neighbor n of id, x→n is added; for every edge id→y and every other
// neighbor n, n→y is added. id is then unlinked.
//
// Example: a→b, b→c, b→d; Cut(g, "b") leaves a→c, a→d and an isolated b
// (c→d and d→c are added too, since c and d are both neighbors of b).
//
// Errors: ErrGraphNil; core.ErrNodeNotFound.
func Cut(g *core.Graph, id string) error {
	if g == nil {
		return ErrGraphNil
	}
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	neighbors := n.Links().Nodes()
	for _, e := range touching(g, n) {
		for _, m := range neighbors {
			switch {
			case e.Node1() == n && e.Node2() != m:
				err = copyEdge(g, e, m.ID(), e.Node2().ID())
			case e.Node2() == n && e.Node1() != m:
				err = copyEdge(g, e, e.Node1().ID(), m.ID())
			}
			if err != nil {
				return err
			}
		}
	}

	return Unlink(g, id, "")
}

// Insert splices id between a and b: every edge a→b becomes a→id, id→b and
// every edge b→a becomes b→id, id→a. id is created when missing.
//
// Errors: ErrGraphNil; core.ErrNodeNotFound for a or b; ErrNoDirectEdge when
// neither a→b nor b→a exists; core.ErrSelfLoop when id equals a or b.
func Insert(g *core.Graph, id, a, b string) error {
	if g == nil {
		return ErrGraphNil
	}
	if _, err := g.Node(a); err != nil {
		return err
	}
	if _, err := g.Node(b); err != nil {
		return err
	}
	if id == a || id == b {
		return fmt.Errorf("%w: insert %q next to itself", core.ErrSelfLoop, id)
	}

	var found bool
	for _, pair := range [2][2]string{{a, b}, {b, a}} {
		e, ok := g.DirectedEdge(pair[0], pair[1])
		if !ok {
			continue
		}
		found = true
		if err := copyEdge(g, e, pair[0], id); err != nil {
			return err
		}
		if err := copyEdge(g, e, id, pair[1]); err != nil {
			return err
		}
	}
	if !found {
		return fmt.Errorf("%w: between %q and %q", ErrNoDirectEdge, a, b)
	}

	return Unlink(g, a, b)
}

// touching returns the edges incident to n, in graph order.
func touching(g *core.Graph, n *core.Node) []*core.Edge {
	var out []*core.Edge
	for _, e := range g.Edges() {
		if e.Touches(n) {
			out = append(out, e)
		}
	}

	return out
}

// copyEdge adds id1→id2 carrying e's configuration.
func copyEdge(g *core.Graph, e *core.Edge, id1, id2 string) error {
	if _, err := g.AddEdge(id1, id2, core.WithEdgeConfig(e.Config())); err != nil {
		return fmt.Errorf("topology: copy %s as %s->%s: %w", e, id1, id2, err)
	}

	return nil
}
