// SPDX-License-Identifier: MIT

package traverse

import (
	"errors"

	"github.com/katalvlaran/semgraph/core"
)

// ErrGraphNil is returned when a nil graph is passed to a graph-level walk.
var ErrGraphNil = errors.New("traverse: graph is nil")

// Traversable reports whether edge e may be followed out of node n.
// A nil Traversable allows every edge.
type Traversable func(n *core.Node, e *core.Edge) bool

// Visit is called once per reached node; returning true halts the walk.
// A nil Visit never halts.
type Visit func(n *core.Node) bool

// Any allows every edge.
func Any(*core.Node, *core.Edge) bool { return true }

// Directed allows only edges that leave n.
func Directed(n *core.Node, e *core.Edge) bool { return e.Node1() == n }

// Reversed allows only edges that enter n. When n and its neighbor are joined
// both ways, n's link holds the outgoing edge, so the incoming one is read
// from the neighbor's side.
func Reversed(n *core.Node, e *core.Edge) bool {
	if e.Node2() == n {
		return true
	}
	r, ok := e.Other(n).Links().Edge(n.ID())

	return ok && r.Node2() == n
}

func orAny(t Traversable) Traversable {
	if t == nil {
		return Any
	}

	return t
}

func orNever(v Visit) Visit {
	if v == nil {
		return func(*core.Node) bool { return false }
	}

	return v
}

// follow reports whether the link from n to neighbor m may be taken.
func follow(t Traversable, n, m *core.Node) bool {
	e, ok := n.Links().Edge(m.ID())

	return ok && t(n, e)
}
