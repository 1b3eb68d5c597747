// SPDX-License-Identifier: MIT

package core

func newLinks() *Links {
	return &Links{edges: make(map[string]*Edge)}
}

// Len returns the number of distinct neighbors. A nil Links is empty.
func (l *Links) Len() int {
	if l == nil {
		return 0
	}

	return len(l.order)
}

// Nodes returns the neighbors in the order they were first linked.
// The returned slice is a copy.
func (l *Links) Nodes() []*Node {
	if l == nil {
		return nil
	}
	out := make([]*Node, len(l.order))
	copy(out, l.order)

	return out
}

// Has reports whether id is a neighbor.
func (l *Links) Has(id string) bool {
	if l == nil {
		return false
	}
	_, ok := l.edges[id]

	return ok
}

// Edge returns the edge used to reach neighbor id.
func (l *Links) Edge(id string) (*Edge, bool) {
	if l == nil {
		return nil, false
	}
	e, ok := l.edges[id]

	return e, ok
}

// link records n as a neighbor reached through e. An existing neighbor keeps
// its position and has its edge replaced.
func (l *Links) link(n *Node, e *Edge) {
	if _, ok := l.edges[n.id]; !ok {
		l.order = append(l.order, n)
	}
	l.edges[n.id] = e
}

// unlink forgets neighbor id.
func (l *Links) unlink(id string) {
	if _, ok := l.edges[id]; !ok {
		return
	}
	delete(l.edges, id)
	for i, n := range l.order {
		if n.id == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}
