// SPDX-License-Identifier: MIT

package partition

import (
	"sort"
	"strings"

	"github.com/katalvlaran/semgraph/core"
)

// DefaultCliqueThreshold is the smallest clique size Cliques reports by default.
const DefaultCliqueThreshold = 3

// IsClique reports whether every pair of nodes in g is connected.
func IsClique(g *core.Graph) bool {
	return g != nil && g.IsComplete()
}

// Clique returns the greedy maximal clique grown from id: id first, then every
// node of g, in graph order, that is connected to all members so far.
//
// Errors: ErrGraphNil; core.ErrNodeNotFound.
// Complexity: O(V·k) for a clique of size k.
func Clique(g *core.Graph, id string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := g.Node(id); err != nil {
		return nil, err
	}

	members := []string{id}
	for _, n := range g.Nodes() {
		if n.ID() != id && connectedToAll(n, members) {
			members = append(members, n.ID())
		}
	}

	return members, nil
}

func connectedToAll(n *core.Node, members []string) bool {
	for _, m := range members {
		if !n.Links().Has(m) {
			return false
		}
	}

	return true
}

// Cliques returns the distinct greedy cliques of g holding at least threshold
// nodes. Each clique is sorted by id; the list keeps first-found order.
// A threshold < 1 falls back to DefaultCliqueThreshold.
//
// Errors: ErrGraphNil.
// Complexity: O(V²·k).
func Cliques(g *core.Graph, threshold int) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if threshold < 1 {
		threshold = DefaultCliqueThreshold
	}

	var out [][]string
	seen := make(map[string]struct{})
	for _, n := range g.Nodes() {
		c, err := Clique(g, n.ID())
		if err != nil {
			return nil, err
		}
		if len(c) < threshold {
			continue
		}
		sort.Strings(c)
		key := strings.Join(c, "\x00")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}

	return out, nil
}
