// SPDX-License-Identifier: MIT

// Package partition splits a core.Graph into connected components and finds
// cliques inside it.
//
// Partition computes the unconstrained reachable closure of every node,
// merges closures sharing an id until none overlap, and copies each merged
// set out as an independent graph. Results are ordered by descending size;
// ties keep the order of their first node in g.
//
// Cliques are found greedily: Clique(g, id) grows a set from id by adding, in
// graph order, every node connected to all current members. The result is
// maximal but not necessarily maximum.
package partition

import (
	"errors"
	"sort"

	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/traverse"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("partition: graph is nil")

// Partition returns the connected components of g as independent copies,
// largest first. Edge direction is ignored. An empty graph yields no parts.
//
// Errors: ErrGraphNil; copy errors from core.Graph.CopyNodes.
// Complexity: O(V·(V + E)) closures plus O(k²) merging for k candidates.
func Partition(g *core.Graph) ([]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// Stage 1: one closure per node.
	depth := g.NodeCount()
	sets := make([]map[string]struct{}, 0, depth)
	for _, n := range g.Nodes() {
		set := make(map[string]struct{})
		for _, m := range traverse.Flatten(n, depth, traverse.Any) {
			set[m.ID()] = struct{}{}
		}
		sets = append(sets, set)
	}

	// Stage 2: merge overlapping closures until a pass changes nothing.
	for merged := true; merged; {
		merged = false
		for i := range sets {
			if sets[i] == nil {
				continue
			}
			for j := i + 1; j < len(sets); j++ {
				if sets[j] == nil || !overlaps(sets[i], sets[j]) {
					continue
				}
				for id := range sets[j] {
					sets[i][id] = struct{}{}
				}
				sets[j] = nil
				merged = true
			}
		}
	}

	// Stage 3: copy each component with ids in graph order.
	order := g.NodeIDs()
	var parts []*core.Graph
	for _, set := range sets {
		if set == nil {
			continue
		}
		ids := make([]string, 0, len(set))
		for _, id := range order {
			if _, ok := set[id]; ok {
				ids = append(ids, id)
			}
		}
		part, err := g.CopyNodes(ids)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].NodeCount() > parts[j].NodeCount()
	})

	return parts, nil
}

func overlaps(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for id := range a {
		if _, ok := b[id]; ok {
			return true
		}
	}

	return false
}
