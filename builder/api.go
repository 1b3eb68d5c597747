// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from topology
// constructors: paths, cycles, stars, wheels, complete and bipartite graphs,
// grids and seeded random graphs.
//
// Contract:
//   - Determinism: same constructors, options and seed produce identical graphs,
//     node order and edge order included.
//   - Safety: constructors validate parameters and return sentinel errors.
//   - Composition: BuildGraph applies constructors in order on one graph, so
//     overlapping ids merge through the idempotent AddNode/AddEdge.
package builder

import (
	"fmt"

	"github.com/katalvlaran/semgraph/core"
)

// Constructor adds one topology to g using the resolved builder configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts, and applies every
// constructor in order. A constructor error is wrapped as "BuildGraph: %w" and
// returned immediately.
//
// Errors: ErrConstructFailed for a nil constructor, plus constructor sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// link adds u→v with a fresh weight, and v→u as well in bidirectional mode.
func link(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, core.WithWeight(w)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if !cfg.bidirectional {
		return nil
	}
	if _, err := g.AddEdge(v, u, core.WithWeight(w)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
	}

	return nil
}

// addNodes adds ids cfg.idFn(from) … cfg.idFn(to-1).
func addNodes(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	for i := from; i < to; i++ {
		id := cfg.idFn(i)
		if _, err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}
