// SPDX-License-Identifier: MIT

// Package shortest computes shortest paths over the adjacency costs of a
// core.Graph: single-pair and single-source Dijkstra, and a dense all-pairs
// Floyd–Warshall for small graphs.
//
// Costs follow core.Graph.Adjacency: 1 − 0.5×weight plus an optional
// heuristic, so heavier edges are shorter. An unreachable target is a normal
// result (ok == false or a nil path), not an error.
package shortest

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/semgraph/core"
)

// Sentinel errors for path computations.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrNegativeCost is returned when an arc cost is negative, e.g. for
	// weights above 2 without a compensating heuristic.
	ErrNegativeCost = errors.New("shortest: negative arc cost")
)

var tracer = otel.Tracer("semgraph.shortest")

// Options configures a path computation.
type Options struct {
	// Directed follows edges only in their own direction.
	Directed bool
	// Heuristic adds a per-arc cost. Reuse one value to share the adjacency cache.
	Heuristic *core.Heuristic
	// Ctx parents the tracing span of AllPairs.
	Ctx context.Context
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns undirected, heuristic-free options.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithDirected restricts paths to edge direction.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithHeuristic adds h to every arc cost.
func WithHeuristic(h *core.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithContext sets the parent context for tracing. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) adjacency() core.AdjacencyOptions {
	return core.AdjacencyOptions{Directed: o.Directed, Heuristic: o.Heuristic}
}
