// SPDX-License-Identifier: MIT

// Package centrality scores node importance on a core.Graph.
//
//	Betweenness  Brandes' algorithm over Dijkstra shortest paths: how often a
//	             node lies between two others.
//	Eigenvector  power iteration: a node is important when important nodes
//	             point to it.
//
// Both run over core.Graph.Adjacency costs (1 − 0.5×weight, heavier edges are
// shorter), store their result on the nodes (Node.Centrality / Node.Weight)
// and return Scores keyed by node id.
//
// Eigenvector non-convergence is not an error: a warning is logged and every
// node scores 0.
package centrality

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/semgraph/core"
)

// Sentinel errors for centrality computations.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrNegativeCost is returned when an arc cost is negative.
	ErrNegativeCost = errors.New("centrality: negative arc cost")

	// ErrOptionViolation is returned for out-of-range options.
	ErrOptionViolation = errors.New("centrality: invalid option")
)

var tracer = otel.Tracer("semgraph.centrality")

// Defaults for eigenvector power iteration.
const (
	DefaultIterations = 100
	DefaultTolerance  = 0.0001

	// baseline is added per arc on every iteration.
	baseline = 0.01
)

// Scores maps node ids to a centrality value.
type Scores map[string]float64

// Of returns the score of n, or 0 for nil or unknown nodes.
func (s Scores) Of(n *core.Node) float64 {
	if n == nil {
		return 0
	}

	return s[n.ID()]
}

// Max returns the largest score, or 0 for empty Scores.
func (s Scores) Max() float64 {
	m := 0.0
	for _, v := range s {
		if v > m {
			m = v
		}
	}

	return m
}

// normalize divides every score by the maximum; an all-zero set is left as is.
func (s Scores) normalize() {
	m := s.Max()
	if m == 0 {
		m = 1
	}
	for id := range s {
		s[id] /= m
	}
}

// Options configures both centralities. Fields that one algorithm does not
// use are ignored by it.
type Options struct {
	// Normalized divides scores by their maximum (default true).
	Normalized bool
	// Directed follows edges only in their own direction (default false).
	Directed bool
	// Reversed measures incoming influence in eigenvector centrality (default true).
	// It only matters together with Directed.
	Reversed bool
	// Heuristic adds a per-arc cost.
	Heuristic *core.Heuristic
	// Rating multiplies a node's eigenvector contribution; missing ids use 1.
	Rating map[string]float64
	// Iterations bounds eigenvector power iteration (default 100).
	Iterations int
	// Tolerance stops power iteration once Σ|Δ| < Tolerance × node count (default 1e-4).
	Tolerance float64
	// Logger receives non-convergence warnings (default log.Default()).
	Logger *log.Logger
	// Ctx parents the tracing spans.
	Ctx context.Context
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Normalized: true,
		Reversed:   true,
		Iterations: DefaultIterations,
		Tolerance:  DefaultTolerance,
		Logger:     log.Default(),
		Ctx:        context.Background(),
	}
}

// WithNormalized toggles max-normalization.
func WithNormalized(v bool) Option { return func(o *Options) { o.Normalized = v } }

// WithDirected toggles directed adjacency.
func WithDirected(v bool) Option { return func(o *Options) { o.Directed = v } }

// WithReversed toggles reversed adjacency for eigenvector centrality.
func WithReversed(v bool) Option { return func(o *Options) { o.Reversed = v } }

// WithHeuristic adds h to every arc cost.
func WithHeuristic(h *core.Heuristic) Option { return func(o *Options) { o.Heuristic = h } }

// WithRating sets per-node eigenvector multipliers.
func WithRating(r map[string]float64) Option { return func(o *Options) { o.Rating = r } }

// WithIterations bounds power iteration.
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithTolerance sets the per-node convergence tolerance.
func WithTolerance(t float64) Option { return func(o *Options) { o.Tolerance = t } }

// WithLogger sets the warning sink. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext parents the tracing spans. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Validate checks the numeric bounds.
func (o Options) Validate() error {
	if o.Iterations < 1 {
		return fmt.Errorf("%w: iterations %d < 1", ErrOptionViolation, o.Iterations)
	}
	if o.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance %g <= 0", ErrOptionViolation, o.Tolerance)
	}

	return nil
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.Validate()
}

func (o Options) rating(id string) float64 {
	if r, ok := o.Rating[id]; ok {
		return r
	}

	return 1
}
