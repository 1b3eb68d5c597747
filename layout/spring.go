// SPDX-License-Identifier: MIT

// Package layout provides force-directed layout engines for core.Graph.
//
// Spring treats node pairs as mutually repulsive charges and edges as springs.
// Each Step:
//
//  1. Every unordered node pair within the repulsion radius pushes apart with
//     force K²/d², applied symmetrically.
//  2. Every edge pulls its endpoints together with force
//     (d² − K²)/K × (1/length) × (Weight×weight×0.5 + 1) / d, with d capped at
//     the repulsion radius.
//  3. Every unfixed node moves by Force × accumulated force, clamped per axis to ±Limit.
//  4. Force accumulators reset to zero.
//
// Coincident nodes (d² < 0.01) are separated by a small offset drawn from
// seeded OpenSimplex noise, so layouts are reproducible for a given Seed.
// The engine never stops on its own; callers step it through core.Graph.Update.
package layout

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/semgraph/core"
)

// Defaults for Config.
const (
	DefaultK         = 4.0
	DefaultForce     = 0.01
	DefaultRepulsion = 50.0
	DefaultWeight    = 10.0
	DefaultLimit     = 0.5
)

const (
	// minD2 is the squared distance under which two nodes count as coincident.
	minD2 = 0.01
	// minLength replaces a zero rest length.
	minLength = 0.01
)

// Config holds the spring parameters.
type Config struct {
	// K is the natural spring length.
	K float64
	// Force damps the accumulated force into a displacement.
	Force float64
	// Repulsion is the radius beyond which nodes stop repelling.
	Repulsion float64
	// Weight scales edge weights in the spring force.
	Weight float64
	// Limit caps the per-step displacement on each axis.
	Limit float64
	// Seed drives the coincident-node offsets.
	Seed int64
}

// DefaultConfig returns the documented defaults with seed 0.
func DefaultConfig() Config {
	return Config{
		K:         DefaultK,
		Force:     DefaultForce,
		Repulsion: DefaultRepulsion,
		Weight:    DefaultWeight,
		Limit:     DefaultLimit,
	}
}

// withDefaults replaces non-positive parameters by their defaults.
// Weight may be 0 to ignore edge weights.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.K <= 0 {
		c.K = d.K
	}
	if c.Force <= 0 {
		c.Force = d.Force
	}
	if c.Repulsion <= 0 {
		c.Repulsion = d.Repulsion
	}
	if c.Weight < 0 {
		c.Weight = d.Weight
	}
	if c.Limit <= 0 {
		c.Limit = d.Limit
	}

	return c
}

// Spring is a force-directed layout engine. It implements core.Layout.
type Spring struct {
	cfg        Config
	iterations int
	noise      opensimplex.Noise
	jitters    int
}

// NewSpring returns a spring engine; non-positive parameters take their defaults.
func NewSpring(cfg Config) *Spring {
	cfg = cfg.withDefaults()

	return &Spring{cfg: cfg, noise: opensimplex.New(cfg.Seed)}
}

// Config returns the effective parameters.
func (s *Spring) Config() Config { return s.cfg }

// Iterations reports how many steps have been taken.
func (s *Spring) Iterations() int { return s.iterations }

// Fresh returns an engine with the same parameters and no state.
func (s *Spring) Fresh() core.Layout { return NewSpring(s.cfg) }

// Step advances the simulation over g by one iteration.
//
// Complexity: O(V² + E).
func (s *Spring) Step(g *core.Graph) {
	s.iterations++
	nodes := g.Nodes()
	for i, n1 := range nodes {
		for _, n2 := range nodes[i+1:] {
			s.repulse(n1, n2)
		}
	}
	for _, e := range g.Edges() {
		length := e.Length
		if length == 0 {
			length = minLength
		}
		s.attract(e.Node1(), e.Node2(), s.cfg.Weight*e.Weight(), 1/length)
	}
	for _, n := range nodes {
		if !n.Fixed {
			n.X += clamp(s.cfg.Force*n.Force.X, s.cfg.Limit)
			n.Y += clamp(s.cfg.Force*n.Force.Y, s.cfg.Limit)
		}
		n.Force = core.Vector{}
	}
}

// distance returns the offset n1→n2, its length and squared length.
// Coincident nodes get a noise offset in [0.1, 0.2) on each axis.
func (s *Spring) distance(n1, n2 *core.Node) (dx, dy, d, d2 float64) {
	dx, dy = n2.X-n1.X, n2.Y-n1.Y
	d2 = dx*dx + dy*dy
	if d2 < minD2 {
		dx = s.jitter(0)*0.1 + 0.1
		dy = s.jitter(1)*0.1 + 0.1
		s.jitters++
		d2 = dx*dx + dy*dy
	}

	return dx, dy, math.Sqrt(d2), d2
}

// jitter maps noise at the current draw to [0,1].
func (s *Spring) jitter(axis float64) float64 {
	v := (s.noise.Eval3(float64(s.jitters)*0.61, axis*7.3, float64(s.iterations)*0.17) + 1) / 2

	return math.Max(0, math.Min(1, v))
}

func (s *Spring) repulse(n1, n2 *core.Node) {
	dx, dy, d, d2 := s.distance(n1, n2)
	if d >= s.cfg.Repulsion {
		return
	}
	f := s.cfg.K * s.cfg.K / d2
	n2.Force.X += f * dx
	n2.Force.Y += f * dy
	n1.Force.X -= f * dx
	n1.Force.Y -= f * dy
}

func (s *Spring) attract(n1, n2 *core.Node, weight, length float64) {
	dx, dy, d, d2 := s.distance(n1, n2)
	d = math.Min(d, s.cfg.Repulsion)
	f := (d2 - s.cfg.K*s.cfg.K) / s.cfg.K * length
	f *= weight*0.5 + 1
	f /= d
	n2.Force.X -= f * dx
	n2.Force.Y -= f * dy
	n1.Force.X += f * dx
	n1.Force.Y += f * dy
}

func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(v, limit))
}
