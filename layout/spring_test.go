// SPDX-License-Identifier: MIT

package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/builder"
	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/layout"
)

func dist(a, b *core.Node) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

func TestNewSpring_Defaults(t *testing.T) {
	s := layout.NewSpring(layout.Config{Seed: 3})
	cfg := s.Config()
	assert.Equal(t, layout.DefaultK, cfg.K)
	assert.Equal(t, layout.DefaultForce, cfg.Force)
	assert.Equal(t, layout.DefaultRepulsion, cfg.Repulsion)
	assert.Equal(t, 0.0, cfg.Weight)
	assert.Equal(t, layout.DefaultLimit, cfg.Limit)
	assert.Equal(t, int64(3), cfg.Seed)
	assert.Equal(t, 0, s.Iterations())
}

func TestSpring_CoincidentNodesSeparate(t *testing.T) {
	g := core.NewGraph(core.WithLayout(layout.NewSpring(layout.DefaultConfig())))
	a, err := g.AddNode("a")
	require.NoError(t, err)
	b, err := g.AddNode("b")
	require.NoError(t, err)

	require.NoError(t, g.Update(1))
	assert.Greater(t, dist(a, b), 0.0)
	assert.Equal(t, core.Vector{}, a.Force)
	assert.Equal(t, core.Vector{}, b.Force)
	assert.Equal(t, 1, g.Layout().Iterations())
}

func TestSpring_EdgePullsTogether(t *testing.T) {
	g := core.NewGraph(core.WithLayout(layout.NewSpring(layout.DefaultConfig())))
	a, _ := g.AddNode("a", core.WithPosition(0, 0))
	b, _ := g.AddNode("b", core.WithPosition(20, 0))
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)

	// Stage 1: spring force dominates at d=20, both ends move by Limit.
	require.NoError(t, g.Update(1))
	assert.InDelta(t, 0.5, a.X, 1e-12)
	assert.InDelta(t, 19.5, b.X, 1e-12)
	assert.InDelta(t, 0.0, a.Y, 1e-12)

	// Stage 2: the gap keeps shrinking.
	before := dist(a, b)
	require.NoError(t, g.Update(5))
	assert.Less(t, dist(a, b), before)
}

func TestSpring_UnlinkedNodesRepel(t *testing.T) {
	g := core.NewGraph(core.WithLayout(layout.NewSpring(layout.DefaultConfig())))
	a, _ := g.AddNode("a", core.WithPosition(0, 0))
	b, _ := g.AddNode("b", core.WithPosition(1, 0))

	require.NoError(t, g.Update(1))
	// f = K²/d² = 16, displacement 0.16 each way, below Limit.
	assert.InDelta(t, -0.16, a.X, 1e-12)
	assert.InDelta(t, 1.16, b.X, 1e-12)
}

func TestSpring_OutsideRadiusIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLayout(layout.NewSpring(layout.DefaultConfig())))
	a, _ := g.AddNode("a", core.WithPosition(0, 0))
	b, _ := g.AddNode("b", core.WithPosition(100, 0))

	require.NoError(t, g.Update(3))
	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, 100.0, b.X)
}

func TestSpring_FixedNodeStays(t *testing.T) {
	g := core.NewGraph(core.WithLayout(layout.NewSpring(layout.DefaultConfig())))
	a, _ := g.AddNode("a", core.WithPosition(0, 0), core.WithFixed())
	b, _ := g.AddNode("b", core.WithPosition(1, 0))
	_, _ = g.AddNode("c", core.WithPosition(0, 1))

	require.NoError(t, g.Update(10))
	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, 0.0, a.Y)
	assert.NotEqual(t, 1.0, b.X)
}

func TestSpring_DisplacementClamped(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.Limit = 0.25
	g := core.NewGraph(core.WithLayout(layout.NewSpring(cfg)))
	a, _ := g.AddNode("a", core.WithPosition(0, 0))
	b, _ := g.AddNode("b", core.WithPosition(0.2, 0))

	// K²/d² = 400 at d=0.2, far beyond the limit.
	require.NoError(t, g.Update(1))
	assert.InDelta(t, -0.25, a.X, 1e-12)
	assert.InDelta(t, 0.45, b.X, 1e-12)
}

func TestSpring_Deterministic(t *testing.T) {
	run := func(seed int64) []core.Vector {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithLayout(layout.NewSpring(layout.Config{Seed: seed}))},
			nil, builder.Wheel(6))
		require.NoError(t, err)
		require.NoError(t, g.Update(25))
		out := make([]core.Vector, 0, g.NodeCount())
		for _, n := range g.Nodes() {
			out = append(out, g.Position(n))
		}
		return out
	}

	assert.Equal(t, run(42), run(42))
}

func TestSpring_FreshOnCopy(t *testing.T) {
	g := core.NewGraph(core.WithLayout(layout.NewSpring(layout.Config{K: 2})))
	_, _ = g.AddEdge("a", "b")
	require.NoError(t, g.Update(4))
	require.Equal(t, 4, g.Layout().Iterations())

	cp := g.Copy()
	require.NotNil(t, cp.Layout())
	assert.Equal(t, 0, cp.Layout().Iterations())
	spring, ok := cp.Layout().(*layout.Spring)
	require.True(t, ok)
	assert.Equal(t, 2.0, spring.Config().K)
}
