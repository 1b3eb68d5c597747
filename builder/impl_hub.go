// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/semgraph/core"
)

// Center is the fixed id of the hub in Star and Wheel.
const Center = "Center"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star builds S_n: Center plus n-1 leaves 1…n-1, edges Center→leaf (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if _, err := g.AddNode(Center); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodStar, Center, err)
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, Center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a Star whose n-1 leaves also form a cycle (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Star(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim)
			if err := link(g, cfg, methodWheel, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
