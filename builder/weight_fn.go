// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn yields the weight of the next generated edge. Weights live in
// [0,2) so that adjacency costs (1 − 0.5×weight) stay positive.
type WeightFn func(rng *rand.Rand) float64

// ZeroWeightFn gives every edge weight 0, i.e. cost 1 per hop.
func ZeroWeightFn(_ *rand.Rand) float64 { return 0 }

// ConstantWeightFn gives every edge the same weight. Panics outside [0,2).
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || value >= 2 {
		panic(fmt.Sprintf("builder: ConstantWeightFn: value must be in [0,2), got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws weights uniformly from [lo,hi). Without a random source
// it returns lo. Panics unless 0 ≤ lo ≤ hi < 2.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo || hi >= 2 {
		panic(fmt.Sprintf("builder: UniformWeightFn: require 0 ≤ lo ≤ hi < 2, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}
