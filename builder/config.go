// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and passed to every constructor.
//
// Fields:
//   - idFn:          index → node id (default decimal "0","1",…).
//   - rng:           random source for stochastic constructors and weights; nil unless set.
//   - weightFn:      weight of each generated edge (default 0, cost 1 per hop).
//   - bidirectional: emit v→u after every u→v.
type builderConfig struct {
	idFn          IDFn
	rng           *rand.Rand
	weightFn      WeightFn
	bidirectional bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: ZeroWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
