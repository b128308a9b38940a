// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • keyOffset = 0

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator, called once per emitted edge.
	weightFn WeightFn
	// Added to every generated index to form the vertex key.
	keyOffset int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		weightFn:  DefaultWeightFn,
		keyOffset: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// key maps a constructor-local index to a vertex key.
func (c builderConfig) key(i int) int { return c.keyOffset + i }

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }
