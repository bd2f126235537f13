// SPDX-License-Identifier: MIT
// Package: pathdist/builder
//
// config.go — internal configuration, defaults and functional options.
//
// Deterministic defaults:
//   - idFn     = index as ID (0, 1, 2, ...)
//   - rng      = nil (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Point ID strategy: index -> ID (deterministic).
	idFn func(int) int64
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for connections.
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     func(i int) int64 { return int64(i) },
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption customizes constructor behavior by mutating the config
// before construction begins.
type BuilderOption func(*builderConfig)

// WithIDOffset shifts every generated point ID by offset, so several
// constructors can share one graph without colliding.
func WithIDOffset(offset int64) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) int64 { return offset + int64(i) }
	}
}

// WithIDScheme sets the point ID generator: index -> ID.
// Panics on nil.
func WithIDScheme(fn func(int) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-connection weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
