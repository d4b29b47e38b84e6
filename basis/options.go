// SPDX-License-Identifier: MIT
// Package basis: functional options for stochastic generators.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs; the
//     generators themselves never panic.
//   - Determinism is explicit: Random is reproducible only under WithSeed
//     or WithRand.

package basis

import (
	"math/rand"
	"time"
)

// Option customizes a generator by mutating its config before it runs.
type Option func(*config)

// config carries generator settings; zero fields are resolved in newConfig.
type config struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("basis: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand from seed, locking the generated basis.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newConfig applies opts in order (last wins). Without an RNG option the
// source is seeded from the wall clock.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
