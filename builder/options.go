// SPDX-License-Identifier: MIT
// Package: ohmgrid/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ohmgrid/network"
)

// Option customizes a constructor by mutating builderConfig before use.
type Option func(*builderConfig)

// WithResistance sets the resistance of every grid edge.
// Panics unless r is positive and finite.
func WithResistance(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("builder: WithResistance(r) requires a positive finite r")
	}
	fn := ConstantWeightFn(r)
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightFn draws each grid edge resistance from fn.
// Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithSeed seeds the generator handed to the WeightFn, making stochastic
// weights reproducible.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDScheme overrides the coordinate → NodeID mapping. The function must
// be injective over the grid; Grid reports collisions as ErrConstructFailed.
// Panics on nil.
func WithIDScheme(fn func(r, c, cols int) network.NodeID) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}
