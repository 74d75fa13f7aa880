// SPDX-License-Identifier: MIT
// Package: ohmgrid/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • weightFn = constant 1 Ω
//   • rng      = nil (pure/deterministic unless seeded)
//   • idFn     = row-major index r*cols + c

package builder

import (
	"math/rand"

	"github.com/katalvlaran/ohmgrid/network"
)

// DefaultResistance is the resistance of a grid edge when none is configured.
const DefaultResistance = 1.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// weightFn draws the resistance of each grid edge.
	weightFn WeightFn
	// rng feeds weightFn; nil unless WithSeed was given.
	rng *rand.Rand
	// idFn maps a grid coordinate to its arena id.
	idFn func(r, c, cols int) network.NodeID
}

// newBuilderConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		weightFn: ConstantWeightFn(DefaultResistance),
		idFn:     RowMajorID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// RowMajorID is the default ID scheme: r*cols + c.
func RowMajorID(r, c, cols int) network.NodeID {
	return network.NodeID(r*cols + c)
}

// weight draws the next edge resistance.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
