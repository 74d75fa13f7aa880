// SPDX-License-Identifier: MIT
// Package: ohmgrid/builder
//
// weight_fn.go — resistance generators for grid edges.
//
// Contract:
//   • A WeightFn is called once per grid edge, in emission order.
//   • rng may be nil (no WithSeed); generators then fall back to
//     DefaultResistance so unseeded builds stay deterministic.
//   • Generators never return a non-positive value; Connect would reject it.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn draws the resistance of the next grid edge.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns value for every edge.
// Panics unless value is positive and finite.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0 and finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max).
// Panics unless 0 < min ≤ max < +Inf.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultResistance
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
