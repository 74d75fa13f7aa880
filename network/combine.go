// SPDX-License-Identifier: MIT
//
// File: combine.go
// Role: Pure resistor combination laws shared by Connect, Contract and the reducer.

package network

import "math"

// Parallel combines two resistances joining the same node pair:
//
//	w = (w1*w2) / (w1+w2)
//
// The result is symmetric in its arguments and 1/w == 1/w1 + 1/w2.
// Inputs must be positive and finite; Parallel does not check them.
// Complexity: O(1).
func Parallel(w1, w2 float64) float64 {
	return (w1 * w2) / (w1 + w2)
}

// ParallelN merges any number of resistances between one node pair with the
// reciprocal-sum rule 1/Σ(1/w_i). It returns 0 for an empty argument list.
// Complexity: O(len(ws)).
func ParallelN(ws ...float64) float64 {
	if len(ws) == 0 {
		return 0
	}
	if len(ws) == 1 {
		return ws[0]
	}
	var g float64
	for _, w := range ws {
		g += 1 / w
	}

	return 1 / g
}

// Series combines resistances that share exclusive intermediate nodes: Σ w_i.
// Complexity: O(len(ws)).
func Series(ws ...float64) float64 {
	var sum float64
	for _, w := range ws {
		sum += w
	}

	return sum
}

// validWeight reports whether w is usable as a resistance.
func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
