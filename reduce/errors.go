// SPDX-License-Identifier: MIT

package reduce

import "errors"

// Sentinel errors for the reduction engine.
var (
	// ErrStuck indicates both phases stabilized with more than one edge left.
	ErrStuck = errors.New("reduce: no solution found")

	// ErrDisconnected indicates the terminals ended up without any branch
	// between them: the last edge is the still-open probe.
	ErrDisconnected = errors.New("reduce: terminals are disconnected")

	// ErrAsymmetric indicates a fold was refused because the network is not
	// its own mirror image across the fold axis, or the terminals do not sit
	// where the fold needs them.
	ErrAsymmetric = errors.New("reduce: network is not mirror-symmetric")

	// ErrNoTerminals indicates Reduce was given a network without a terminal pair.
	ErrNoTerminals = errors.New("reduce: network has no terminal pair")
)
