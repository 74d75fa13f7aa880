// SPDX-License-Identifier: MIT
// Package: ohmgrid/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates the network, resolves
//     cfg, runs cons in order.
//   - Determinism: same inputs, options and constructor order ⇒ identical networks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ohmgrid/network"
)

// Constructor applies a deterministic mutation to nw using the resolved
// configuration. Constructors validate parameters before touching nw and
// return sentinel-wrapped errors instead of panicking.
type Constructor func(nw *network.Network, cfg builderConfig) error

// Build creates an empty network, resolves opts and applies every
// constructor in order. The first constructor error is wrapped with
// "Build: %w" and returned; no partial network is returned.
//
// Complexity: O(len(opts)) plus the cost of the constructors.
func Build(opts []Option, cons ...Constructor) (*network.Network, error) {
	nw := network.New()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(nw, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return nw, nil
}

// BuildLattice is shorthand for Build(opts, Lattice(n)).
func BuildLattice(n int, opts ...Option) (*network.Network, error) {
	return Build(opts, Lattice(n))
}
