// SPDX-License-Identifier: MIT

package laplace

import (
	"fmt"

	"github.com/katalvlaran/ohmgrid/network"
)

// EffectiveResistance returns the resistance between nodes a and b of nw.
// Only the component of b takes part in the solve; parts of the network
// with no resistive path to b carry no current. It is 0 for a == b and
// ErrSingular when a lies outside that component.
func EffectiveResistance(nw *network.Network, a, b network.NodeID) (float64, error) {
	if !nw.HasNode(a) {
		return 0, fmt.Errorf("EffectiveResistance: node %d: %w", a, network.ErrNodeNotFound)
	}
	if !nw.HasNode(b) {
		return 0, fmt.Errorf("EffectiveResistance: node %d: %w", b, network.ErrNodeNotFound)
	}
	if a == b {
		return 0, nil
	}

	comp, err := nw.Component(b)
	if err != nil {
		return 0, fmt.Errorf("EffectiveResistance: %w", err)
	}
	l := newLaplacian(nw, comp)
	if _, ok := l.At[a]; !ok {
		return 0, fmt.Errorf("EffectiveResistance: %d and %d not connected: %w", a, b, ErrSingular)
	}
	ground := l.At[b]
	m := l.grounded(ground)
	if err = lu(m); err != nil {
		return 0, fmt.Errorf("EffectiveResistance: %w", err)
	}

	src := l.At[a]
	if src > ground {
		src--
	}
	rhs := make([]float64, len(m))
	rhs[src] = 1

	return solve(m, rhs)[src], nil
}

// Resistance is EffectiveResistance between the terminal pair of nw.
func Resistance(nw *network.Network) (float64, error) {
	a, b, ok := nw.Terminals()
	if !ok {
		return 0, fmt.Errorf("Resistance: %w", ErrNoTerminals)
	}

	return EffectiveResistance(nw, a, b)
}
