// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/katalvlaran/ohmgrid/network"
)

// Extract reads the equivalent resistance off a fully reduced network.
//
// It succeeds only when exactly one edge is left, that edge joins the
// terminal pair and it carries a resistor. Otherwise it returns ErrStuck
// (wrapped with the node and edge counts) or ErrDisconnected when the last
// edge is the untouched probe.
func Extract(nw *network.Network) (float64, error) {
	if nw.EdgeCount() != 1 {
		return 0, fmt.Errorf("Extract: %d nodes, %d edges left: %w", nw.NodeCount(), nw.EdgeCount(), ErrStuck)
	}
	a, b, ok := nw.Terminals()
	if !ok {
		return 0, fmt.Errorf("Extract: %w", ErrNoTerminals)
	}
	e, ok := nw.Edge(a, b)
	if !ok {
		return 0, fmt.Errorf("Extract: last edge does not join terminals %d and %d: %w", a, b, ErrStuck)
	}
	if e.Open {
		return 0, fmt.Errorf("Extract: %w", ErrDisconnected)
	}

	return e.Weight, nil
}
