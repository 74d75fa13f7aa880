// SPDX-License-Identifier: MIT
// Package: ohmgrid/builder
//
// impl_probe.go — implementation of Probe(a, b).
//
// The probe edge marks the terminal pair. It starts open (no resistance) so
// it never adds a branch of its own; the first resistance merged into it
// during reduction becomes its weight.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ohmgrid/network"
)

const methodProbe = "Probe"

// Probe returns a Constructor that records a and b as terminals and joins
// them with the open probe edge. Both coordinates must already exist.
func Probe(a, b network.Coord) Constructor {
	return func(nw *network.Network, _ builderConfig) error {
		ia, ok := nodeAt(nw, a)
		if !ok {
			return fmt.Errorf("%s: %s: %w", methodProbe, a, ErrBadCoord)
		}
		ib, ok := nodeAt(nw, b)
		if !ok {
			return fmt.Errorf("%s: %s: %w", methodProbe, b, ErrBadCoord)
		}
		if err := nw.SetTerminals(ia, ib); err != nil {
			return fmt.Errorf("%s: %w", methodProbe, err)
		}

		return nil
	}
}
