// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/ohmgrid/network"
)

// validateMin ensures got ≥ min, wrapping ErrTooSmall with method context.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d (must be ≥ %d): %w", method, param, got, min, ErrTooSmall)
	}

	return nil
}

// nodeAt finds the node labelled c.
// Complexity: O(V).
func nodeAt(nw *network.Network, c network.Coord) (network.NodeID, bool) {
	id, ok := nw.Index()[c]

	return id, ok
}
