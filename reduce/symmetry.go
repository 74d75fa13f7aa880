// SPDX-License-Identifier: MIT
//
// File: symmetry.go
// Role: Mirror checks that gate the symmetry folds.
//
// A fold is exact only when the network is its own mirror image: every node
// has a partner at the reflected coordinate and every resistor has a twin of
// equal weight. The terminals must map onto themselves for the main diagonal
// and onto each other for the anti-diagonal.

package reduce

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ohmgrid/network"
)

// mirrorTolerance is the relative weight difference still treated as equal.
const mirrorTolerance = 1e-9

// reflection maps a lattice coordinate to its mirror image.
type reflection func(network.Coord) network.Coord

func diagonalReflection(c network.Coord) network.Coord {
	return network.Coord{Row: c.Col, Col: c.Row}
}

func antiDiagonalReflection(side int) reflection {
	return func(c network.Coord) network.Coord {
		return network.Coord{Row: side - 1 - c.Col, Col: side - 1 - c.Row}
	}
}

// checkMirror reports ErrAsymmetric unless nw is invariant under ref and the
// terminal pair maps as required: onto itself when swap is false, onto each
// other when swap is true.
//
// Complexity: O(V + E log V).
func checkMirror(nw *network.Network, ref reflection, swap bool) error {
	a, b, ok := nw.Terminals()
	if !ok {
		return ErrNoTerminals
	}
	idx := nw.Index()
	image := make(map[network.NodeID]network.NodeID, len(idx))
	for c, id := range idx {
		m, ok := idx[ref(c)]
		if !ok {
			return fmt.Errorf("node %s has no mirror: %w", c, ErrAsymmetric)
		}
		image[id] = m
	}

	wantA, wantB := a, b
	if swap {
		wantA, wantB = b, a
	}
	if image[a] != wantA || image[b] != wantB {
		return fmt.Errorf("terminals %d, %d are not mirrored onto %d, %d: %w", a, b, wantA, wantB, ErrAsymmetric)
	}

	for _, e := range nw.Edges() {
		twin, ok := nw.Edge(image[e.From], image[e.To])
		if !ok || twin.Open != e.Open {
			return fmt.Errorf("edge %d-%d has no mirror: %w", e.From, e.To, ErrAsymmetric)
		}
		if !e.Open && !sameWeight(e.Weight, twin.Weight) {
			return fmt.Errorf("edge %d-%d weighs %g, mirror weighs %g: %w", e.From, e.To, e.Weight, twin.Weight, ErrAsymmetric)
		}
	}

	return nil
}

func sameWeight(x, y float64) bool {
	return math.Abs(x-y) <= mirrorTolerance*math.Max(math.Abs(x), math.Abs(y))
}
