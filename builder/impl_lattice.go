// SPDX-License-Identifier: MIT
// Package: ohmgrid/builder
//
// impl_lattice.go — implementation of Lattice(n).
//
// Canonical model:
//   • Grid(2n, 2n) of equal resistors.
//   • Terminal pair: the central diagonal neighbors (n-1,n-1) and (n,n).
//
// The lattice is symmetric under both diagonal reflections, which is what
// the reducer's symmetry fold relies on.

package builder

import "github.com/katalvlaran/ohmgrid/network"

const (
	methodLattice = "Lattice"
	minHalfSize   = 1
)

// Side returns the number of rows (and columns) of the lattice with half-size n.
func Side(n int) int {
	return 2 * n
}

// LatticeTerminals returns the terminal coordinates of the half-size n lattice.
func LatticeTerminals(n int) (network.Coord, network.Coord) {
	return network.Coord{Row: n - 1, Col: n - 1}, network.Coord{Row: n, Col: n}
}

// Lattice returns a Constructor that builds the 2n×2n lattice with its
// probe edge. n < 1 fails with ErrTooSmall before any node is created.
func Lattice(n int) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		if err := validateMin(methodLattice, "n", n, minHalfSize); err != nil {
			return err
		}
		if err := Grid(Side(n), Side(n))(nw, cfg); err != nil {
			return err
		}
		a, b := LatticeTerminals(n)

		return Probe(a, b)(nw, cfg)
	}
}
