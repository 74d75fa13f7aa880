// SPDX-License-Identifier: MIT
// Package: ohmgrid/builder
//
// impl_grid.go — implementation of Grid(rows, cols).
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbor per cell).
//   • Node (r,c) gets id cfg.idFn(r, c, cols) and Coord{Row: r, Col: c}.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooSmall).
//   • Every horizontal and vertical adjacency becomes one resistor whose
//     value is drawn from cfg.weightFn.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges.
//
// Determinism:
//   • Nodes in row-major order; for each (r,c) emit Right then Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ohmgrid/network"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols resistor grid.
func Grid(rows, cols int) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		// 1) Validate parameters early (no partial work).
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}

		// 2) Add all nodes in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := cfg.idFn(r, c, cols)
				if err := nw.AddNode(id, network.Coord{Row: r, Col: c}); err != nil {
					return fmt.Errorf("%s: AddNode(%d): %v: %w", methodGrid, id, err, ErrConstructFailed)
				}
			}
		}

		// 3) Emit Right and Bottom resistors.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.idFn(r, c, cols)
				if c+1 < cols {
					v := cfg.idFn(r, c+1, cols)
					if _, err := nw.Connect(u, v, cfg.weight()); err != nil {
						return fmt.Errorf("%s: Connect(%d→%d): %w", methodGrid, u, v, err)
					}
				}
				if r+1 < rows {
					v := cfg.idFn(r+1, c, cols)
					if _, err := nw.Connect(u, v, cfg.weight()); err != nil {
						return fmt.Errorf("%s: Connect(%d→%d): %w", methodGrid, u, v, err)
					}
				}
			}
		}

		return nil
	}
}
