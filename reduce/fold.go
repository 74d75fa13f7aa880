// SPDX-License-Identifier: MIT
//
// File: fold.go
// Role: Symmetry folding of the 2n×2n lattice before general reduction.
//
// Both diagonals of the lattice are mirror axes for the terminal pair
// (n-1,n-1)–(n,n):
//   - The main diagonal maps each terminal onto itself, so (x,y) and (y,x)
//     sit at the same potential.
//   - The anti-diagonal swaps the terminals, so every node on it sits at the
//     midpoint potential and all of them can be joined into one.
//
// Either argument holds only for a mirror-symmetric network, so each fold
// verifies its axis first and refuses with ErrAsymmetric, untouched, when
// the weights or the terminals break the symmetry.

package reduce

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ohmgrid/builder"
	"github.com/katalvlaran/ohmgrid/network"
)

// Fold applies FoldDiagonal then FoldAntiDiagonal and returns the number of
// contracted nodes.
func Fold(nw *network.Network, n int) (int, error) {
	d, err := FoldDiagonal(nw, n)
	if err != nil {
		return d, err
	}
	a, err := FoldAntiDiagonal(nw, n)

	return d + a, err
}

// FoldDiagonal contracts every present pair (y,x) into (x,y) for x < y, then
// merges the resulting parallel resistors in one pass as 1/Σ(1/w_i).
// The node labelled (x,y), above the diagonal, survives.
//
// An already folded network is left as is. Otherwise the network must be
// symmetric across the main diagonal with both terminals on it, else
// ErrAsymmetric is returned and nw is not modified.
//
// Complexity: O(V + E log E).
func FoldDiagonal(nw *network.Network, n int) (int, error) {
	side := builder.Side(n)
	idx := nw.Index()
	uf := network.NewUnionFind()
	merged := 0
	for x := 0; x < side; x++ {
		for y := x + 1; y < side; y++ {
			keep, okKeep := idx[network.Coord{Row: x, Col: y}]
			drop, okDrop := idx[network.Coord{Row: y, Col: x}]
			if okKeep && okDrop && uf.Union(keep, drop) {
				merged++
			}
		}
	}
	if merged == 0 {
		return 0, nil
	}
	if err := checkMirror(nw, diagonalReflection, false); err != nil {
		return 0, fmt.Errorf("FoldDiagonal: %w", err)
	}
	if err := nw.Contract(uf); err != nil {
		return 0, fmt.Errorf("FoldDiagonal: %w", err)
	}
	klog.V(1).Infof("fold: diagonal merged %d nodes, %d nodes / %d edges left", merged, nw.NodeCount(), nw.EdgeCount())

	return merged, nil
}

// FoldAntiDiagonal walks the anti-diagonal from the bottom-left corner and
// contracts (x, 2n-x-1) into (x+1, 2n-x-2) one pair at a time, merging
// parallel resistors after each contraction. Pairs with a missing node
// (already folded away) are skipped.
//
// The network must be symmetric across the anti-diagonal with the terminals
// swapping places, else ErrAsymmetric is returned and nw is not modified.
//
// Complexity: O(n·(V + E log E)).
func FoldAntiDiagonal(nw *network.Network, n int) (int, error) {
	side := builder.Side(n)
	idx := nw.Index()
	merged := 0
	checked := false
	for x := 0; x < side-1; x++ {
		drop, okDrop := idx[network.Coord{Row: x, Col: side - x - 1}]
		keep, okKeep := idx[network.Coord{Row: x + 1, Col: side - x - 2}]
		if !okDrop || !okKeep || !nw.HasNode(drop) || !nw.HasNode(keep) {
			continue
		}
		if !checked {
			if err := checkMirror(nw, antiDiagonalReflection(side), true); err != nil {
				return 0, fmt.Errorf("FoldAntiDiagonal: %w", err)
			}
			checked = true
		}
		uf := network.NewUnionFind()
		uf.Union(keep, drop)
		if err := nw.Contract(uf); err != nil {
			return merged, fmt.Errorf("FoldAntiDiagonal: pair %d: %w", x, err)
		}
		merged++
	}
	klog.V(1).Infof("fold: anti-diagonal merged %d nodes, %d nodes / %d edges left", merged, nw.NodeCount(), nw.EdgeCount())

	return merged, nil
}
