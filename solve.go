// SPDX-License-Identifier: MIT

package ohmgrid

import "github.com/katalvlaran/ohmgrid/reduce"

// Solve returns the equivalent resistance between the centre terminals of
// the 2n×2n unit lattice.
//
// Errors:
//   - builder.ErrTooSmall: n < 1.
//   - reduce.ErrStuck: the lattice did not reduce to a single edge.
func Solve(n int) (float64, error) {
	res, err := reduce.Solve(n)
	if err != nil {
		return 0, err
	}

	return res.Resistance, nil
}
