// SPDX-License-Identifier: MIT

package laplace

import "errors"

var (
	// ErrSingular indicates a zero pivot: some node has no resistive path to
	// the grounded terminal.
	ErrSingular = errors.New("laplace: singular system (disconnected network)")

	// ErrNoTerminals is returned by Resistance for a network without a terminal pair.
	ErrNoTerminals = errors.New("laplace: network has no terminal pair")
)
