// SPDX-License-Identifier: MIT
// Package: ohmgrid/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; sentinels are never re-worded.

package builder

import "errors"

// ErrTooSmall indicates a size parameter (n, rows, cols) below its minimum.
// Classification: malformed input, rejected before any graph construction.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrBadCoord indicates a coordinate that does not name a node of the network.
var ErrBadCoord = errors.New("builder: coordinate not in network")

// ErrConstructFailed indicates a constructor could not complete, e.g. a nil
// constructor was passed to Build or the ID scheme produced a collision.
var ErrConstructFailed = errors.New("builder: construction failed")
