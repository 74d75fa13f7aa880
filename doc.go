// Package ohmgrid computes the equivalent resistance between two adjacent
// diagonal nodes at the centre of a 2N×2N lattice of unit resistors.
//
// What is inside?
//
//	network/ — resistor graph: nodes labelled by grid coordinate, weighted
//	           edges merged in parallel on insertion, union-find contraction
//	builder/ — lattice construction with functional options
//	reduce/  — symmetry folding, leaf pruning, series and Y-Δ reduction,
//	           driven by a two-phase state machine
//	laplace/ — independent nodal-analysis check (grounded Laplacian, LU)
//	render/  — Graphviz DOT export of the reduction stages
//	cache/   — badger-backed store of solved results
//	regress/ — HCL-described regression suite
//
// The terminals are (N-1, N-1) and (N, N). They start out joined by an open
// probe edge that carries no current; the first resistor merged onto it
// becomes its weight, and when reduction succeeds that edge is the answer.
//
// Quick start:
//
//	r, err := ohmgrid.Solve(2)
//	if err != nil { ... }
//	fmt.Printf("%.3f\n", r) // 0.714
//
// Not every N reduces to a single edge. Series, parallel and Y-Δ transforms
// alone leave a residual network for N ≥ 5; Solve then reports
// reduce.ErrStuck.
package ohmgrid
