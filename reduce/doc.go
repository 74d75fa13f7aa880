// Package reduce collapses a resistor lattice to the single equivalent
// resistance between its terminal pair.
//
// The engine is a sequence of topological transforms, each exact for
// resistor networks:
//
//   - Symmetry fold (FoldDiagonal, FoldAntiDiagonal): nodes that sit at equal
//     potential by reflection symmetry are contracted; parallel resistors
//     created by the contraction merge as 1/Σ(1/w_i). A fold only runs when
//     the network is its own mirror image across that axis (weights
//     included) and the terminals sit where the axis needs them; otherwise
//     it returns ErrAsymmetric and Reduce moves on without it.
//   - Leaf pruning (PruneLeaves): dead branches carry no current.
//   - Series reduction (ReduceSeries): a degree-2 node becomes one resistor
//     w1+w2 between its neighbors.
//   - Y-Δ transform (TransformDeltaY): a degree-3 star becomes a triangle.
//
// Every new resistor goes through network.Connect, which merges it in
// parallel with an existing edge before storing it.
//
// Reduce drives the transforms through a small state machine:
//
//	BUILT → FOLDED → PHASE_A_ITERATING → PHASE_A_DONE
//	      → PHASE_B_ITERATING → PHASE_B_DONE → SOLVED | STUCK
//
// Phase A iterates (prune; series), phase B iterates (Y-Δ; series). A phase
// ends when the network signature stops changing or one edge is left, and
// in any case after a hard cap of nodeCount+1 iterations.
//
// Terminal nodes are never eliminated. STUCK means the remaining network
// still holds nodes of degree ≥4 that no transform can touch; Reduce then
// returns ErrStuck together with the partial Result.
//
// Example:
//
//	res, err := reduce.Solve(3)
//	if errors.Is(err, reduce.ErrStuck) { ... }
//	fmt.Printf("%.6f\n", res.Resistance) // 0.668687
//
// Logging goes through klog: one line per phase at V(1), one line per
// eliminated node at V(2).
package reduce
