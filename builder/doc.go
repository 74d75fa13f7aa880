// Package builder assembles resistor networks from composable constructors,
// following the functional-options style used throughout ohmgrid.
//
// The package offers:
//
//   - Build(opts, cons...): one orchestrator that allocates a network,
//     resolves the configuration and runs constructors in order.
//   - Grid(rows, cols): an orthogonal rows×cols lattice of resistors.
//   - Probe(a, b): marks the terminal pair and joins it with the open probe edge.
//   - Lattice(n): the 2n×2n grid measured between its two central
//     diagonal nodes (n-1,n-1) and (n,n).
//
// Configuration (Option):
//
//   - WithResistance(r): resistance of every grid edge (default 1 Ω).
//   - WithWeightFn(fn): draw each edge resistance from fn instead
//     (ConstantWeightFn, UniformWeightFn).
//   - WithSeed(seed): seed the generator passed to the WeightFn.
//   - WithIDScheme(fn): coordinate → NodeID mapping (default row-major).
//
// Guarantees:
//
//   - Parameters are validated before any node is created; size errors wrap
//     ErrTooSmall, coordinate errors wrap ErrBadCoord.
//   - Option constructors panic on meaningless values; constructors never panic.
//   - Deterministic: equal inputs and seed produce identical networks.
package builder
