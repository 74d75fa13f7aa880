// Package laplace computes two-terminal effective resistance by nodal
// analysis, independently of the topological reductions in package reduce.
//
// The network is turned into its weighted Laplacian L, where each resistor
// w contributes conductance g = 1/w:
//
//	L[i][i] += g,  L[j][j] += g,  L[i][j] -= g,  L[j][i] -= g
//
// Open edges contribute nothing. Grounding terminal b (deleting its row and
// column) leaves a symmetric positive-definite matrix when the network is
// connected; injecting a unit current at a and solving L'·v = e_a gives
// R_eq = v[a].
//
// The solve is a Doolittle LU factorization of the dense grounded
// Laplacian, followed by forward and back substitution: O(V³) time and O(V²) memory. A pivot counts as zero when it
// falls below 1e-12 of the largest diagonal entry, so the result does not
// depend on the unit of resistance.
package laplace
