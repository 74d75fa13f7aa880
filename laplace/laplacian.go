// SPDX-License-Identifier: MIT

package laplace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ohmgrid/network"
)

// pivotEpsilon is the relative magnitude, against the largest diagonal entry,
// below which an LU pivot counts as zero.
const pivotEpsilon = 1e-12

// Laplacian is the dense weighted Laplacian of a network together with the
// row order of its nodes.
type Laplacian struct {
	IDs  []network.NodeID
	At   map[network.NodeID]int
	Data [][]float64
}

// NewLaplacian assembles the conductance Laplacian of nw.
// Rows follow nw.Nodes(), i.e. ascending NodeID.
// Complexity: O(V² + E).
func NewLaplacian(nw *network.Network) *Laplacian {
	return newLaplacian(nw, nw.Nodes())
}

// newLaplacian restricts the Laplacian to ids. Edges with an endpoint
// outside ids are skipped.
func newLaplacian(nw *network.Network, ids []network.NodeID) *Laplacian {
	at := make(map[network.NodeID]int, len(ids))
	for i, id := range ids {
		at[id] = i
	}
	data := make([][]float64, len(ids))
	for i := range data {
		data[i] = make([]float64, len(ids))
	}
	for _, e := range nw.Edges() {
		if e.Open {
			continue
		}
		i, okI := at[e.From]
		j, okJ := at[e.To]
		if !okI || !okJ {
			continue
		}
		g := 1 / e.Weight
		data[i][i] += g
		data[j][j] += g
		data[i][j] -= g
		data[j][i] -= g
	}

	return &Laplacian{IDs: ids, At: at, Data: data}
}

// grounded returns a copy of the matrix with row and column k removed.
func (l *Laplacian) grounded(k int) [][]float64 {
	n := len(l.Data) - 1
	out := make([][]float64, 0, n)
	for i, row := range l.Data {
		if i == k {
			continue
		}
		r := make([]float64, 0, n)
		r = append(r, row[:k]...)
		r = append(r, row[k+1:]...)
		out = append(out, r)
	}

	return out
}

// lu factors m in place into unit-lower L (below the diagonal) and U
// (on and above it), Doolittle order without pivoting.
// The grounded Laplacian of a connected network is symmetric positive
// definite, so every pivot is positive. The zero-pivot test scales with
// the largest diagonal entry, so uniformly large or small resistances
// factor the same way unit ones do.
func lu(m [][]float64) error {
	n := len(m)
	scale := 0.0
	for i := 0; i < n; i++ {
		scale = math.Max(scale, math.Abs(m[i][i]))
	}
	tol := pivotEpsilon * scale
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += m[i][k] * m[k][j]
			}
			m[i][j] -= sum
		}
		if m[i][i] <= tol {
			return fmt.Errorf("lu: pivot %d = %g: %w", i, m[i][i], ErrSingular)
		}
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += m[j][k] * m[k][i]
			}
			m[j][i] = (m[j][i] - sum) / m[i][i]
		}
	}

	return nil
}

// solve runs forward then back substitution on a factored m.
func solve(m [][]float64, rhs []float64) []float64 {
	n := len(m)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = rhs[i]
		for k := 0; k < i; k++ {
			y[i] -= m[i][k] * y[k]
		}
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = y[i]
		for k := i + 1; k < n; k++ {
			x[i] -= m[i][k] * x[k]
		}
		x[i] /= m[i][i]
	}

	return x
}
