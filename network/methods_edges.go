// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Invariant-checked edge insertion (Connect) and edge queries.
//
// Determinism:
//   - Edges() is sorted by (From, To); Incident() by the opposite endpoint.

package network

import (
	"fmt"
	"sort"
)

// Connect inserts a resistor of weight w between a and b.
//
// This is the single insertion path of the package. If a and b are already
// joined, the parallel merge is computed first and only the merged weight is
// stored, so the one-edge-per-pair invariant holds at every instant. Merging
// into the open probe edge simply assigns w to it.
//
// Errors:
//   - ErrBadWeight: w ≤ 0, NaN or ±Inf.
//   - ErrSelfLoop: a == b.
//   - ErrNodeNotFound: a or b missing.
//
// Returns a copy of the stored edge.
// Complexity: O(1).
func (nw *Network) Connect(a, b NodeID, w float64) (Edge, error) {
	if !validWeight(w) {
		return Edge{}, fmt.Errorf("Connect(%d, %d, %g): %w", a, b, w, ErrBadWeight)
	}
	if a == b {
		return Edge{}, fmt.Errorf("Connect(%d, %d): %w", a, b, ErrSelfLoop)
	}
	if !nw.HasNode(a) || !nw.HasNode(b) {
		return Edge{}, fmt.Errorf("Connect(%d, %d): %w", a, b, ErrNodeNotFound)
	}

	if e, ok := nw.adj[a][b]; ok {
		if e.Open {
			e.Weight, e.Open = w, false
		} else {
			e.Weight = Parallel(e.Weight, w)
		}

		return *e, nil
	}

	from, to := orderedPair(a, b)
	e := &Edge{From: from, To: to, Weight: w}
	nw.adj[a][b] = e
	nw.adj[b][a] = e
	nw.edgeCount++

	return *e, nil
}

// Edge returns the edge joining a and b, if any.
// Complexity: O(1).
func (nw *Network) Edge(a, b NodeID) (Edge, bool) {
	e, ok := nw.adj[a][b]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// HasEdge reports whether a and b are adjacent.
func (nw *Network) HasEdge(a, b NodeID) bool {
	_, ok := nw.adj[a][b]

	return ok
}

// Incident returns copies of the edges at id, ordered by opposite endpoint.
// Complexity: O(d log d).
func (nw *Network) Incident(id NodeID) ([]Edge, error) {
	nbrs, ok := nw.adj[id]
	if !ok {
		return nil, fmt.Errorf("Incident(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]Edge, 0, len(nbrs))
	for _, e := range nbrs {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (nw *Network) Edges() []Edge {
	out := make([]Edge, 0, nw.edgeCount)
	for a, nbrs := range nw.adj {
		for b, e := range nbrs {
			if a < b {
				out = append(out, *e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges, the probe included.
// Complexity: O(1).
func (nw *Network) EdgeCount() int {
	return nw.edgeCount
}
