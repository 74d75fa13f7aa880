// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy, canonical signature and invariant validation.

package network

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// Clone returns a deep copy: catalog, edges and terminal pair.
// Complexity: O(V + E).
func (nw *Network) Clone() *Network {
	c := &Network{
		catalog:      treemap.NewWith(nodeIDComparator),
		adj:          make(map[NodeID]map[NodeID]*Edge, len(nw.adj)),
		edgeCount:    nw.edgeCount,
		terminals:    nw.terminals,
		hasTerminals: nw.hasTerminals,
	}
	it := nw.catalog.Iterator()
	for it.Next() {
		c.catalog.Put(it.Key(), it.Value())
	}
	for id := range nw.adj {
		c.adj[id] = make(map[NodeID]*Edge, len(nw.adj[id]))
	}
	for a, nbrs := range nw.adj {
		for b, e := range nbrs {
			if a < b {
				cp := *e
				c.adj[a][b] = &cp
				c.adj[b][a] = &cp
			}
		}
	}

	return c
}

// Signature is a cheap canonical fingerprint of a network: invariant under
// relabelling, and equal for two snapshots of one network between which no
// transform changed anything.
type Signature string

// Signature returns node count, edge count and the sorted multiset of
// (endpoint degree pair, weight) over all edges.
// Complexity: O(E log E).
func (nw *Network) Signature() Signature {
	parts := make([]string, 0, nw.edgeCount)
	for _, e := range nw.Edges() {
		da, db := len(nw.adj[e.From]), len(nw.adj[e.To])
		if da > db {
			da, db = db, da
		}
		w := "open"
		if !e.Open {
			w = strconv.FormatFloat(e.Weight, 'g', -1, 64)
		}
		parts = append(parts, strconv.Itoa(da)+"-"+strconv.Itoa(db)+":"+w)
	}
	sort.Strings(parts)

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(nw.adj)))
	sb.WriteByte('/')
	sb.WriteString(strconv.Itoa(nw.edgeCount))
	for _, p := range parts {
		sb.WriteByte(' ')
		sb.WriteString(p)
	}

	return Signature(sb.String())
}

// Validate re-checks every structural invariant and returns ErrCorrupt or
// ErrBadWeight on the first violation.
// Complexity: O(V + E).
func (nw *Network) Validate() error {
	if nw.catalog.Size() != len(nw.adj) {
		return fmt.Errorf("Validate: catalog has %d nodes, adjacency %d: %w", nw.catalog.Size(), len(nw.adj), ErrCorrupt)
	}
	count := 0
	for a, nbrs := range nw.adj {
		if _, ok := nw.catalog.Get(a); !ok {
			return fmt.Errorf("Validate: node %d missing from catalog: %w", a, ErrCorrupt)
		}
		for b, e := range nbrs {
			if a == b {
				return fmt.Errorf("Validate: node %d: %w", a, ErrSelfLoop)
			}
			if back, ok := nw.adj[b][a]; !ok || back != e {
				return fmt.Errorf("Validate: edge %d-%d not mirrored: %w", a, b, ErrCorrupt)
			}
			if from, to := orderedPair(a, b); e.From != from || e.To != to {
				return fmt.Errorf("Validate: edge %d-%d labelled %d-%d: %w", a, b, e.From, e.To, ErrCorrupt)
			}
			if !e.Open && !validWeight(e.Weight) {
				return fmt.Errorf("Validate: edge %d-%d weight %g: %w", a, b, e.Weight, ErrBadWeight)
			}
			if a < b {
				count++
			}
		}
	}
	if count != nw.edgeCount {
		return fmt.Errorf("Validate: counted %d edges, recorded %d: %w", count, nw.edgeCount, ErrCorrupt)
	}
	if nw.hasTerminals && (!nw.HasNode(nw.terminals[0]) || !nw.HasNode(nw.terminals[1])) {
		return fmt.Errorf("Validate: terminal missing: %w", ErrCorrupt)
	}

	return nil
}
