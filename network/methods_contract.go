// SPDX-License-Identifier: MIT
//
// File: methods_contract.go
// Role: Node contraction through a UnionFind relabelling, followed by the
//       N-way parallel merge of edges that end up joining the same pair.

package network

import "fmt"

// mergeGroup collects the edges that collapse onto one node pair.
type mergeGroup struct {
	from, to NodeID
	weights  []float64
	open     bool
}

// Contract relabels every node to its representative in uf and rebuilds the
// adjacency table.
//
// Implementation:
//   - Stage 1: Validate representatives and the terminal pair (no mutation yet).
//   - Stage 2: Group edges by relabelled endpoints in (From, To) order,
//     dropping the ones that became self-loops.
//   - Stage 3: Store each group as one edge with weight 1/Σ(1/w_i). An open
//     probe edge contributes zero conductance; a group made only of the probe
//     stays open.
//   - Stage 4: Drop merged nodes from the catalog; representatives keep
//     their coordinate label.
//
// Errors:
//   - ErrNodeNotFound: a representative is not a node of the network.
//   - ErrSelfLoop: the two terminals would be merged.
//
// Complexity: O(V + E log E).
func (nw *Network) Contract(uf *UnionFind) error {
	// Stage 1
	nodes := nw.Nodes()
	for _, id := range nodes {
		if root := uf.Find(id); !nw.HasNode(root) {
			return fmt.Errorf("Contract: representative %d of %d: %w", root, id, ErrNodeNotFound)
		}
	}
	var ta, tb NodeID
	if nw.hasTerminals {
		ta, tb = uf.Find(nw.terminals[0]), uf.Find(nw.terminals[1])
		if ta == tb {
			return fmt.Errorf("Contract: terminals %d and %d: %w", nw.terminals[0], nw.terminals[1], ErrSelfLoop)
		}
	}

	// Stage 2
	type pair struct{ a, b NodeID }
	var order []pair
	groups := make(map[pair]*mergeGroup)
	for _, e := range nw.Edges() {
		ra, rb := uf.Find(e.From), uf.Find(e.To)
		if ra == rb {
			continue
		}
		ra, rb = orderedPair(ra, rb)
		key := pair{ra, rb}
		grp, ok := groups[key]
		if !ok {
			grp = &mergeGroup{from: ra, to: rb}
			groups[key] = grp
			order = append(order, key)
		}
		if e.Open {
			grp.open = true
		} else {
			grp.weights = append(grp.weights, e.Weight)
		}
	}

	// Stage 3
	adj := make(map[NodeID]map[NodeID]*Edge)
	for _, id := range nodes {
		if uf.Find(id) == id {
			adj[id] = make(map[NodeID]*Edge)
		} else {
			nw.catalog.Remove(id)
		}
	}
	count := 0
	for _, key := range order {
		grp := groups[key]
		e := &Edge{From: grp.from, To: grp.to}
		if len(grp.weights) == 0 {
			e.Open = true
		} else {
			e.Weight = ParallelN(grp.weights...)
		}
		adj[grp.from][grp.to] = e
		adj[grp.to][grp.from] = e
		count++
	}

	// Stage 4
	nw.adj = adj
	nw.edgeCount = count
	if nw.hasTerminals {
		ta, tb = orderedPair(ta, tb)
		nw.terminals = [2]NodeID{ta, tb}
	}

	return nil
}
