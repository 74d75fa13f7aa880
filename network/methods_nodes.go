// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle, terminal pair and degree queries.
//
// Determinism:
//   - Nodes() and Neighbors() return ids in ascending order.

package network

import (
	"fmt"
	"sort"
)

// AddNode registers id with its coordinate label.
//
// Behavior highlights:
//   - Idempotent when id is already bound to the same coordinate.
//   - ErrNodeExists when id is bound to a different coordinate.
//
// Complexity: O(log V).
func (nw *Network) AddNode(id NodeID, c Coord) error {
	if v, ok := nw.catalog.Get(id); ok {
		if v.(Coord) != c {
			return fmt.Errorf("AddNode(%d, %s): bound to %s: %w", id, c, v.(Coord), ErrNodeExists)
		}

		return nil
	}
	nw.catalog.Put(id, c)
	nw.adj[id] = make(map[NodeID]*Edge)

	return nil
}

// HasNode reports whether id is present.
// Complexity: O(1).
func (nw *Network) HasNode(id NodeID) bool {
	_, ok := nw.adj[id]

	return ok
}

// Coord returns the coordinate label of id.
// Complexity: O(log V).
func (nw *Network) Coord(id NodeID) (Coord, bool) {
	v, ok := nw.catalog.Get(id)
	if !ok {
		return Coord{}, false
	}

	return v.(Coord), true
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V).
func (nw *Network) Nodes() []NodeID {
	keys := nw.catalog.Keys()
	out := make([]NodeID, len(keys))
	for i, k := range keys {
		out[i] = k.(NodeID)
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (nw *Network) NodeCount() int {
	return len(nw.adj)
}

// Degree returns the number of edges incident to id, or -1 if id is missing.
// The open probe edge counts like any other edge.
// Complexity: O(1).
func (nw *Network) Degree(id NodeID) int {
	nbrs, ok := nw.adj[id]
	if !ok {
		return -1
	}

	return len(nbrs)
}

// Neighbors returns the ids adjacent to id in ascending order.
// Complexity: O(d log d).
func (nw *Network) Neighbors(id NodeID) ([]NodeID, error) {
	nbrs, ok := nw.adj[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]NodeID, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// NodesOfDegree returns, in ascending order, the non-terminal nodes whose
// degree is exactly k. The reducer uses it to snapshot candidates before a
// pass starts mutating the network.
// Complexity: O(V).
func (nw *Network) NodesOfDegree(k int) []NodeID {
	var out []NodeID
	for _, id := range nw.Nodes() {
		if len(nw.adj[id]) == k && !nw.IsTerminal(id) {
			out = append(out, id)
		}
	}

	return out
}

// RemoveNode deletes id and every edge incident to it.
// Removing a terminal also forgets the terminal pair.
// Complexity: O(d + log V).
func (nw *Network) RemoveNode(id NodeID) error {
	nbrs, ok := nw.adj[id]
	if !ok {
		return fmt.Errorf("RemoveNode(%d): %w", id, ErrNodeNotFound)
	}
	for v := range nbrs {
		delete(nw.adj[v], id)
		nw.edgeCount--
	}
	delete(nw.adj, id)
	nw.catalog.Remove(id)
	if nw.IsTerminal(id) {
		nw.hasTerminals = false
	}

	return nil
}

// SetTerminals records (a, b) as the measured terminal pair and joins them
// with the open probe edge. If a and b are already connected the existing
// edge is kept as the probe.
//
// Errors:
//   - ErrNodeNotFound: a or b missing.
//   - ErrSelfLoop: a == b.
//   - ErrTerminalsSet: called twice.
//
// Complexity: O(1).
func (nw *Network) SetTerminals(a, b NodeID) error {
	if nw.hasTerminals {
		return fmt.Errorf("SetTerminals(%d, %d): %w", a, b, ErrTerminalsSet)
	}
	if a == b {
		return fmt.Errorf("SetTerminals(%d, %d): %w", a, b, ErrSelfLoop)
	}
	if !nw.HasNode(a) || !nw.HasNode(b) {
		return fmt.Errorf("SetTerminals(%d, %d): %w", a, b, ErrNodeNotFound)
	}
	a, b = orderedPair(a, b)
	if _, ok := nw.adj[a][b]; !ok {
		e := &Edge{From: a, To: b, Open: true}
		nw.adj[a][b] = e
		nw.adj[b][a] = e
		nw.edgeCount++
	}
	nw.terminals = [2]NodeID{a, b}
	nw.hasTerminals = true

	return nil
}

// Terminals returns the terminal pair (smaller id first) and whether one is set.
func (nw *Network) Terminals() (NodeID, NodeID, bool) {
	return nw.terminals[0], nw.terminals[1], nw.hasTerminals
}

// IsTerminal reports whether id is one of the terminal nodes.
func (nw *Network) IsTerminal(id NodeID) bool {
	return nw.hasTerminals && (nw.terminals[0] == id || nw.terminals[1] == id)
}

// Index returns a coordinate → NodeID map of the current nodes. After a
// contraction only representatives appear, under their own coordinates.
// Complexity: O(V).
func (nw *Network) Index() map[Coord]NodeID {
	out := make(map[Coord]NodeID, nw.catalog.Size())
	it := nw.catalog.Iterator()
	for it.Next() {
		out[it.Value().(Coord)] = it.Key().(NodeID)
	}

	return out
}
