// Package network provides the weighted undirected resistor graph that the
// reduction engine mutates in place.
//
// A Network N = (V,E) is a simple graph over stable integer NodeIDs:
//
//   - Every node carries a grid Coord label; after a contraction the
//     surviving representative keeps its own label.
//   - Every edge joins two distinct nodes and stores one resistance in ohms.
//   - At most one edge exists per node pair. Connect merges a second
//     resistance into the existing edge with the parallel rule before it is
//     stored, so the invariant never breaks, not even transiently.
//   - Weights are strictly positive and finite. Connect rejects anything else
//     with ErrBadWeight.
//
// The terminal pair (SetTerminals) is joined by an open probe edge: an edge
// with zero conductance that only gains a resistance once a real branch is
// merged into it. The reducer never eliminates terminal nodes, so when the
// network has collapsed to one edge that edge is the probe and its weight is
// the equivalent resistance between the terminals.
//
// Deterministic iteration:
//
//	Nodes()      ascending NodeID (ordered catalog)
//	Neighbors()  ascending NodeID
//	Incident()   ascending by the opposite endpoint
//	Edges()      ascending by (From, To) with From < To
//
// Contraction:
//
//	uf := network.NewUnionFind()
//	uf.Union(keep, drop)       // keep survives
//	err := nw.Contract(uf)     // relabel + N-way parallel merge, self-loops dropped
//
// Concurrency: a Network is owned by one goroutine at a time; it carries no
// locks.
package network
