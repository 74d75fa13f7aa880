// SPDX-License-Identifier: MIT

package network

// UnionFind partitions NodeIDs into disjoint sets with path compression.
//
// Unlike a rank-balanced union-find, Union always keeps the representative of
// its first argument, so the identity that survives a contraction is fixed by
// the caller and never depends on tree shape.
type UnionFind struct {
	parent map[NodeID]NodeID
}

// NewUnionFind returns an empty UnionFind; unknown ids are singletons.
func NewUnionFind() *UnionFind {
	return &UnionFind{parent: make(map[NodeID]NodeID)}
}

// Find returns the representative of the set containing x.
func (uf *UnionFind) Find(x NodeID) NodeID {
	p, ok := uf.parent[x]
	if !ok || p == x {
		return x
	}
	root := uf.Find(p)
	uf.parent[x] = root // path compression

	return root
}

// Union merges the set of drop into the set of keep. It reports false when
// both were already in one set.
func (uf *UnionFind) Union(keep, drop NodeID) bool {
	rk, rd := uf.Find(keep), uf.Find(drop)
	if rk == rd {
		return false
	}
	uf.parent[rd] = rk

	return true
}

// Connected reports whether x and y share a representative.
func (uf *UnionFind) Connected(x, y NodeID) bool {
	return uf.Find(x) == uf.Find(y)
}

// Len returns the number of ids that were ever merged into another set.
func (uf *UnionFind) Len() int {
	n := 0
	for x, p := range uf.parent {
		if x != p {
			n++
		}
	}

	return n
}
