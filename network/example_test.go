package network_test

import (
	"fmt"

	"github.com/katalvlaran/ohmgrid/network"
)

// ExampleNetwork_Contract folds a 4-cycle onto its symmetry axis: the two
// off-axis corners merge and their resistors pair up in parallel.
func ExampleNetwork_Contract() {
	//	0 ── 1
	//	│    │
	//	2 ── 3
	nw := network.New()
	for id, c := range []network.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		_ = nw.AddNode(network.NodeID(id), c)
	}
	_, _ = nw.Connect(0, 1, 1)
	_, _ = nw.Connect(1, 3, 1)
	_, _ = nw.Connect(0, 2, 1)
	_, _ = nw.Connect(2, 3, 1)

	uf := network.NewUnionFind()
	uf.Union(1, 2)
	if err := nw.Contract(uf); err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range nw.Edges() {
		fmt.Printf("%d-%d %.2f\n", e.From, e.To, e.Weight)
	}
	fmt.Println("nodes:", nw.Nodes())

	// Output:
	// 0-1 0.50
	// 1-3 0.50
	// nodes: [0 1 3]
}
