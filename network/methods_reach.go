// SPDX-License-Identifier: MIT

package network

import "fmt"

// Component returns the nodes reachable from start through resistive edges,
// in breadth-first order with neighbors visited in ascending id order.
// Open edges carry no current and are not followed.
//
// Complexity: O(V + E log d).
func (nw *Network) Component(start NodeID) ([]NodeID, error) {
	if !nw.HasNode(start) {
		return nil, fmt.Errorf("Component(%d): %w", start, ErrNodeNotFound)
	}
	visited := map[NodeID]bool{start: true}
	order := []NodeID{start}
	for head := 0; head < len(order); head++ {
		id := order[head]
		nbrs, _ := nw.Neighbors(id)
		for _, v := range nbrs {
			if visited[v] || nw.adj[id][v].Open {
				continue
			}
			visited[v] = true
			order = append(order, v)
		}
	}

	return order, nil
}
