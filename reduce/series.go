// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ohmgrid/network"
)

// ReduceSeries replaces each degree-2 non-terminal node with one resistor
// w1+w2 between its two neighbors, merged in parallel with any edge already
// joining them.
//
// The degree-2 candidates are snapshotted in ascending id order before the
// pass starts. Each one is re-checked at its turn because an earlier
// reduction may have merged two of its edges and lowered its degree.
// Returns the number of eliminated nodes.
func ReduceSeries(nw *network.Network) (int, error) {
	reduced := 0
	for _, id := range nw.NodesOfDegree(2) {
		if nw.Degree(id) != 2 {
			continue
		}
		inc, err := nw.Incident(id)
		if err != nil {
			return reduced, fmt.Errorf("ReduceSeries: %w", err)
		}
		if inc[0].Open || inc[1].Open {
			continue
		}
		n1, n2 := inc[0].Other(id), inc[1].Other(id)
		w := network.Series(inc[0].Weight, inc[1].Weight)

		if err = nw.RemoveNode(id); err != nil {
			return reduced, fmt.Errorf("ReduceSeries: %w", err)
		}
		e, err := nw.Connect(n1, n2, w)
		if err != nil {
			return reduced, fmt.Errorf("ReduceSeries: node %d: %w", id, err)
		}
		klog.V(2).Infof("series: removed node %d and connected %d and %d with weight %g", id, n1, n2, e.Weight)
		reduced++
	}

	return reduced, nil
}
