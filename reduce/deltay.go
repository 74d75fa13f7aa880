// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ohmgrid/network"
)

// StarToDelta converts a star with arms ra, rb, rc (to n1, n2, n3) into the
// equivalent triangle:
//
//	S   = ra·rb + rb·rc + rc·ra
//	rab = S/rc   (n1–n2)
//	rbc = S/ra   (n2–n3)
//	rca = S/rb   (n3–n1)
func StarToDelta(ra, rb, rc float64) (rab, rbc, rca float64) {
	s := ra*rb + rb*rc + rc*ra

	return s / rc, s / ra, s / rb
}

// TransformDeltaY eliminates each degree-3 non-terminal node by the Y-Δ
// transform. Its neighbors n1 < n2 < n3 are joined pairwise by the triangle
// from StarToDelta; each new side is merged in parallel with an existing
// edge between the same pair.
//
// Candidates are snapshotted in ascending id order and re-checked at their
// turn. Returns the number of eliminated nodes.
func TransformDeltaY(nw *network.Network) (int, error) {
	transformed := 0
	for _, id := range nw.NodesOfDegree(3) {
		if nw.Degree(id) != 3 {
			continue
		}
		inc, err := nw.Incident(id)
		if err != nil {
			return transformed, fmt.Errorf("TransformDeltaY: %w", err)
		}
		n1, n2, n3 := inc[0].Other(id), inc[1].Other(id), inc[2].Other(id)
		rab, rbc, rca := StarToDelta(inc[0].Weight, inc[1].Weight, inc[2].Weight)

		if err = nw.RemoveNode(id); err != nil {
			return transformed, fmt.Errorf("TransformDeltaY: %w", err)
		}
		for _, side := range [...]struct {
			a, b network.NodeID
			w    float64
		}{{n1, n2, rab}, {n2, n3, rbc}, {n3, n1, rca}} {
			if _, err = nw.Connect(side.a, side.b, side.w); err != nil {
				return transformed, fmt.Errorf("TransformDeltaY: node %d: %w", id, err)
			}
		}
		klog.V(2).Infof("delta-y: removed node %d, triangle %d-%d-%d (%g, %g, %g)", id, n1, n2, n3, rab, rbc, rca)
		transformed++
	}

	return transformed, nil
}
