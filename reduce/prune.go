// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ohmgrid/network"
)

// PruneLeaves removes, in one pass, every non-terminal node of degree 1
// together with its edge, plus any isolated non-terminal node. Candidates
// are snapshotted first; a leaf whose partner was pruned in the same pass is
// still removed. Returns the number of removed nodes.
//
// A dead branch carries no current, so pruning never changes the resistance
// between any two remaining nodes.
func PruneLeaves(nw *network.Network) (int, error) {
	leaves := append(nw.NodesOfDegree(0), nw.NodesOfDegree(1)...)
	removed := 0
	for _, id := range leaves {
		if !nw.HasNode(id) {
			continue
		}
		if err := nw.RemoveNode(id); err != nil {
			return removed, fmt.Errorf("PruneLeaves: %w", err)
		}
		klog.V(2).Infof("prune: removed leaf %d", id)
		removed++
	}

	return removed, nil
}
