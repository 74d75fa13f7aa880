package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmgrid/laplace"
	"github.com/katalvlaran/ohmgrid/network"
)

type wire struct {
	a, b network.NodeID
	w    float64
}

// netOf builds a network over nodes 0..max(wire ids) with the given wires
// and, when a != b, terminal pair (a, b).
func netOf(t *testing.T, a, b network.NodeID, wires ...wire) *network.Network {
	t.Helper()
	nw := network.New()
	add := func(id network.NodeID) {
		require.NoError(t, nw.AddNode(id, network.Coord{Row: int(id)}))
	}
	for _, w := range wires {
		add(w.a)
		add(w.b)
		_, err := nw.Connect(w.a, w.b, w.w)
		require.NoError(t, err)
	}
	if a != b {
		add(a)
		add(b)
		require.NoError(t, nw.SetTerminals(a, b))
	}

	return nw
}

func resistance(t *testing.T, nw *network.Network, a, b network.NodeID) float64 {
	t.Helper()
	r, err := laplace.EffectiveResistance(nw, a, b)
	require.NoError(t, err)

	return r
}
