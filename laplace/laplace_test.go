package laplace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmgrid/builder"
	"github.com/katalvlaran/ohmgrid/laplace"
	"github.com/katalvlaran/ohmgrid/network"
)

func chain(t *testing.T, ws ...float64) *network.Network {
	t.Helper()
	nw := network.New()
	for i := 0; i <= len(ws); i++ {
		require.NoError(t, nw.AddNode(network.NodeID(i), network.Coord{Col: i}))
	}
	for i, w := range ws {
		_, err := nw.Connect(network.NodeID(i), network.NodeID(i+1), w)
		require.NoError(t, err)
	}

	return nw
}

func TestEffectiveResistance_Series(t *testing.T) {
	nw := chain(t, 1, 2, 3.5)
	r, err := laplace.EffectiveResistance(nw, 0, 3)
	require.NoError(t, err)
	require.InEpsilon(t, 6.5, r, 1e-12)

	r, err = laplace.EffectiveResistance(nw, 3, 1)
	require.NoError(t, err)
	require.InEpsilon(t, 5.5, r, 1e-12)
}

func TestEffectiveResistance_Parallel(t *testing.T) {
	nw := chain(t, 2, 3)
	_, err := nw.Connect(0, 2, 5)
	require.NoError(t, err)

	r, err := laplace.EffectiveResistance(nw, 0, 2)
	require.NoError(t, err)
	require.InEpsilon(t, network.Parallel(5, 5), r, 1e-12)
}

func TestEffectiveResistance_SameNode(t *testing.T) {
	r, err := laplace.EffectiveResistance(chain(t, 1), 1, 1)
	require.NoError(t, err)
	require.Zero(t, r)
}

func TestEffectiveResistance_Errors(t *testing.T) {
	nw := chain(t, 1)
	_, err := laplace.EffectiveResistance(nw, 0, 9)
	require.ErrorIs(t, err, network.ErrNodeNotFound)

	require.NoError(t, nw.AddNode(7, network.Coord{Row: 7}))
	_, err = laplace.EffectiveResistance(nw, 0, 7)
	require.ErrorIs(t, err, laplace.ErrSingular)

	_, err = laplace.Resistance(nw)
	require.ErrorIs(t, err, laplace.ErrNoTerminals)
}

func TestResistance_OpenProbeIgnored(t *testing.T) {
	nw := chain(t, 1, 1)
	require.NoError(t, nw.SetTerminals(0, 2))

	r, err := laplace.Resistance(nw)
	require.NoError(t, err)
	require.InEpsilon(t, 2.0, r, 1e-12)
}

func TestResistance_Lattice(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{1, 1},
		{2, 5.0 / 7.0},
		{3, 331.0 / 495.0},
		{4, 235623.0 / 360161.0},
	}
	for _, tc := range tests {
		nw, err := builder.BuildLattice(tc.n)
		require.NoError(t, err)
		r, err := laplace.Resistance(nw)
		require.NoError(t, err)
		require.InEpsilon(t, tc.want, r, 1e-9, "n=%d", tc.n)
	}
}

func TestResistance_ScaleInvariant(t *testing.T) {
	for _, ohms := range []float64{1e-9, 1e6, 1e13} {
		nw, err := builder.BuildLattice(2, builder.WithResistance(ohms))
		require.NoError(t, err)
		r, err := laplace.Resistance(nw)
		require.NoError(t, err, "ohms=%g", ohms)
		require.InEpsilon(t, ohms*5.0/7.0, r, 1e-9, "ohms=%g", ohms)
	}

	r, err := laplace.EffectiveResistance(chain(t, 1e13, 3e13), 0, 2)
	require.NoError(t, err)
	require.InEpsilon(t, 4e13, r, 1e-9)
}

func TestNewLaplacian_RowsSumToZero(t *testing.T) {
	nw, err := builder.BuildLattice(2)
	require.NoError(t, err)
	l := laplace.NewLaplacian(nw)
	require.Len(t, l.IDs, 16)
	for i, row := range l.Data {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		require.InDelta(t, 0, sum, 1e-12, "row %d", i)
	}
}

func TestEffectiveResistance_IgnoresOtherComponents(t *testing.T) {
	nw := chain(t, 1, 2)
	require.NoError(t, nw.AddNode(5, network.Coord{Row: 5}))
	require.NoError(t, nw.AddNode(6, network.Coord{Row: 6}))
	_, err := nw.Connect(5, 6, 1)
	require.NoError(t, err)

	r, err := laplace.EffectiveResistance(nw, 0, 2)
	require.NoError(t, err)
	require.InEpsilon(t, 3.0, r, 1e-12)
}
