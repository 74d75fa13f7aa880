// Package builder_test checks the topology produced by each constructor.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmgrid/builder"
	"github.com/katalvlaran/ohmgrid/network"
)

func TestGrid_Counts(t *testing.T) {
	tests := []struct {
		rows, cols   int
		wantV, wantE int
	}{
		{1, 1, 1, 0},
		{1, 4, 4, 3},
		{2, 2, 4, 4},
		{3, 4, 12, 17},
		{4, 4, 16, 24},
	}
	for _, tc := range tests {
		nw, err := builder.Build(nil, builder.Grid(tc.rows, tc.cols))
		require.NoError(t, err)
		require.Equal(t, tc.wantV, nw.NodeCount(), "%dx%d nodes", tc.rows, tc.cols)
		require.Equal(t, tc.wantE, nw.EdgeCount(), "%dx%d edges", tc.rows, tc.cols)
		require.NoError(t, nw.Validate())
	}
}

func TestGrid_LabelsAndWeights(t *testing.T) {
	nw, err := builder.Build([]builder.Option{builder.WithResistance(2.5)}, builder.Grid(3, 3))
	require.NoError(t, err)

	c, ok := nw.Coord(5)
	require.True(t, ok)
	require.Equal(t, network.Coord{Row: 1, Col: 2}, c)

	for _, e := range nw.Edges() {
		require.Equal(t, 2.5, e.Weight)
		require.False(t, e.Open)
	}
	require.True(t, nw.HasEdge(4, 5))
	require.True(t, nw.HasEdge(4, 7))
	require.False(t, nw.HasEdge(4, 8), "no diagonal resistors")
	require.Equal(t, 4, nw.Degree(4))
	require.Equal(t, 2, nw.Degree(0))
}

func TestLattice(t *testing.T) {
	for n := 1; n <= 4; n++ {
		nw, err := builder.BuildLattice(n)
		require.NoError(t, err)

		side := builder.Side(n)
		require.Equal(t, side*side, nw.NodeCount())
		require.Equal(t, 2*side*(side-1)+1, nw.EdgeCount(), "grid edges plus the probe")

		a, b, ok := nw.Terminals()
		require.True(t, ok)
		ca, _ := nw.Coord(a)
		cb, _ := nw.Coord(b)
		wantA, wantB := builder.LatticeTerminals(n)
		require.Equal(t, wantA, ca)
		require.Equal(t, wantB, cb)

		probe, ok := nw.Edge(a, b)
		require.True(t, ok)
		require.True(t, probe.Open)
	}
}

func TestLattice_RejectsBadSize(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		nw, err := builder.BuildLattice(n)
		require.ErrorIs(t, err, builder.ErrTooSmall)
		require.Nil(t, nw)
	}
}

func TestProbe_Errors(t *testing.T) {
	_, err := builder.Build(nil, builder.Grid(2, 2), builder.Probe(network.Coord{}, network.Coord{Row: 5, Col: 5}))
	require.ErrorIs(t, err, builder.ErrBadCoord)

	_, err = builder.Build(nil, builder.Grid(2, 2), builder.Probe(network.Coord{}, network.Coord{}))
	require.ErrorIs(t, err, network.ErrSelfLoop)
}

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build(nil, builder.Grid(2, 2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestGrid_IDCollision(t *testing.T) {
	same := func(r, c, cols int) network.NodeID { return 0 }
	_, err := builder.Build([]builder.Option{builder.WithIDScheme(same)}, builder.Grid(2, 2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestGrid_SeededWeights(t *testing.T) {
	opts := []builder.Option{builder.WithWeightFn(builder.UniformWeightFn(1, 5)), builder.WithSeed(42)}
	a, err := builder.Build(opts, builder.Grid(3, 3))
	require.NoError(t, err)
	b, err := builder.Build([]builder.Option{builder.WithWeightFn(builder.UniformWeightFn(1, 5)), builder.WithSeed(42)}, builder.Grid(3, 3))
	require.NoError(t, err)
	require.Equal(t, a.Signature(), b.Signature())

	for _, e := range a.Edges() {
		require.GreaterOrEqual(t, e.Weight, 1.0)
		require.Less(t, e.Weight, 5.0)
	}
}
