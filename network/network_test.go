package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ohmgrid/network"
)

type NetworkSuite struct {
	suite.Suite
	nw *network.Network
}

// SetupTest builds a path 0-1-2-3 with unit resistors.
func (s *NetworkSuite) SetupTest() {
	s.nw = network.New()
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.nw.AddNode(network.NodeID(i), network.Coord{Row: 0, Col: i}))
	}
	for i := 0; i < 3; i++ {
		_, err := s.nw.Connect(network.NodeID(i), network.NodeID(i+1), 1)
		s.Require().NoError(err)
	}
}

func (s *NetworkSuite) TestAddNodeIdempotent() {
	require := require.New(s.T())
	require.NoError(s.nw.AddNode(0, network.Coord{Row: 0, Col: 0}))
	require.Equal(4, s.nw.NodeCount())

	err := s.nw.AddNode(0, network.Coord{Row: 9, Col: 9})
	require.ErrorIs(err, network.ErrNodeExists)
}

func (s *NetworkSuite) TestConnectMergesInParallel() {
	require := require.New(s.T())
	e, err := s.nw.Connect(1, 0, 1)
	require.NoError(err)
	require.Equal(network.NodeID(0), e.From)
	require.Equal(network.NodeID(1), e.To)
	require.InDelta(0.5, e.Weight, 1e-15)
	require.Equal(3, s.nw.EdgeCount(), "a merge must not add an edge")
	require.Equal(1, s.nw.Degree(0))
}

func (s *NetworkSuite) TestConnectRejects() {
	require := require.New(s.T())
	cases := []struct {
		name string
		a, b network.NodeID
		w    float64
		err  error
	}{
		{"Zero", 0, 2, 0, network.ErrBadWeight},
		{"Negative", 0, 2, -1, network.ErrBadWeight},
		{"NaN", 0, 2, math.NaN(), network.ErrBadWeight},
		{"Inf", 0, 2, math.Inf(1), network.ErrBadWeight},
		{"SelfLoop", 2, 2, 1, network.ErrSelfLoop},
		{"Missing", 0, 42, 1, network.ErrNodeNotFound},
	}
	for _, tc := range cases {
		_, err := s.nw.Connect(tc.a, tc.b, tc.w)
		require.ErrorIs(err, tc.err, tc.name)
	}
	require.Equal(3, s.nw.EdgeCount())
	require.NoError(s.nw.Validate())
}

func (s *NetworkSuite) TestRemoveNode() {
	require := require.New(s.T())
	require.NoError(s.nw.RemoveNode(1))
	require.False(s.nw.HasNode(1))
	require.False(s.nw.HasEdge(0, 1))
	require.Equal(0, s.nw.Degree(0))
	require.Equal(-1, s.nw.Degree(1))
	require.Equal(1, s.nw.EdgeCount())
	require.Equal([]network.NodeID{0, 2, 3}, s.nw.Nodes())
	require.ErrorIs(s.nw.RemoveNode(1), network.ErrNodeNotFound)
	require.NoError(s.nw.Validate())
}

func (s *NetworkSuite) TestTerminalsAndProbe() {
	require := require.New(s.T())
	require.NoError(s.nw.SetTerminals(3, 0))
	a, b, ok := s.nw.Terminals()
	require.True(ok)
	require.Equal(network.NodeID(0), a)
	require.Equal(network.NodeID(3), b)
	require.True(s.nw.IsTerminal(3))
	require.Equal(4, s.nw.EdgeCount())

	probe, ok := s.nw.Edge(0, 3)
	require.True(ok)
	require.True(probe.Open)

	// The first merge assigns the weight, the next one combines in parallel.
	e, err := s.nw.Connect(0, 3, 3)
	require.NoError(err)
	require.False(e.Open)
	require.Equal(3.0, e.Weight)
	e, err = s.nw.Connect(3, 0, 6)
	require.NoError(err)
	require.InDelta(2.0, e.Weight, 1e-15)

	require.ErrorIs(s.nw.SetTerminals(1, 2), network.ErrTerminalsSet)
}

func (s *NetworkSuite) TestNodesOfDegreeSkipsTerminals() {
	require := require.New(s.T())
	require.Equal([]network.NodeID{1, 2}, s.nw.NodesOfDegree(2))
	require.Equal([]network.NodeID{0, 3}, s.nw.NodesOfDegree(1))

	require.NoError(s.nw.SetTerminals(0, 3))
	require.Equal([]network.NodeID{1, 2}, s.nw.NodesOfDegree(2))
	require.Empty(s.nw.NodesOfDegree(1))
}

func (s *NetworkSuite) TestCloneIsDeep() {
	require := require.New(s.T())
	c := s.nw.Clone()
	_, err := s.nw.Connect(0, 1, 1)
	require.NoError(err)
	require.NoError(s.nw.RemoveNode(3))

	e, ok := c.Edge(0, 1)
	require.True(ok)
	require.Equal(1.0, e.Weight)
	require.True(c.HasNode(3))
	require.Equal(3, c.EdgeCount())
	require.NoError(c.Validate())
}

func (s *NetworkSuite) TestSignature() {
	require := require.New(s.T())
	before := s.nw.Signature()
	require.Equal(before, s.nw.Clone().Signature())

	_, err := s.nw.Connect(0, 1, 1)
	require.NoError(err)
	require.NotEqual(before, s.nw.Signature())
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

// TestSignature_RelabelInvariant checks that two isomorphic paths with
// different ids share a signature.
func TestSignature_RelabelInvariant(t *testing.T) {
	build := func(ids ...network.NodeID) *network.Network {
		nw := network.New()
		for i, id := range ids {
			require.NoError(t, nw.AddNode(id, network.Coord{Col: i}))
		}
		_, err := nw.Connect(ids[0], ids[1], 2)
		require.NoError(t, err)
		_, err = nw.Connect(ids[1], ids[2], 5)
		require.NoError(t, err)

		return nw
	}
	require.Equal(t, build(0, 1, 2).Signature(), build(10, 7, 3).Signature())
}

func TestIncidentOrder(t *testing.T) {
	nw := network.New()
	for i := 0; i < 4; i++ {
		require.NoError(t, nw.AddNode(network.NodeID(i), network.Coord{Col: i}))
	}
	for _, v := range []network.NodeID{3, 1, 2} {
		_, err := nw.Connect(0, v, float64(v))
		require.NoError(t, err)
	}
	inc, err := nw.Incident(0)
	require.NoError(t, err)
	require.Len(t, inc, 3)
	for i, e := range inc {
		require.Equal(t, network.NodeID(i+1), e.Other(0))
		require.Equal(t, float64(i+1), e.Weight)
	}
	_, err = nw.Incident(9)
	require.ErrorIs(t, err, network.ErrNodeNotFound)
}
