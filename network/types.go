// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, Coord, Edge, Network, sentinel errors and the New constructor.

package network

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Sentinel errors for network operations.
var (
	// ErrNodeNotFound indicates an operation referenced a missing node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrNodeExists indicates a node ID is already bound to another coordinate.
	ErrNodeExists = errors.New("network: node already exists with a different coordinate")

	// ErrSelfLoop indicates an edge or contraction would join a node to itself.
	ErrSelfLoop = errors.New("network: self-loop not allowed")

	// ErrBadWeight indicates a resistance that is not strictly positive and finite.
	ErrBadWeight = errors.New("network: resistance must be positive and finite")

	// ErrTerminalsSet indicates SetTerminals was called twice.
	ErrTerminalsSet = errors.New("network: terminals already set")

	// ErrCorrupt indicates Validate found a broken internal invariant.
	ErrCorrupt = errors.New("network: invariant violated")
)

// NodeID is the stable arena identity of a node.
type NodeID int

// Coord is the grid coordinate label of a node.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(r,c)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Edge is an undirected resistor between From and To.
//
// Edges returned by the Network are copies with From < To. Open marks the
// terminal probe before any branch was merged into it; its Weight is zero and
// it contributes no conductance.
type Edge struct {
	From, To NodeID
	Weight   float64
	Open     bool
}

// Other returns the endpoint opposite to id.
func (e Edge) Other(id NodeID) NodeID {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Network is a weighted undirected simple graph keyed by NodeID.
type Network struct {
	// catalog is NodeID → Coord ordered by NodeID.
	catalog *treemap.Map

	// adj[a][b] and adj[b][a] point to the same *Edge.
	adj map[NodeID]map[NodeID]*Edge

	edgeCount int

	terminals    [2]NodeID
	hasTerminals bool
}

// New returns an empty Network.
// Complexity: O(1).
func New() *Network {
	return &Network{
		catalog: treemap.NewWith(nodeIDComparator),
		adj:     make(map[NodeID]map[NodeID]*Edge),
	}
}

// nodeIDComparator orders catalog keys numerically.
func nodeIDComparator(a, b interface{}) int {
	return utils.IntComparator(int(a.(NodeID)), int(b.(NodeID)))
}

// orderedPair returns (a, b) with the smaller id first.
func orderedPair(a, b NodeID) (NodeID, NodeID) {
	if a > b {
		return b, a
	}

	return a, b
}
