// SPDX-License-Identifier: MIT
// Package module flattens a netlist.Netlist into the partitioner's view of
// the circuit: one Node per gate, a pairwise adjacency graph (for BFS/DFS
// seeding), and a hypernet incidence (for FM gain computation).
//
// Node order matches gate order in the netlist: node i corresponds to
// gate i (load-bearing for dereferencing gate handles as
// node-array indices).
package module

import (
	"github.com/jaschutte/aigfm/core"
	"github.com/jaschutte/aigfm/netlist"
)

// NodeID is a zero-based handle into Module.Nodes, identical in value to
// the netlist.GateID of the gate it represents.
type NodeID int

// Node is the partitioner's view of a gate.
type Node struct {
	ID    NodeID
	Gate  netlist.GateID
	Area  int
	Label string

	// Neighbors is the derived pairwise adjacency: one entry per shared
	// net-membership, not deduplicated (two gates sharing several nets
	// legitimately produce repeated entries; this list backs only
	// BFS/DFS seeding, never gain computation).
	Neighbors []NodeID

	// Fixed is mutable scratch state used during a single FM pass; it is
	// reset to false at the start of every pass.
	Fixed bool
}

// Hypernet is a hyperedge: the set of two or more distinct nodes that are
// all electrically on the same net. Hypernets are immutable once built and
// are shared by reference across every member's incidence list and the
// Module's flat RawEdges — there is exactly one allocation per hypernet.
type Hypernet struct {
	ID      int
	NetID   netlist.NetID
	Members []NodeID
}

// Module owns the node array, the pairwise adjacency graph, and the
// hypernet incidence built from one netlist.Netlist. It is logically
// immutable after FromNetlist returns.
type Module struct {
	Netlist *netlist.Netlist

	Nodes []*Node

	// Pairwise is the derived, symmetric adjacency graph used only to seed
	// the initial bipartition. Vertex IDs are the decimal
	// string form of NodeID. Parallel edges are permitted (WithMultiEdges)
	// because two gates may share more than one net.
	Pairwise *core.Graph

	// RawEdges is the flat list of every hypernet with >= 2 members, in
	// net-construction order.
	RawEdges []*Hypernet

	// Incidence maps each node to the hypernets it participates in, in
	// RawEdges order. Entries alias RawEdges members — no copies.
	Incidence [][]*Hypernet
}

// Area sums the fixed physical footprint of every node's gate.
func (m *Module) Area() int {
	total := 0
	for _, n := range m.Nodes {
		total += n.Area
	}
	return total
}

// MaxNodeArea returns the largest single node's Area, or 0 for an empty
// Module. Used to derive AreaBounds.
func (m *Module) MaxNodeArea() int {
	max := 0
	for _, n := range m.Nodes {
		if n.Area > max {
			max = n.Area
		}
	}
	return max
}
