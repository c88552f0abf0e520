// SPDX-License-Identifier: MIT
// build.go — FromNetlist, the netlist.Netlist → Module lifter.
//
// Algorithm:
//  1. One Node per gate, in gate order, carrying the gate's fixed area.
//  2. For every net with two or more incident gates, materialise one
//     Hypernet shared by reference across every member's incidence list
//     and the flat RawEdges list.
//  3. For every such net, connect every pair of its member nodes in the
//     pairwise adjacency graph. Two gates sharing several nets legitimately
//     receive several parallel edges — this is tolerated, not deduplicated:
//     the adjacency graph exists only to seed the initial bipartition,
//     never to compute gain.
package module

import (
	"sort"
	"strconv"

	"github.com/jaschutte/aigfm/core"
	"github.com/jaschutte/aigfm/netlist"
)

// FromNetlist builds a Module from a fully constructed Netlist.
func FromNetlist(nl *netlist.Netlist) (*Module, error) {
	if nl == nil {
		return nil, ErrNilNetlist
	}

	m := &Module{
		Netlist:   nl,
		Nodes:     make([]*Node, len(nl.Gates)),
		Incidence: make([][]*Hypernet, len(nl.Gates)),
	}

	pairwise := core.NewGraph(core.WithMultiEdges())
	m.Pairwise = pairwise

	for i, g := range nl.Gates {
		m.Nodes[i] = &Node{
			ID:    NodeID(i),
			Gate:  g.ID,
			Area:  g.Area(),
			Label: g.Label,
		}
		if err := pairwise.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}

	for _, n := range nl.Nets {
		members := uniqueSortedNodeIDs(n.Binds)
		if len(members) < 2 {
			continue
		}

		hn := &Hypernet{ID: len(m.RawEdges), NetID: n.ID, Members: members}
		m.RawEdges = append(m.RawEdges, hn)
		for _, nid := range members {
			m.Incidence[nid] = append(m.Incidence[nid], hn)
		}

		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				from := strconv.Itoa(int(members[i]))
				to := strconv.Itoa(int(members[j]))
				if _, err := pairwise.AddEdge(from, to, 0); err != nil {
					return nil, err
				}
			}
		}
	}

	for i, node := range m.Nodes {
		edges, err := pairwise.Neighbors(strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		node.Neighbors = make([]NodeID, 0, len(edges))
		for _, e := range edges {
			other := e.To
			if other == strconv.Itoa(i) {
				other = e.From
			}
			v, err := strconv.Atoi(other)
			if err != nil {
				return nil, err
			}
			node.Neighbors = append(node.Neighbors, NodeID(v))
		}
	}

	return m, nil
}

// uniqueSortedNodeIDs converts gate handles bound on a net into the
// deduplicated, ascending-sorted set of node IDs that participate in the
// resulting hypernet. A gate appears more than once in a net's Binds when
// two of its pins sit on that net (for example both AND2 inputs use the
// same literal); dedup collapses such repeats into one member.
func uniqueSortedNodeIDs(binds []netlist.GateID) []NodeID {
	seen := make(map[NodeID]bool, len(binds))
	out := make([]NodeID, 0, len(binds))
	for _, gid := range binds {
		nid := NodeID(gid)
		if seen[nid] {
			continue
		}
		seen[nid] = true
		out = append(out, nid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
