// SPDX-License-Identifier: MIT
// Package fixtures builds synthetic module.Module values directly from
// builder-generated graph topologies, bypassing aiger/netlist entirely.
// It exists so partition tests can exercise FM on shapes whose hypernet
// structure is known in closed form (a chain has a minimum cut of one
// net, a ring has two, a star's cut depends only on which side the hub
// lands on, a clique has none smaller than its balanced split) without
// hand-writing an AIGER literal for every case.
//
// Every fixture treats each builder-emitted edge as its own two-member
// hypernet — one AND2-sized gate per vertex, one hypernet per edge — and
// re-keys the builder-constructed topology onto a fresh core.Graph whose
// vertex IDs are the decimal node indices, the same convention
// module.FromNetlist uses (partition.Initial depends on it to seed BFS
// from vertex "0" and map IDs back to node indices).
package fixtures

import (
	"sort"
	"strconv"

	"github.com/jaschutte/aigfm/builder"
	"github.com/jaschutte/aigfm/core"
	"github.com/jaschutte/aigfm/module"
	"github.com/jaschutte/aigfm/netlist"
)

// nodeArea is the fixed footprint every fixture node carries: one AND2
// gate, matching the heaviest primitive module.FromNetlist ever emits.
var nodeArea = (&netlist.Gate{Kind: netlist.KindAnd2}).Area()

// Chain returns a Module whose n nodes form a simple path: node i shares a
// hypernet with node i+1 for i in [0, n-2]. Requires n >= 2.
func Chain(n int) (*module.Module, error) {
	return fromTopology(builder.Path(n))
}

// Ring returns a Module whose n nodes form a simple cycle: node i shares a
// hypernet with node (i+1)%n. Requires n >= 3.
func Ring(n int) (*module.Module, error) {
	return fromTopology(builder.Cycle(n))
}

// Star returns a Module with one hub node (index 0) and n-1 leaves, each
// leaf sharing a distinct hypernet with the hub. Requires n >= 2.
func Star(n int) (*module.Module, error) {
	return fromTopology(builder.Star(n))
}

// Clique returns a Module whose n nodes are pairwise fully connected: every
// distinct pair shares its own hypernet. Requires n >= 1.
func Clique(n int) (*module.Module, error) {
	return fromTopology(builder.Complete(n))
}

// fromTopology runs ctor over a fresh unweighted core.Graph and lifts the
// resulting topology into a Module.
func fromTopology(ctor builder.Constructor) (*module.Module, error) {
	g, err := builder.BuildGraph(nil, nil, ctor)
	if err != nil {
		return nil, err
	}
	return fromGraph(g)
}

// fromGraph lifts an arbitrary simple core.Graph into a Module: one node
// per vertex (renumbered densely from 0, hub-first so Star's reserved
// "Center" ID always lands on node 0), one two-member hypernet per edge,
// and a re-keyed copy of the topology as Pairwise.
func fromGraph(g *core.Graph) (*module.Module, error) {
	ordered := orderedVertexIDs(g)
	ids := make(map[string]module.NodeID, len(ordered))
	for i, v := range ordered {
		ids[v] = module.NodeID(i)
	}

	pairwise := core.NewGraph(core.WithMultiEdges())
	nodes := make([]*module.Node, len(ordered))
	for i, v := range ordered {
		id := module.NodeID(i)
		nodes[i] = &module.Node{
			ID:    id,
			Gate:  netlist.GateID(id),
			Area:  nodeArea,
			Label: v,
		}
		if err := pairwise.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			nodes[i].Neighbors = append(nodes[i].Neighbors, ids[nb])
		}
	}

	var rawEdges []*module.Hypernet
	incidence := make([][]*module.Hypernet, len(nodes))
	for i, e := range g.Edges() {
		members := []module.NodeID{ids[e.From], ids[e.To]}
		hn := &module.Hypernet{ID: i, NetID: netlist.NetID(i), Members: members}
		rawEdges = append(rawEdges, hn)
		for _, m := range members {
			incidence[m] = append(incidence[m], hn)
		}
		from := strconv.Itoa(int(members[0]))
		to := strconv.Itoa(int(members[1]))
		if _, err := pairwise.AddEdge(from, to, 0); err != nil {
			return nil, err
		}
	}

	return &module.Module{
		Nodes:     nodes,
		Pairwise:  pairwise,
		RawEdges:  rawEdges,
		Incidence: incidence,
	}, nil
}

// orderedVertexIDs returns g's vertices with the reserved Star hub ID (if
// present) first, followed by the remaining decimal-ID vertices in
// ascending numeric order.
func orderedVertexIDs(g *core.Graph) []string {
	vertices := g.Vertices()
	rest := make([]string, 0, len(vertices))
	hasHub := false
	for _, v := range vertices {
		if v == builder.CenterVertexID {
			hasHub = true
			continue
		}
		rest = append(rest, v)
	}
	sort.Slice(rest, func(i, j int) bool {
		a, _ := strconv.Atoi(rest[i])
		b, _ := strconv.Atoi(rest[j])
		return a < b
	})
	if hasHub {
		return append([]string{builder.CenterVertexID}, rest...)
	}
	return rest
}
