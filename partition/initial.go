// SPDX-License-Identifier: MIT
// initial.go — Initial, the BFS-seeded starting bipartition.
//
// A breadth-first traversal from node 0 visits nodes in discovery order;
// while the visit index is at most floor(N/2), the node goes to R, beyond
// that threshold to L. Nodes no BFS from a single root can reach — other
// connected components — are resolved by a depth-first forest pass that
// visits every remaining node and round-robins them onto L/R, so every
// node ends up on exactly one side even when the graph is disconnected.
package partition

import (
	"strconv"

	"github.com/jaschutte/aigfm/bfs"
	"github.com/jaschutte/aigfm/dfs"
	"github.com/jaschutte/aigfm/module"
)

// Initial builds the starting Partition for m.
func Initial(m *module.Module) (*Partition, error) {
	n := len(m.Nodes)
	if n == 0 {
		return nil, ErrEmptyModule
	}

	p := &Partition{
		Module: m,
		all:    m.Nodes,
		index:  make(map[module.NodeID]int, n),
		data:   PartitionData{side: make([]Side, n)},
	}
	for i, node := range m.Nodes {
		p.index[node.ID] = i
	}

	assigned := make([]bool, n)
	half := n / 2

	res, err := bfs.BFS(m.Pairwise, "0")
	if err != nil {
		return nil, err
	}
	for i, idStr := range res.Order {
		nid, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, err
		}
		assigned[nid] = true
		if i <= half {
			p.data.side[nid] = SideR
		} else {
			p.data.side[nid] = SideL
		}
	}

	full, err := dfs.Forest(m.Pairwise)
	if err != nil {
		return nil, err
	}
	next := SideL
	for _, idStr := range full.Order {
		nid, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, err
		}
		if assigned[nid] {
			continue
		}
		assigned[nid] = true
		p.data.side[nid] = next
		next = next.Other()
	}

	for nid := range m.Nodes {
		if p.data.side[nid] == SideL {
			p.data.areaLeft += m.Nodes[nid].Area
		}
	}

	return p, nil
}
