// SPDX-License-Identifier: MIT
// Package bfs provides the breadth-first discovery order used to seed the
// initial bipartition: starting from one node of the pairwise adjacency
// graph, vertices are visited in non-decreasing distance from the start,
// and partition.Initial splits the resulting order at the halfway mark
// into the two sides.
package bfs

import (
	"errors"
	"fmt"

	"github.com/jaschutte/aigfm/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Result holds the outcome of a traversal: the vertices in visit order,
// each vertex's distance in edges from the start, and its predecessor in
// the BFS tree (absent for the start vertex).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// BFS walks g breadth-first from startID and returns the discovery
// order. Only the component containing startID is visited; vertices in
// other components are left to the caller (partition.Initial sweeps them
// up with a dfs.Forest pass).
//
// Determinism: core.Graph.NeighborIDs returns sorted vertex IDs, so the
// visit sequence is reproducible for the same graph.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, startID string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := len(g.Vertices())
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	queue := make([]string, 0, n)
	queue = append(queue, startID)
	res.Depth[startID] = 0

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, nb := range neighbors {
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = res.Depth[id] + 1
			res.Parent[nb] = id
			queue = append(queue, nb)
		}
	}

	return res, nil
}
