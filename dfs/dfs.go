// SPDX-License-Identifier: MIT
// Package dfs provides the depth-first forest traversal partition.Initial
// uses to reach nodes the BFS seed never discovers: Forest visits every
// vertex of the pairwise adjacency graph exactly once, restarting from
// each still-unvisited vertex in sorted order, so disconnected components
// are covered deterministically.
package dfs

import (
	"errors"
	"fmt"

	"github.com/jaschutte/aigfm/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Result holds the outcome of a traversal: vertices in the order they are
// popped from the walk's stack, each vertex's predecessor in its tree
// (absent for tree roots), and the visited set. A vertex is marked visited
// and given its Parent when it is first pushed, so on graphs with cycles
// Order and Parent can differ from a recursive depth-first pre-order.
type Result struct {
	Order   []string
	Parent  map[string]string
	Visited map[string]bool
}

// DFS walks the component containing startID depth-first and returns its
// discovery order.
func DFS(g *core.Graph, startID string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	res := newResult(len(g.Vertices()))
	if err := walk(g, startID, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Forest walks the whole graph depth-first, restarting from each
// unvisited vertex in core.Graph.Vertices order, so every vertex appears
// in Order exactly once no matter how many components g has. An empty
// graph yields an empty Result.
func Forest(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	res := newResult(len(vertices))
	for _, v := range vertices {
		if res.Visited[v] {
			continue
		}
		if err := walk(g, v, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func newResult(n int) *Result {
	return &Result{
		Order:   make([]string, 0, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
}

// walk runs one iterative depth-first tree from root, appending each
// newly discovered vertex to res.Order.
func walk(g *core.Graph, root string, res *Result) error {
	stack := []string{root}
	res.Visited[root] = true

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Order = append(res.Order, id)

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		// Push in reverse so the lexicographically first neighbor is
		// explored first; the visit sequence stays deterministic.
		for i := len(neighbors) - 1; i >= 0; i-- {
			nb := neighbors[i]
			if res.Visited[nb] {
				continue
			}
			res.Visited[nb] = true
			res.Parent[nb] = id
			stack = append(stack, nb)
		}
	}
	return nil
}
