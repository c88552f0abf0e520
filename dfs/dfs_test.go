// SPDX-License-Identifier: MIT
package dfs_test

import (
	"testing"

	"github.com/jaschutte/aigfm/core"
	"github.com/jaschutte/aigfm/dfs"
	"github.com/stretchr/testify/require"
)

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "0")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Forest(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = dfs.DFS(g, "missing")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0"))

	res, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, res.Order)
	require.True(t, res.Visited["0"])
	_, hasParent := res.Parent["0"]
	require.False(t, hasParent, "tree root has no parent")
}

// TestDFS_DepthBeforeBreadth verifies the walk is actually depth-first:
// from a branching vertex, the first neighbor's whole subtree precedes
// the second neighbor.
func TestDFS_DepthBeforeBreadth(t *testing.T) {
	// 0 branches to 1 and 2; 3 hangs off 1.
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "1"}, {"0", "2"}, {"1", "3"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	res, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "3", "2"}, res.Order)
	require.Equal(t, "1", res.Parent["3"])
}

func TestDFS_OnlyStartComponent(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("0", "1", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("2", "3", 0)
	require.NoError(t, err)

	res, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, res.Order)
	require.False(t, res.Visited["2"])
}

// TestForest_CoversAllComponents verifies the property partition.Initial
// relies on: every vertex appears in Order exactly once, even across
// disconnected components.
func TestForest_CoversAllComponents(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("0", "1", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("2", "3", 0)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("4")) // isolated vertex, third component

	res, err := dfs.Forest(g)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2", "3", "4"}, res.Order)

	seen := make(map[string]int)
	for _, id := range res.Order {
		seen[id]++
	}
	for _, v := range g.Vertices() {
		require.Equal(t, 1, seen[v], "vertex %s must appear exactly once", v)
		require.True(t, res.Visited[v])
	}

	// Each component's root was discovered without a parent.
	for _, root := range []string{"0", "2", "4"} {
		_, hasParent := res.Parent[root]
		require.False(t, hasParent, "component root %s has no parent", root)
	}
}

func TestForest_EmptyGraph(t *testing.T) {
	res, err := dfs.Forest(core.NewGraph())
	require.NoError(t, err)
	require.Empty(t, res.Order)
}

// TestForest_ParallelEdgesVisitOnce covers the multigraph case the
// pairwise adjacency produces when two gates share several nets.
func TestForest_ParallelEdgesVisitOnce(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, err := g.AddEdge("0", "1", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", 0)
	require.NoError(t, err)

	res, err := dfs.Forest(g)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, res.Order)
}

func TestForest_DeterministicAcrossRuns(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"4", "2"}, {"0", "1"}, {"2", "3"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	first, err := dfs.Forest(g)
	require.NoError(t, err)
	second, err := dfs.Forest(g)
	require.NoError(t, err)
	require.Equal(t, first.Order, second.Order)
}
