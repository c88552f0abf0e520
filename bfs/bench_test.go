// SPDX-License-Identifier: MIT
package bfs_test

import (
	"strconv"
	"testing"

	"github.com/jaschutte/aigfm/bfs"
	"github.com/jaschutte/aigfm/core"
)

// BenchmarkBFS_Chain measures the discovery walk on a linear chain, the
// deepest queue a connected pairwise graph of this size can produce.
func BenchmarkBFS_Chain(b *testing.B) {
	const n = 10000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0")
	}
}

// BenchmarkBFS_Star measures the widest frontier: one hub adjacent to
// every other vertex, the shape a heavily shared net induces.
func BenchmarkBFS_Star(b *testing.B) {
	const n = 10000
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		_, _ = g.AddEdge("0", strconv.Itoa(i), 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0")
	}
}
