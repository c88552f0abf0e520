// SPDX-License-Identifier: MIT
package dfs_test

import (
	"strconv"
	"testing"

	"github.com/jaschutte/aigfm/core"
	"github.com/jaschutte/aigfm/dfs"
)

// BenchmarkForest_Chain measures the forest walk on one long component,
// the deepest stack a pairwise graph of this size can produce.
func BenchmarkForest_Chain(b *testing.B) {
	const n = 10000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Forest(g)
	}
}

// BenchmarkForest_Islands measures the restart overhead on a graph of
// nothing but two-vertex components, the disconnected extreme the forest
// walk exists for.
func BenchmarkForest_Islands(b *testing.B) {
	const pairs = 5000
	g := core.NewGraph()
	for i := 0; i < pairs; i++ {
		u := strconv.Itoa(2 * i)
		v := strconv.Itoa(2*i + 1)
		_, _ = g.AddEdge(u, v, 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Forest(g)
	}
}
