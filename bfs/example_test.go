// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/jaschutte/aigfm/bfs"
	"github.com/jaschutte/aigfm/core"
)

// ExampleBFS shows the discovery order partition seeding consumes: the
// start vertex first, then its direct neighbors, then theirs.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("0", "1", 0)
	g.AddEdge("0", "2", 0)
	g.AddEdge("1", "3", 0)
	g.AddEdge("2", "3", 0)

	res, _ := bfs.BFS(g, "0")
	fmt.Println(res.Order)
	// Output:
	// [0 1 2 3]
}
