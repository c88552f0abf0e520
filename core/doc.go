// Package core provides the thread-safe graph type shared by the bfs,
// dfs, and builder packages: vertices and edges keyed by string ID, an
// adjacency index, and the functional options (WithDirected, WithWeighted,
// WithMultiEdges, WithLoops) that govern which edges AddEdge accepts.
//
// It is a deliberately small slice of a larger graph library: only the
// construction, mutation, and neighbor-query surface that bfs, dfs, and
// builder actually call.
package core
