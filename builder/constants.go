// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults across all topology constructors.
package builder

// CenterVertexID is the identifier for the hub vertex in Star topologies,
// ensuring tests and debugging remain consistent.
const CenterVertexID = "Center"

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1
