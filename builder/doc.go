// Package builder provides reusable "functional-options"-style building
// blocks for assembling core.Graph topologies. It centralizes vertex ID
// generation, edge weight assignment, and constructor composition, keeping
// the four topology constructors DRY and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the ID scheme and weight source.
//   - Vertex-ID scheme:
//     – DefaultIDFn:    decimal strings ("0","1",…).
//   - Edge-weight source:
//     – DefaultWeightFn: constant weight DefaultEdgeWeight.
//   - Shared constants:
//     – CenterVertexID, DefaultEdgeWeight.
//   - Topology constructors (impl_*.go): Cycle, Path, Star, Complete.
//
// Guarantees:
//
//   - Idempotent configuration: re-running the same builder on a fresh
//     graph does not duplicate vertices or edges.
//   - Structured errors (ErrTooFewVertices, ErrConstructFailed) wrapped
//     with %w for errors.Is.
//   - Documented algorithmic complexity (O(n), O(n²), …) per constructor.
//
// See individual function documentation for detailed contracts, parameter
// descriptions, and performance notes.
package builder
