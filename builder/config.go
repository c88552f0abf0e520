// Package builder provides internal configuration types for graph
// constructors. It centralizes common settings such as the vertex ID
// scheme and edge weight source to keep builder implementations DRY and
// consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds two fields:
//   - idFn:     IDFn to produce vertex identifiers from integer indices.
//   - weightFn: WeightFn to produce edge weights.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders:
//   - idFn:     function mapping index→vertex ID (IDFn).
//   - weightFn: function producing edge weights (WeightFn).
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	idFn     IDFn     // function to generate vertex IDs from indices
	weightFn WeightFn // function to generate edge weights
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: DefaultIDFn, DefaultWeightFn.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
