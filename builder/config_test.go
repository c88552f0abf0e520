// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and
// override behavior.
package builder

import "testing"

// TestNewBuilderConfig_Defaults verifies that an option-free config resolves
// to DefaultIDFn and DefaultWeightFn.
func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if got := cfg.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := cfg.weightFn(); got != DefaultEdgeWeight {
		t.Errorf("default weightFn: expected %d, got %d", DefaultEdgeWeight, got)
	}
}

// TestNewBuilderConfig_OptionOverride verifies that a BuilderOption mutates
// the resolved config and that later options override earlier ones.
func TestNewBuilderConfig_OptionOverride(t *testing.T) {
	t.Parallel()

	withIDFn := func(fn IDFn) BuilderOption {
		return func(cfg *builderConfig) { cfg.idFn = fn }
	}
	prefixed := func(idx int) string { return "v" + DefaultIDFn(idx) }

	cfg := newBuilderConfig(withIDFn(prefixed))
	if got := cfg.idFn(3); got != "v3" {
		t.Errorf("overridden idFn: expected \"v3\", got %q", got)
	}

	cfg2 := newBuilderConfig(withIDFn(prefixed), withIDFn(DefaultIDFn))
	if got := cfg2.idFn(3); got != "3" {
		t.Errorf("last option should win: expected \"3\", got %q", got)
	}
}
