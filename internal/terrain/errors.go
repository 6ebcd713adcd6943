package terrain

import (
	"errors"
	"fmt"
)

// DimensionError reports a requested map dimension outside the accepted
// range. It is returned before any grid is allocated.
type DimensionError struct {
	Dim int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid map dimension %d (want 1..%d)", e.Dim, MaxDim)
}

// ConfigError reports an unusable configuration value, such as an unknown
// heightfield backend. It is returned before any grid is allocated.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %q", e.Field, e.Value)
}

// LayerError records a layer whose placement constraints could not be met on
// the generated terrain. It is a warning: generation continues and the layer
// stays empty.
type LayerError struct {
	Kind   Kind
	Reason string
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("%s layer left empty: %s", e.Kind, e.Reason)
}

// ErrNonDeterminism is returned by Verify when regenerating from the same
// configuration does not reproduce the original fingerprint.
var ErrNonDeterminism = errors.New("terrain: regeneration diverged from original")
