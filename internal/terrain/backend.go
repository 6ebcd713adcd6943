package terrain

import (
	"terramap/internal/core"
	"terramap/pkg/rng"
)

// Backend builds a dim x dim elevation field in [0, 1] from the shared
// random source.
type Backend func(dim int, src *rng.Source) *core.FloatGrid

var backends = map[string]Backend{}

// RegisterBackend adds a heightfield backend under the provided name.
func RegisterBackend(name string, b Backend) {
	if name == "" || b == nil {
		return
	}
	backends[name] = b
}

// Backends exposes the registry of available heightfield backends.
func Backends() map[string]Backend {
	return backends
}
