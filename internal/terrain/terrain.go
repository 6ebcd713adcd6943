// Package terrain generates layered 2D maps: an elevation field plus sea,
// river, biome, city and road layers, each normalized to tile codes. A run
// is a pure function of its configuration; equal seeds produce equal maps.
package terrain

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"terramap/internal/core"
	"terramap/pkg/rng"
)

// Terrain is a fully generated map. It is immutable once returned.
type Terrain struct {
	cfg Config

	heightmap *Heightmap
	layers    [5]*Layer
	rivers    []River
	cities    []City
	warnings  []*LayerError
}

// StageFunc observes pipeline progress; it receives each stage's name and
// wall-clock duration as the stage completes.
type StageFunc func(stage string, d time.Duration)

// Generate builds a terrain from a seed at the given dimension using the
// default parameters.
func Generate(seed int64, dim int) (*Terrain, error) {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Dim = dim
	return GenerateWithConfig(cfg)
}

// GenerateWithConfig builds a terrain from a full configuration.
func GenerateWithConfig(cfg Config) (*Terrain, error) {
	return generate(cfg, nil)
}

// GenerateObserved is GenerateWithConfig with a stage observer attached.
func GenerateObserved(cfg Config, observe StageFunc) (*Terrain, error) {
	return generate(cfg, observe)
}

func generate(cfg Config, observe StageFunc) (*Terrain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clock := core.NewStageClock()
	mark := func(stage string) {
		d := clock.Mark(stage)
		if observe != nil {
			observe(stage, d)
		}
	}

	src := rng.New(cfg.Seed)
	t := &Terrain{cfg: cfg}

	t.heightmap = newHeightmap(cfg.Dim, cfg.Backend, src)
	mark("heightmap")

	sea := genSea(t.heightmap, cfg.Params)
	t.layers[KindSea] = sea
	mark("sea")

	riverLayer, rivers, rerr := genRivers(t.heightmap, sea, cfg.Params, src)
	t.layers[KindRiver] = riverLayer
	t.rivers = rivers
	t.warn(rerr)
	mark("river")

	biome, berr := genBiomes(t.heightmap, sea, riverLayer, cfg.Params, src)
	t.layers[KindBiome] = biome
	t.warn(berr)
	mark("biome")

	cityLayer, cities, cerr := genCities(t.heightmap, sea, riverLayer, biome, cfg.Params, src)
	t.layers[KindCity] = cityLayer
	t.cities = cities
	t.warn(cerr)
	mark("city")

	roadLayer, derr := genRoads(t.heightmap, sea, riverLayer, biome, cities, cfg.Params, src)
	t.layers[KindRoad] = roadLayer
	t.warn(derr)
	mark("road")

	return t, nil
}

func (t *Terrain) warn(err *LayerError) {
	if err != nil {
		t.warnings = append(t.warnings, err)
	}
}

// Dim returns the side length of the map.
func (t *Terrain) Dim() int { return t.cfg.Dim }

// Seed returns the seed the map was generated from.
func (t *Terrain) Seed() int64 { return t.cfg.Seed }

// Config returns the configuration the map was generated from.
func (t *Terrain) Config() Config { return t.cfg }

// Heightmap returns the elevation field.
func (t *Terrain) Heightmap() *Heightmap { return t.heightmap }

// Layer returns the layer of the given kind.
func (t *Terrain) Layer(kind Kind) *Layer {
	if int(kind) >= len(t.layers) {
		return nil
	}
	return t.layers[kind]
}

// Layers returns the layers in generation order.
func (t *Terrain) Layers() []*Layer { return t.layers[:] }

// DrawLayers returns the layers in composition order, bottom first.
func (t *Terrain) DrawLayers() []*Layer {
	return []*Layer{
		t.layers[KindSea],
		t.layers[KindRiver],
		t.layers[KindBiome],
		t.layers[KindRoad],
		t.layers[KindCity],
	}
}

// Rivers returns every traced river in id order.
func (t *Terrain) Rivers() []River { return t.rivers }

// Cities returns the surviving city sites in row-major order.
func (t *Terrain) Cities() []City { return t.cities }

// Warnings returns the layers whose constraints could not be satisfied.
func (t *Terrain) Warnings() []*LayerError { return t.warnings }

// Fingerprint hashes the heightmap and every layer grid with FNV-1a. Two
// terrains generated from the same configuration have equal fingerprints.
func (t *Terrain) Fingerprint() uint64 {
	hsh := fnv.New64a()
	var buf [8]byte
	for _, v := range t.heightmap.grid.Cells() {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		hsh.Write(buf[:])
	}
	for _, l := range t.layers {
		hsh.Write(l.Category.Cells())
		codes := make([]byte, len(l.Tiles)+len(l.Lines))
		for i, c := range l.Tiles {
			codes[i] = byte(c)
		}
		for i, c := range l.Lines {
			codes[len(l.Tiles)+i] = byte(c)
		}
		hsh.Write(codes)
	}
	return hsh.Sum64()
}

// Verify regenerates from the same configuration and compares fingerprints.
// A mismatch means generation is not reproducible on this platform.
func (t *Terrain) Verify() error {
	again, err := GenerateWithConfig(t.cfg)
	if err != nil {
		return err
	}
	if again.Fingerprint() != t.Fingerprint() {
		return ErrNonDeterminism
	}
	return nil
}
