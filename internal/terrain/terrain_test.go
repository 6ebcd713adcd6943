package terrain

import (
	"errors"
	"slices"
	"testing"
	"time"

	"terramap/pkg/tile"
)

func TestGenerateDeterministic(t *testing.T) {
	for _, backend := range []string{"diamond", "perlin"} {
		cfg := DefaultConfig()
		cfg.Dim = 48
		cfg.Seed = 42
		cfg.Backend = backend

		a, err := GenerateWithConfig(cfg)
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		b, err := GenerateWithConfig(cfg)
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		if a.Fingerprint() != b.Fingerprint() {
			t.Fatalf("%s: fingerprints differ across identical runs", backend)
		}
		if !slices.Equal(a.heightmap.grid.Cells(), b.heightmap.grid.Cells()) {
			t.Fatalf("%s: heightmaps differ", backend)
		}
		for k := range a.layers {
			la, lb := a.layers[k], b.layers[k]
			if !slices.Equal(la.Category.Cells(), lb.Category.Cells()) {
				t.Fatalf("%s: %v category grids differ", backend, Kind(k))
			}
			if !slices.Equal(la.Tiles, lb.Tiles) {
				t.Fatalf("%s: %v tile grids differ", backend, Kind(k))
			}
			if !slices.Equal(la.Lines, lb.Lines) {
				t.Fatalf("%s: %v line grids differ", backend, Kind(k))
			}
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, err := Generate(1, 48)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(2, 48)
	if err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatal("different seeds should produce different maps")
	}
}

func TestGenerateLayersComplete(t *testing.T) {
	for _, dim := range []int{1, 7, 16, 33} {
		tr, err := Generate(5, dim)
		if err != nil {
			t.Fatalf("dim %d: %v", dim, err)
		}
		if tr.Dim() != dim || tr.Heightmap().Dim() != dim {
			t.Fatalf("dim %d: size mismatch", dim)
		}
		if got := len(tr.Layers()); got != 5 {
			t.Fatalf("dim %d: %d layers", dim, got)
		}
		for _, l := range tr.Layers() {
			if len(l.Tiles) != dim*dim {
				t.Fatalf("dim %d: %v layer has %d tiles", dim, l.Kind, len(l.Tiles))
			}
			switch l.Kind {
			case KindRiver, KindRoad:
				if len(l.Lines) != dim*dim {
					t.Fatalf("dim %d: %v layer missing line codes", dim, l.Kind)
				}
			default:
				if l.Lines != nil {
					t.Fatalf("dim %d: %v layer should not carry line codes", dim, l.Kind)
				}
			}
		}
		want := []Kind{KindSea, KindRiver, KindBiome, KindRoad, KindCity}
		for i, l := range tr.DrawLayers() {
			if l.Kind != want[i] {
				t.Fatalf("draw position %d = %v, want %v", i, l.Kind, want[i])
			}
		}
	}
}

func TestGenerateInvalidDimension(t *testing.T) {
	for _, dim := range []int{0, -4, MaxDim + 1} {
		tr, err := Generate(1, dim)
		if tr != nil {
			t.Fatalf("dim %d: want nil terrain", dim)
		}
		var derr *DimensionError
		if !errors.As(err, &derr) {
			t.Fatalf("dim %d: error = %v, want a dimension error", dim, err)
		}
		if derr.Dim != dim {
			t.Fatalf("dim %d: error carries dim %d", dim, derr.Dim)
		}
	}
}

func TestGenerateUnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "plasma"
	tr, err := GenerateWithConfig(cfg)
	if tr != nil {
		t.Fatal("want nil terrain")
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want a config error", err)
	}
	if cerr.Field != "backend" || cerr.Value != "plasma" {
		t.Fatalf("config error = %+v", cerr)
	}
}

func TestGenerateSingleCell(t *testing.T) {
	tr, err := Generate(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range tr.Layers() {
		if len(l.Tiles) != 1 {
			t.Fatalf("%v layer has %d tiles", l.Kind, len(l.Tiles))
		}
		if c := l.TileAt(0, 0); c != tile.Solid && c != tile.Empty {
			t.Fatalf("%v tile = %v, want solid or empty", l.Kind, c)
		}
	}
}

func TestGenerateWarningsOnFloodedMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dim = 24
	cfg.Params.SeaLevel = 1
	cfg.Params.MountainLevel = 2

	tr, err := GenerateWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Layer(KindSea).Category.Count(Water); got != 24*24 {
		t.Fatalf("want the whole map under water, got %d cells", got)
	}
	kinds := make(map[Kind]bool)
	for _, w := range tr.Warnings() {
		kinds[w.Kind] = true
	}
	for _, k := range []Kind{KindRiver, KindBiome, KindCity, KindRoad} {
		if !kinds[k] {
			t.Fatalf("want a %v warning on an all-sea map, got %v", k, tr.Warnings())
		}
	}
}

func TestVerifyReproducibility(t *testing.T) {
	tr, err := Generate(11, 32)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Verify(); err != nil {
		t.Fatalf("regeneration diverged: %v", err)
	}
}

func TestGenerateObservedStages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dim = 16

	var stages []string
	_, err := GenerateObserved(cfg, func(stage string, d time.Duration) {
		stages = append(stages, stage)
		if d < 0 {
			t.Fatalf("stage %s reported a negative duration", stage)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"heightmap", "sea", "river", "biome", "city", "road"}
	if !slices.Equal(stages, want) {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
}

func TestLayerAccessor(t *testing.T) {
	tr, err := Generate(3, 16)
	if err != nil {
		t.Fatal(err)
	}
	if l := tr.Layer(KindBiome); l == nil || l.Kind != KindBiome {
		t.Fatal("layer accessor returned the wrong layer")
	}
	if tr.Layer(Kind(9)) != nil {
		t.Fatal("out-of-range kind should yield nil")
	}
}

func TestGeneratedRiversAndCities(t *testing.T) {
	tr, err := Generate(1337, 128)
	if err != nil {
		t.Fatal(err)
	}
	h := tr.Heightmap()
	river := tr.Layer(KindRiver)
	for _, r := range tr.Rivers() {
		if len(r.Path) == 0 {
			t.Fatalf("river %d has an empty path", r.ID)
		}
		for _, pt := range r.Path {
			if river.Category.At(pt.X, pt.Y) == 0 {
				t.Fatalf("river %d path cell %v not on the grid", r.ID, pt)
			}
		}
		for i := 1; i < len(r.Path); i++ {
			a, b := r.Path[i-1], r.Path[i]
			if h.Elevation(b.X, b.Y) >= h.Elevation(a.X, a.Y) {
				t.Fatalf("river %d rises at step %d", r.ID, i)
			}
		}
	}

	sea := tr.Layer(KindSea)
	city := tr.Layer(KindCity)
	for _, c := range tr.Cities() {
		if city.Category.At(c.X, c.Y) != 1 {
			t.Fatalf("city %v missing from the grid", c)
		}
		if sea.Category.At(c.X, c.Y) != 0 {
			t.Fatalf("city %v stands in the sea", c)
		}
		if river.Category.At(c.X, c.Y) != 0 {
			t.Fatalf("city %v stands in a river", c)
		}
	}
}

func TestGeneratedRoadsAvoidWater(t *testing.T) {
	tr, err := Generate(7, 96)
	if err != nil {
		t.Fatal(err)
	}
	sea := tr.Layer(KindSea)
	river := tr.Layer(KindRiver)
	road := tr.Layer(KindRoad)
	for y := 0; y < tr.Dim(); y++ {
		for x := 0; x < tr.Dim(); x++ {
			if road.Category.At(x, y) == 0 {
				continue
			}
			if sea.Category.At(x, y) == Water {
				t.Fatalf("road runs into the sea at (%d,%d)", x, y)
			}
			if river.Category.At(x, y) != 0 {
				if lc := river.LineAt(x, y); lc != tile.LineNS && lc != tile.LineWE {
					t.Fatalf("bridge on a bent river cell at (%d,%d)", x, y)
				}
			}
		}
	}
}
