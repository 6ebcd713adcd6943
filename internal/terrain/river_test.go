package terrain

import (
	"slices"
	"testing"

	"terramap/internal/core"
	"terramap/pkg/rng"
)

// slopeHeightmap falls from 1.0 at the west edge by 0.2 per column, so the
// x=4 column of a 5x5 map sits at 0.2.
func slopeHeightmap(dim int) *Heightmap {
	levels := make([]float64, dim*dim)
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			levels[y*dim+x] = 1.0 - 0.2*float64(x)
		}
	}
	return testHeightmap(dim, levels)
}

func TestRiverRunsDownhillToCoast(t *testing.T) {
	h := slopeHeightmap(5)
	p := DefaultConfig().Params
	p.SeaLevel = 0.25
	p.MinSeaSize = 1
	p.MountainLevel = 0.95
	p.RiverDensity = 0
	p.MinRiverSources = 1
	sea := genSea(h, p)

	l, rivers, warn := genRivers(h, sea, p, rng.New(3))
	if warn != nil {
		t.Fatalf("unexpected warning: %v", warn)
	}
	if len(rivers) != 1 {
		t.Fatalf("want a single river, got %d", len(rivers))
	}
	r := rivers[0]
	if r.ID != 1 {
		t.Fatalf("first river id = %d, want 1", r.ID)
	}
	if len(r.Path) != 4 {
		t.Fatalf("path length = %d, want 4", len(r.Path))
	}
	y := r.Path[0].Y
	for i, pt := range r.Path {
		if pt.X != i || pt.Y != y {
			t.Fatalf("path[%d] = %v, want (%d,%d)", i, pt, i, y)
		}
		if l.Category.At(pt.X, pt.Y) != 1 {
			t.Fatalf("path cell %v not marked on the grid", pt)
		}
	}
	for i := 1; i < len(r.Path); i++ {
		a, b := r.Path[i-1], r.Path[i]
		if h.Elevation(b.X, b.Y) >= h.Elevation(a.X, a.Y) {
			t.Fatalf("elevation must strictly fall along the path, step %d", i)
		}
	}
	if sea.Category.At(4, y) != Water {
		t.Fatal("mouth should sit next to water")
	}
	if l.Category.At(4, y) != 0 {
		t.Fatal("river must stop on land, not enter the sea")
	}
}

func TestRiverEndsAtLocalMinimum(t *testing.T) {
	levels := []float64{
		1.0, 0.5, 0.7,
		0.6, 0.8, 0.9,
		0.9, 0.9, 0.9,
	}
	h := testHeightmap(3, levels)
	p := DefaultConfig().Params
	p.SeaLevel = 0.05
	p.MountainLevel = 0.95
	p.RiverDensity = 0
	p.MinRiverSources = 1
	sea := genSea(h, p)

	_, rivers, warn := genRivers(h, sea, p, rng.New(1))
	if warn != nil {
		t.Fatalf("unexpected warning: %v", warn)
	}
	if len(rivers) != 1 {
		t.Fatalf("want one river, got %d", len(rivers))
	}
	want := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if !slices.Equal(rivers[0].Path, want) {
		t.Fatalf("path = %v, want %v (kept in place at the pit)", rivers[0].Path, want)
	}
}

func TestRiverConfluenceOnTouch(t *testing.T) {
	levels := []float64{
		1.0, 0.9, 0.8,
		1.0, 0.5, 0.8,
		1.0, 0.9, 0.8,
	}
	h := testHeightmap(3, levels)
	g := core.NewByteGrid(3, 3)
	for y := 0; y < 3; y++ {
		g.Set(2, y, 1)
	}
	sea := core.NewByteGrid(3, 3)

	path := traceRiver(g, h, sea, core.Point{X: 0, Y: 1}, 2)
	want := []core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}
	if !slices.Equal(path, want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	if g.At(1, 1) != 2 {
		t.Fatal("confluence cell keeps the joining river's id")
	}
	if g.At(2, 1) != 1 {
		t.Fatal("the river joined must keep its own id")
	}
}

func TestRiverSourceMustBeClear(t *testing.T) {
	h := flatHeightmap(3, 0.9)
	g := core.NewByteGrid(3, 3)
	g.Set(1, 1, 1)
	sea := core.NewByteGrid(3, 3)

	if traceRiver(g, h, sea, core.Point{X: 1, Y: 1}, 2) != nil {
		t.Fatal("occupied cell cannot source a river")
	}
	if traceRiver(g, h, sea, core.Point{X: 1, Y: 0}, 2) != nil {
		t.Fatal("cell bordering a river cannot source one")
	}
	if g.At(1, 0) != 0 {
		t.Fatal("rejected source must leave the grid untouched")
	}

	path := traceRiver(g, h, sea, core.Point{X: 0, Y: 0}, 2)
	if len(path) != 1 {
		t.Fatalf("flat ground river should end at its source, got %v", path)
	}
}

func TestRiverWarningWithoutMountains(t *testing.T) {
	h := flatHeightmap(4, 0.5)
	p := DefaultConfig().Params
	p.SeaLevel = 0.05
	p.MountainLevel = 0.95
	sea := genSea(h, p)

	l, rivers, warn := genRivers(h, sea, p, rng.New(1))
	if warn == nil || warn.Kind != KindRiver {
		t.Fatalf("want a river layer warning, got %v", warn)
	}
	if rivers != nil {
		t.Fatalf("no rivers expected, got %d", len(rivers))
	}
	if len(l.Tiles) != 16 {
		t.Fatal("empty layer should still be normalized")
	}
}

func TestRiverIDsSequential(t *testing.T) {
	// Every row of the west column is a candidate source, but sources next
	// to an existing river are disqualified, so two or three rivers survive
	// depending on trace order.
	h := slopeHeightmap(5)
	p := DefaultConfig().Params
	p.SeaLevel = 0.25
	p.MinSeaSize = 1
	p.MountainLevel = 0.95
	p.RiverDensity = 1
	p.MinRiverSources = 1
	sea := genSea(h, p)

	_, rivers, warn := genRivers(h, sea, p, rng.New(8))
	if warn != nil {
		t.Fatalf("unexpected warning: %v", warn)
	}
	if len(rivers) < 2 || len(rivers) > 3 {
		t.Fatalf("want 2 or 3 surviving rivers, got %d", len(rivers))
	}
	for i, r := range rivers {
		if int(r.ID) != i+1 {
			t.Fatalf("river %d has id %d, want ids sequential from 1", i, r.ID)
		}
	}
}
