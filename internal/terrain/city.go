package terrain

import (
	"sort"

	"terramap/internal/core"
	"terramap/pkg/rng"
)

// City marks one settled cell.
type City struct {
	X, Y int
}

// genCities scores the habitable land, draws sites by weighted choice and
// thins the result to a minimum spacing. Shore and riverside cells score
// high; desert and forest cells score low.
func genCities(h *Heightmap, sea, river, biome *Layer, p Params, src *rng.Source) (*Layer, []City, *LayerError) {
	dim := h.Dim()
	l := newLayer(KindCity, dim)

	// Habitable land: 4-connected land masses big enough to support a
	// population, excluding river cells.
	support := core.NewByteGrid(dim, dim)
	land := func(x, y int) bool { return sea.Category.At(x, y) == 0 }
	for _, s := range findSegments(dim, land, p.MinSupportSize) {
		for _, pt := range s.cells {
			support.Set(pt.X, pt.Y, 1)
		}
	}

	var sites []core.Point
	var cum []float64
	total := 0.0
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if support.At(x, y) == 0 || river.Category.At(x, y) != 0 {
				continue
			}
			score := 1.0
			riverAdj, seaAdj := false, false
			for _, pt := range h.Neighbors8(x, y) {
				if river.Category.At(pt.X, pt.Y) != 0 {
					riverAdj = true
				}
				if sea.Category.At(pt.X, pt.Y) == Water {
					seaAdj = true
				}
			}
			if riverAdj {
				score += 3
			}
			if seaAdj {
				score += 3
			}
			switch biome.Category.At(x, y) {
			case Desert:
				score -= 0.9
			case Forest:
				score -= 0.5
			}
			sites = append(sites, core.Point{X: x, Y: y})
			total += score
			cum = append(cum, total)
		}
	}

	want := int(float64(len(sites)) * p.CityDensity)
	if len(sites) == 0 || want == 0 {
		l.normalize()
		return l, nil, &LayerError{Kind: KindCity, Reason: "no eligible city site"}
	}

	// Weighted choice with replacement; duplicate draws collapse on the grid.
	g := l.Category
	for i := 0; i < want; i++ {
		r := src.Float64() * total
		idx := sort.SearchFloat64s(cum, r)
		if idx >= len(sites) {
			idx = len(sites) - 1
		}
		pt := sites[idx]
		g.Set(pt.X, pt.Y, 1)
	}

	// Scan in row-major order; a city survives only if every earlier
	// survivor is farther than the spacing threshold.
	thr := dim / p.CitySpacingDiv
	if thr > p.MaxCitySpacing {
		thr = p.MaxCitySpacing
	}
	var kept []City
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if g.At(x, y) == 0 {
				continue
			}
			ok := true
			for _, c := range kept {
				dx, dy := x-c.X, y-c.Y
				if dx*dx+dy*dy <= thr*thr {
					ok = false
					break
				}
			}
			if ok {
				kept = append(kept, City{X: x, Y: y})
			} else {
				g.Set(x, y, 0)
			}
		}
	}

	l.normalize()
	return l, kept, nil
}
