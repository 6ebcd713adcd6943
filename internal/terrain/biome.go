package terrain

import (
	"terramap/internal/noise"
	"terramap/pkg/rng"
)

// genBiomes marks desert and forest regions in the elevation band between
// coast and mountains. Each surviving segment takes one type, chosen by the
// climate fields sampled at the segment centroid.
func genBiomes(h *Heightmap, sea, river *Layer, p Params, src *rng.Source) (*Layer, *LayerError) {
	dim := h.Dim()
	l := newLayer(KindBiome, dim)
	g := l.Category

	lo := p.SeaLevel + p.BiomeDelta
	hi := p.MountainLevel - p.BiomeDelta
	candidate := func(x, y int) bool {
		e := h.Elevation(x, y)
		if e <= lo || e >= hi {
			return false
		}
		if river.Category.At(x, y) != 0 || sea.Category.At(x, y) != 0 {
			return false
		}
		// Beaches stay bare: no biome within one cell of sea water.
		for _, pt := range h.Neighbors8(x, y) {
			if sea.Category.At(pt.X, pt.Y) == Water {
				return false
			}
		}
		return true
	}

	climate := noise.NewClimate(int64(src.Uint64()), dim)

	segs := findSegments(dim, candidate, p.MinBiomeSize)
	if len(segs) == 0 {
		l.normalize()
		return l, &LayerError{Kind: KindBiome, Reason: "no segment in the biome band"}
	}
	for _, s := range segs {
		c := s.centroid()
		temp := climate.Temperature(c.X, c.Y, h.Elevation(c.X, c.Y))
		cat := Forest
		if temp > p.DesertTemp && climate.Moisture(c.X, c.Y) < p.DesertMoisture {
			cat = Desert
		}
		for _, pt := range s.cells {
			g.Set(pt.X, pt.Y, cat)
		}
	}

	l.normalize()
	return l, nil
}
