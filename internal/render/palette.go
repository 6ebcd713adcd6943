package render

import (
	"image/color"
	"math"

	"terramap/internal/terrain"
)

// Draw colors for the generated layers.
var (
	SeaColor    = color.RGBA{R: 0, G: 0, B: 200, A: 255}
	RiverColor  = color.RGBA{R: 80, G: 80, B: 240, A: 255}
	DesertColor = color.RGBA{R: 230, G: 230, B: 0, A: 255}
	ForestColor = color.RGBA{R: 0, G: 125, B: 0, A: 255}
	RoadColor   = color.RGBA{R: 127, G: 0, B: 0, A: 255}
	CityColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// CategoryColor returns the draw color for a cell of the given layer kind.
// The second result is false for empty cells, which are not drawn.
func CategoryColor(k terrain.Kind, category uint8) (color.RGBA, bool) {
	if category == 0 {
		return color.RGBA{}, false
	}
	switch k {
	case terrain.KindSea:
		return SeaColor, true
	case terrain.KindRiver:
		return RiverColor, true
	case terrain.KindBiome:
		if category == terrain.Desert {
			return DesertColor, true
		}
		return ForestColor, true
	case terrain.KindCity:
		return CityColor, true
	case terrain.KindRoad:
		return RoadColor, true
	}
	return color.RGBA{}, false
}

// ElevationColor maps a normalized elevation to the land ramp, low ground
// dark green through highland tan to mountain white.
func ElevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 62, G: 110, B: 58, A: 255}},
		{0.35, color.RGBA{R: 110, G: 150, B: 80, A: 255}},
		{0.6, color.RGBA{R: 190, G: 170, B: 110, A: 255}},
		{0.85, color.RGBA{R: 150, G: 130, B: 120, A: 255}},
		{1.0, color.RGBA{R: 240, G: 240, B: 238, A: 255}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
