package terrain

import (
	"terramap/internal/core"
	"terramap/internal/noise"
	"terramap/pkg/rng"
)

// Heightmap holds the elevation field the layers are generated against.
// Elevations are normalized to [0, 1]. The field is immutable once built.
type Heightmap struct {
	grid *core.FloatGrid
}

func newHeightmap(dim int, backend string, src *rng.Source) *Heightmap {
	return &Heightmap{grid: backends[backend](dim, src)}
}

// Dim returns the side length of the square field.
func (h *Heightmap) Dim() int { return h.grid.W }

// Cells returns the elevations in row-major order. The slice is shared with
// the heightmap and must not be modified.
func (h *Heightmap) Cells() []float64 { return h.grid.Cells() }

// Elevation returns the level at (x, y).
func (h *Heightmap) Elevation(x, y int) float64 { return h.grid.At(x, y) }

// IsAbove reports whether the cell lies at or above the threshold.
func (h *Heightmap) IsAbove(x, y int, threshold float64) bool {
	return h.grid.At(x, y) >= threshold
}

// Gradient returns the elevation slope at (x, y) by central finite
// difference, one-sided at the map border.
func (h *Heightmap) Gradient(x, y int) (dx, dy float64) {
	g := h.grid
	x0, x1 := x-1, x+1
	if x0 < 0 {
		x0 = x
	}
	if x1 >= g.W {
		x1 = x
	}
	y0, y1 := y-1, y+1
	if y0 < 0 {
		y0 = y
	}
	if y1 >= g.H {
		y1 = y
	}
	if x1 > x0 {
		dx = (g.At(x1, y) - g.At(x0, y)) / float64(x1-x0)
	}
	if y1 > y0 {
		dy = (g.At(x, y1) - g.At(x, y0)) / float64(y1-y0)
	}
	return dx, dy
}

// Neighbors4 returns the in-bounds edge neighbors of (x, y) in north, east,
// south, west order.
func (h *Heightmap) Neighbors4(x, y int) []core.Point {
	out := make([]core.Point, 0, 4)
	for _, d := range core.Edge4 {
		nx, ny := x+d.X, y+d.Y
		if h.grid.InBounds(nx, ny) {
			out = append(out, core.Point{X: nx, Y: ny})
		}
	}
	return out
}

// Neighbors8 returns the in-bounds edge and diagonal neighbors of (x, y),
// edges first.
func (h *Heightmap) Neighbors8(x, y int) []core.Point {
	out := make([]core.Point, 0, 8)
	for _, d := range core.Edge4 {
		nx, ny := x+d.X, y+d.Y
		if h.grid.InBounds(nx, ny) {
			out = append(out, core.Point{X: nx, Y: ny})
		}
	}
	for _, d := range core.Diag4 {
		nx, ny := x+d.X, y+d.Y
		if h.grid.InBounds(nx, ny) {
			out = append(out, core.Point{X: nx, Y: ny})
		}
	}
	return out
}

// diamondField runs midpoint displacement on the smallest 2^k+1 lattice
// covering dim, crops the result and stretches levels to span [0, 1].
func diamondField(dim int, src *rng.Source) *core.FloatGrid {
	n := 1
	for n < dim-1 {
		n *= 2
	}
	side := n + 1
	f := core.NewFloatGrid(side, side)

	// Corners start in the middle half of the range so the first
	// perturbations have room in both directions.
	corner := func() float64 { return (64 + 127*src.Float64()) / 255 }
	f.Set(0, 0, corner())
	f.Set(side-1, 0, corner())
	f.Set(0, side-1, corner())
	f.Set(side-1, side-1, corner())

	amp := 1.0
	for step := n; step > 1; step /= 2 {
		half := step / 2

		for y := half; y < side; y += step {
			for x := half; x < side; x += step {
				avg := (f.At(x-half, y-half) + f.At(x+half, y-half) +
					f.At(x-half, y+half) + f.At(x+half, y+half)) / 4
				f.Set(x, y, clamp01(avg+(src.Float64()*2-1)*amp))
			}
		}

		for y := 0; y < side; y += half {
			start := 0
			if y%step == 0 {
				start = half
			}
			for x := start; x < side; x += step {
				sum := 0.0
				cnt := 0
				if x-half >= 0 {
					sum += f.At(x-half, y)
					cnt++
				}
				if x+half < side {
					sum += f.At(x+half, y)
					cnt++
				}
				if y-half >= 0 {
					sum += f.At(x, y-half)
					cnt++
				}
				if y+half < side {
					sum += f.At(x, y+half)
					cnt++
				}
				f.Set(x, y, clamp01(sum/float64(cnt)+(src.Float64()*2-1)*amp))
			}
		}

		amp *= 0.35
	}

	out := core.NewFloatGrid(dim, dim)
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			out.Set(x, y, f.At(x, y))
		}
	}
	stretch(out)
	return out
}

// perlinField samples a four-octave Perlin stack with feature size tied to
// the map dimension, then stretches levels to span [0, 1].
func perlinField(dim int, src *rng.Source) *core.FloatGrid {
	f := noise.NewFractal(int64(src.Uint64()), 4, float64(dim)/2)
	g := core.NewFloatGrid(dim, dim)
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			g.Set(x, y, f.At(x, y))
		}
	}
	stretch(g)
	return g
}

// stretch rescales the field so the minimum maps to 0 and the maximum to 1.
// Constant fields are left untouched.
func stretch(g *core.FloatGrid) {
	cells := g.Cells()
	min, max := cells[0], cells[0]
	for _, v := range cells {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max <= min {
		return
	}
	span := max - min
	for i := range cells {
		cells[i] = (cells[i] - min) / span
	}
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

func init() {
	RegisterBackend("diamond", diamondField)
	RegisterBackend("perlin", perlinField)
}
