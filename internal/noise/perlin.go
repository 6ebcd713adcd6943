// Package noise provides the deterministic field samplers behind heightmap
// backends and climate assignment.
package noise

import "github.com/aquilax/go-perlin"

// Fractal layers Perlin octaves into a single sample per grid cell.
type Fractal struct {
	noise   *perlin.Perlin
	octaves int
	scale   float64
}

// NewFractal builds a Perlin stack for the given seed. Scale sets the size of
// the largest features in cells; each further octave doubles the frequency at
// half the amplitude.
func NewFractal(seed int64, octaves int, scale float64) *Fractal {
	if octaves < 1 {
		octaves = 1
	}
	if scale <= 0 {
		scale = 1
	}
	return &Fractal{
		noise:   perlin.NewPerlin(2, 2, 3, seed),
		octaves: octaves,
		scale:   scale,
	}
}

// At samples the stack at cell (x, y) and maps the result into [0, 1].
func (f *Fractal) At(x, y int) float64 {
	fx := float64(x) / f.scale
	fy := float64(y) / f.scale

	total := 0.0
	amplitude := 1.0
	norm := 0.0
	freq := 1.0
	for i := 0; i < f.octaves; i++ {
		total += f.noise.Noise2D(fx*freq, fy*freq) * amplitude
		norm += amplitude
		amplitude *= 0.5
		freq *= 2
	}

	v := (total/norm + 1) / 2
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}
