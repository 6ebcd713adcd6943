package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// climateSpan is the number of noise feature cycles across one map edge, so
// climate regions scale with map size instead of cell count.
const climateSpan = 4.0

// Climate samples temperature and moisture fields used to assign biome types.
// Both fields are deterministic functions of the seed.
type Climate struct {
	temp  opensimplex.Noise
	moist opensimplex.Noise
	dim   int
}

// NewClimate derives two independent noise fields from the seed.
func NewClimate(seed int64, dim int) *Climate {
	if dim < 1 {
		dim = 1
	}
	return &Climate{
		temp:  opensimplex.NewNormalized(seed),
		moist: opensimplex.NewNormalized(seed + 1),
		dim:   dim,
	}
}

// Temperature returns the warmth at (x, y) in [0, 1]. The noise field is
// blended with a latitude band peaking at the map equator and cooled by
// elevation.
func (c *Climate) Temperature(x, y int, elevation float64) float64 {
	n := c.octaves(c.temp, x, y)
	lat := 1.0
	if c.dim > 1 {
		lat = 1 - math.Abs(2*float64(y)/float64(c.dim-1)-1)
	}
	return n*0.6 + lat*0.3 + (1-elevation)*0.1
}

// Moisture returns the rainfall level at (x, y) in [0, 1].
func (c *Climate) Moisture(x, y int) float64 {
	return c.octaves(c.moist, x, y)
}

func (c *Climate) octaves(n opensimplex.Noise, x, y int) float64 {
	fx := float64(x) * climateSpan / float64(c.dim)
	fy := float64(y) * climateSpan / float64(c.dim)

	total := 0.0
	amplitude := 1.0
	norm := 0.0
	freq := 1.0
	for i := 0; i < 3; i++ {
		total += n.Eval2(fx*freq, fy*freq) * amplitude
		norm += amplitude
		amplitude *= 0.5
		freq *= 2
	}
	return total / norm
}
