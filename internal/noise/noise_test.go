package noise

import "testing"

func TestFractalDeterministic(t *testing.T) {
	a := NewFractal(99, 4, 32)
	b := NewFractal(99, 4, 32)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("samples diverge at (%d,%d)", x, y)
			}
		}
	}
}

func TestFractalRangeAndVariation(t *testing.T) {
	f := NewFractal(7, 4, 16)
	min, max := 1.0, 0.0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := f.At(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("sample %v at (%d,%d) outside [0,1]", v, x, y)
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if max-min < 0.1 {
		t.Fatalf("field is nearly constant: min %v max %v", min, max)
	}
}

func TestFractalSeedsDiffer(t *testing.T) {
	a := NewFractal(1, 4, 32)
	b := NewFractal(2, 4, 32)
	same := 0
	for i := 0; i < 32; i++ {
		if a.At(i, i) == b.At(i, i) {
			same++
		}
	}
	if same == 32 {
		t.Fatalf("seeds 1 and 2 produced identical fields")
	}
}

func TestClimateDeterministic(t *testing.T) {
	a := NewClimate(5, 64)
	b := NewClimate(5, 64)
	for i := 0; i < 64; i++ {
		if a.Temperature(i, i, 0.5) != b.Temperature(i, i, 0.5) {
			t.Fatalf("temperature diverges at (%d,%d)", i, i)
		}
		if a.Moisture(i, i) != b.Moisture(i, i) {
			t.Fatalf("moisture diverges at (%d,%d)", i, i)
		}
	}
}

func TestClimateLatitudeBand(t *testing.T) {
	const dim = 64
	c := NewClimate(11, dim)
	var equator, pole float64
	for x := 0; x < dim; x++ {
		equator += c.Temperature(x, dim/2, 0.5)
		pole += c.Temperature(x, 0, 0.5)
	}
	// The latitude term contributes up to 0.3 at the equator and nothing at
	// the map edge, which dominates the averaged noise difference.
	if equator <= pole {
		t.Fatalf("equator rows should run warmer: equator %v pole %v", equator, pole)
	}
}

func TestClimateElevationCools(t *testing.T) {
	c := NewClimate(11, 64)
	low := c.Temperature(10, 32, 0.1)
	high := c.Temperature(10, 32, 0.9)
	if high >= low {
		t.Fatalf("higher ground should be cooler: low %v high %v", low, high)
	}
}

func TestClimateSingleCell(t *testing.T) {
	c := NewClimate(3, 1)
	v := c.Temperature(0, 0, 0)
	if v < 0 || v > 1.1 {
		t.Fatalf("unexpected temperature %v", v)
	}
	if m := c.Moisture(0, 0); m < 0 || m > 1 {
		t.Fatalf("unexpected moisture %v", m)
	}
}
