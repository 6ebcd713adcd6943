package terrain

import "terramap/internal/core"

// genSea builds the sea layer: water wherever elevation is at or below sea
// level, restricted to bodies connected to the map border, minus ponds
// smaller than MinSeaSize.
func genSea(h *Heightmap, p Params) *Layer {
	dim := h.Dim()
	l := newLayer(KindSea, dim)
	g := l.Category

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if h.Elevation(x, y) <= p.SeaLevel {
				g.Set(x, y, Water)
			}
		}
	}

	// Flood from the border: water not reachable from it is a landlocked
	// basin and reverts to land.
	reach := make([]bool, dim*dim)
	var work []core.Point
	push := func(x, y int) {
		if g.At(x, y) == Water && !reach[y*dim+x] {
			reach[y*dim+x] = true
			work = append(work, core.Point{X: x, Y: y})
		}
	}
	for i := 0; i < dim; i++ {
		push(i, 0)
		push(i, dim-1)
		push(0, i)
		push(dim-1, i)
	}
	for len(work) > 0 {
		pt := work[len(work)-1]
		work = work[:len(work)-1]
		for _, d := range core.Edge4 {
			nx, ny := pt.X+d.X, pt.Y+d.Y
			if nx >= 0 && nx < dim && ny >= 0 && ny < dim {
				push(nx, ny)
			}
		}
	}
	cells := g.Cells()
	for i, c := range cells {
		if c == Water && !reach[i] {
			cells[i] = 0
		}
	}

	for _, s := range findSegments(dim, func(x, y int) bool { return g.At(x, y) == Water }, 1) {
		if len(s.cells) < p.MinSeaSize {
			for _, pt := range s.cells {
				g.Set(pt.X, pt.Y, 0)
			}
		}
	}

	l.normalize()
	return l
}
