package terrain

import (
	"terramap/internal/core"
	"terramap/pkg/rng"
)

// River is one traced watercourse: the id it writes into the category grid
// and its ordered path from source to terminus.
type River struct {
	ID   uint8
	Path []core.Point
}

// genRivers picks sources among mountain cells and traces each downhill.
// River ids are assigned in trace order starting at 1 and capped at 255.
func genRivers(h *Heightmap, sea *Layer, p Params, src *rng.Source) (*Layer, []River, *LayerError) {
	dim := h.Dim()
	l := newLayer(KindRiver, dim)

	var pool []core.Point
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if h.IsAbove(x, y, p.MountainLevel) {
				pool = append(pool, core.Point{X: x, Y: y})
			}
		}
	}
	if len(pool) == 0 {
		l.normalize()
		return l, nil, &LayerError{Kind: KindRiver, Reason: "no cells at or above mountain level"}
	}

	n := int(float64(len(pool)) * p.RiverDensity)
	if n < p.MinRiverSources {
		n = p.MinRiverSources
	}
	if n > len(pool) {
		n = len(pool)
	}
	src.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	var rivers []River
	for _, s := range pool[:n] {
		id := len(rivers) + 1
		if id > 255 {
			break
		}
		if path := traceRiver(l.Category, h, sea.Category, s, uint8(id)); path != nil {
			rivers = append(rivers, River{ID: uint8(id), Path: path})
		}
	}

	l.normalize()
	if len(rivers) == 0 {
		return l, nil, &LayerError{Kind: KindRiver, Reason: "no qualifying river source"}
	}
	return l, rivers, nil
}

// traceRiver follows the steepest strict descent from start, ending at the
// coast, at a confluence with an earlier river, or in place at a local
// minimum. It returns the marked path, or nil when the source cell does not
// qualify.
func traceRiver(g *core.ByteGrid, h *Heightmap, sea *core.ByteGrid, start core.Point, id uint8) []core.Point {
	// A source must claim fresh ground clear of every existing river.
	if g.At(start.X, start.Y) != 0 {
		return nil
	}
	for _, d := range core.Edge4 {
		nx, ny := start.X+d.X, start.Y+d.Y
		if g.InBounds(nx, ny) && g.At(nx, ny) != 0 {
			return nil
		}
	}

	var path []core.Point
	x, y := start.X, start.Y
	for {
		// Touching another river makes this cell the confluence.
		if joinsOther(g, x, y, id) {
			g.Set(x, y, id)
			return append(path, core.Point{X: x, Y: y})
		}
		g.Set(x, y, id)
		path = append(path, core.Point{X: x, Y: y})

		// Steepest strictly descending eligible neighbor; ties go to the
		// earlier direction in north, east, south, west order.
		bestX, bestY := -1, -1
		bestElev := h.Elevation(x, y)
		for _, d := range core.Edge4 {
			nx, ny := x+d.X, y+d.Y
			if !g.InBounds(nx, ny) || !stepOK(g, nx, ny, id) {
				continue
			}
			if e := h.Elevation(nx, ny); e < bestElev {
				bestElev = e
				bestX, bestY = nx, ny
			}
		}
		if bestX < 0 {
			// Local minimum or boxed in: the river ends here.
			return path
		}
		if sea.At(bestX, bestY) == Water {
			// Reached the coast: the current cell is the mouth.
			return path
		}
		x, y = bestX, bestY
	}
}

// stepOK reports whether a river may flow onto (x, y): the cell must not
// already belong to this river and at most one of its edge neighbors may,
// which keeps the path from folding against itself.
func stepOK(g *core.ByteGrid, x, y int, id uint8) bool {
	if g.At(x, y) == id {
		return false
	}
	n := 0
	for _, d := range core.Edge4 {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) && g.At(nx, ny) == id {
			n++
		}
	}
	return n <= 1
}

func joinsOther(g *core.ByteGrid, x, y int, id uint8) bool {
	for _, d := range core.Edge4 {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) {
			if v := g.At(nx, ny); v != 0 && v != id {
				return true
			}
		}
	}
	return false
}
