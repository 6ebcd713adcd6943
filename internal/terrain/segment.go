package terrain

import "terramap/internal/core"

// segment is a 4-connected group of cells matched by a predicate.
type segment struct {
	cells []core.Point
}

func (s segment) centroid() core.Point {
	var sx, sy int
	for _, p := range s.cells {
		sx += p.X
		sy += p.Y
	}
	n := len(s.cells)
	return core.Point{X: sx / n, Y: sy / n}
}

// findSegments labels 4-connected regions of cells matching pred, scanning
// in row-major order, and returns those of at least minSize cells.
func findSegments(dim int, pred func(x, y int) bool, minSize int) []segment {
	seen := make([]bool, dim*dim)
	var out []segment
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if seen[y*dim+x] || !pred(x, y) {
				continue
			}
			var cells []core.Point
			work := []core.Point{{X: x, Y: y}}
			seen[y*dim+x] = true
			for len(work) > 0 {
				p := work[len(work)-1]
				work = work[:len(work)-1]
				cells = append(cells, p)
				for _, d := range core.Edge4 {
					nx, ny := p.X+d.X, p.Y+d.Y
					if nx < 0 || nx >= dim || ny < 0 || ny >= dim {
						continue
					}
					if seen[ny*dim+nx] || !pred(nx, ny) {
						continue
					}
					seen[ny*dim+nx] = true
					work = append(work, core.Point{X: nx, Y: ny})
				}
			}
			if len(cells) >= minSize {
				out = append(out, segment{cells: cells})
			}
		}
	}
	return out
}
