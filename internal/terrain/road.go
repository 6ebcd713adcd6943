package terrain

import (
	"container/heap"
	"math"

	"terramap/internal/core"
	"terramap/pkg/rng"
	"terramap/pkg/tile"
)

// genRoads connects random city pairs with least-cost paths over the
// terrain. Rivers are crossable only where they run straight, at bridge
// cost; the sea is impassable.
func genRoads(h *Heightmap, sea, river, biome *Layer, cities []City, p Params, src *rng.Source) (*Layer, *LayerError) {
	dim := h.Dim()
	l := newLayer(KindRoad, dim)

	if len(cities) < 2 {
		l.normalize()
		return l, &LayerError{Kind: KindRoad, Reason: "fewer than two cities"}
	}

	cost := roadCostField(dim, sea, river, biome, p)
	for i := 0; i < len(cities)/2; i++ {
		a := src.IntN(len(cities))
		b := src.IntN(len(cities) - 1)
		if b >= a {
			b++
		}
		connectCities(l.Category, h, cost, cities[a], cities[b], p)
	}

	l.normalize()
	return l, nil
}

// roadCostField builds the per-cell movement cost used for road pathing.
func roadCostField(dim int, sea, river, biome *Layer, p Params) *core.FloatGrid {
	f := core.NewFloatGrid(dim, dim)
	inf := math.Inf(1)
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			w := 1.0
			if sea.Category.At(x, y) == Water {
				w = inf
			}
			switch biome.Category.At(x, y) {
			case Desert:
				w += p.DesertCost
			case Forest:
				w += p.ForestCost
			}
			if river.Category.At(x, y) != 0 {
				switch river.LineAt(x, y) {
				case tile.LineNS, tile.LineWE:
					w = p.BridgeCost
				default:
					w = inf
				}
			}
			f.Set(x, y, w)
		}
	}
	return f
}

// pqItem is one queue entry: a cell and its tentative distance.
type pqItem struct {
	d    float64
	x, y int
}

// roadQueue orders entries by (distance, x, y) so equal distances pop in a
// fixed order.
type roadQueue []pqItem

func (q roadQueue) Len() int { return len(q) }

func (q roadQueue) Less(i, j int) bool {
	if q[i].d != q[j].d {
		return q[i].d < q[j].d
	}
	if q[i].x != q[j].x {
		return q[i].x < q[j].x
	}
	return q[i].y < q[j].y
}

func (q roadQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *roadQueue) Push(v any) { *q = append(*q, v.(pqItem)) }

func (q *roadQueue) Pop() any {
	old := *q
	n := len(old)
	v := old[n-1]
	*q = old[:n-1]
	return v
}

// connectCities runs Dijkstra from a to b over the cost field and marks the
// traced route. Stepping onto an existing road costs a low flat rate, which
// pulls new routes onto old ones; otherwise the step pays the target cell's
// cost plus a slope penalty.
func connectCities(g *core.ByteGrid, h *Heightmap, cost *core.FloatGrid, a, b City, p Params) {
	dim := g.W
	inf := math.Inf(1)
	dist := core.NewFloatGrid(dim, dim)
	cells := dist.Cells()
	for i := range cells {
		cells[i] = inf
	}
	dist.Set(a.X, a.Y, 0)

	q := &roadQueue{{d: 0, x: a.X, y: a.Y}}
	for q.Len() > 0 {
		it := heap.Pop(q).(pqItem)
		if it.d > dist.At(it.x, it.y) {
			continue
		}
		if it.x == b.X && it.y == b.Y {
			break
		}
		for _, e := range core.Edge4 {
			nx, ny := it.x+e.X, it.y+e.Y
			if !g.InBounds(nx, ny) {
				continue
			}
			var d float64
			if g.At(nx, ny) != 0 {
				d = it.d + p.RoadStepCost
			} else {
				slope := math.Abs(h.Elevation(it.x, it.y)-h.Elevation(nx, ny)) * p.SlopeCost
				d = it.d + cost.At(nx, ny) + slope
			}
			if d < dist.At(nx, ny) {
				dist.Set(nx, ny, d)
				heap.Push(q, pqItem{d: d, x: nx, y: ny})
			}
		}
	}

	if math.IsInf(dist.At(b.X, b.Y), 1) {
		// No route on this map; islands are normal.
		return
	}

	// Walk home along descending distances, to the minimum neighbor at each
	// step (first in north, east, south, west order on ties).
	x, y := b.X, b.Y
	g.Set(x, y, 1)
	for d := dist.At(x, y); d > 0; {
		bx, by := x, y
		for _, e := range core.Edge4 {
			nx, ny := x+e.X, y+e.Y
			if g.InBounds(nx, ny) && dist.At(nx, ny) < d {
				d = dist.At(nx, ny)
				bx, by = nx, ny
			}
		}
		x, y = bx, by
		g.Set(x, y, 1)
	}
}
