package terrain

import (
	"terramap/internal/core"
	"terramap/pkg/tile"
)

// Kind identifies one of the five generated layers.
type Kind uint8

const (
	KindSea Kind = iota
	KindRiver
	KindBiome
	KindCity
	KindRoad
)

var kindNames = [...]string{"sea", "river", "biome", "city", "road"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Category values written into layer grids. River grids hold per-river ids
// instead; city and road grids mark occupied cells with 1.
const (
	Water  uint8 = 1
	Desert uint8 = 1
	Forest uint8 = 2
)

// Layer is one generated map stratum: a category grid plus the tile codes
// derived from it. The path-shaped layers (river, road) also carry line
// codes. A layer is immutable once normalized.
type Layer struct {
	Kind     Kind
	Category *core.ByteGrid
	Tiles    []tile.Code
	Lines    []tile.LineCode
}

func newLayer(kind Kind, dim int) *Layer {
	return &Layer{Kind: kind, Category: core.NewByteGrid(dim, dim)}
}

// normalize derives the tile grids from the finished category grid.
func (l *Layer) normalize() {
	g := l.Category
	member := func(x, y int) bool { return g.At(x, y) != 0 }
	l.Tiles = tile.Normalize(g.W, g.H, member)
	if l.Kind == KindRiver || l.Kind == KindRoad {
		l.Lines = tile.NormalizeLine(g.W, g.H, member)
	}
}

// TileAt returns the solid-family code at (x, y).
func (l *Layer) TileAt(x, y int) tile.Code {
	return l.Tiles[y*l.Category.W+x]
}

// LineAt returns the line-family code at (x, y). It is only meaningful for
// the river and road layers.
func (l *Layer) LineAt(x, y int) tile.LineCode {
	return l.Lines[y*l.Category.W+x]
}
