//go:build ebiten

package render

import (
	"image/color"

	"terramap/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from terrain data and draws it
// scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit composes the visible layers over the elevation base and draws the
// result. A nil show draws every layer.
func (gp *GridPainter) Blit(dst *ebiten.Image, t *terrain.Terrain, show func(terrain.Kind) bool, scale int) {
	if t.Dim() != gp.w || t.Dim() != gp.h {
		return
	}
	ComposeLayers(gp.buf, t, show)
	gp.upload(dst, scale)
}

// BlitMask draws a single layer's cells as a flat two-color image, for
// inspecting one layer in isolation.
func (gp *GridPainter) BlitMask(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.upload(dst, scale)
}

func (gp *GridPainter) upload(dst *ebiten.Image, scale int) {
	gp.img.ReplacePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
