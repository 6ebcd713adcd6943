package render

import (
	"image/color"

	"terramap/internal/terrain"
)

// Compose fills buf with the finished map: land tinted by elevation, then
// every layer painted over it in draw order. buf must hold 4*dim*dim bytes.
func Compose(buf []byte, t *terrain.Terrain) {
	ComposeLayers(buf, t, nil)
}

// ComposeLayers is Compose restricted to the layers show reports true for.
// A nil show draws everything.
func ComposeLayers(buf []byte, t *terrain.Terrain, show func(terrain.Kind) bool) {
	fillElevationRGBA(buf, t.Heightmap())
	for _, l := range t.DrawLayers() {
		if show != nil && !show(l.Kind) {
			continue
		}
		fillLayerRGBA(buf, l)
	}
}

// fillElevationRGBA converts the elevation field into RGBA pixels in buf.
func fillElevationRGBA(buf []byte, h *terrain.Heightmap) {
	dim := h.Dim()
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			base := (y*dim + x) * 4
			col := ElevationColor(h.Elevation(x, y))
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// fillLayerRGBA paints the layer's member cells over buf, leaving the rest
// untouched.
func fillLayerRGBA(buf []byte, l *terrain.Layer) {
	for i, c := range l.Category.Cells() {
		col, ok := CategoryColor(l.Kind, c)
		if !ok {
			continue
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// The single-layer viewer uses it to show one layer in isolation.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
