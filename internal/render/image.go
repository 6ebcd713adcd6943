package render

import (
	"image"
	"image/png"
	"io"

	"terramap/internal/terrain"
)

// Overview renders the terrain into a new RGBA image, each cell drawn as a
// scale x scale block.
func Overview(t *terrain.Terrain, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	dim := t.Dim()
	buf := make([]byte, 4*dim*dim)
	Compose(buf, t)

	img := image.NewRGBA(image.Rect(0, 0, dim*scale, dim*scale))
	for y := 0; y < dim*scale; y++ {
		for x := 0; x < dim*scale; x++ {
			src := ((y/scale)*dim + x/scale) * 4
			dst := img.PixOffset(x, y)
			copy(img.Pix[dst:dst+4], buf[src:src+4])
		}
	}
	return img
}

// WritePNG encodes the terrain overview into w.
func WritePNG(w io.Writer, t *terrain.Terrain, scale int) error {
	return png.Encode(w, Overview(t, scale))
}
