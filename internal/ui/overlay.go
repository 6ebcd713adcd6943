//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// slopeGain stretches neighbor elevation differences, which are small on a
// normalized heightmap, into the visible alpha range.
const slopeGain = 12.0

// Overlay tints the map view with a translucent elevation ramp. Steeper
// cells draw more opaque so ridgelines stand out.
type Overlay struct {
	show bool
	img  *ebiten.Image
	buf  []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles the overlay on the E key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		o.show = !o.show
	}
}

// Enabled reports whether the overlay is currently visible.
func (o *Overlay) Enabled() bool {
	return o.show
}

// Draw renders the elevation field over the map when enabled. The field
// holds one value per cell in row-major order, normalized to [0, 1].
func (o *Overlay) Draw(screen *ebiten.Image, field []float64, w, h, scale int) {
	if !o.show {
		return
	}
	total := w * h
	if total == 0 || len(field) != total {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	if o.img == nil || o.img.Bounds().Dx() != w || o.img.Bounds().Dy() != h {
		o.img = ebiten.NewImage(w, h)
		o.buf = make([]byte, 4*total)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			base := idx * 4
			col := overlayColor(clamp01(field[idx]))

			v := field[idx]
			maxDiff := 0.0
			if x > 0 {
				if diff := math.Abs(v - field[idx-1]); diff > maxDiff {
					maxDiff = diff
				}
			}
			if x+1 < w {
				if diff := math.Abs(v - field[idx+1]); diff > maxDiff {
					maxDiff = diff
				}
			}
			if y > 0 {
				if diff := math.Abs(v - field[idx-w]); diff > maxDiff {
					maxDiff = diff
				}
			}
			if y+1 < h {
				if diff := math.Abs(v - field[idx+w]); diff > maxDiff {
					maxDiff = diff
				}
			}
			slope := clamp01(maxDiff * slopeGain)
			alpha := float64(col.A) * (0.55 + 0.45*slope)

			o.buf[base+0] = col.R
			o.buf[base+1] = col.G
			o.buf[base+2] = col.B
			o.buf[base+3] = uint8(math.Round(alpha))
		}
	}

	o.img.ReplacePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}

func overlayColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
