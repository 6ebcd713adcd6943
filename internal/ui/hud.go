//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	warnColor   = color.RGBA{R: 230, G: 170, B: 80, A: 255}
)

var helpLines = []string{
	"[1-5] toggle layer",
	"[l]   isolate layers",
	"[e]   elevation overlay",
	"[r]   regenerate",
	"[s]   new seed",
	"[q]   quit",
}

// HUD renders the status panel to the right of the map view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Draw paints the panel anchored at offsetX spanning the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, st Status) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	line := func(s string, col color.RGBA) {
		text.Draw(h.panel, s, face, panelPadding, y, col)
		y += lineHeight
	}

	line("Map View", headerColor)
	y += sectionGap
	line(fmt.Sprintf("seed    %d", st.Seed), textColor)
	line(fmt.Sprintf("dim     %d", st.Dim), textColor)
	line(fmt.Sprintf("backend %s", st.Backend), textColor)
	y += sectionGap

	line("layers", headerColor)
	for i, layer := range st.Layers {
		col := textColor
		state := "on"
		if !layer.Visible {
			col = mutedColor
			state = "off"
		}
		line(fmt.Sprintf("%d %-6s %s", i+1, layer.Name, state), col)
	}
	y += sectionGap

	if st.Isolated != "" {
		line("isolated "+st.Isolated, headerColor)
	}
	if st.Overlay {
		line("elevation overlay", headerColor)
	}
	for _, w := range st.Warnings {
		line(w, warnColor)
	}
	y += sectionGap

	for _, s := range helpLines {
		line(s, mutedColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	sectionGap     = 8
)
