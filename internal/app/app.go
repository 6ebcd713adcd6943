//go:build ebiten

package app

import (
	"image/color"
	"time"

	"terramap/internal/render"
	"terramap/internal/terrain"
	"terramap/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 220

var layerKeys = [...]terrain.Kind{
	terrain.KindSea,
	terrain.KindRiver,
	terrain.KindBiome,
	terrain.KindCity,
	terrain.KindRoad,
}

var toggleKeys = [...]ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
}

// Game adapts a generated map to the ebiten.Game interface.
type Game struct {
	world   *terrain.Terrain
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	visible [len(layerKeys)]bool
	isolate int

	scale int
}

// New constructs a Game presenting the provided map.
func New(world *terrain.Terrain, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	dim := world.Dim()
	g := &Game{
		world:   world,
		painter: render.NewGridPainter(dim, dim),
		hud:     ui.NewHUD(panelWidth),
		overlay: ui.NewOverlay(),
		scale:   scale,
	}
	for i := range g.visible {
		g.visible[i] = true
	}
	return g
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	cfg := g.world.Config()
	cfg.Seed = seed
	// The config was validated when the first map was built, so a new seed
	// cannot make generation fail.
	if world, err := terrain.GenerateWithConfig(cfg); err == nil {
		g.world = world
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range toggleKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.visible[i] = !g.visible[i]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.isolate = (g.isolate + 1) % (len(layerKeys) + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.world.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.overlay.Update()
	return nil
}

// Draw renders the map, the optional overlays and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.isolate > 0 {
		layer := g.world.Layer(layerKeys[g.isolate-1])
		g.painter.BlitMask(screen, layer.Category.Cells(), color.White, color.Black, g.scale)
	} else {
		g.painter.Blit(screen, g.world, g.layerVisible, g.scale)
		dim := g.world.Dim()
		g.overlay.Draw(screen, g.world.Heightmap().Cells(), dim, dim, g.scale)
	}
	g.hud.Draw(screen, g.world.Dim()*g.scale, g.world.Dim()*g.scale, g.status())
}

// Layout returns the logical screen size including the status panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.world.Dim() * g.scale
	return side + panelWidth, side
}

func (g *Game) layerVisible(k terrain.Kind) bool {
	return g.visible[k]
}

func (g *Game) status() ui.Status {
	st := ui.Status{
		Seed:    g.world.Seed(),
		Dim:     g.world.Dim(),
		Backend: g.world.Config().Backend,
		Overlay: g.overlay.Enabled(),
	}
	for i, kind := range layerKeys {
		st.Layers = append(st.Layers, ui.LayerStatus{
			Name:    kind.String(),
			Visible: g.visible[i],
		})
	}
	if g.isolate > 0 {
		st.Isolated = layerKeys[g.isolate-1].String()
	}
	for _, warn := range g.world.Warnings() {
		st.Warnings = append(st.Warnings, warn.Error())
	}
	return st
}
