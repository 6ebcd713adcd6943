//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"terramap/internal/app"
	"terramap/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := terrain.GenerateWithConfig(cfg.TerrainConfig())
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	for _, w := range world.Warnings() {
		log.Printf("warning: %s", w)
	}

	game := app.New(world, cfg.Scale)

	ebiten.SetWindowTitle(fmt.Sprintf("terramap (%s, seed %d)", cfg.Backend, cfg.Seed))
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
