package app

import (
	"flag"

	"terramap/internal/terrain"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Dim     int
	Seed    int64
	Backend string
	Scale   int
}

// NewConfig returns a Config populated with the generator defaults.
func NewConfig() *Config {
	d := terrain.DefaultConfig()
	return &Config{Dim: d.Dim, Seed: d.Seed, Backend: d.Backend, Scale: 4}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Dim, "dim", c.Dim, "map dimension in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.StringVar(&c.Backend, "backend", c.Backend, "heightmap backend (diamond or perlin)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
}

// TerrainConfig expands the viewer flags into a full generator config.
func (c *Config) TerrainConfig() terrain.Config {
	cfg := terrain.DefaultConfig()
	cfg.Dim = c.Dim
	cfg.Seed = c.Seed
	cfg.Backend = c.Backend
	return cfg
}
