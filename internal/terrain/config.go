package terrain

import "strconv"

// MaxDim bounds the accepted map dimension.
const MaxDim = 4096

// Params holds tunable thresholds and densities for terrain generation.
// Elevation values are fractions of the full height range.
type Params struct {
	SeaLevel      float64
	MountainLevel float64
	MinSeaSize    int

	RiverDensity    float64
	MinRiverSources int

	BiomeDelta     float64
	MinBiomeSize   int
	DesertTemp     float64
	DesertMoisture float64

	CityDensity    float64
	MinSupportSize int
	CitySpacingDiv int
	MaxCitySpacing int

	DesertCost   float64
	ForestCost   float64
	BridgeCost   float64
	RoadStepCost float64
	SlopeCost    float64
}

// Config controls a full generation run.
type Config struct {
	Dim  int
	Seed int64

	Backend string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Dim:     128,
		Seed:    1337,
		Backend: "diamond",
		Params: Params{
			SeaLevel:      96.0 / 255,
			MountainLevel: 192.0 / 255,
			MinSeaSize:    32,

			RiverDensity:    0.025,
			MinRiverSources: 4,

			BiomeDelta:     15.0 / 255,
			MinBiomeSize:   32,
			DesertTemp:     0.55,
			DesertMoisture: 0.45,

			CityDensity:    0.005,
			MinSupportSize: 12,
			CitySpacingDiv: 20,
			MaxCitySpacing: 40,

			DesertCost:   -0.2,
			ForestCost:   0.5,
			BridgeCost:   5.0,
			RoadStepCost: 0.2,
			SlopeCost:    20.4,
		},
	}
}

// Validate reports whether the configuration can drive a generation run.
func (c Config) Validate() error {
	if c.Dim < 1 || c.Dim > MaxDim {
		return &DimensionError{Dim: c.Dim}
	}
	if _, ok := backends[c.Backend]; !ok {
		return &ConfigError{Field: "backend", Value: c.Backend}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["dim"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Dim = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["backend"]; ok && v != "" {
		c.Backend = v
	}
	if v, ok := cfg["sea_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SeaLevel = parsed
		}
	}
	if v, ok := cfg["mountain_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.MountainLevel = parsed
		}
	}
	if c.Params.MountainLevel < c.Params.SeaLevel {
		c.Params.MountainLevel = c.Params.SeaLevel
	}
	if v, ok := cfg["min_sea_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MinSeaSize = parsed
		}
	}
	if v, ok := cfg["river_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RiverDensity = parsed
		}
	}
	if v, ok := cfg["min_river_sources"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MinRiverSources = parsed
		}
	}
	if v, ok := cfg["biome_delta"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.BiomeDelta = parsed
		}
	}
	if v, ok := cfg["min_biome_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MinBiomeSize = parsed
		}
	}
	if v, ok := cfg["desert_temp"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DesertTemp = parsed
		}
	}
	if v, ok := cfg["desert_moisture"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DesertMoisture = parsed
		}
	}
	if v, ok := cfg["city_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.CityDensity = parsed
		}
	}
	if v, ok := cfg["min_support_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MinSupportSize = parsed
		}
	}
	if v, ok := cfg["city_spacing_div"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.CitySpacingDiv = parsed
		}
	}
	if v, ok := cfg["max_city_spacing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MaxCitySpacing = parsed
		}
	}
	if v, ok := cfg["desert_cost"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DesertCost = parsed
		}
	}
	if v, ok := cfg["forest_cost"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ForestCost = parsed
		}
	}
	if v, ok := cfg["bridge_cost"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.BridgeCost = parsed
		}
	}
	if v, ok := cfg["road_step_cost"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RoadStepCost = parsed
		}
	}
	if v, ok := cfg["slope_cost"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SlopeCost = parsed
		}
	}
	return c
}
