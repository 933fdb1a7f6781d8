package sand

import "strconv"

// Config controls the sand automaton dimensions and initial state.
type Config struct {
	Width  int
	Height int

	Seed int64

	// FillChance is the probability a cell starts as a grain.
	FillChance float64

	// Terrain lays a Perlin-noise floor of solid ground along the bottom.
	Terrain bool
	// TerrainHeight is the mean floor height in cells when Terrain is set.
	TerrainHeight int
	// Sources is the number of emitter cells placed on the top row.
	Sources int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         160,
		Height:        120,
		Seed:          12345,
		FillChance:    0.09,
		Terrain:       false,
		TerrainHeight: 12,
		Sources:       0,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Values that fail a guard are ignored, so the result always
// describes a constructible automaton; in particular, odd dimensions are
// dropped rather than rounded.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed%2 == 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed%2 == 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FillChance = parsed
		}
	}
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Terrain = parsed
		}
	}
	if v, ok := cfg["terrain_height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TerrainHeight = parsed
		}
	}
	if v, ok := cfg["sources"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Sources = parsed
		}
	}
	return c
}
