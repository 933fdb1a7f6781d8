package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Fill    float64
	Terrain bool
	Sources int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "sand",
		Width:  160,
		Height: 120,
		Scale:  6,
		TPS:    20,
		Seed:   12345,
		Fill:   0.09,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (must be even)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (must be even)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "initial grain fill probability")
	fs.BoolVar(&c.Terrain, "terrain", c.Terrain, "lay a solid terrain floor on reset")
	fs.IntVar(&c.Sources, "sources", c.Sources, "emitter cells placed on the top row")
}

// SimOptions converts the flag values into the key/value map the simulation
// factories consume.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"fill":    strconv.FormatFloat(c.Fill, 'f', -1, 64),
		"terrain": strconv.FormatBool(c.Terrain),
		"sources": strconv.Itoa(c.Sources),
	}
}
