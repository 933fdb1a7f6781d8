package app

import (
	"flag"
	"testing"
)

func TestConfigBindAndParse(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{
		"-w", "64", "-h", "48", "-scale", "2", "-tps", "30",
		"-seed", "7", "-fill", "0.2", "-terrain", "-sources", "3",
	})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Width != 64 || cfg.Height != 48 {
		t.Fatalf("dims = %dx%d, want 64x48", cfg.Width, cfg.Height)
	}
	if cfg.Scale != 2 || cfg.TPS != 30 || cfg.Seed != 7 {
		t.Fatalf("scale/tps/seed = %d/%d/%d", cfg.Scale, cfg.TPS, cfg.Seed)
	}
	if cfg.Fill != 0.2 || !cfg.Terrain || cfg.Sources != 3 {
		t.Fatalf("fill/terrain/sources = %f/%v/%d", cfg.Fill, cfg.Terrain, cfg.Sources)
	}
}

func TestSimOptionsRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 64
	cfg.Height = 48
	cfg.Fill = 0.2
	cfg.Sources = 3

	opts := cfg.SimOptions()
	want := map[string]string{
		"w":       "64",
		"h":       "48",
		"seed":    "12345",
		"fill":    "0.2",
		"terrain": "false",
		"sources": "3",
	}
	for k, v := range want {
		if opts[k] != v {
			t.Fatalf("opts[%q] = %q, want %q", k, opts[k], v)
		}
	}
}
