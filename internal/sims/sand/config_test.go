package sand

import "testing"

func TestFromMapParsesValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "64",
		"h":       "48",
		"seed":    "7",
		"fill":    "0.25",
		"terrain": "true",
		"sources": "2",
	})
	if c.Width != 64 || c.Height != 48 {
		t.Fatalf("dims = %dx%d, want 64x48", c.Width, c.Height)
	}
	if c.Seed != 7 {
		t.Fatalf("seed = %d, want 7", c.Seed)
	}
	if c.FillChance != 0.25 {
		t.Fatalf("fill = %f, want 0.25", c.FillChance)
	}
	if !c.Terrain || c.Sources != 2 {
		t.Fatalf("terrain = %v sources = %d, want true and 2", c.Terrain, c.Sources)
	}
}

func TestFromMapRejectsBadValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":    "63", // odd
		"h":    "-4",
		"fill": "1.5",
	})
	if c.Width != def.Width || c.Height != def.Height {
		t.Fatalf("dims = %dx%d, want defaults %dx%d", c.Width, c.Height, def.Width, def.Height)
	}
	if c.FillChance != def.FillChance {
		t.Fatalf("fill = %f, want default %f", c.FillChance, def.FillChance)
	}
}

func TestFromMapNilGivesDefaults(t *testing.T) {
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield the default config")
	}
}

func TestDefaultConfigIsConstructible(t *testing.T) {
	if _, err := NewWithConfig(DefaultConfig()); err != nil {
		t.Fatal(err)
	}
}
