package sand

import (
	"slices"
	"testing"
)

func newTerrainWorld(t *testing.T, seed int64) *Sand {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Terrain = true
	cfg.TerrainHeight = 6
	cfg.FillChance = 0
	s, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.Reset(seed)
	return s
}

func TestTerrainCoversBottomRow(t *testing.T) {
	s := newTerrainWorld(t, 5)
	for x := 0; x < 32; x++ {
		if got := s.At(x, 23); got != StateSolid {
			t.Fatalf("bottom cell (%d,23) = %d, want solid", x, got)
		}
	}
	// The floor never climbs past twice the mean height.
	for x := 0; x < 32; x++ {
		for y := 0; y < 24-2*6; y++ {
			if s.At(x, y) == StateSolid {
				t.Fatalf("solid at (%d,%d), above the maximum floor height", x, y)
			}
		}
	}
}

func TestTerrainDeterministicPerSeed(t *testing.T) {
	a := newTerrainWorld(t, 5)
	b := newTerrainWorld(t, 5)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed should produce the same terrain")
	}

	c := newTerrainWorld(t, 6)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should produce different terrain")
	}
}

func TestTerrainSupportsGrains(t *testing.T) {
	s := newTerrainWorld(t, 5)
	s.SetAt(4, 0, StateGrain)

	for i := 0; i < 100; i++ {
		s.Step()
	}

	grains := 0
	for _, cell := range s.Cells() {
		if cell == StateGrain {
			grains++
		}
	}
	if grains != 1 {
		t.Fatalf("%d grains after settling, want exactly 1", grains)
	}
}
