package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministicPerSeed(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillWeighted(NewRNG(42).Source(), a, 0.3)
	FillWeighted(NewRNG(42).Source(), b, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed should produce the same fill")
	}

	FillWeighted(NewRNG(43).Source(), b, 0.3)
	if slices.Equal(a, b) {
		t.Fatal("different seeds should produce different fills")
	}
}

func TestFillWeightedExtremes(t *testing.T) {
	buf := make([]uint8, 64)

	FillWeighted(NewRNG(1).Source(), buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("p=0: buf[%d] = %d, want 0", i, v)
		}
	}

	FillWeighted(NewRNG(1).Source(), buf, 1)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("p=1: buf[%d] = %d, want 1", i, v)
		}
	}
}

func TestFillWeightedOverwrites(t *testing.T) {
	buf := make([]uint8, 64)
	for i := range buf {
		buf[i] = 7
	}
	FillWeighted(NewRNG(1).Source(), buf, 0.5)
	for i, v := range buf {
		if v != 0 && v != 1 {
			t.Fatalf("buf[%d] = %d, want 0 or 1", i, v)
		}
	}
}
