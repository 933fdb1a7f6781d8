package core

import (
	"slices"
	"testing"
)

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(8, 6)

	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{7, 5, 7, 5},
		{8, 6, 0, 0},
		{-1, -1, 7, 5},
		{-9, -7, 7, 5},
		{17, 13, 1, 1},
	}
	for _, tc := range cases {
		wx, wy := g.Wrap(tc.x, tc.y)
		if wx != tc.wx || wy != tc.wy {
			t.Errorf("Wrap(%d, %d) = (%d, %d), want (%d, %d)", tc.x, tc.y, wx, wy, tc.wx, tc.wy)
		}
	}
}

func TestByteGridAccessWraps(t *testing.T) {
	g := NewByteGrid(8, 6)

	g.Set(-1, -1, 3)
	if got := g.At(7, 5); got != 3 {
		t.Fatalf("At(7,5) = %d after Set(-1,-1), want 3", got)
	}
	if got := g.At(15, 11); got != 3 {
		t.Fatalf("At(15,11) = %d, want the wrapped value 3", got)
	}
	if got := g.Cells()[g.Index(7, 5)]; got != 3 {
		t.Fatalf("backing store at Index(7,5) = %d, want 3", got)
	}
}

func TestByteGridClearAndCopy(t *testing.T) {
	a := NewByteGrid(4, 4)
	b := NewByteGrid(4, 4)

	for i := range a.Cells() {
		a.Cells()[i] = uint8(i)
	}
	b.CopyFrom(a)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("CopyFrom should duplicate the cells")
	}

	b.Cells()[0] = 99
	if a.Cells()[0] == 99 {
		t.Fatal("CopyFrom must not alias the backing slices")
	}

	a.Clear()
	for i, c := range a.Cells() {
		if c != 0 {
			t.Fatalf("cell %d = %d after Clear", i, c)
		}
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("dims = %dx%d, want 1x1", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("len(cells) = %d, want 1", len(g.Cells()))
	}
}
