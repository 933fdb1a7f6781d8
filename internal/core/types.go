package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider is implemented by sims whose cell values index a fixed
// color palette instead of being binary on/off.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// CellEditor is implemented by sims that allow direct single-cell edits, for
// brush painting and the like. Coordinates are toroidal.
type CellEditor interface {
	At(x, y int) uint8
	SetAt(x, y int, v uint8)
}

// Clearer is implemented by sims that can wipe their state to empty.
type Clearer interface {
	Clear()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
