package sand

import "image/color"

var sandPalette = []color.RGBA{
	StateEmpty:  {R: 20, G: 20, B: 20, A: 255},
	StateGrain:  {R: 212, G: 175, B: 55, A: 255},
	StateSolid:  {R: 100, G: 40, B: 20, A: 255},
	StateSource: {R: 230, G: 230, B: 230, A: 255},
}

// Palette exposes the color palette used for rendering the sand world:
// near-black empty space, sandy grains, earthen ground, bright sources.
func (s *Sand) Palette() []color.RGBA {
	return sandPalette
}
