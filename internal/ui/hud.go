//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"sand-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 14

// HUD draws the control help and current settings in the top-left corner of
// the simulation view.
type HUD struct {
	sim   core.Sim
	shown bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, shown: true}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.shown = !h.shown
}

// Draw paints the HUD text. Brush and TPS come from the caller since they
// are application state, not simulation state.
func (h *HUD) Draw(screen *ebiten.Image, brush uint8, tps int) {
	if h == nil || !h.shown {
		return
	}
	lines := []string{
		"space pause  n step  c clear  r reset  s reseed  h hud  q quit",
		"1-4 brush  lmb paint  rmb cycle  up/down speed  f/g fill",
		fmt.Sprintf("speed: %d steps/s", tps),
		fmt.Sprintf("brush: %d (0 empty, 1 sand, 2 ground, 3 source)", brush),
	}
	if provider, ok := h.sim.(core.ParametersProvider); ok {
		for _, p := range provider.Parameters().Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}

	face := basicfont.Face7x13
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	y := lineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, 6, y, white)
		y += lineHeight
	}
}
