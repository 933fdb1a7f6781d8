//go:build !ebiten

package app

import "sand-ca/internal/core"

// Game is a placeholder for headless builds; the GUI requires the ebiten
// build tag.
type Game struct{}

// New returns a stub Game in the headless build.
func New(core.Sim, *Config) *Game { return &Game{} }
