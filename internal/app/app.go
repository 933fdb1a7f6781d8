//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sand-ca/internal/core"
	"sand-ca/internal/render"
	"sand-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minTPS = 1
	maxTPS = 240
)

// Game adapts a core simulation to the ebiten.Game interface, adding pause,
// single-step, brush painting, and speed control on top of it.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	tps      int

	brush uint8
	fill  float64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		tps:     cfg.TPS,
		brush:   1,
		fill:    cfg.Fill,
	}
	if provider, ok := sim.(core.PaletteProvider); ok {
		g.palette = provider.Palette()
	} else {
		g.palette = []color.RGBA{
			{R: 0, G: 0, B: 0, A: 255},
			{R: 255, G: 255, B: 255, A: 255},
		}
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if clearer, ok := g.sim.(core.Clearer); ok {
			clearer.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.handleBrushKeys()
	g.handleSpeedKeys()
	g.handleFillKeys()
	g.handlePointer()

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleBrushKeys() {
	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if inpututil.IsKeyJustPressed(key) {
			g.brush = uint8(i)
		}
	}
}

func (g *Game) handleSpeedKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.setTPS(g.tps + 5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.setTPS(g.tps - 5)
	}
}

func (g *Game) setTPS(tps int) {
	if tps < minTPS {
		tps = minTPS
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	g.tps = tps
	ebiten.SetTPS(tps)
}

func (g *Game) handleFillKeys() {
	setter, ok := g.sim.(core.FloatParameterSetter)
	if !ok {
		return
	}
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fill -= 0.01
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.fill += 0.01
		changed = true
	}
	if !changed {
		return
	}
	if g.fill < 0 {
		g.fill = 0
	}
	if g.fill > 1 {
		g.fill = 1
	}
	setter.SetFloatParameter("fill", g.fill)
}

// handlePointer paints with the left button and cycles a cell's state with
// the right button.
func (g *Game) handlePointer() {
	editor, ok := g.sim.(core.CellEditor)
	if !ok {
		return
	}
	size := g.sim.Size()
	cx, cy := ebiten.CursorPosition()
	x := cx / g.scale
	y := cy / g.scale
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		editor.SetAt(x, y, g.brush)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		editor.SetAt(x, y, (editor.At(x, y)+1)%4)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.brush, g.tps)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
