// Package sand implements a block-partitioning (Margolus neighborhood)
// cellular automaton of a falling-sand medium on a toroidal grid.
package sand

import (
	"fmt"
	"strconv"

	"sand-ca/internal/core"
	"sand-ca/internal/rules"
)

// Cell states, matching the values the rule table is written against.
const (
	StateEmpty  = rules.Empty
	StateGrain  = rules.Grain
	StateSolid  = rules.Solid
	StateSource = rules.Source
)

// Sand is the Margolus sand automaton. Each step tiles the grid into 2x2
// blocks, with the tiling origin alternating between (0,0) and (1,1), and
// rewrites every block through the rule table into a scratch buffer that is
// swapped in wholesale. Not safe for concurrent use.
type Sand struct {
	cfg Config

	w, h int
	cur  *core.ByteGrid
	nxt  *core.ByteGrid

	// odd selects the (1,1) block origin for the next step. It flips after
	// every step and is never reset by Clear, Randomize, or Reset.
	odd bool

	table rules.Table
	seed  int64
}

// New returns a sand automaton with the provided dimensions and default
// configuration. Both dimensions must be positive and even.
func New(w, h int) (*Sand, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand automaton for the provided configuration.
// The 2x2 tiling only closes over the torus when both dimensions are even,
// so odd or non-positive dimensions are rejected outright.
func NewWithConfig(cfg Config) (*Sand, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("sand: dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width%2 != 0 || cfg.Height%2 != 0 {
		return nil, fmt.Errorf("sand: dimensions must be even for the block tiling, got %dx%d", cfg.Width, cfg.Height)
	}
	return &Sand{
		cfg:   cfg,
		w:     cfg.Width,
		h:     cfg.Height,
		cur:   core.NewByteGrid(cfg.Width, cfg.Height),
		nxt:   core.NewByteGrid(cfg.Width, cfg.Height),
		table: rules.Sand(),
		seed:  cfg.Seed,
	}, nil
}

// Name returns the simulation identifier.
func (s *Sand) Name() string { return "sand" }

// Size returns the grid dimensions.
func (s *Sand) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Cells exposes the current grid values. The slice identity changes across
// Step calls; callers should re-fetch it each frame.
func (s *Sand) Cells() []uint8 { return s.cur.Cells() }

// At returns the cell at (x, y) with toroidal wrapping.
func (s *Sand) At(x, y int) uint8 { return s.cur.At(x, y) }

// SetAt writes a cell at (x, y) with toroidal wrapping. Values outside the
// defined states are tolerated; no rule matches them, so they simply never
// move.
func (s *Sand) SetAt(x, y int, v uint8) { s.cur.Set(x, y, v) }

// Clear empties the whole grid. The partition phase is left alone.
func (s *Sand) Clear() { s.cur.Clear() }

// Randomize overwrites every cell independently with a grain at the given
// probability, from an RNG seeded with the engine seed. Equal seeds, sizes
// and fill produce identical grids on every call.
func (s *Sand) Randomize(fill float64) {
	s.scatter(fill, s.seed)
}

// Reset rebuilds the initial state: a random scatter of grains at the
// configured fill chance, plus the terrain floor and source row when those
// are enabled. A zero seed falls back to the configured one.
func (s *Sand) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	s.scatter(s.cfg.FillChance, seed)
	if s.cfg.Terrain {
		s.layTerrain(seed)
	}
	if s.cfg.Sources > 0 {
		s.placeSources(s.cfg.Sources)
	}
}

func (s *Sand) scatter(fill float64, seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillWeighted(rng, s.cur.Cells(), fill)
}

// placeSources spreads n emitter cells evenly across the top row.
func (s *Sand) placeSources(n int) {
	if n > s.w {
		n = s.w
	}
	for i := 0; i < n; i++ {
		s.cur.Set(i*s.w/n+s.w/(2*n), 0, StateSource)
	}
}

// Step advances the automaton by one generation: resolve every block of the
// current tiling against the rule table, writing into the scratch grid, then
// swap buffers and flip the tiling phase. Deterministic; consults no RNG.
func (s *Sand) Step() {
	s.nxt.CopyFrom(s.cur)
	s.forEachBlock(func(x0, y0 int) {
		b := rules.Block{
			s.cur.At(x0, y0),
			s.cur.At(x0+1, y0),
			s.cur.At(x0, y0+1),
			s.cur.At(x0+1, y0+1),
		}
		out := s.table.Resolve(b)
		s.nxt.Set(x0, y0, out[0])
		s.nxt.Set(x0+1, y0, out[1])
		s.nxt.Set(x0, y0+1, out[2])
		s.nxt.Set(x0+1, y0+1, out[3])
	})
	s.cur, s.nxt = s.nxt, s.cur
	s.odd = !s.odd
}

// forEachBlock visits the wrapped top-left origin of every block in the
// current tiling. With even dimensions the origins off, off+2, ... wrap to
// (W/2)*(H/2) distinct blocks that cover each cell exactly once, at either
// phase.
func (s *Sand) forEachBlock(fn func(x0, y0 int)) {
	off := 0
	if s.odd {
		off = 1
	}
	for by := off; by < s.h+off; by += 2 {
		for bx := off; bx < s.w+off; bx += 2 {
			fn(bx%s.w, by%s.h)
		}
	}
}

// Parameters reports the current tunables for HUD display.
func (s *Sand) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "fill", Label: "fill chance", Type: core.ParamTypeFloat,
			Value: strconv.FormatFloat(s.cfg.FillChance, 'f', 2, 64)},
		{Key: "sources", Label: "sources", Type: core.ParamTypeInt,
			Value: strconv.Itoa(s.cfg.Sources)},
	}}
}

// SetFloatParameter adjusts float tunables; the fill chance is clamped to
// [0, 1]. Takes effect on the next Reset or Randomize.
func (s *Sand) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fill":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		s.cfg.FillChance = value
		return true
	}
	return false
}

// SetIntParameter adjusts integer tunables.
func (s *Sand) SetIntParameter(key string, value int) bool {
	switch key {
	case "sources":
		if value < 0 {
			value = 0
		}
		s.cfg.Sources = value
		return true
	}
	return false
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		s, err := NewWithConfig(c)
		if err != nil {
			// FromMap only accepts positive even dimensions.
			panic(err)
		}
		return s
	})
}
