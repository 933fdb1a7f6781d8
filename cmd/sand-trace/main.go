// Command sand-trace runs the sand automaton headlessly and reports grain
// statistics per step interval. Useful for sanity-checking rule behavior
// (grain conservation, source emission rates) without a window.
package main

import (
	"flag"
	"fmt"
	"log"

	"sand-ca/internal/core"
	"sand-ca/internal/sims/sand"
)

func main() {
	width := flag.Int("w", 160, "grid width in cells (must be even)")
	height := flag.Int("h", 120, "grid height in cells (must be even)")
	seed := flag.Int64("seed", 12345, "reset seed")
	fill := flag.Float64("fill", 0.09, "initial grain fill probability")
	terrain := flag.Bool("terrain", false, "lay a solid terrain floor")
	sources := flag.Int("sources", 0, "emitter cells on the top row")
	steps := flag.Int("steps", 600, "total steps to simulate")
	every := flag.Int("every", 50, "report interval in steps")
	tps := flag.Int("tps", 0, "pace steps at this rate (0 = as fast as possible)")
	flag.Parse()

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	cfg.FillChance = *fill
	cfg.Terrain = *terrain
	cfg.Sources = *sources

	sim, err := sand.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(*seed)

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	report(sim, 0)
	for i := 1; i <= *steps; i++ {
		if pacer != nil {
			pacer.Wait()
		}
		sim.Step()
		if *every > 0 && i%(*every) == 0 {
			report(sim, i)
		}
	}
}

func report(sim *sand.Sand, step int) {
	var grains, solid, sources int
	for _, c := range sim.Cells() {
		switch c {
		case sand.StateGrain:
			grains++
		case sand.StateSolid:
			solid++
		case sand.StateSource:
			sources++
		}
	}
	fmt.Printf("step %6d  grains %6d  solid %6d  sources %3d\n", step, grains, solid, sources)
}
