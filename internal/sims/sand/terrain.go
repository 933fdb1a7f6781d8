package sand

import "github.com/aquilax/go-perlin"

const (
	terrainAlpha   = 2
	terrainBeta    = 2
	terrainOctaves = 3
)

// layTerrain writes a solid floor along the bottom of the grid, with a
// rolling height profile sampled from 1-D Perlin noise. The profile is a
// pure function of the seed and grid size.
func (s *Sand) layTerrain(seed int64) {
	mean := s.cfg.TerrainHeight
	if mean <= 0 {
		return
	}
	if mean > s.h {
		mean = s.h
	}
	p := perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOctaves, seed)
	for x := 0; x < s.w; x++ {
		n := p.Noise1D(float64(x) / float64(s.w) * 4)
		height := mean + int(n*float64(mean))
		if height < 1 {
			height = 1
		}
		if height > s.h {
			height = s.h
		}
		for y := s.h - height; y < s.h; y++ {
			s.cur.Set(x, y, StateSolid)
		}
	}
}
