package core

import (
	"github.com/aquilax/go-perlin"

	"mad-life/pkg/life"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
)

// FillNoise adds the cells of area whose Perlin noise value exceeds threshold.
// scale is the size in cells of one noise period; larger values give larger
// blobs. Output is deterministic for a given seed.
func FillNoise(seed int64, g *life.Grid, area life.Rect, scale, threshold float64) {
	if scale <= 0 {
		scale = 1
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if p.Noise2D(float64(x)/scale, float64(y)/scale) > threshold {
				g.Add(life.Coord{X: x, Y: y})
			}
		}
	}
}
