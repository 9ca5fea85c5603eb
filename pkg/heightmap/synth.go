package heightmap

import (
	"github.com/aquilax/go-perlin"
)

// Noise parameters for synthetic heightmaps.
const (
	synthAlpha   = 2.0 // smoothing between octaves
	synthBeta    = 2.0 // frequency step between octaves
	synthOctaves = 3
)

// Synthesize generates a width x height heightmap from layered perlin noise.
// The same seed always produces the same image.
func Synthesize(width, height int, seed int64) *Image {
	p := perlin.NewPerlin(synthAlpha, synthBeta, synthOctaves, seed)

	m := &Image{
		Width:   width,
		Height:  height,
		Samples: make([]uint16, width*height),
	}

	// Sample the noise over a few wavelengths regardless of image size.
	freq := float64(max(width, height)) / 4.0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := p.Noise2D(float64(x)/freq, float64(y)/freq)

			// Noise2D is nominally in [-1, 1] but can overshoot slightly.
			v := (n + 1) / 2
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			m.Samples[y*width+x] = uint16(v * 65535)
		}
	}

	return m
}
