package landscape

import (
	"fmt"

	"github.com/Faultbox/landforge/pkg/heightmap"
)

// HeightField is a square elevation grid. Elevations is row-major with
// linear index y*Edge+x and always has exactly Edge*Edge cells.
type HeightField struct {
	Edge       int
	Elevations []uint16
}

// At returns the elevation at (x, y), or 0 if the coordinates are out of bounds.
func (f *HeightField) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= f.Edge || y >= f.Edge {
		return 0
	}
	return f.Elevations[y*f.Edge+x]
}

// ElevationRange returns the minimum and maximum elevation in the field.
func (f *HeightField) ElevationRange() (min, max uint16) {
	if len(f.Elevations) == 0 {
		return 0, 0
	}

	min = f.Elevations[0]
	max = f.Elevations[0]
	for _, v := range f.Elevations {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// BuildHeightField copies the image into a zero-filled edge x edge grid,
// anchored at the top-left corner. The copy region is the intersection of
// the source rectangle and the grid: samples beyond the edge are cropped,
// cells beyond the source stay at elevation 0. No resampling is done.
func BuildHeightField(img *heightmap.Image, edge int) (*HeightField, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("%w: edge %d", ErrInvalidDimensions, edge)
	}
	if edge > MaxGridEdge {
		return nil, fmt.Errorf("%w: edge %d exceeds %d", ErrFieldTooLarge, edge, MaxGridEdge)
	}

	field := &HeightField{
		Edge:       edge,
		Elevations: make([]uint16, edge*edge),
	}

	copyW := min(img.Width, edge)
	copyH := min(img.Height, edge)
	for y := 0; y < copyH; y++ {
		src := img.Samples[y*img.Width : y*img.Width+copyW]
		copy(field.Elevations[y*edge:y*edge+copyW], src)
	}

	return field, nil
}
