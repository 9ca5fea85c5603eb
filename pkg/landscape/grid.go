// Package landscape turns decoded heightmaps into power-of-two elevation
// grids and the scale parameters needed to place them at real-world size.
package landscape

import (
	"errors"
	"fmt"
)

// Sizing errors.
var (
	ErrInvalidDimensions = errors.New("landscape: grid dimension must be positive")
	ErrFieldTooLarge     = errors.New("landscape: height field too large")
)

// MaxGridEdge caps the square grid side length. A field at the cap already
// holds 2^30 cells (2 GiB of samples); anything past it is a bad input, not
// a real heightmap.
const MaxGridEdge = 32768

// ComputeGridEdge returns the smallest power of two >= width. A width that
// is already a power of two is returned unchanged.
//
// The grid is always square and sized from the source width alone; a source
// taller than the resulting edge has its extra rows cropped by
// BuildHeightField.
func ComputeGridEdge(width int) (int, error) {
	if width <= 0 {
		return 0, fmt.Errorf("%w: width %d", ErrInvalidDimensions, width)
	}
	if width > MaxGridEdge {
		return 0, fmt.Errorf("%w: width %d exceeds %d", ErrFieldTooLarge, width, MaxGridEdge)
	}

	edge := 1
	for edge < width {
		edge <<= 1
	}
	return edge, nil
}
