package landscape

import "math"

// Reference scale constants: a block covers 500 m at 100 world units per
// meter, and elevation looks right with a vertical scale in the 20-35 range.
const (
	DefaultBlockSize     = 50000.0
	DefaultVerticalScale = 25.0
)

// minComponentQuads is the smallest terrain component edge, in grid quads.
// Component edges follow the power-of-two-minus-one convention.
const minComponentQuads = 63

// Geometry describes how the height field is tiled into terrain components
// and scaled to its physical footprint.
//
// GridSide is the rounded square tiling actually used; RequestedBlocks keeps
// the caller's original block count so the rounding stays detectable.
type Geometry struct {
	ComponentQuads  int
	SubsectionQuads int
	NumSubsections  int
	GridSide        int
	RequestedBlocks int
	HorizontalScale float64
	VerticalScale   float64
}

// PlanGeometry derives component sizing and world scales for an edge x edge
// height field covering blockCount blocks of blockSize world units each.
//
// The block count is arranged into a square tiling of round(sqrt(blockCount))
// blocks per side, so non-perfect-square counts are approximated.
func PlanGeometry(edge, blockCount int, blockSize, verticalScale float64) Geometry {
	quads := edge - 1
	if quads < minComponentQuads {
		quads = minComponentQuads
	}

	side := int(math.Round(math.Sqrt(float64(blockCount))))
	if side < 1 {
		side = 1
	}

	totalSize := blockSize * float64(side)

	return Geometry{
		ComponentQuads:  quads,
		SubsectionQuads: quads,
		NumSubsections:  1,
		GridSide:        side,
		RequestedBlocks: blockCount,
		HorizontalScale: totalSize / float64(edge),
		VerticalScale:   verticalScale,
	}
}

// unitHeightRange is the world-unit elevation span covered by the full
// 16-bit sample range at vertical scale 1.0.
const unitHeightRange = 512.0

// AutoVerticalScale derives a vertical scale that maps the field's actual
// sample range onto targetHeight world units. Flat fields and non-positive
// targets fall back to the constant default.
func AutoVerticalScale(f *HeightField, targetHeight float64) float64 {
	lo, hi := f.ElevationRange()
	if hi <= lo || targetHeight <= 0 {
		return DefaultVerticalScale
	}

	span := unitHeightRange * float64(hi-lo) / 65536
	return targetHeight / span
}
