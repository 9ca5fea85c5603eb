package landscape

import (
	"errors"
	"fmt"
	"os"

	"github.com/Faultbox/landforge/pkg/heightmap"
)

// ErrInvalidBlockCount is returned when fewer than one block is requested.
var ErrInvalidBlockCount = errors.New("landscape: block count must be at least 1")

// ImportRequest is the finished bundle handed to a terrain host: the
// elevation grid plus the geometry needed to place it. It is built once per
// generation and never mutated afterwards.
type ImportRequest struct {
	Field    *HeightField
	Geometry Geometry
}

// Importer receives a finished import request. The request, including the
// height field buffer, belongs to the importer once Import returns nil.
type Importer interface {
	Import(req *ImportRequest) error
}

// Options tune the geometry planning step.
type Options struct {
	// BlockSize is the physical footprint of one block, in world units.
	BlockSize float64

	// VerticalScale is the fixed elevation scale used unless AutoScale is set.
	VerticalScale float64

	// AutoScale fits the vertical scale to the field's actual sample range
	// so its elevation span becomes TargetHeight world units.
	AutoScale    bool
	TargetHeight float64
}

// DefaultOptions returns the reference scale constants with auto-fit disabled.
func DefaultOptions() Options {
	return Options{
		BlockSize:     DefaultBlockSize,
		VerticalScale: DefaultVerticalScale,
	}
}

// Generate runs the full pipeline on encoded image bytes: decode, size the
// grid, build the height field and plan the geometry. Every step fails fast;
// on error no request is returned at all.
func Generate(data []byte, blockCount int, opts Options) (*ImportRequest, error) {
	img, err := heightmap.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap: %w", err)
	}
	return GenerateImage(img, blockCount, opts)
}

// GenerateFile runs the pipeline on an encoded image file.
func GenerateFile(path string, blockCount int, opts Options) (*ImportRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading heightmap file: %w", err)
	}
	return Generate(data, blockCount, opts)
}

// GenerateImage runs the pipeline on an already decoded heightmap.
func GenerateImage(img *heightmap.Image, blockCount int, opts Options) (*ImportRequest, error) {
	if blockCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBlockCount, blockCount)
	}

	edge, err := ComputeGridEdge(img.Width)
	if err != nil {
		return nil, err
	}

	field, err := BuildHeightField(img, edge)
	if err != nil {
		return nil, err
	}

	verticalScale := opts.VerticalScale
	if opts.AutoScale {
		verticalScale = AutoVerticalScale(field, opts.TargetHeight)
	}

	return &ImportRequest{
		Field:    field,
		Geometry: PlanGeometry(edge, blockCount, opts.BlockSize, verticalScale),
	}, nil
}
