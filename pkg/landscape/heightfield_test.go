package landscape

import (
	"errors"
	"testing"

	"github.com/Faultbox/landforge/pkg/heightmap"
)

// testImage creates a heightmap with samples 1..w*h in row-major order.
func testImage(w, h int) *heightmap.Image {
	img := &heightmap.Image{
		Width:   w,
		Height:  h,
		Samples: make([]uint16, w*h),
	}
	for i := range img.Samples {
		img.Samples[i] = uint16(i + 1)
	}
	return img
}

func TestBuildHeightField_PadsToEdge(t *testing.T) {
	img := testImage(5, 3)

	field, err := BuildHeightField(img, 8)
	if err != nil {
		t.Fatalf("BuildHeightField failed: %v", err)
	}

	if field.Edge != 8 {
		t.Errorf("expected edge 8, got %d", field.Edge)
	}
	if len(field.Elevations) != 64 {
		t.Fatalf("expected 64 cells, got %d", len(field.Elevations))
	}

	// Source samples land at the top-left, untouched.
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			want := img.Samples[y*5+x]
			if got := field.Elevations[y*8+x]; got != want {
				t.Errorf("cell (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}

	// Everything else stays at zero elevation.
	zeros := 0
	for _, v := range field.Elevations {
		if v == 0 {
			zeros++
		}
	}
	if zeros != 64-15 {
		t.Errorf("expected %d zero cells, got %d", 64-15, zeros)
	}
}

func TestBuildHeightField_ExactFit(t *testing.T) {
	img := testImage(4, 4)

	field, err := BuildHeightField(img, 4)
	if err != nil {
		t.Fatalf("BuildHeightField failed: %v", err)
	}

	for i, v := range field.Elevations {
		if v != img.Samples[i] {
			t.Fatalf("cell %d = %d, expected %d", i, v, img.Samples[i])
		}
	}
}

func TestBuildHeightField_CropsTallSource(t *testing.T) {
	// 3 wide, 6 tall: the grid edge comes from the width, so rows 4 and 5
	// are dropped.
	img := testImage(3, 6)

	field, err := BuildHeightField(img, 4)
	if err != nil {
		t.Fatalf("BuildHeightField failed: %v", err)
	}

	if len(field.Elevations) != 16 {
		t.Fatalf("expected 16 cells, got %d", len(field.Elevations))
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			want := img.Samples[y*3+x]
			if got := field.At(x, y); got != want {
				t.Errorf("cell (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
		if got := field.At(3, y); got != 0 {
			t.Errorf("padding cell (3,%d) = %d, expected 0", y, got)
		}
	}
}

func TestBuildHeightField_CropsWideSource(t *testing.T) {
	img := testImage(6, 2)

	field, err := BuildHeightField(img, 4)
	if err != nil {
		t.Fatalf("BuildHeightField failed: %v", err)
	}

	// Only the 4x2 intersection is copied.
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := img.Samples[y*6+x]
			if got := field.At(x, y); got != want {
				t.Errorf("cell (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestBuildHeightField_InvalidEdge(t *testing.T) {
	img := testImage(2, 2)

	for _, edge := range []int{0, -4} {
		if _, err := BuildHeightField(img, edge); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("edge %d: expected ErrInvalidDimensions, got %v", edge, err)
		}
	}

	if _, err := BuildHeightField(img, MaxGridEdge*2); !errors.Is(err, ErrFieldTooLarge) {
		t.Error("expected ErrFieldTooLarge for an oversized edge")
	}
}

func TestHeightField_At(t *testing.T) {
	field, err := BuildHeightField(testImage(2, 2), 2)
	if err != nil {
		t.Fatalf("BuildHeightField failed: %v", err)
	}

	if got := field.At(1, 1); got != 4 {
		t.Errorf("At(1,1) = %d, expected 4", got)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := field.At(p[0], p[1]); got != 0 {
			t.Errorf("At(%d,%d) = %d, expected 0 out of bounds", p[0], p[1], got)
		}
	}
}

func TestHeightField_ElevationRange(t *testing.T) {
	field := &HeightField{
		Edge:       2,
		Elevations: []uint16{120, 40, 9001, 300},
	}

	lo, hi := field.ElevationRange()
	if lo != 40 || hi != 9001 {
		t.Errorf("ElevationRange() = %d-%d, expected 40-9001", lo, hi)
	}

	empty := &HeightField{}
	lo, hi = empty.ElevationRange()
	if lo != 0 || hi != 0 {
		t.Errorf("empty field range = %d-%d, expected 0-0", lo, hi)
	}
}
