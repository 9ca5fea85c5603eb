// Package heightmap decodes grayscale heightmap images into 16-bit elevation samples.
package heightmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	// Registered heightmap source formats beyond PNG.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Decode errors.
var (
	ErrUnknownFormat     = errors.New("heightmap: no decoder for image format")
	ErrCorruptImage      = errors.New("heightmap: corrupt image data")
	ErrInvalidDimensions = errors.New("heightmap: invalid image dimensions")
)

// Image is a decoded heightmap: one 16-bit elevation sample per pixel,
// row-major with linear index y*Width+x.
type Image struct {
	Width   int
	Height  int
	Samples []uint16
}

// At returns the sample at (x, y), or 0 if the coordinates are out of bounds.
func (m *Image) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Samples[y*m.Width+x]
}

// Decode decodes an encoded heightmap image (PNG, TIFF or BMP) into 16-bit
// grayscale samples. Sources that are not already 16-bit grayscale are
// promoted: 8-bit gray is widened, color images are converted by luminance.
func Decode(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrCorruptImage)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptImage, err)
	}

	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d %s image", ErrInvalidDimensions, bounds.Dx(), bounds.Dy(), format)
	}

	return fromImage(src), nil
}

// DecodeFile decodes a heightmap image from disk.
func DecodeFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading heightmap file: %w", err)
	}
	return Decode(data)
}

// fromImage extracts 16-bit grayscale samples from a decoded image.
func fromImage(src image.Image) *Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	m := &Image{
		Width:   w,
		Height:  h,
		Samples: make([]uint16, w*h),
	}

	switch src := src.(type) {
	case *image.Gray16:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.Samples[y*w+x] = src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y
			}
		}
	case *image.Gray:
		// Widen 8-bit samples so 255 maps to 65535.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := uint16(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
				m.Samples[y*w+x] = v<<8 | v
			}
		}
	default:
		gray := image.NewGray16(image.Rect(0, 0, w, h))
		draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.Samples[y*w+x] = gray.Gray16At(x, y).Y
			}
		}
	}

	return m
}

// EncodePNG writes the image as a 16-bit grayscale PNG.
func EncodePNG(w io.Writer, m *Image) error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, m.Width, m.Height)
	}

	gray := image.NewGray16(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := m.Samples[y*m.Width+x]
			i := gray.PixOffset(x, y)
			gray.Pix[i] = uint8(v >> 8)
			gray.Pix[i+1] = uint8(v)
		}
	}

	return png.Encode(w, gray)
}
