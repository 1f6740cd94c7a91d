package pixbuf

import (
	"fmt"
	"image"
)

// PixelBuffer is a row-major, channel-interleaved grid of 8-bit samples.
//
// Buffers are never modified after construction: every transform in this
// module allocates a new buffer. Pix has exactly Width*Height*Channels entries.
type PixelBuffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// Shape describes the dimensions of a buffer.
type Shape struct {
	Width, Height, Channels int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Width, s.Height, s.Channels)
}

// New allocates a zeroed buffer.
func New(width, height, channels int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer dimensions %dx%d", width, height)
	}
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("unsupported channel count %d (want 1 or 3)", channels)
	}
	return &PixelBuffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}, nil
}

// FromSamples copies samples into a new buffer after validating the length.
func FromSamples(width, height, channels int, samples []uint8) (*PixelBuffer, error) {
	buf, err := New(width, height, channels)
	if err != nil {
		return nil, err
	}
	if len(samples) != len(buf.Pix) {
		return nil, fmt.Errorf("sample count %d does not match %dx%dx%d", len(samples), width, height, channels)
	}
	copy(buf.Pix, samples)
	return buf, nil
}

// FromNRGBA drops alpha without compositing and keeps R,G,B in that order.
func FromNRGBA(img *image.NRGBA) *PixelBuffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	buf := &PixelBuffer{
		Width:    width,
		Height:   height,
		Channels: 3,
		Pix:      make([]uint8, width*height*3),
	}

	j := 0
	for y := 0; y < height; y++ {
		i := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := 0; x < width; x++ {
			buf.Pix[j+0] = img.Pix[i+0]
			buf.Pix[j+1] = img.Pix[i+1]
			buf.Pix[j+2] = img.Pix[i+2]
			i += 4
			j += 3
		}
	}
	return buf
}

// FromGray builds a single-channel buffer.
func FromGray(img *image.Gray) *PixelBuffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	buf := &PixelBuffer{
		Width:    width,
		Height:   height,
		Channels: 1,
		Pix:      make([]uint8, width*height),
	}
	for y := 0; y < height; y++ {
		i := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(buf.Pix[y*width:(y+1)*width], img.Pix[i:i+width])
	}
	return buf
}

// Shape returns the buffer dimensions.
func (b *PixelBuffer) Shape() Shape {
	return Shape{Width: b.Width, Height: b.Height, Channels: b.Channels}
}

// PixelCount is Width*Height.
func (b *PixelBuffer) PixelCount() int {
	return b.Width * b.Height
}

// At returns the sample of channel c at (x, y).
func (b *PixelBuffer) At(x, y, c int) uint8 {
	return b.Pix[(y*b.Width+x)*b.Channels+c]
}

// Float64 promotes the samples to float64, keeping their order.
func (b *PixelBuffer) Float64() []float64 {
	out := make([]float64, len(b.Pix))
	for i, v := range b.Pix {
		out[i] = float64(v)
	}
	return out
}

// CheckShape returns a *ShapeMismatchError unless a and b have identical
// width, height and channel count.
func CheckShape(a, b *PixelBuffer) error {
	if a.Shape() != b.Shape() {
		return &ShapeMismatchError{A: a.Shape(), B: b.Shape()}
	}
	return nil
}
