// Package colorspace converts 8-bit RGB buffers into luma/chroma form.
//
// The transforms use 14-bit fixed-point BT.601 coefficients, so results are
// bit-identical to the integer paths of common image libraries.
package colorspace

import (
	"fmt"

	"github.com/cwbudde/iqa/internal/pixbuf"
)

const (
	yuvShift = 14
	yuvHalf  = 1 << (yuvShift - 1)
	yuvDelta = 128 << yuvShift

	r2y = 4899  // 0.299 * 2^14
	g2y = 9617  // 0.587 * 2^14
	b2y = 1868  // 0.114 * 2^14
	b2u = 8061  // 0.492 * 2^14
	r2v = 14369 // 0.877 * 2^14
)

func descale(v int) int {
	return (v + yuvHalf) >> yuvShift
}

func saturate(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func luma(r, g, b uint8) int {
	return descale(int(r)*r2y + int(g)*g2y + int(b)*b2y)
}

// ToLumaChroma converts a 3-channel RGB buffer into a Y, U, V buffer of the
// same dimensions.
func ToLumaChroma(rgb *pixbuf.PixelBuffer) (*pixbuf.PixelBuffer, error) {
	if rgb.Channels != 3 {
		return nil, fmt.Errorf("luma/chroma transform needs 3 channels, got %d", rgb.Channels)
	}

	out := &pixbuf.PixelBuffer{
		Width:    rgb.Width,
		Height:   rgb.Height,
		Channels: 3,
		Pix:      make([]uint8, len(rgb.Pix)),
	}
	for i := 0; i < len(rgb.Pix); i += 3 {
		r, g, b := rgb.Pix[i+0], rgb.Pix[i+1], rgb.Pix[i+2]
		y := luma(r, g, b)
		out.Pix[i+0] = saturate(y)
		out.Pix[i+1] = saturate(descale((int(b)-y)*b2u + yuvDelta))
		out.Pix[i+2] = saturate(descale((int(r)-y)*r2v + yuvDelta))
	}
	return out, nil
}

// Luma extracts the Y plane. A 1-channel buffer is already luma and is
// returned as is.
func Luma(buf *pixbuf.PixelBuffer) (*pixbuf.PixelBuffer, error) {
	switch buf.Channels {
	case 1:
		return buf, nil
	case 3:
	default:
		return nil, fmt.Errorf("luma extraction needs 1 or 3 channels, got %d", buf.Channels)
	}

	out := &pixbuf.PixelBuffer{
		Width:    buf.Width,
		Height:   buf.Height,
		Channels: 1,
		Pix:      make([]uint8, buf.PixelCount()),
	}
	for i, j := 0, 0; i < len(buf.Pix); i, j = i+3, j+1 {
		out.Pix[j] = saturate(luma(buf.Pix[i+0], buf.Pix[i+1], buf.Pix[i+2]))
	}
	return out, nil
}

// ExpandGray replicates a single channel into three identical RGB channels.
// A 3-channel buffer is returned unchanged.
func ExpandGray(buf *pixbuf.PixelBuffer) (*pixbuf.PixelBuffer, error) {
	switch buf.Channels {
	case 3:
		return buf, nil
	case 1:
	default:
		return nil, fmt.Errorf("cannot expand %d-channel buffer", buf.Channels)
	}

	out := &pixbuf.PixelBuffer{
		Width:    buf.Width,
		Height:   buf.Height,
		Channels: 3,
		Pix:      make([]uint8, len(buf.Pix)*3),
	}
	for i, v := range buf.Pix {
		out.Pix[i*3+0] = v
		out.Pix[i*3+1] = v
		out.Pix[i*3+2] = v
	}
	return out, nil
}
