package metric

import (
	"fmt"
	"math"

	"github.com/cwbudde/iqa/internal/colorspace"
	"github.com/cwbudde/iqa/internal/pixbuf"
)

const (
	// DynamicRange is the peak sample value of 8-bit input.
	DynamicRange = 255.0

	// sse at or below this is treated as identical input
	psnrZeroSSE = 1e-10
)

// PSNR computes the peak signal-to-noise ratio in decibels.
//
// 3-channel input is reduced to luma first. Identical inputs return exactly
// 0 instead of +Inf.
func PSNR(a, b *pixbuf.PixelBuffer) (float64, error) {
	if err := pixbuf.CheckShape(a, b); err != nil {
		return 0, err
	}
	if a.Channels != 1 && a.Channels != 3 {
		return 0, fmt.Errorf("psnr: unsupported channel count %d", a.Channels)
	}

	if a.Channels == 3 {
		var err error
		if a, err = colorspace.Luma(a); err != nil {
			return 0, fmt.Errorf("psnr: %w", err)
		}
		if b, err = colorspace.Luma(b); err != nil {
			return 0, fmt.Errorf("psnr: %w", err)
		}
	}

	sse := float64(SSD(a.Pix, b.Pix))
	return psnrFromSSE(sse, a.PixelCount()), nil
}

func psnrFromSSE(sse float64, samples int) float64 {
	if sse <= psnrZeroSSE {
		return 0
	}
	mse := sse / float64(samples)
	return 10.0 * math.Log10((DynamicRange*DynamicRange)/mse)
}
