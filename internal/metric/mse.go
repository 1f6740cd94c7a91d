// Package metric implements the full-reference image quality metrics MSE,
// PSNR and SSIM over pixel buffers.
package metric

import (
	"github.com/cwbudde/iqa/internal/pixbuf"
)

// MSE computes the mean squared error over every sample of a and b.
//
// The squared differences are summed across all channels and divided by
// channels*pixels, so for single-channel input this is the conventional
// per-pixel MSE.
func MSE(a, b *pixbuf.PixelBuffer) (float64, error) {
	if err := pixbuf.CheckShape(a, b); err != nil {
		return 0, err
	}
	sse := SSD(a.Pix, b.Pix)
	return float64(sse) / float64(a.Channels*a.PixelCount()), nil
}
