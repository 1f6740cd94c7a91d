package metric

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/iqa/internal/pixbuf"
)

// SSIM stability constants at 8-bit dynamic range: (0.01*255)^2 and (0.03*255)^2.
const (
	SSIMC1 = 6.5025
	SSIMC2 = 58.5225
)

// SSIM returns the mean structural similarity of two single-channel buffers.
func SSIM(a, b *pixbuf.PixelBuffer) (float64, error) {
	ssimMap, err := SSIMMap(a, b)
	if err != nil {
		return 0, err
	}
	return floats.Sum(ssimMap) / float64(len(ssimMap)), nil
}

// SSIMMap returns the per-pixel SSIM values of two single-channel buffers in
// row-major order.
func SSIMMap(a, b *pixbuf.PixelBuffer) ([]float64, error) {
	if err := pixbuf.CheckShape(a, b); err != nil {
		return nil, err
	}
	if a.Channels != 1 {
		return nil, fmt.Errorf("ssim: expected single-channel buffers, got %d channels", a.Channels)
	}

	w, h := a.Width, a.Height
	n := len(a.Pix)
	i1 := a.Float64()
	i2 := b.Float64()

	i1Sq := floats.MulTo(make([]float64, n), i1, i1)
	i2Sq := floats.MulTo(make([]float64, n), i2, i2)
	i1i2 := floats.MulTo(make([]float64, n), i1, i2)

	mu1 := gaussianBlur(i1, w, h)
	mu2 := gaussianBlur(i2, w, h)

	mu1Sq := floats.MulTo(make([]float64, n), mu1, mu1)
	mu2Sq := floats.MulTo(make([]float64, n), mu2, mu2)
	mu1mu2 := floats.MulTo(make([]float64, n), mu1, mu2)

	sigma1Sq := gaussianBlur(i1Sq, w, h)
	floats.Sub(sigma1Sq, mu1Sq)
	sigma2Sq := gaussianBlur(i2Sq, w, h)
	floats.Sub(sigma2Sq, mu2Sq)
	sigma12 := gaussianBlur(i1i2, w, h)
	floats.Sub(sigma12, mu1mu2)

	// numerator: (2*mu1*mu2 + C1) * (2*sigma12 + C2)
	t1 := floats.ScaleTo(make([]float64, n), 2, mu1mu2)
	floats.AddConst(SSIMC1, t1)
	t2 := floats.ScaleTo(make([]float64, n), 2, sigma12)
	floats.AddConst(SSIMC2, t2)
	num := floats.MulTo(make([]float64, n), t1, t2)

	// denominator: (mu1^2 + mu2^2 + C1) * (sigma1^2 + sigma2^2 + C2)
	floats.AddTo(t1, mu1Sq, mu2Sq)
	floats.AddConst(SSIMC1, t1)
	floats.AddTo(t2, sigma1Sq, sigma2Sq)
	floats.AddConst(SSIMC2, t2)
	floats.Mul(t1, t2)

	return floats.DivTo(make([]float64, n), num, t1), nil
}
