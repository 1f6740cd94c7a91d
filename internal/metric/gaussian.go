package metric

import "math"

const (
	// GaussianWindow is the side of the square SSIM window.
	GaussianWindow = 11
	// GaussianSigma is the standard deviation of the SSIM window.
	GaussianSigma = 1.5
)

// ssimKernel is the normalized 1-D Gaussian used for both blur passes.
var ssimKernel = gaussianKernel(GaussianWindow, GaussianSigma)

// gaussianKernel returns size taps of exp(-(i-c)^2 / (2*sigma^2)), c = (size-1)/2,
// scaled to sum to 1.
func gaussianKernel(size int, sigma float64) []float64 {
	kernel := make([]float64, size)
	center := float64(size-1) / 2
	scale := -0.5 / (sigma * sigma)

	var sum float64
	for i := range kernel {
		x := float64(i) - center
		kernel[i] = math.Exp(scale * x * x)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// reflect101 maps p into [0, n) mirroring around the edge samples without
// repeating them: gfedcb|abcdefgh|gfedcba.
func reflect101(p, n int) int {
	if n == 1 {
		return 0
	}
	for p < 0 || p >= n {
		if p < 0 {
			p = -p
		} else {
			p = 2*n - 2 - p
		}
	}
	return p
}

// gaussianBlur filters a width x height plane with the separable SSIM kernel,
// rows first then columns.
func gaussianBlur(src []float64, width, height int) []float64 {
	half := len(ssimKernel) / 2

	// Border-aware tap indices are identical for every row (and every
	// column), so resolve them once.
	xIdx := tapIndices(width, half)
	yIdx := tapIndices(height, half)

	tmp := make([]float64, len(src))
	for y := 0; y < height; y++ {
		row := src[y*width : (y+1)*width]
		out := tmp[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			taps := xIdx[x*len(ssimKernel) : (x+1)*len(ssimKernel)]
			var acc float64
			for k, w := range ssimKernel {
				acc += w * row[taps[k]]
			}
			out[x] = acc
		}
	}

	dst := make([]float64, len(src))
	for y := 0; y < height; y++ {
		taps := yIdx[y*len(ssimKernel) : (y+1)*len(ssimKernel)]
		out := dst[y*width : (y+1)*width]
		for k, w := range ssimKernel {
			in := tmp[taps[k]*width : (taps[k]+1)*width]
			for x := range out {
				out[x] += w * in[x]
			}
		}
	}
	return dst
}

func tapIndices(n, half int) []int {
	size := 2*half + 1
	idx := make([]int, n*size)
	for p := 0; p < n; p++ {
		for k := 0; k < size; k++ {
			idx[p*size+k] = reflect101(p+k-half, n)
		}
	}
	return idx
}
