package metric

import (
	"log/slog"

	"golang.org/x/sys/cpu"
)

// SSD (Sum of Squared Differences) kernel with runtime dispatch.
//
// Samples are 8-bit, so every squared difference fits in 17 bits and the
// running sum is kept in a uint64. Integer accumulation makes every backend
// produce exactly the same total regardless of unroll width or summation
// order, which keeps MSE and PSNR deterministic across hosts.
//
// Backends:
//   - scalar:  4-way unrolled loop (default)
//   - wide:    8-way unrolled loop, picked on hosts with AVX2 or ASIMD

// SSDBackend indicates which kernel is active
type SSDBackend int

const (
	SSDBackendScalar SSDBackend = iota // 4-way unrolled
	SSDBackendWide                     // 8-way unrolled
)

func (b SSDBackend) String() string {
	switch b {
	case SSDBackendScalar:
		return "scalar"
	case SSDBackendWide:
		return "wide"
	default:
		return "unknown"
	}
}

// ActiveSSDBackend reports which backend was selected at initialization
var ActiveSSDBackend SSDBackend

// fastSSD is set by init() based on CPU feature detection.
var fastSSD func(a, b []uint8) uint64

func init() {
	switch {
	case cpu.X86.HasAVX2:
		ActiveSSDBackend = SSDBackendWide
		fastSSD = ssdUnrolled8
		slog.Debug("SSD kernel initialized", "backend", ActiveSSDBackend.String(), "feature", "AVX2")
	case cpu.ARM64.HasASIMD:
		ActiveSSDBackend = SSDBackendWide
		fastSSD = ssdUnrolled8
		slog.Debug("SSD kernel initialized", "backend", ActiveSSDBackend.String(), "feature", "ASIMD")
	default:
		ActiveSSDBackend = SSDBackendScalar
		fastSSD = ssdUnrolled4
		slog.Debug("SSD kernel initialized", "backend", ActiveSSDBackend.String(), "reason", "no wide SIMD support")
	}
}

// SSD returns the sum of squared differences between two equally long
// sample slices. It panics if the lengths differ; callers validate shapes first.
func SSD(a, b []uint8) uint64 {
	if len(a) != len(b) {
		panic("SSD: sample counts must match")
	}
	if len(a) == 0 {
		return 0
	}
	return fastSSD(a, b)
}
