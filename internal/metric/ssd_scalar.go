package metric

// ssdNaive is the reference implementation used to validate the unrolled
// kernels.
func ssdNaive(a, b []uint8) uint64 {
	var sum uint64
	for i := range a {
		d := int32(a[i]) - int32(b[i])
		sum += uint64(d * d)
	}
	return sum
}

// ssdUnrolled4 processes 4 samples per iteration.
func ssdUnrolled4(a, b []uint8) uint64 {
	n := len(a)
	unrolled := (n / 4) * 4
	b = b[:n]

	var sum uint64
	i := 0
	for ; i < unrolled; i += 4 {
		d0 := int32(a[i+0]) - int32(b[i+0])
		d1 := int32(a[i+1]) - int32(b[i+1])
		d2 := int32(a[i+2]) - int32(b[i+2])
		d3 := int32(a[i+3]) - int32(b[i+3])

		// max 4 * 255^2 = 260,100, fits int32
		sum += uint64(d0*d0 + d1*d1 + d2*d2 + d3*d3)
	}

	for ; i < n; i++ {
		d := int32(a[i]) - int32(b[i])
		sum += uint64(d * d)
	}
	return sum
}

// ssdUnrolled8 processes 8 samples per iteration with two independent
// accumulators.
func ssdUnrolled8(a, b []uint8) uint64 {
	n := len(a)
	unrolled := (n / 8) * 8
	b = b[:n]

	var lo, hi uint64
	i := 0
	for ; i < unrolled; i += 8 {
		d0 := int32(a[i+0]) - int32(b[i+0])
		d1 := int32(a[i+1]) - int32(b[i+1])
		d2 := int32(a[i+2]) - int32(b[i+2])
		d3 := int32(a[i+3]) - int32(b[i+3])
		lo += uint64(d0*d0 + d1*d1 + d2*d2 + d3*d3)

		d4 := int32(a[i+4]) - int32(b[i+4])
		d5 := int32(a[i+5]) - int32(b[i+5])
		d6 := int32(a[i+6]) - int32(b[i+6])
		d7 := int32(a[i+7]) - int32(b[i+7])
		hi += uint64(d4*d4 + d5*d5 + d6*d6 + d7*d7)
	}

	sum := lo + hi
	for ; i < n; i++ {
		d := int32(a[i]) - int32(b[i])
		sum += uint64(d * d)
	}
	return sum
}
