// Package sliceop provides the float32 slice kernels used on solver hot
// paths. Node buffers are float32 by contract, so these stay in float32
// end to end rather than round-tripping through float64.
package sliceop

// Add adds src into dst element-wise. Slices must have equal length.
func Add(dst, src []float32) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// Sub subtracts src from dst element-wise.
func Sub(dst, src []float32) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

// Mul multiplies dst by src element-wise.
func Mul(dst, src []float32) {
	for i := range dst {
		dst[i] *= src[i]
	}
}

// MulScalar multiplies every element of dst by s.
func MulScalar(dst []float32, s float32) {
	for i := range dst {
		dst[i] *= s
	}
}

// FMA accumulates a*b into dst element-wise.
func FMA(dst, a, b []float32) {
	for i := range dst {
		dst[i] += a[i] * b[i]
	}
}

// ElementMax raises each dst element to src's where src is larger.
func ElementMax(dst, src []float32) {
	for i := range dst {
		if src[i] > dst[i] {
			dst[i] = src[i]
		}
	}
}

// Sum returns the sum of xs.
func Sum(xs []float32) float32 {
	var s float32
	for _, x := range xs {
		s += x
	}
	return s
}

// Max returns the largest element of xs, or 0 when xs is empty or has
// no positive element.
func Max(xs []float32) float32 {
	var m float32
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}

// MaxAbs returns the largest magnitude in xs, or 0 for an empty slice.
func MaxAbs(xs []float32) float32 {
	var m float32
	for _, x := range xs {
		if x < 0 {
			x = -x
		}
		if x > m {
			m = x
		}
	}
	return m
}
