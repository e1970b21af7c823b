package solver

import (
	"math"

	"github.com/chrisculver/postflop-solver/internal/sliceop"
)

// Quantized buffer codecs. A buffer's scale is its largest magnitude;
// raw values decode as raw*scale/32767 (int16) or raw*scale/65535
// (uint16). A zero scale encodes an all-zero buffer.

const (
	i16Max = 32767
	u16Max = 65535
)

// encodeSigned quantizes src into dst and returns the scale to decode
// it with.
func encodeSigned(dst []int16, src []float32) float32 {
	scale := sliceop.MaxAbs(src)
	var mul float32
	if scale > 0 {
		mul = i16Max / scale
	}
	for i, v := range src {
		r := math.Round(float64(v * mul))
		switch {
		case r > i16Max:
			r = i16Max
		case r < -i16Max:
			r = -i16Max
		}
		dst[i] = int16(r)
	}
	return scale
}

func decodeSigned(src []int16, scale float32) []float32 {
	out := make([]float32, len(src))
	mul := scale / i16Max
	for i, v := range src {
		out[i] = float32(v) * mul
	}
	return out
}

// encodeUnsigned quantizes non-negative src into dst and returns the
// scale to decode it with.
func encodeUnsigned(dst []uint16, src []float32) float32 {
	scale := sliceop.Max(src)
	var mul float32
	if scale > 0 {
		mul = u16Max / scale
	}
	for i, v := range src {
		r := math.Round(float64(v * mul))
		if r > u16Max {
			r = u16Max
		}
		if r < 0 {
			r = 0
		}
		dst[i] = uint16(r)
	}
	return scale
}

func decodeUnsigned(src []uint16, scale float32) []float32 {
	out := make([]float32, len(src))
	mul := scale / u16Max
	for i, v := range src {
		out[i] = float32(v) * mul
	}
	return out
}
