package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignedRoundTrip(t *testing.T) {
	src := []float32{-1.5, 0.75, 0, 1.5, -0.0003}
	dst := make([]int16, len(src))

	scale := encodeSigned(dst, src)
	require.Equal(t, float32(1.5), scale)
	require.Equal(t, int16(-i16Max), dst[0])
	require.Equal(t, int16(i16Max), dst[3])
	require.Equal(t, int16(0), dst[2])

	decoded := decodeSigned(dst, scale)
	step := float64(scale) / i16Max
	for i := range src {
		require.InDelta(t, src[i], decoded[i], step)
	}
}

func TestUnsignedRoundTrip(t *testing.T) {
	src := []float32{0.25, 1, 0}
	dst := make([]uint16, len(src))

	scale := encodeUnsigned(dst, src)
	require.Equal(t, float32(1), scale)
	require.Equal(t, uint16(u16Max), dst[1])
	require.Equal(t, uint16(0), dst[2])

	decoded := decodeUnsigned(dst, scale)
	step := float64(scale) / u16Max
	for i := range src {
		require.InDelta(t, src[i], decoded[i], step)
	}
}

func TestEncodeZeroSlice(t *testing.T) {
	src := make([]float32, 4)

	dstS := make([]int16, 4)
	require.Equal(t, float32(0), encodeSigned(dstS, src))
	for _, v := range dstS {
		require.Equal(t, int16(0), v)
	}
	for _, v := range decodeSigned(dstS, 0) {
		require.Equal(t, float32(0), v)
	}

	dstU := make([]uint16, 4)
	require.Equal(t, float32(0), encodeUnsigned(dstU, src))
	for _, v := range dstU {
		require.Equal(t, uint16(0), v)
	}
}

func TestEncodeClampsOutliers(t *testing.T) {
	// Negative values are clamped to zero in the unsigned encoding.
	dst := make([]uint16, 2)
	scale := encodeUnsigned(dst, []float32{2, -1})
	require.Equal(t, float32(2), scale)
	require.Equal(t, uint16(u16Max), dst[0])
	require.Equal(t, uint16(0), dst[1])
}
