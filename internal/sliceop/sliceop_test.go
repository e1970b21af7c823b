package sliceop

import (
	"math"
	"testing"
)

func TestAddSubMul(t *testing.T) {
	dst := []float32{1, 2, 3}
	Add(dst, []float32{10, 20, 30})
	want := []float32{11, 22, 33}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Add[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	Sub(dst, []float32{1, 2, 3})
	want = []float32{10, 20, 30}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Sub[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	Mul(dst, []float32{0.5, 0.5, 0.5})
	want = []float32{5, 10, 15}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Mul[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestMulScalar(t *testing.T) {
	dst := []float32{1, -2, 4}
	MulScalar(dst, 0.25)
	want := []float32{0.25, -0.5, 1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("MulScalar[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestFMA(t *testing.T) {
	dst := []float32{1, 1, 1}
	FMA(dst, []float32{2, 3, 4}, []float32{10, 10, 0.5})
	want := []float32{21, 31, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("FMA[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestElementMax(t *testing.T) {
	dst := []float32{1, 5, -2}
	ElementMax(dst, []float32{3, 4, -1})
	want := []float32{3, 5, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("ElementMax[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]float32{1.5, 2.5, -1}); got != 3 {
		t.Errorf("Sum = %v, want 3", got)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
}

func TestMax(t *testing.T) {
	cases := []struct {
		name string
		xs   []float32
		want float32
	}{
		{"mixed", []float32{0.5, 3, 1}, 3},
		{"all negative", []float32{-1, -2}, 0},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		if got := Max(tc.xs); got != tc.want {
			t.Errorf("%s: Max = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMaxAbs(t *testing.T) {
	cases := []struct {
		name string
		xs   []float32
		want float32
	}{
		{"negative dominates", []float32{1, -4, 2}, 4},
		{"positive dominates", []float32{1, -0.5, 2}, 2},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		if got := MaxAbs(tc.xs); got != tc.want {
			t.Errorf("%s: MaxAbs = %v, want %v", tc.name, got, tc.want)
		}
	}
	if got := MaxAbs([]float32{float32(math.Inf(-1))}); !math.IsInf(float64(got), 1) {
		t.Errorf("MaxAbs(-inf) = %v, want +inf", got)
	}
}
