package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceRelNearlyEqual compares with a tolerance relative to the peak
// magnitude of want, so buffers at 16-bit scale can use the same eps as unit ones.
func RequireSliceRelNearlyEqual(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	scale := 1.0
	for _, v := range want {
		scale = math.Max(scale, math.Abs(v))
	}
	RequireSliceNearlyEqual(t, got, want, rel*scale)
}

// RequireComplexNearlyEqual is the complex counterpart of RequireSliceRelNearlyEqual.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	scale := 1.0
	for _, v := range want {
		scale = math.Max(scale, cmplx.Abs(v))
	}
	for i := range got {
		if diff := cmplx.Abs(got[i] - want[i]); diff > rel*scale {
			t.Fatalf("bin %d: got %v, want %v (diff %v > %v)", i, got[i], want[i], diff, rel*scale)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireZeroBins fails t unless every listed bin is exactly zero.
func RequireZeroBins(t *testing.T, bins []complex128, idx ...int) {
	t.Helper()
	for _, k := range idx {
		if bins[k] != 0 {
			t.Fatalf("bin %d = %v, want 0", k, bins[k])
		}
	}
}
