// Package testutil provides helpers shared by the spectra package tests.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if the two intensity or residual arrays
// differ in length or any sample pair differs by more than eps (absolute
// tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("sample %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample is NaN or Inf. Normalization and
// FFT smoothing must never leak non-finite values into a spectrum.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d: non-finite value %v", i, v)
		}
	}
}

// RequireUnitNorm fails t if the L2 norm of data deviates from 1 by more
// than eps. Continuum-normalized residuals must satisfy this.
func RequireUnitNorm(t *testing.T, data []float64, eps float64) {
	t.Helper()

	var sumSq float64
	for _, v := range data {
		sumSq += v * v
	}

	norm := math.Sqrt(sumSq)
	if math.Abs(norm-1) > eps {
		t.Fatalf("L2 norm = %v, want 1 (eps %v)", norm, eps)
	}
}
