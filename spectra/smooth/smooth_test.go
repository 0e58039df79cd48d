package smooth

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/internal/testutil"
)

func TestValidation(t *testing.T) {
	if _, err := Gaussian(nil, 1); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty input: got %v, want ErrEmptyInput", err)
	}

	if _, err := Gaussian([]float64{1, 2}, 0); !errors.Is(err, ErrInvalidSigma) {
		t.Errorf("zero sigma: got %v, want ErrInvalidSigma", err)
	}

	if _, err := Gaussian([]float64{1, 2}, -1); !errors.Is(err, ErrInvalidSigma) {
		t.Errorf("negative sigma: got %v, want ErrInvalidSigma", err)
	}
}

func TestConstantStaysConstant(t *testing.T) {
	in := testutil.Constant(7.5, 100)

	for _, sigma := range []float64{0.8, 2, 12} {
		out, err := Gaussian(in, sigma)
		if err != nil {
			t.Fatal(err)
		}

		// Edge renormalization keeps flat regions flat all the way out.
		testutil.RequireSliceNearlyEqual(t, out, in, 1e-9)
	}
}

func TestOutputLength(t *testing.T) {
	in := make([]float64, 57)
	for i := range in {
		in[i] = float64(i)
	}

	out, err := Gaussian(in, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != len(in) {
		t.Errorf("output length = %d, want %d", len(out), len(in))
	}
}

func TestSmoothingReducesNoise(t *testing.T) {
	// Deterministic pseudo-noise around a linear trend: smoothing must
	// shrink the deviation from the trend.
	n := 256
	in := make([]float64, n)

	for i := range in {
		in[i] = float64(i)*0.1 + 0.5*math.Sin(float64(i)*2.39996)
	}

	out, err := Gaussian(in, 4)
	if err != nil {
		t.Fatal(err)
	}

	var before, after float64

	for i := 20; i < n-20; i++ {
		trend := float64(i) * 0.1
		before += (in[i] - trend) * (in[i] - trend)
		after += (out[i] - trend) * (out[i] - trend)
	}

	if after >= before/4 {
		t.Errorf("noise energy %g not reduced enough from %g", after, before)
	}
}

func TestDirectAndFFTPathsAgree(t *testing.T) {
	in := make([]float64, 200)
	for i := range in {
		in[i] = math.Sin(float64(i) / 7)
	}

	// sigma 9 gives a 73-tap kernel, which takes the FFT path in Gaussian.
	kernel := gaussianKernel(9)
	if len(kernel) < fftThreshold {
		t.Fatalf("kernel length %d does not exercise the FFT path", len(kernel))
	}

	want := convolveDirect(in, kernel)

	got, err := convolveFFT(in, kernel)
	if err != nil {
		t.Fatal(err)
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("fft convolution diverges at %d: %g vs %g", i, got[i], want[i])
		}
	}
}

func TestPreservesMeanInInterior(t *testing.T) {
	in := make([]float64, 128)
	for i := range in {
		in[i] = 10 + math.Sin(float64(i))
	}

	out, err := Gaussian(in, 2)
	if err != nil {
		t.Fatal(err)
	}

	var meanIn, meanOut float64
	for i := 30; i < 98; i++ {
		meanIn += in[i]
		meanOut += out[i]
	}

	if math.Abs(meanIn-meanOut)/meanIn > 1e-3 {
		t.Errorf("interior mean drifted: %g vs %g", meanIn, meanOut)
	}
}
