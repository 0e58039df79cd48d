package continuum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/internal/testutil"
	"github.com/cwbudde/algo-spectra/spectra"
)

func ramp(n int, start, step, slope, offset float64) (w, in []float64) {
	w = testutil.Grid(start, step, n)
	return w, testutil.Ramp(w, offset, slope)
}

func TestFitRecoversLinearTrend(t *testing.T) {
	w, in := ramp(101, 400, 1, 0.25, 3)

	model, err := Fit(w, in, 1)
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{400, 437.5, 500} {
		want := 3 + 0.25*x
		got := model.Eval(x)

		if math.Abs(got-want) > 1e-8 {
			t.Errorf("continuum(%g) = %g, want %g", x, got, want)
		}
	}
}

func TestNormalizeUnitNorm(t *testing.T) {
	w, in := ramp(101, 400, 1, 0.1, 2)

	// Perturb so the residual is non-degenerate.
	for i := range in {
		in[i] += 0.05 * math.Sin(float64(i))
	}

	res, err := Normalize(w, in, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(res) != len(in) {
		t.Fatalf("residual length = %d, want %d", len(res), len(in))
	}

	testutil.RequireFinite(t, res)
	testutil.RequireUnitNorm(t, res, 1e-10)
}

func TestNormalizeDegenerateConstant(t *testing.T) {
	// A constant spectrum is fitted exactly up to rounding; the leftover
	// noise must not be rescaled into a fake residual.
	w, in := ramp(32, 400, 1, 0, 5)

	_, err := Normalize(w, in, 1)
	if !errors.Is(err, spectra.ErrDegenerateSpectrum) {
		t.Errorf("got %v, want ErrDegenerateSpectrum", err)
	}
}

func TestNormalizeExactFitDegenerate(t *testing.T) {
	// A pure linear trend is reproduced by the degree-1 fit; only rounding
	// noise remains, which counts as degenerate too.
	w, in := ramp(101, 400, 1, 0.25, 3)

	_, err := Normalize(w, in, 1)
	if !errors.Is(err, spectra.ErrDegenerateSpectrum) {
		t.Errorf("got %v, want ErrDegenerateSpectrum", err)
	}
}

func TestFitZeroSpan(t *testing.T) {
	w := []float64{500, 500, 500}
	in := []float64{1, 2, 3}

	_, err := Fit(w, in, 1)
	if !errors.Is(err, spectra.ErrDegenerateSpectrum) {
		t.Errorf("got %v, want ErrDegenerateSpectrum", err)
	}
}

func TestFitValidation(t *testing.T) {
	w, in := ramp(8, 400, 1, 0.5, 0)

	tests := []struct {
		name    string
		w, in   []float64
		degree  int
		wantErr error
	}{
		{"empty", nil, nil, 1, spectra.ErrEmptyInput},
		{"length mismatch", w, in[:4], 1, spectra.ErrShapeMismatch},
		{"negative degree", w, in, -1, ErrInvalidDegree},
		{"too few samples", w[:2], in[:2], 3, ErrTooFewSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.w, tt.in, tt.degree)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeToleratesNegativeInput(t *testing.T) {
	// Over-subtracted spectra carry negative intensities; fitting must not
	// care about sign.
	w, in := ramp(64, 400, 1, -0.3, -10)
	for i := range in {
		in[i] += 0.02 * math.Cos(float64(i)/3)
	}

	res, err := Normalize(w, in, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(res) != len(in) {
		t.Errorf("residual length = %d, want %d", len(res), len(in))
	}
}

func TestHigherDegreeFitsCurvature(t *testing.T) {
	n := 201
	w := make([]float64, n)
	in := make([]float64, n)

	for i := range w {
		w[i] = 400 + float64(i)*0.5
		x := w[i] - 450
		in[i] = 100 + 0.5*x + 0.01*x*x
	}

	model, err := Fit(w, in, 2)
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{410, 450, 490} {
		d := x - 450
		want := 100 + 0.5*d + 0.01*d*d

		if got := model.Eval(x); math.Abs(got-want) > 1e-6 {
			t.Errorf("continuum(%g) = %g, want %g", x, got, want)
		}
	}
}
