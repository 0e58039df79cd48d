package correct

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-spectra/spectra"
)

func table(intensity ...float64) spectra.Table {
	w := make([]float64, len(intensity))
	for i := range w {
		w[i] = 400 + float64(i)
	}

	return spectra.Table{Wavelength: w, Intensity: intensity}
}

func TestIdentityWithNoReferences(t *testing.T) {
	raw := table(1, 2, 3)

	out, err := Apply(raw)
	if err != nil {
		t.Fatal(err)
	}

	for i := range raw.Intensity {
		if out.Intensity[i] != raw.Intensity[i] {
			t.Errorf("intensity[%d] = %g, want %g", i, out.Intensity[i], raw.Intensity[i])
		}
	}
}

func TestBackgroundAndDark(t *testing.T) {
	raw := table(10, 20, 30)
	bg := table(1, 2, 3)
	dark := table(0.5, 0.5, 0.5)

	out, err := Apply(raw, WithBackground(bg), WithDark(dark))
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{8.5, 17.5, 26.5}
	for i := range want {
		if out.Intensity[i] != want[i] {
			t.Errorf("intensity[%d] = %g, want %g", i, out.Intensity[i], want[i])
		}
	}
}

func TestBothEqualsSequential(t *testing.T) {
	raw := table(10, 20, 30)
	bg := table(1, 2, 3)
	dark := table(4, 5, 6)

	both, err := Apply(raw, WithBackground(bg), WithDark(dark))
	if err != nil {
		t.Fatal(err)
	}

	step1, err := Apply(raw, WithBackground(bg))
	if err != nil {
		t.Fatal(err)
	}

	step2, err := Apply(step1, WithDark(dark))
	if err != nil {
		t.Fatal(err)
	}

	for i := range both.Intensity {
		if both.Intensity[i] != step2.Intensity[i] {
			t.Errorf("intensity[%d]: combined %g != sequential %g",
				i, both.Intensity[i], step2.Intensity[i])
		}
	}
}

func TestShapeMismatch(t *testing.T) {
	raw := table(1, 2, 3, 4, 5)
	bg := table(1, 2, 3, 4)

	_, err := Apply(raw, WithBackground(bg))
	if !errors.Is(err, spectra.ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}

func TestNegativeIntensitiesKept(t *testing.T) {
	raw := table(1)
	bg := table(5)

	out, err := Apply(raw, WithBackground(bg))
	if err != nil {
		t.Fatal(err)
	}

	if out.Intensity[0] != -4 {
		t.Errorf("intensity = %g, want -4 (no clamping)", out.Intensity[0])
	}
}

func TestOriginalUntouched(t *testing.T) {
	raw := table(10)
	bg := table(1)

	_, err := Apply(raw, WithBackground(bg))
	if err != nil {
		t.Fatal(err)
	}

	if raw.Intensity[0] != 10 {
		t.Errorf("raw mutated to %g", raw.Intensity[0])
	}
}

func TestApplyEach(t *testing.T) {
	raws := []spectra.Table{table(10, 20), table(30, 40)}
	bg := table(1, 2)

	out, err := ApplyEach(raws, WithBackground(bg))
	if err != nil {
		t.Fatal(err)
	}

	if out[0].Intensity[0] != 9 || out[1].Intensity[1] != 38 {
		t.Errorf("batch correction wrong: %v", out)
	}
}

func TestApplyEachAbortsWholeBatch(t *testing.T) {
	raws := []spectra.Table{table(10, 20), table(30)}
	bg := table(1, 2)

	out, err := ApplyEach(raws, WithBackground(bg))
	if !errors.Is(err, spectra.ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}

	if out != nil {
		t.Error("partial results returned on failure")
	}
}

func TestApplyEachEmpty(t *testing.T) {
	_, err := ApplyEach(nil)
	if !errors.Is(err, spectra.ErrEmptyInput) {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}
