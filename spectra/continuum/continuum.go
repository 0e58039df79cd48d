// Package continuum fits a low-order Chebyshev continuum model to a
// windowed spectrum and produces continuum-normalized residuals.
package continuum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectra/internal/chebyshev"
	"github.com/cwbudde/algo-spectra/spectra"
)

// Errors returned by continuum fitting.
var (
	ErrInvalidDegree = errors.New("continuum: degree must be non-negative")
	ErrTooFewSamples = errors.New("continuum: fewer samples than fit coefficients")
)

// Model is a fitted Chebyshev continuum over a wavelength span.
type Model struct {
	Coeffs []float64 // Chebyshev series coefficients, T_0 first
	Min    float64   // wavelength mapped to -1
	Max    float64   // wavelength mapped to +1
}

// Eval returns the continuum value at the given wavelength.
func (m Model) Eval(wavelength float64) float64 {
	return chebyshev.Eval(m.Coeffs, chebyshev.Map(wavelength, m.Min, m.Max))
}

// Continuum evaluates the model over a whole wavelength array.
func (m Model) Continuum(wavelength []float64) []float64 {
	out := make([]float64, len(wavelength))
	for i, w := range wavelength {
		out[i] = m.Eval(w)
	}

	return out
}

// Fit solves the ordinary least-squares Chebyshev fit of intensity against
// wavelength. The returned model can be evaluated for diagnostic overlays.
func Fit(wavelength, intensity []float64, degree int) (Model, error) {
	if len(wavelength) == 0 {
		return Model{}, spectra.ErrEmptyInput
	}

	if len(wavelength) != len(intensity) {
		return Model{}, spectra.ErrShapeMismatch
	}

	if degree < 0 {
		return Model{}, ErrInvalidDegree
	}

	cols := degree + 1
	if len(wavelength) < cols {
		return Model{}, ErrTooFewSamples
	}

	min, max := wavelength[0], wavelength[0]
	for _, w := range wavelength[1:] {
		if w < min {
			min = w
		}

		if w > max {
			max = w
		}
	}

	design, err := chebyshev.Vandermonde(wavelength, min, max, degree)
	if err != nil {
		// Zero wavelength span leaves nothing to fit against.
		return Model{}, spectra.ErrDegenerateSpectrum
	}

	a := mat.NewDense(len(wavelength), cols, design)
	b := mat.NewDense(len(intensity), 1, append([]float64(nil), intensity...))

	var qr mat.QR
	qr.Factorize(a)

	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, b); err != nil {
		return Model{}, fmt.Errorf("continuum: least-squares solve: %w", err)
	}

	coeffs := make([]float64, cols)
	for k := range coeffs {
		coeffs[k] = sol.At(k, 0)
	}

	return Model{Coeffs: coeffs, Min: min, Max: max}, nil
}

// degenerateTol separates genuine residual structure from the rounding
// noise a least-squares fit leaves behind when it reproduces the input
// exactly. The residual norm is compared against the intensity norm, so
// the threshold is scale-free.
const degenerateTol = 1e-10

// Normalize fits the continuum and returns the residual
//
//	r(λ) = (intensity(λ) − continuum(λ)) / ‖intensity − continuum‖₂
//
// where the norm is one global scalar over the whole array, so the output
// has unit L2 norm. A window the fit reproduces exactly (constant or
// polynomial intensity within the model degree) yields
// spectra.ErrDegenerateSpectrum rather than rescaled rounding noise.
func Normalize(wavelength, intensity []float64, degree int) ([]float64, error) {
	model, err := Fit(wavelength, intensity, degree)
	if err != nil {
		return nil, err
	}

	residual := make([]float64, len(intensity))
	for i := range residual {
		residual[i] = intensity[i] - model.Eval(wavelength[i])
	}

	norm := math.Sqrt(vecmath.DotProduct(residual, residual))
	scale := math.Sqrt(vecmath.DotProduct(intensity, intensity))

	if norm <= degenerateTol*scale {
		return nil, spectra.ErrDegenerateSpectrum
	}

	vecmath.ScaleBlockInPlace(residual, 1/norm)

	return residual, nil
}
