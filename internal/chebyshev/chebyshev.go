// Package chebyshev evaluates Chebyshev polynomial bases on an affinely
// mapped domain, shared by the continuum fitting package.
package chebyshev

import "errors"

// ErrDegenerateDomain is returned when the evaluation domain has zero span.
var ErrDegenerateDomain = errors.New("chebyshev: domain has zero span")

// Map returns the affine image of x from [min, max] onto [-1, 1].
func Map(x, min, max float64) float64 {
	return 2*(x-min)/(max-min) - 1
}

// Basis fills one design-matrix row with T_0(x)..T_degree(x) for x already
// mapped to [-1, 1], using the three-term recurrence.
func Basis(row []float64, x float64) {
	if len(row) == 0 {
		return
	}

	row[0] = 1
	if len(row) == 1 {
		return
	}

	row[1] = x

	for k := 2; k < len(row); k++ {
		row[k] = 2*x*row[k-1] - row[k-2]
	}
}

// Vandermonde returns the row-major design matrix of T_0..T_degree
// evaluated at every point of x mapped from [min, max] onto [-1, 1].
// The result has len(x) rows of degree+1 columns.
func Vandermonde(x []float64, min, max float64, degree int) ([]float64, error) {
	if max == min {
		return nil, ErrDegenerateDomain
	}

	cols := degree + 1
	out := make([]float64, len(x)*cols)

	for i, xi := range x {
		Basis(out[i*cols:(i+1)*cols], Map(xi, min, max))
	}

	return out, nil
}

// Eval evaluates the Chebyshev series sum c_k T_k(x) at x already mapped
// to [-1, 1] via the Clenshaw recurrence.
func Eval(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	var b1, b2 float64

	for k := len(coeffs) - 1; k >= 1; k-- {
		b1, b2 = 2*x*b1-b2+coeffs[k], b1
	}

	return x*b1 - b2 + coeffs[0]
}
