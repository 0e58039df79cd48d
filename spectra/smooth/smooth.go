// Package smooth provides Gaussian low-pass smoothing of spectra for noise
// control before continuum fitting. Short kernels convolve directly; long
// kernels go through an FFT.
package smooth

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by smoothing functions.
var (
	ErrEmptyInput   = errors.New("smooth: empty input")
	ErrInvalidSigma = errors.New("smooth: sigma must be positive")
)

// Kernels shorter than this convolve directly; FFT wins beyond it.
const fftThreshold = 32

// Gaussian smooths the intensity array with a Gaussian kernel of the given
// standard deviation, measured in samples. The output has the same length
// as the input. Near the edges the kernel is renormalized over its valid
// support, so flat regions stay flat instead of decaying toward zero.
func Gaussian(intensity []float64, sigma float64) ([]float64, error) {
	if len(intensity) == 0 {
		return nil, ErrEmptyInput
	}

	if sigma <= 0 {
		return nil, ErrInvalidSigma
	}

	kernel := gaussianKernel(sigma)
	half := len(kernel) / 2

	var full []float64

	var err error
	if len(kernel) < fftThreshold {
		full = convolveDirect(intensity, kernel)
	} else {
		full, err = convolveFFT(intensity, kernel)
		if err != nil {
			return nil, err
		}
	}

	// Same-length slice of the full convolution, renormalized per point by
	// the kernel mass that actually overlapped the signal.
	out := make([]float64, len(intensity))
	prefix := kernelPrefix(kernel)

	for i := range out {
		lo := half - i
		if lo < 0 {
			lo = 0
		}

		hi := len(kernel)
		if over := i + half - (len(intensity) - 1); over > 0 {
			hi -= over
		}

		mass := prefix[hi] - prefix[lo]
		out[i] = full[i+half] / mass
	}

	return out, nil
}

// gaussianKernel builds a normalized kernel truncated at 4 sigma.
func gaussianKernel(sigma float64) []float64 {
	half := int(math.Ceil(4 * sigma))
	kernel := make([]float64, 2*half+1)

	var sum float64

	for i := range kernel {
		d := float64(i - half)
		kernel[i] = math.Exp(-0.5 * d * d / (sigma * sigma))
		sum += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// kernelPrefix returns prefix sums with prefix[0]=0.
func kernelPrefix(kernel []float64) []float64 {
	prefix := make([]float64, len(kernel)+1)
	for i, v := range kernel {
		prefix[i+1] = prefix[i] + v
	}

	return prefix
}

// convolveDirect is the O(N*M) time-domain path for short kernels.
func convolveDirect(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)

	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j]
		}
	}

	return out
}

// convolveFFT performs linear convolution via zero-padded FFTs.
func convolveFFT(a, b []float64) ([]float64, error) {
	n := len(a) + len(b) - 1
	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("smooth: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	bPadded := make([]complex128, fftSize)
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	resultFreq := make([]complex128, fftSize)
	for i := range resultFreq {
		resultFreq[i] = aFreq[i] * bFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, resultFreq); err != nil {
		return nil, fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	result := make([]float64, n)
	for i := range result {
		result[i] = real(resultTime[i])
	}

	return result, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
