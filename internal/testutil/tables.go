package testutil

// Grid returns n wavelengths starting at start with the given step.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Ramp returns offset + slope*w for every wavelength in grid.
func Ramp(grid []float64, offset, slope float64) []float64 {
	out := make([]float64, len(grid))
	for i, w := range grid {
		out[i] = offset + slope*w
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// WithDip returns a copy of intensity with depth subtracted at index.
func WithDip(intensity []float64, index int, depth float64) []float64 {
	out := append([]float64(nil), intensity...)
	if index >= 0 && index < len(out) {
		out[index] -= depth
	}
	return out
}
