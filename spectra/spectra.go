// Package spectra provides the shared data model for instrument spectra:
// paired wavelength/intensity columns with validation, sorting, and
// windowing. Tables are value objects; transforms return new tables and
// leave their inputs untouched.
package spectra

import (
	"errors"
	"sort"
)

// Errors shared across the spectra packages.
var (
	ErrEmptyInput         = errors.New("spectra: no input data")
	ErrShapeMismatch      = errors.New("spectra: columns must have equal non-zero length")
	ErrDegenerateSpectrum = errors.New("spectra: windowed spectrum is degenerate")
)

// Table holds one spectrum: intensity sampled at a set of wavelengths.
// The two columns are parallel; sample i is (Wavelength[i], Intensity[i]).
type Table struct {
	Wavelength []float64 // wavelengths in nm
	Intensity  []float64 // intensities in counts (or normalized units downstream)
}

// New builds a Table from two columns after validating their shape.
// The slices are referenced, not copied.
func New(wavelength, intensity []float64) (Table, error) {
	t := Table{Wavelength: wavelength, Intensity: intensity}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}

	return t, nil
}

// Len returns the number of samples in the table.
func (t Table) Len() int {
	return len(t.Wavelength)
}

// Validate checks that the table has two parallel, non-empty columns.
func (t Table) Validate() error {
	if len(t.Wavelength) == 0 && len(t.Intensity) == 0 {
		return ErrEmptyInput
	}

	if len(t.Wavelength) != len(t.Intensity) || len(t.Wavelength) == 0 {
		return ErrShapeMismatch
	}

	return nil
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	return Table{
		Wavelength: append([]float64(nil), t.Wavelength...),
		Intensity:  append([]float64(nil), t.Intensity...),
	}
}

// IsSorted reports whether the wavelength column is non-decreasing.
func (t Table) IsSorted() bool {
	return sort.Float64sAreSorted(t.Wavelength)
}

// Sorted returns a copy of the table ordered by ascending wavelength.
// Intensities travel with their wavelengths. The sort is stable so
// duplicate wavelengths keep their input order.
func (t Table) Sorted() Table {
	out := t.Clone()
	sort.Stable(byWavelength(out))

	return out
}

// Window returns the samples whose wavelengths fall inside [min, max],
// inclusive on both ends, as a new table.
func (t Table) Window(min, max float64) Table {
	wavelength := make([]float64, 0, t.Len())
	intensity := make([]float64, 0, t.Len())

	for i, w := range t.Wavelength {
		if w >= min && w <= max {
			wavelength = append(wavelength, w)
			intensity = append(intensity, t.Intensity[i])
		}
	}

	return Table{Wavelength: wavelength, Intensity: intensity}
}

// byWavelength adapts a Table to sort.Interface, ordering by wavelength.
type byWavelength Table

func (t byWavelength) Len() int           { return len(t.Wavelength) }
func (t byWavelength) Less(i, j int) bool { return t.Wavelength[i] < t.Wavelength[j] }

func (t byWavelength) Swap(i, j int) {
	t.Wavelength[i], t.Wavelength[j] = t.Wavelength[j], t.Wavelength[i]
	t.Intensity[i], t.Intensity[j] = t.Intensity[j], t.Intensity[i]
}
