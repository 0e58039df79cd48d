// Package aggregate combines repeated exposures into a single spectrum by
// per-wavelength mean or sum.
//
// Wavelengths are grouped by exact float64 equality, matching the
// instrument's fixed sampling grid. Exposures taken on slightly different
// grids will not merge at matching physical wavelengths; resample upstream
// if grids differ.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/spectra"
)

// Mean averages the intensities of all exposures at each wavelength.
// The output wavelength set is the union of all input wavelengths; a
// wavelength present in only some exposures is averaged over those
// exposures alone. The output is sorted ascending by wavelength.
func Mean(tables []spectra.Table) (spectra.Table, error) {
	return combine(tables, true)
}

// Sum co-adds the intensities of all exposures at each wavelength, with
// the same union and ordering guarantees as Mean.
func Sum(tables []spectra.Table) (spectra.Table, error) {
	return combine(tables, false)
}

func combine(tables []spectra.Table, mean bool) (spectra.Table, error) {
	if len(tables) == 0 {
		return spectra.Table{}, spectra.ErrEmptyInput
	}

	for i, t := range tables {
		if err := t.Validate(); err != nil {
			return spectra.Table{}, fmt.Errorf("aggregate: table %d: %w", i, err)
		}
	}

	if out, ok := combineAligned(tables, mean); ok {
		return out, nil
	}

	return combineGrouped(tables, mean), nil
}

// combineAligned handles the common case of exposures sampled on an
// identical grid with block operations instead of per-sample grouping.
func combineAligned(tables []spectra.Table, mean bool) (spectra.Table, bool) {
	grid := tables[0].Wavelength

	for _, t := range tables[1:] {
		if len(t.Wavelength) != len(grid) {
			return spectra.Table{}, false
		}

		for i, w := range t.Wavelength {
			if w != grid[i] {
				return spectra.Table{}, false
			}
		}
	}

	// A duplicate wavelength inside one table needs real grouping.
	seen := make(map[float64]struct{}, len(grid))
	for _, w := range grid {
		if _, ok := seen[w]; ok {
			return spectra.Table{}, false
		}

		seen[w] = struct{}{}
	}

	intensity := make([]float64, len(grid))
	for _, t := range tables {
		vecmath.AddBlockInPlace(intensity, t.Intensity)
	}

	if mean {
		vecmath.ScaleBlockInPlace(intensity, 1/float64(len(tables)))
	}

	out := spectra.Table{
		Wavelength: append([]float64(nil), grid...),
		Intensity:  intensity,
	}

	return out.Sorted(), true
}

// combineGrouped is the general path: accumulate per exact wavelength
// across all tables, then emit in ascending wavelength order.
func combineGrouped(tables []spectra.Table, mean bool) spectra.Table {
	type bucket struct {
		sum float64
		n   int
	}

	acc := make(map[float64]*bucket)

	for _, t := range tables {
		for i, w := range t.Wavelength {
			b := acc[w]
			if b == nil {
				b = &bucket{}
				acc[w] = b
			}

			b.sum += t.Intensity[i]
			b.n++
		}
	}

	wavelength := make([]float64, 0, len(acc))
	for w := range acc {
		wavelength = append(wavelength, w)
	}

	sort.Float64s(wavelength)

	intensity := make([]float64, len(wavelength))

	for i, w := range wavelength {
		b := acc[w]
		if mean {
			intensity[i] = b.sum / float64(b.n)
		} else {
			intensity[i] = b.sum
		}
	}

	return spectra.Table{Wavelength: wavelength, Intensity: intensity}
}
