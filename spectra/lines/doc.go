// Package lines classifies catalog and telluric reference wavelengths as
// detected or not detected in a continuum-normalized residual spectrum.
//
// A reference wavelength is snapped to the nearest sample (no
// interpolation). Absorption registers as negative residual, so the depth
// of a candidate is the negated flux at the snapped index. A candidate is
// confirmed only if its depth reaches the threshold and the flux sits
// strictly below the flux a fixed number of samples to either side, which
// rejects monotonic slopes and flat noise. Candidates snapped too close to
// the window edge for that comparison are silently dropped rather than
// reported or raised.
//
// # Usage
//
// Detect catalog lines and telluric contamination in one pass:
//
//	catalog := lines.Catalog{
//	    {Label: "Hα", Wavelength: 656.3},
//	    {Label: "Na I D1", Wavelength: 589.0},
//	}
//	telluric := lines.Telluric{687.8, 759.3}
//
//	result := lines.Detect(wavelength, residual, catalog, telluric, lines.Config{
//	    CatalogThreshold: 0.03,
//	})
//
//	waves, labels := result.Annotations() // flattened form for a renderer
//
// The catalog is an ordered list, not a map: real catalogs assign the same
// label to several wavelengths (ionization states), and all of them must
// survive.
package lines
