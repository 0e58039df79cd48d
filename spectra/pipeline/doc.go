// Package pipeline runs a complete spectrum reduction: exposure
// aggregation, background/dark subtraction, optional smoothing, windowing,
// continuum normalization, and line detection.
//
// Each call is independent and touches no shared state; callers that
// reduce many spectra can run invocations in parallel without
// coordination.
//
// # Usage
//
//	result, err := pipeline.Run(exposures, catalog, telluric,
//	    pipeline.WithBackground(background),
//	    pipeline.WithDark(dark),
//	    pipeline.WithWindow(400, 700),
//	    pipeline.WithDegree(3),
//	    pipeline.WithLineConfig(lines.Config{CatalogThreshold: 0.03}),
//	)
//	if err != nil {
//	    // aggregation, correction, or normalization failed; no partial output
//	}
//
//	waves, labels := result.Detections.Annotations()
//	// hand result.Wavelength, result.Residual, waves, labels to a renderer
package pipeline
