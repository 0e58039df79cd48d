package pipeline

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectra"
	"github.com/cwbudde/algo-spectra/spectra/aggregate"
	"github.com/cwbudde/algo-spectra/spectra/continuum"
	"github.com/cwbudde/algo-spectra/spectra/correct"
	"github.com/cwbudde/algo-spectra/spectra/lines"
	"github.com/cwbudde/algo-spectra/spectra/smooth"
)

// AggregationMode selects how repeated exposures combine.
type AggregationMode int

const (
	// AggregateMean averages exposures, the usual choice for noise
	// reduction of repeated captures.
	AggregateMean AggregationMode = iota

	// AggregateSum co-adds exposures, the usual choice for weak signal.
	AggregateSum
)

// Result is the output of one reduction run: the windowed wavelength grid,
// the continuum-normalized residual on it, and the confirmed detections.
// A rendering collaborator consumes all three.
type Result struct {
	Wavelength []float64
	Residual   []float64
	Detections lines.Result
}

// Run reduces a batch of exposures end to end: aggregate, subtract
// references, optionally smooth, restrict to the analysis window, fit and
// normalize the continuum, and detect lines. Stage failures abort the run
// with the stage's error; boundary conditions inside detection do not.
func Run(exposures []spectra.Table, catalog lines.Catalog, telluric lines.Telluric, opts ...Option) (Result, error) {
	cfg := applyOptions(opts...)

	var (
		agg spectra.Table
		err error
	)

	switch cfg.Mode {
	case AggregateSum:
		agg, err = aggregate.Sum(exposures)
	default:
		agg, err = aggregate.Mean(exposures)
	}

	if err != nil {
		return Result{}, fmt.Errorf("pipeline: aggregate: %w", err)
	}

	var corrOpts []correct.Option
	if cfg.background != nil {
		corrOpts = append(corrOpts, correct.WithBackground(*cfg.background))
	}

	if cfg.dark != nil {
		corrOpts = append(corrOpts, correct.WithDark(*cfg.dark))
	}

	corrected, err := correct.Apply(agg, corrOpts...)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	if cfg.Smoothing > 0 {
		smoothed, err := smooth.Gaussian(corrected.Intensity, cfg.Smoothing)
		if err != nil {
			return Result{}, fmt.Errorf("pipeline: %w", err)
		}

		corrected.Intensity = smoothed
	}

	win := corrected
	if cfg.Window[1] > cfg.Window[0] {
		win = corrected.Window(cfg.Window[0], cfg.Window[1])
	}

	residual, err := continuum.Normalize(win.Wavelength, win.Intensity, cfg.Degree)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	detections := lines.Detect(win.Wavelength, residual, catalog, telluric, cfg.Lines)

	return Result{
		Wavelength: win.Wavelength,
		Residual:   residual,
		Detections: detections,
	}, nil
}
