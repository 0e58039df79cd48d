package pipeline

import (
	"github.com/cwbudde/algo-spectra/spectra"
	"github.com/cwbudde/algo-spectra/spectra/lines"
)

const defaultDegree = 3

// Config defines one reduction run.
type Config struct {
	// Mode selects mean or sum aggregation of the exposures.
	Mode AggregationMode

	// Window restricts the analysis to [Window[0], Window[1]] nm.
	// A zero window analyzes the full range.
	Window [2]float64

	// Degree is the continuum polynomial order.
	Degree int

	// Smoothing is the Gaussian sigma in samples applied before the
	// continuum fit; 0 disables smoothing.
	Smoothing float64

	// Lines configures the detection thresholds and confirmation spans.
	Lines lines.Config

	background *spectra.Table
	dark       *spectra.Table
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: mean aggregation, full range,
// cubic continuum, no smoothing, no references.
func DefaultConfig() Config {
	return Config{Degree: defaultDegree}
}

// WithSumAggregation co-adds exposures instead of averaging them.
func WithSumAggregation() Option {
	return func(cfg *Config) {
		cfg.Mode = AggregateSum
	}
}

// WithWindow restricts the analysis to [min, max] nm.
func WithWindow(min, max float64) Option {
	return func(cfg *Config) {
		cfg.Window = [2]float64{min, max}
	}
}

// WithDegree sets the continuum polynomial order.
func WithDegree(degree int) Option {
	return func(cfg *Config) {
		if degree >= 0 {
			cfg.Degree = degree
		}
	}
}

// WithSmoothing enables Gaussian pre-smoothing with the given sigma in
// samples.
func WithSmoothing(sigma float64) Option {
	return func(cfg *Config) {
		if sigma > 0 {
			cfg.Smoothing = sigma
		}
	}
}

// WithBackground subtracts a background frame after aggregation.
func WithBackground(t spectra.Table) Option {
	return func(cfg *Config) {
		cfg.background = &t
	}
}

// WithDark subtracts a dark-current frame after aggregation.
func WithDark(t spectra.Table) Option {
	return func(cfg *Config) {
		cfg.dark = &t
	}
}

// WithLineConfig sets the detection parameters.
func WithLineConfig(lc lines.Config) Option {
	return func(cfg *Config) {
		cfg.Lines = lc
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
