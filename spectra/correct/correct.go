// Package correct subtracts reference frames (background, dark current)
// from raw exposures position by position. Wavelength columns are assumed
// to be grid-aligned already; only lengths are checked.
package correct

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectra"
)

// Config holds the references to subtract. Each active reference is
// applied independently; with none active Apply is the identity.
type Config struct {
	refs []spectra.Table
}

// Option adds a reference frame to a Config.
type Option func(*Config)

// WithBackground subtracts a background frame.
func WithBackground(t spectra.Table) Option {
	return WithReference(t)
}

// WithDark subtracts a dark-current frame.
func WithDark(t spectra.Table) Option {
	return WithReference(t)
}

// WithReference subtracts an arbitrary reference frame. Background and
// dark are the usual cases; any further frame composes the same way.
func WithReference(t spectra.Table) Option {
	return func(cfg *Config) {
		cfg.refs = append(cfg.refs, t)
	}
}

// Apply subtracts every configured reference from raw and returns the
// corrected spectrum as a new table. All participating tables must have
// the same length; any mismatch aborts with spectra.ErrShapeMismatch and
// no partial result. Negative intensities from over-subtraction are kept
// as-is; continuum fitting downstream tolerates them.
func Apply(raw spectra.Table, opts ...Option) (spectra.Table, error) {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := raw.Validate(); err != nil {
		return spectra.Table{}, fmt.Errorf("correct: raw: %w", err)
	}

	for i, ref := range cfg.refs {
		if err := ref.Validate(); err != nil {
			return spectra.Table{}, fmt.Errorf("correct: reference %d: %w", i, err)
		}

		if ref.Len() != raw.Len() {
			return spectra.Table{}, fmt.Errorf("correct: reference %d has %d samples, raw has %d: %w",
				i, ref.Len(), raw.Len(), spectra.ErrShapeMismatch)
		}
	}

	out := raw.Clone()

	for _, ref := range cfg.refs {
		for i, v := range ref.Intensity {
			out.Intensity[i] -= v
		}
	}

	return out, nil
}

// ApplyEach corrects a batch of raw exposures against the same references.
// The first failure aborts the whole batch; no partial results are
// returned.
func ApplyEach(raws []spectra.Table, opts ...Option) ([]spectra.Table, error) {
	if len(raws) == 0 {
		return nil, spectra.ErrEmptyInput
	}

	out := make([]spectra.Table, len(raws))

	for i, raw := range raws {
		corrected, err := Apply(raw, opts...)
		if err != nil {
			return nil, fmt.Errorf("correct: exposure %d: %w", i, err)
		}

		out[i] = corrected
	}

	return out, nil
}
