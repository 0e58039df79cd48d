package main

import (
	"errors"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cwbudde/algo-spectra/spectra/lines"
	"github.com/cwbudde/algo-spectra/spectra/pipeline"
)

// runConfig holds the numeric parameters of one reduction run.
type runConfig struct {
	// Window restricts the analysis to [min, max] nm; empty analyzes the
	// full range.
	Window []float64 `koanf:"window"`

	// Degree is the continuum polynomial order.
	Degree int `koanf:"degree"`

	// Smoothing is the pre-fit Gaussian sigma in samples; 0 disables it.
	Smoothing float64 `koanf:"smoothing"`

	// CatalogThreshold is the minimum depth for a catalog detection.
	CatalogThreshold float64 `koanf:"catalog_threshold"`

	// TelluricThreshold is the minimum depth for a telluric detection.
	TelluricThreshold float64 `koanf:"telluric_threshold"`

	// CatalogSpan and TelluricSpan are the local-minimum confirmation
	// half-widths in samples; 0 keeps the defaults (10 and 1).
	CatalogSpan  int `koanf:"catalog_span"`
	TelluricSpan int `koanf:"telluric_span"`

	// Catalog overrides the built-in line catalog.
	Catalog []catalogEntry `koanf:"catalog"`

	// Telluric overrides the built-in telluric wavelength list.
	Telluric []float64 `koanf:"telluric"`
}

type catalogEntry struct {
	Label      string  `koanf:"label"`
	Wavelength float64 `koanf:"wavelength"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Degree:           3,
		CatalogThreshold: 0.03,
	}
}

// loadConfig layers defaults, an optional YAML file, and SPECLINES_* env
// vars, in increasing precedence.
func loadConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return runConfig{}, err
		}
	}

	envProvider := env.Provider("SPECLINES_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "speclines_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return runConfig{}, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return runConfig{}, err
	}

	if len(cfg.Window) != 0 && len(cfg.Window) != 2 {
		return runConfig{}, errors.New("window must be [min, max]")
	}

	if cfg.CatalogThreshold <= 0 {
		return runConfig{}, errors.New("catalog_threshold must be positive")
	}

	return cfg, nil
}

func (c runConfig) catalogLines() lines.Catalog {
	if len(c.Catalog) == 0 {
		return defaultCatalog
	}

	catalog := make(lines.Catalog, 0, len(c.Catalog))
	for _, e := range c.Catalog {
		catalog = append(catalog, lines.Line{Label: e.Label, Wavelength: e.Wavelength})
	}

	return catalog
}

func (c runConfig) telluricLines() lines.Telluric {
	if len(c.Telluric) == 0 {
		return defaultTelluric
	}

	return lines.Telluric(c.Telluric)
}

func (c runConfig) pipelineOptions() []pipeline.Option {
	opts := []pipeline.Option{
		pipeline.WithDegree(c.Degree),
		pipeline.WithLineConfig(lines.Config{
			CatalogThreshold:  c.CatalogThreshold,
			TelluricThreshold: c.TelluricThreshold,
			CatalogSpan:       c.CatalogSpan,
			TelluricSpan:      c.TelluricSpan,
		}),
	}

	if len(c.Window) == 2 {
		opts = append(opts, pipeline.WithWindow(c.Window[0], c.Window[1]))
	}

	if c.Smoothing > 0 {
		opts = append(opts, pipeline.WithSmoothing(c.Smoothing))
	}

	return opts
}
