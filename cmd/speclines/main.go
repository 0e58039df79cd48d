// Command speclines reduces raw spectrograph exposures and reports the
// spectral lines detected in the continuum-normalized result.
//
// Usage:
//
//	speclines -exposures 'run1/spec_*.txt' [flags]
//
// Examples:
//
//	speclines -exposures 'run1/spec_*.txt' -background bg.txt -dark dark.txt
//	speclines -exposures 'run1/spec_*.txt' -config run.yaml -v
//	speclines -exposures 'faint/*.txt' -sum
//
// Numeric parameters (analysis window, continuum degree, thresholds,
// catalog, telluric list) come from an optional YAML config file with
// SPECLINES_* environment overrides; built-in defaults cover the common
// visible-range setup.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/algo-spectra/spectra/ingest"
	"github.com/cwbudde/algo-spectra/spectra/pipeline"
)

func main() {
	var (
		exposuresGlob = flag.String("exposures", "", "glob of exposure files (required)")
		backgroundArg = flag.String("background", "", "background frame file")
		darkArg       = flag.String("dark", "", "dark-current frame file")
		configArg     = flag.String("config", "", "YAML run configuration")
		sumArg        = flag.Bool("sum", false, "co-add exposures instead of averaging")
		verboseArg    = flag.Bool("v", false, "debug logging")
	)

	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *verboseArg {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *exposuresGlob == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configArg)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	exposures, err := ingest.ReadGlob(*exposuresGlob)
	if err != nil {
		log.Fatal().Err(err).Msg("read exposures")
	}

	log.Debug().Int("exposures", len(exposures)).Str("glob", *exposuresGlob).Msg("loaded exposures")

	opts := cfg.pipelineOptions()

	if *sumArg {
		opts = append(opts, pipeline.WithSumAggregation())
	}

	if *backgroundArg != "" {
		bg, err := ingest.ReadFile(*backgroundArg)
		if err != nil {
			log.Fatal().Err(err).Msg("read background")
		}

		opts = append(opts, pipeline.WithBackground(bg))
	}

	if *darkArg != "" {
		dark, err := ingest.ReadFile(*darkArg)
		if err != nil {
			log.Fatal().Err(err).Msg("read dark")
		}

		opts = append(opts, pipeline.WithDark(dark))
	}

	result, err := pipeline.Run(exposures, cfg.catalogLines(), cfg.telluricLines(), opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("reduction failed")
	}

	log.Info().
		Int("samples", len(result.Wavelength)).
		Int("lines", len(result.Detections.Lines)).
		Int("telluric", len(result.Detections.Telluric)).
		Msg("reduction complete")

	printReport(result)
}

func printReport(result pipeline.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LABEL\tLINE (nm)\tMATCH (nm)\tDEPTH")

	for _, d := range result.Detections.Lines {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.4f\n",
			d.Label, d.Wavelength, result.Wavelength[d.Index], -d.Flux)
	}

	for _, d := range result.Detections.Telluric {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.4f\n",
			d.Label, d.Wavelength, result.Wavelength[d.Index], -d.Flux)
	}

	w.Flush()
}
