// Package ingest reads instrument spectrum exports: tab-separated
// two-column text with a fixed-size header block and locale decimal
// commas.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectra/spectra"
)

// ErrNoData is returned when a file contains no sample rows after the
// header.
var ErrNoData = errors.New("ingest: no sample rows")

// Header rows emitted by the instrument before the sample block.
const defaultSkipRows = 14

// Reader parses instrument exports. The zero value skips the standard
// header block.
type Reader struct {
	// SkipRows is the number of header lines to discard before the sample
	// block; negative means zero, zero means the instrument default.
	SkipRows int
}

// Read parses one export into a table. Each sample row holds a wavelength
// and an intensity separated by a tab, with commas as decimal separators.
// Blank lines are ignored.
func (r Reader) Read(rd io.Reader) (spectra.Table, error) {
	skip := r.SkipRows
	if skip == 0 {
		skip = defaultSkipRows
	} else if skip < 0 {
		skip = 0
	}

	var (
		wavelength []float64
		intensity  []float64
	)

	scanner := bufio.NewScanner(rd)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		if lineNo <= skip {
			continue
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return spectra.Table{}, fmt.Errorf("ingest: line %d: %d columns, want 2: %w",
				lineNo, len(fields), spectra.ErrShapeMismatch)
		}

		w, err := parseDecimal(fields[0])
		if err != nil {
			return spectra.Table{}, fmt.Errorf("ingest: line %d: wavelength: %w", lineNo, err)
		}

		in, err := parseDecimal(fields[1])
		if err != nil {
			return spectra.Table{}, fmt.Errorf("ingest: line %d: intensity: %w", lineNo, err)
		}

		wavelength = append(wavelength, w)
		intensity = append(intensity, in)
	}

	if err := scanner.Err(); err != nil {
		return spectra.Table{}, fmt.Errorf("ingest: %w", err)
	}

	if len(wavelength) == 0 {
		return spectra.Table{}, ErrNoData
	}

	return spectra.New(wavelength, intensity)
}

// Read parses one export with the default header size.
func Read(rd io.Reader) (spectra.Table, error) {
	return Reader{}.Read(rd)
}

// ReadFile parses the export at path.
func ReadFile(path string) (spectra.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return spectra.Table{}, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return spectra.Table{}, fmt.Errorf("ingest: %s: %w", path, err)
	}

	return table, nil
}

// ReadGlob parses every export matching the pattern, in lexical order.
// No matches is an error: a reduction over zero exposures is always a
// caller mistake.
func ReadGlob(pattern string) ([]spectra.Table, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("ingest: glob %q: %w", pattern, err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("ingest: no files match %q: %w", pattern, spectra.ErrEmptyInput)
	}

	tables := make([]spectra.Table, 0, len(paths))

	for _, path := range paths {
		table, err := ReadFile(path)
		if err != nil {
			return nil, err
		}

		tables = append(tables, table)
	}

	return tables, nil
}

// parseDecimal parses a float that may use a decimal comma.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}

	return v, nil
}
