package lines

import "math"

// TelluricLabel tags every telluric detection in rendered output.
const TelluricLabel = "TL"

const (
	defaultTelluricThreshold = 0.02
	defaultCatalogSpan       = 10
	defaultTelluricSpan      = 1
)

// Line is one catalog entry: a labeled reference wavelength.
type Line struct {
	Label      string
	Wavelength float64 // nm
}

// Catalog is an ordered list of reference lines. Duplicate labels at
// distinct wavelengths are allowed and expected.
type Catalog []Line

// Telluric lists atmospheric absorption wavelengths. They share one
// rendering label but are detected individually.
type Telluric []float64

// Config holds detection parameters.
type Config struct {
	// CatalogThreshold is the minimum depth (negated residual flux) for a
	// catalog line to count as detected.
	CatalogThreshold float64

	// TelluricThreshold is the minimum depth for a telluric line.
	// Defaults to 0.02.
	TelluricThreshold float64

	// CatalogSpan is the half-width, in samples, of the local-minimum
	// confirmation for catalog lines. Defaults to 10.
	CatalogSpan int

	// TelluricSpan is the confirmation half-width for the narrower
	// telluric features. Defaults to 1.
	TelluricSpan int
}

func normalizeConfig(cfg Config) Config {
	if cfg.TelluricThreshold <= 0 {
		cfg.TelluricThreshold = defaultTelluricThreshold
	}

	if cfg.CatalogSpan <= 0 {
		cfg.CatalogSpan = defaultCatalogSpan
	}

	if cfg.TelluricSpan <= 0 {
		cfg.TelluricSpan = defaultTelluricSpan
	}

	return cfg
}

// Detection is one confirmed line match.
type Detection struct {
	Label      string
	Wavelength float64 // reference wavelength from the catalog, not the snapped one
	Index      int     // snapped sample index in the windowed arrays
	Flux       float64 // residual flux at the snapped index; depth is -Flux
}

// Result partitions confirmed detections into catalog and telluric lines.
type Result struct {
	Lines    []Detection
	Telluric []Detection
}

// Annotations flattens the result for a rendering collaborator: reference
// wavelengths in catalog order followed by telluric order, and labels in
// the same order with every telluric entry labeled TelluricLabel.
func (r Result) Annotations() (wavelengths []float64, labels []string) {
	n := len(r.Lines) + len(r.Telluric)
	wavelengths = make([]float64, 0, n)
	labels = make([]string, 0, n)

	for _, d := range r.Lines {
		wavelengths = append(wavelengths, d.Wavelength)
		labels = append(labels, d.Label)
	}

	for _, d := range r.Telluric {
		wavelengths = append(wavelengths, d.Wavelength)
		labels = append(labels, TelluricLabel)
	}

	return wavelengths, labels
}

// Detector scans residual spectra against a fixed configuration.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector, filling config defaults.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: normalizeConfig(cfg)}
}

// Detect is a one-shot scan with the given configuration.
func Detect(wavelength, flux []float64, catalog Catalog, telluric Telluric, cfg Config) Result {
	return NewDetector(cfg).Detect(wavelength, flux, catalog, telluric)
}

// Detect scans the windowed residual spectrum for every catalog and
// telluric entry. Entries whose confirmation lookup would leave the array
// resolve to "not detected"; the remaining entries are unaffected.
func (d *Detector) Detect(wavelength, flux []float64, catalog Catalog, telluric Telluric) Result {
	var result Result

	if len(wavelength) == 0 || len(wavelength) != len(flux) {
		return result
	}

	for _, line := range catalog {
		det, ok := confirm(wavelength, flux, line.Wavelength, d.cfg.CatalogThreshold, d.cfg.CatalogSpan)
		if !ok {
			continue
		}

		det.Label = line.Label
		result.Lines = append(result.Lines, det)
	}

	for _, ref := range telluric {
		det, ok := confirm(wavelength, flux, ref, d.cfg.TelluricThreshold, d.cfg.TelluricSpan)
		if !ok {
			continue
		}

		det.Label = TelluricLabel
		result.Telluric = append(result.Telluric, det)
	}

	return result
}

// confirm snaps ref to the nearest sample and applies the depth and
// local-minimum checks. Fails closed near the array boundary.
func confirm(wavelength, flux []float64, ref, threshold float64, span int) (Detection, bool) {
	idx := nearestIndex(wavelength, ref)

	if idx < span || idx+span >= len(flux) {
		return Detection{}, false
	}

	f := flux[idx]
	if -f < threshold {
		return Detection{}, false
	}

	if f >= flux[idx-span] || f >= flux[idx+span] {
		return Detection{}, false
	}

	return Detection{Wavelength: ref, Index: idx, Flux: f}, true
}

// nearestIndex returns the index of the wavelength closest to ref.
// Ties resolve to the first occurrence.
func nearestIndex(wavelength []float64, ref float64) int {
	best := 0
	bestDist := math.Abs(wavelength[0] - ref)

	for i, w := range wavelength[1:] {
		if d := math.Abs(w - ref); d < bestDist {
			bestDist = d
			best = i + 1
		}
	}

	return best
}
