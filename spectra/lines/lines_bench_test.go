package lines

import (
	"math"
	"testing"
)

func BenchmarkDetect(b *testing.B) {
	n := 8192
	wavelength := make([]float64, n)
	flux := make([]float64, n)

	for i := range wavelength {
		wavelength[i] = 300 + float64(i)*0.1
		flux[i] = 0.01 * math.Sin(float64(i)/5)
	}

	catalog := make(Catalog, 0, 64)
	for i := 0; i < 64; i++ {
		catalog = append(catalog, Line{Label: "L", Wavelength: 320 + float64(i)*10})
	}

	telluric := make(Telluric, 0, 20)
	for i := 0; i < 20; i++ {
		telluric = append(telluric, 700+float64(i)*5)
	}

	d := NewDetector(Config{CatalogThreshold: 0.005})

	b.ResetTimer()

	for b.Loop() {
		_ = d.Detect(wavelength, flux, catalog, telluric)
	}
}
