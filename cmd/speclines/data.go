package main

import "github.com/cwbudde/algo-spectra/spectra/lines"

// defaultCatalog covers the common stellar absorption lines in the
// visible and near-infrared. Repeated labels are distinct lines of the
// same species at different wavelengths.
var defaultCatalog = lines.Catalog{
	{Label: "Hα", Wavelength: 656.3},
	{Label: "Hβ", Wavelength: 486.1},
	{Label: "Hγ", Wavelength: 434.0},
	{Label: "Hδ", Wavelength: 410.2},
	{Label: "He II", Wavelength: 420.0},
	{Label: "He II", Wavelength: 454.1},
	{Label: "He I", Wavelength: 447.1},
	{Label: "He I", Wavelength: 402.6},
	{Label: "He I", Wavelength: 667.8},
	{Label: "He I", Wavelength: 587.6},
	{Label: "Fe I", Wavelength: 495.8},
	{Label: "Fe I", Wavelength: 466.8},
	{Label: "Fe I", Wavelength: 438.4},
	{Label: "Fe I", Wavelength: 527.0},
	{Label: "Fe II", Wavelength: 516.9},
	{Label: "Ca I", Wavelength: 420.8},
	{Label: "Mg I", Wavelength: 518.0},
	{Label: "Na I D1", Wavelength: 589.0},
	{Label: "Na I D2", Wavelength: 589.6},
	{Label: "Ca II H", Wavelength: 396.85},
	{Label: "Ca II K", Wavelength: 393.37},
	{Label: "Ca II IR 1", Wavelength: 849.8},
	{Label: "Ca II IR 2", Wavelength: 854.2},
	{Label: "Ca II IR 3", Wavelength: 866.2},
	{Label: "[O I] 1", Wavelength: 630.0},
	{Label: "[O I] 2", Wavelength: 636.4},
	{Label: "C II", Wavelength: 426.7},
	{Label: "Si II", Wavelength: 412.8},
	{Label: "Si II", Wavelength: 634.7},
	{Label: "Si II", Wavelength: 637.1},
	{Label: "Mg II", Wavelength: 448.1},
	{Label: "O I", Wavelength: 898.8},
	{Label: "O I", Wavelength: 822.7},
	{Label: "O I", Wavelength: 759.4},
	{Label: "O I", Wavelength: 686.7},
	{Label: "O I", Wavelength: 627.7},
	{Label: "O I", Wavelength: 777.1},
	{Label: "O I", Wavelength: 777.4},
	{Label: "O I", Wavelength: 777.5},
	{Label: "Ti II", Wavelength: 336.1},
	{Label: "Ni I", Wavelength: 299.4},
	{Label: "TiO", Wavelength: 476.1},
	{Label: "TiO", Wavelength: 495.4},
	{Label: "TiO", Wavelength: 516.7},
}

// defaultTelluric lists the strong atmospheric O2 and H2O absorption
// wavelengths in nm.
var defaultTelluric = lines.Telluric{
	687.8,
	718.5,
	719.4,
	725.0,
	759.3, // O2 A band
	760.5,
	761.0,
	762.0,
	764.0, // H2O
	820.5, // H2O
	822.2,
	935.0, // H2O
	940.0,
	940.5,
	942.0,
	943.0,
	946.0,
	953.0,
	960.0,
}
