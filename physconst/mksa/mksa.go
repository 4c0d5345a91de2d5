// SPDX-License-Identifier: MIT

// Package mksa holds physical constants in the MKSA system (meters,
// kilograms, seconds, amperes), as in gsl_const_mksa.h. Values are the
// 2006 CODATA recommendations GSL ships.
package mksa

// Fundamental constants.
const (
	SpeedOfLight            = 2.99792458e8      // c, m/s
	VacuumPermeability      = 1.25663706144e-6  // μ₀, kg m/A² s²
	VacuumPermittivity      = 8.854187817e-12   // ε₀, A² s⁴/kg m³
	PlancksConstantH        = 6.62606896e-34    // h, kg m²/s
	PlancksConstantHbar     = 1.05457162825e-34 // ħ, kg m²/s
	Faraday                 = 9.64853429775e4   // A s/mol
	Boltzmann               = 1.3806504e-23     // k, kg m²/K s²
	MolarGas                = 8.314472e0        // R₀, kg m²/K mol s²
	StandardGasVolume       = 2.2710981e-2      // V₀, m³/mol
	StefanBoltzmannConstant = 5.67040047374e-8  // σ, kg/K⁴ s³
	Gauss                   = 1e-4              // kg/A s²
)

// Astronomy and astrophysics.
const (
	AstronomicalUnit      = 1.49597870691e11 // m
	GravitationalConstant = 6.673e-11        // G, m³/kg s²
	LightYear             = 9.46053620707e15 // m
	Parsec                = 3.08567758135e16 // m
	GravAccel             = 9.80665e0        // g, m/s²
	SolarMass             = 1.98892e30       // kg
)

// Atomic and nuclear physics.
const (
	ElectronCharge         = 1.602176487e-19   // e, A s
	ElectronVolt           = 1.602176487e-19   // kg m²/s²
	UnifiedAtomicMass      = 1.660538782e-27   // kg
	MassElectron           = 9.10938188e-31    // kg
	MassMuon               = 1.88353109e-28    // kg
	MassProton             = 1.67262158e-27    // kg
	MassNeutron            = 1.67492716e-27    // kg
	Rydberg                = 2.17987196968e-18 // kg m²/s²
	BohrRadius             = 5.291772083e-11   // m
	Angstrom               = 1e-10             // m
	Barn                   = 1e-28             // m²
	BohrMagneton           = 9.27400899e-24    // A m²
	NuclearMagneton        = 5.05078317e-27    // A m²
	ElectronMagneticMoment = 9.28476362e-24    // A m²
	ProtonMagneticMoment   = 1.410606633e-26   // A m²
	ThomsonCrossSection    = 6.65245893699e-29 // m²
	Debye                  = 3.33564095198e-30 // A s m
)

// Time, s.
const (
	Minute = 6e1
	Hour   = 3.6e3
	Day    = 8.64e4
	Week   = 6.048e5
)

// Length, m.
const (
	Inch         = 2.54e-2
	Foot         = 3.048e-1
	Yard         = 9.144e-1
	Mile         = 1.609344e3
	Mil          = 2.54e-5
	NauticalMile = 1.852e3
	Fathom       = 1.8288e0
	Point        = 3.52777777778e-4
	TexPoint     = 3.51459803515e-4
	Micron       = 1e-6
)

// Speed, m/s.
const (
	KilometersPerHour = 2.77777777778e-1
	MilesPerHour      = 4.4704e-1
	Knot              = 5.14444444444e-1
)

// Area, m², and volume, m³.
const (
	Hectare        = 1e4
	Acre           = 4.04685642241e3
	Liter          = 1e-3
	USGallon       = 3.78541178402e-3
	CanadianGallon = 4.54609e-3
	UKGallon       = 4.546092e-3
	Quart          = 9.46352946004e-4
	Pint           = 4.73176473002e-4
	Cup            = 2.36588236501e-4
)

// Mass, kg.
const (
	PoundMass = 4.5359237e-1
	OunceMass = 2.8349523125e-2
	Ton       = 9.0718474e2
	MetricTon = 1e3
	UKTon     = 1.0160469088e3
	TroyOunce = 3.1103475e-2
	Carat     = 2e-4
)

// Force, kg m/s².
const (
	GramForce      = 9.80665e-3
	PoundForce     = 4.44822161526e0
	KilopoundForce = 4.44822161526e3
	Poundal        = 1.38255e-1
	Newton         = 1e0
	Dyne           = 1e-5
)

// Energy, kg m²/s², and power, kg m²/s³.
const (
	Calorie    = 4.1868e0
	BTU        = 1.05505585262e3
	Therm      = 1.05506e8
	Joule      = 1e0
	Erg        = 1e-7
	Horsepower = 7.457e2
)

// Pressure, kg/m s².
const (
	Bar            = 1e5
	StdAtmosphere  = 1.01325e5
	Torr           = 1.33322368421e2
	MeterOfMercury = 1.33322368421e5
	InchOfMercury  = 3.38638815789e3
	InchOfWater    = 2.490889e2
	PSI            = 6.89475729317e3
)

// Viscosity.
const (
	Poise  = 1e-1 // kg/m s
	Stokes = 1e-4 // m²/s
)

// Light and illumination.
const (
	Stilb       = 1e4          // cd/m²
	Lumen       = 1e0          // cd sr
	Lux         = 1e0          // cd sr/m²
	Phot        = 1e4          // cd sr/m²
	Footcandle  = 1.076e1      // cd sr/m²
	Lambert     = 1e4          // cd sr/m²
	Footlambert = 1.07639104e1 // cd sr/m²
)

// Radioactivity.
const (
	Curie    = 3.7e10  // 1/s
	Roentgen = 2.58e-4 // A s/kg
	Rad      = 1e-2    // m²/s²
)
