// SPDX-License-Identifier: MIT

// Package cgsm holds physical constants in the CGSM system (centimeters,
// grams, seconds, gauss), as in gsl_const_cgsm.h. Each value is the MKSA
// constant scaled by the dimension conversion, evaluated exactly at compile
// time. The permeability and permittivity of free space have no CGSM form.
package cgsm

import "github.com/katalvlaran/lvgsl/physconst/mksa"

// Conversions from MKSA to CGSM units. One abcoulomb is ten coulombs.
const (
	length = 1e2  // m → cm
	mass   = 1e3  // kg → g
	charge = 1e-1 // A s → abA s

	area     = length * length
	volume   = area * length
	speed    = length
	force    = mass * length  // dyne per newton
	energy   = force * length // erg per joule
	pressure = mass / length
)

// Fundamental constants.
const (
	SpeedOfLight            = mksa.SpeedOfLight * speed
	PlancksConstantH        = mksa.PlancksConstantH * energy
	PlancksConstantHbar     = mksa.PlancksConstantHbar * energy
	Faraday                 = mksa.Faraday * charge
	Boltzmann               = mksa.Boltzmann * energy
	MolarGas                = mksa.MolarGas * energy
	StandardGasVolume       = mksa.StandardGasVolume * volume
	StefanBoltzmannConstant = mksa.StefanBoltzmannConstant * mass
	Gauss                   = 1
)

// Astronomy and astrophysics.
const (
	AstronomicalUnit      = mksa.AstronomicalUnit * length
	GravitationalConstant = mksa.GravitationalConstant * volume / mass
	LightYear             = mksa.LightYear * length
	Parsec                = mksa.Parsec * length
	GravAccel             = mksa.GravAccel * length
	SolarMass             = mksa.SolarMass * mass
)

// Atomic and nuclear physics. Magnetic moments are in erg/G.
const (
	ElectronCharge         = mksa.ElectronCharge * charge
	ElectronVolt           = mksa.ElectronVolt * energy
	UnifiedAtomicMass      = mksa.UnifiedAtomicMass * mass
	MassElectron           = mksa.MassElectron * mass
	MassMuon               = mksa.MassMuon * mass
	MassProton             = mksa.MassProton * mass
	MassNeutron            = mksa.MassNeutron * mass
	Rydberg                = mksa.Rydberg * energy
	BohrRadius             = mksa.BohrRadius * length
	Angstrom               = mksa.Angstrom * length
	Barn                   = mksa.Barn * area
	BohrMagneton           = mksa.BohrMagneton * charge * area
	NuclearMagneton        = mksa.NuclearMagneton * charge * area
	ElectronMagneticMoment = mksa.ElectronMagneticMoment * charge * area
	ProtonMagneticMoment   = mksa.ProtonMagneticMoment * charge * area
	ThomsonCrossSection    = mksa.ThomsonCrossSection * area
	Debye                  = mksa.Debye * charge * length
)

// Time, s.
const (
	Minute = mksa.Minute
	Hour   = mksa.Hour
	Day    = mksa.Day
	Week   = mksa.Week
)

// Length, cm.
const (
	Inch         = mksa.Inch * length
	Foot         = mksa.Foot * length
	Yard         = mksa.Yard * length
	Mile         = mksa.Mile * length
	Mil          = mksa.Mil * length
	NauticalMile = mksa.NauticalMile * length
	Fathom       = mksa.Fathom * length
	Point        = mksa.Point * length
	TexPoint     = mksa.TexPoint * length
	Micron       = mksa.Micron * length
)

// Speed, cm/s.
const (
	KilometersPerHour = mksa.KilometersPerHour * speed
	MilesPerHour      = mksa.MilesPerHour * speed
	Knot              = mksa.Knot * speed
)

// Area, cm², and volume, cm³.
const (
	Hectare        = mksa.Hectare * area
	Acre           = mksa.Acre * area
	Liter          = mksa.Liter * volume
	USGallon       = mksa.USGallon * volume
	CanadianGallon = mksa.CanadianGallon * volume
	UKGallon       = mksa.UKGallon * volume
	Quart          = mksa.Quart * volume
	Pint           = mksa.Pint * volume
	Cup            = mksa.Cup * volume
)

// Mass, g.
const (
	PoundMass = mksa.PoundMass * mass
	OunceMass = mksa.OunceMass * mass
	Ton       = mksa.Ton * mass
	MetricTon = mksa.MetricTon * mass
	UKTon     = mksa.UKTon * mass
	TroyOunce = mksa.TroyOunce * mass
	Carat     = mksa.Carat * mass
)

// Force, dyne.
const (
	GramForce      = mksa.GramForce * force
	PoundForce     = mksa.PoundForce * force
	KilopoundForce = mksa.KilopoundForce * force
	Poundal        = mksa.Poundal * force
	Newton         = mksa.Newton * force
	Dyne           = mksa.Dyne * force
)

// Energy, erg, and power, erg/s.
const (
	Calorie    = mksa.Calorie * energy
	BTU        = mksa.BTU * energy
	Therm      = mksa.Therm * energy
	Joule      = mksa.Joule * energy
	Erg        = mksa.Erg * energy
	Horsepower = mksa.Horsepower * energy
)

// Pressure, g/cm s².
const (
	Bar            = mksa.Bar * pressure
	StdAtmosphere  = mksa.StdAtmosphere * pressure
	Torr           = mksa.Torr * pressure
	MeterOfMercury = mksa.MeterOfMercury * pressure
	InchOfMercury  = mksa.InchOfMercury * pressure
	InchOfWater    = mksa.InchOfWater * pressure
	PSI            = mksa.PSI * pressure
)

// Viscosity.
const (
	Poise  = mksa.Poise * mass / length // g/cm s
	Stokes = mksa.Stokes * area         // cm²/s
)

// Light and illumination. Luminance and illuminance are per cm².
const (
	Stilb       = mksa.Stilb / area
	Lumen       = mksa.Lumen
	Lux         = mksa.Lux / area
	Phot        = mksa.Phot / area
	Footcandle  = mksa.Footcandle / area
	Lambert     = mksa.Lambert / area
	Footlambert = mksa.Footlambert / area
)

// Radioactivity.
const (
	Curie    = mksa.Curie
	Roentgen = mksa.Roentgen * charge / mass // abA s/g
	Rad      = mksa.Rad * area               // cm²/s²
)
