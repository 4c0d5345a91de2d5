// SPDX-License-Identifier: MIT

// Package physconst lists GSL's physical constants. The values live in the
// mksa, cgsm and num subpackages as untyped constants; this package indexes
// the fundamental, astronomical and atomic ones by name for tools that look
// them up at run time.
package physconst

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvgsl/physconst/cgsm"
	"github.com/katalvlaran/lvgsl/physconst/mksa"
)

// Constant is one named constant in both unit systems.
type Constant struct {
	Name string  `yaml:"name"`
	MKSA float64 `yaml:"mksa"`
	CGSM float64 `yaml:"cgsm"` // NaN when there is no CGSM form
}

var table = []Constant{
	{"SpeedOfLight", mksa.SpeedOfLight, cgsm.SpeedOfLight},
	{"VacuumPermeability", mksa.VacuumPermeability, math.NaN()},
	{"VacuumPermittivity", mksa.VacuumPermittivity, math.NaN()},
	{"PlancksConstantH", mksa.PlancksConstantH, cgsm.PlancksConstantH},
	{"PlancksConstantHbar", mksa.PlancksConstantHbar, cgsm.PlancksConstantHbar},
	{"Faraday", mksa.Faraday, cgsm.Faraday},
	{"Boltzmann", mksa.Boltzmann, cgsm.Boltzmann},
	{"MolarGas", mksa.MolarGas, cgsm.MolarGas},
	{"StandardGasVolume", mksa.StandardGasVolume, cgsm.StandardGasVolume},
	{"StefanBoltzmannConstant", mksa.StefanBoltzmannConstant, cgsm.StefanBoltzmannConstant},
	{"Gauss", mksa.Gauss, cgsm.Gauss},
	{"AstronomicalUnit", mksa.AstronomicalUnit, cgsm.AstronomicalUnit},
	{"GravitationalConstant", mksa.GravitationalConstant, cgsm.GravitationalConstant},
	{"LightYear", mksa.LightYear, cgsm.LightYear},
	{"Parsec", mksa.Parsec, cgsm.Parsec},
	{"GravAccel", mksa.GravAccel, cgsm.GravAccel},
	{"SolarMass", mksa.SolarMass, cgsm.SolarMass},
	{"ElectronCharge", mksa.ElectronCharge, cgsm.ElectronCharge},
	{"ElectronVolt", mksa.ElectronVolt, cgsm.ElectronVolt},
	{"UnifiedAtomicMass", mksa.UnifiedAtomicMass, cgsm.UnifiedAtomicMass},
	{"MassElectron", mksa.MassElectron, cgsm.MassElectron},
	{"MassMuon", mksa.MassMuon, cgsm.MassMuon},
	{"MassProton", mksa.MassProton, cgsm.MassProton},
	{"MassNeutron", mksa.MassNeutron, cgsm.MassNeutron},
	{"Rydberg", mksa.Rydberg, cgsm.Rydberg},
	{"BohrRadius", mksa.BohrRadius, cgsm.BohrRadius},
	{"BohrMagneton", mksa.BohrMagneton, cgsm.BohrMagneton},
	{"NuclearMagneton", mksa.NuclearMagneton, cgsm.NuclearMagneton},
	{"ElectronMagneticMoment", mksa.ElectronMagneticMoment, cgsm.ElectronMagneticMoment},
	{"ProtonMagneticMoment", mksa.ProtonMagneticMoment, cgsm.ProtonMagneticMoment},
	{"ThomsonCrossSection", mksa.ThomsonCrossSection, cgsm.ThomsonCrossSection},
	{"Debye", mksa.Debye, cgsm.Debye},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, c := range table {
		m[c.Name] = i
	}
	return m
}()

// All returns every indexed constant sorted by name.
func All() []Constant {
	out := append([]Constant(nil), table...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Lookup returns the constant called name, e.g. "SpeedOfLight".
func Lookup(name string) (Constant, bool) {
	i, ok := byName[name]
	if !ok {
		return Constant{}, false
	}

	return table[i], true
}

// HasCGSM reports whether c has a CGSM value.
func (c Constant) HasCGSM() bool { return !math.IsNaN(c.CGSM) }
