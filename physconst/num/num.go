// SPDX-License-Identifier: MIT

// Package num holds the dimensionless constants of gsl_const_num.h:
// SI prefixes, Avogadro's number and the fine structure constant.
package num

const (
	Avogadro      = 6.02214199e23  // N_a, 1/mol
	FineStructure = 7.297352533e-3 // α
)

// SI prefixes.
const (
	Yotta = 1e24
	Zetta = 1e21
	Exa   = 1e18
	Peta  = 1e15
	Tera  = 1e12
	Giga  = 1e9
	Mega  = 1e6
	Kilo  = 1e3
	Milli = 1e-3
	Micro = 1e-6
	Nano  = 1e-9
	Pico  = 1e-12
	Femto = 1e-15
	Atto  = 1e-18
	Zepto = 1e-21
	Yocto = 1e-24
)
