// SPDX-License-Identifier: MIT

// Package poly calls GSL's polynomial routines (gsl_poly_*): evaluation,
// derivatives, closed-form real roots of quadratics and cubics, Newton
// divided differences, and the companion-matrix complex root solver.
//
// Coefficients are Go slices in ascending order, c[0] + c[1]x + c[2]x² + …
// Lengths are checked before every native call and reported as errors.
//
//	p := poly.New()
//	roots, err := p.SolveQuadratic(1, -3, 2) // [1 2]
package poly
