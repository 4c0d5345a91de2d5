// SPDX-License-Identifier: MIT

// Package sf calls GSL special functions (gsl_sf_*).
//
// Each function comes in two forms. The plain form (Gamma) returns the value
// and reports native failures only through the installed error handler; its
// error is non-nil only when the backend lacks the routine. The E form
// (GammaE) returns a Result carrying the absolute error estimate together
// with the native status as a gslerr error.
//
// Mathieu functions need a MathieuWorkspace sized for the largest order and
// q they will be evaluated at; see (*SF).NewMathieu.
package sf
