// SPDX-License-Identifier: MIT

// Package filter calls the digital filters of GSL (gsl_filter_*, GSL 2.5+):
// Gaussian smoothing, standard and recursive median filters, and the impulse
// (outlier) detecting filter.
//
// A workspace of window size K is allocated once and reused; each call
// borrows it exclusively. Inputs are borrowed shared and outputs exclusively,
// so only GaussianInPlace may filter a vector onto itself.
package filter
