// SPDX-License-Identifier: MIT

// Package lvgsl is a memory-safe Go layer over the GNU Scientific Library.
//
// What is lvgsl?
//
//	A set of packages that call GSL routines on Go-owned handles:
//		• Storage: vector and matrix views over gsl_vector / gsl_matrix
//		• BLAS: Level 1-3 call-throughs (blas) and raw strided slices (cblas)
//		• Eigen: real symmetric eigensolvers and eigenpair sorting
//		• Filters: Gaussian, median, recursive median and impulse detection
//		• Fitting: multifit helpers and multiroot convergence tests
//		• Polynomials: evaluation, real and complex roots, divided differences
//		• Special functions: gamma, beta, Bessel, Airy, Clausen, Mathieu
//		• Constants: MKSA, CGSM and dimensionless tables (physconst)
//
// Guarantees
//
//   - Every operand is checked (library, shape, borrow) before the native call.
//   - Native memory has exactly one owner and is freed exactly once.
//   - GSL never aborts the process: errors come back as gslerr values and,
//     when a handler is installed, through errhandler.
//
// Backends
//
// Without a backend every operation reports gslerr.ErrUnimplemented. Build
// with cgo and the gsl tag to link the system GSL through native/cgsl:
//
//	go build -tags gsl ./...
//
// Tests and examples run against native/nativetest, an in-process fake that
// counts calls and can inject failures.
//
// Layout
//
//	gslerr/      error taxonomy mirroring gsl_errno.h
//	errhandler/  process-wide native error handler registry
//	handle/      single-owner guard with shared/exclusive borrows
//	native/      backend ABI tables; cgsl (cgo) and nativetest (fake)
//	enums/       typed flags and their native codes
//	vector/ matrix/ blas/ cblas/ eigen/ filter/ multifit/ multiroot/ poly/ sf/
//	physconst/   physical constants
//	cmd/gslcheck self-test and inspection CLI
package lvgsl
