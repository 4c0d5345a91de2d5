// SPDX-License-Identifier: MIT

// Package cblas is the raw-slice tier: cblas_* Level 1, 2, and 3 routines
// over strided Go slices and General matrices, with no ownership wrapper in
// between.
//
// Preconditions are checked in Go and violations panic before the native
// call, the way slice indexing panics:
//   - strides must be positive;
//   - vector lengths must match the dimensions the routine implies;
//   - a General needs a declared Order, a Stride of at least its minor
//     dimension, and Stride elements per row (RowMajor) or column
//     (ColumnMajor);
//   - matrix operands of one call share one Order;
//   - the backend must provide the routine.
//
// Use package blas when the data lives in native vectors and errors are
// preferred to panics.
package cblas
