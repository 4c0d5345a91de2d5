// SPDX-License-Identifier: MIT

// Package blas calls the gsl_blas_* routines on owned vectors and matrices.
//
// Every function is generic over float32 and float64 and dispatches to the
// s- or d-prefixed native routine of the operands' Library. Before the
// native call each function checks, in this order:
//
//  1. all operands come from the same Library           → gslerr.ErrInvalid
//  2. lengths and shapes obey the routine's rules       → gslerr.ErrBadLength / gslerr.ErrNotSquare
//  3. the backend provides the routine                  → gslerr.ErrUnimplemented
//  4. borrows: inputs shared, outputs exclusive         → gslerr.ErrInvalid (handle.ErrBorrowConflict)
//
// A failure at any step returns before native memory is touched, so aliased
// calls such as Axpy(a, x, x) or Gemm(..., A, B, ..., A) are rejected rather
// than producing undefined results. A non-zero native status is returned as
// the decoded gslerr value.
//
// Level 1: Dot, SDSDot, DSDot, Nrm2, Asum, Iamax, Swap, Copy, Axpy, Scal,
// Rotg, Rot, Rotmg, Rotm.
// Level 2: Gemv, Trmv, Trsv, Symv, Ger, Syr, Syr2.
// Level 3: Gemm, Symm, Trmm, Trsm, Syrk, Syr2k.
//
// Matrices are row-major gsl_matrix values; enum arguments come from package
// enums and are passed as their CBLAS header constants.
package blas
