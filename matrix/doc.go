// SPDX-License-Identifier: MIT

// Package matrix provides typed, owned views over native GSL matrices.
//
// A Matrix[T] owns one gsl_matrix (float32 or float64 elements) allocated by
// a native.Library. Shape metadata (rows, cols, and the native row stride
// tda) is read once at allocation and cached.
//
// The access model mirrors package vector:
//
//   - At / Set             checked; transient borrow per element.
//   - Shared → *Reader[T]  read borrow held across many reads.
//   - Exclusive → *Writer[T]  the write borrow; excludes every other view.
//   - Reader.Get / Writer.Put  unchecked; panic on a bad index.
//
// Validation order for every operation (documented, enforced in tests):
//
//	library mismatch → shape (ErrBadShape / ErrDimensionMismatch / ErrNonSquare)
//	→ missing backend routine → borrow conflict → native call
//
// Every matrix sentinel is joined with its gslerr variant, so callers can
// match either: errors.Is(err, matrix.ErrNonSquare) and
// errors.Is(err, gslerr.ErrNotSquare) both hold for a non-square transpose.
//
// Complexity: metadata is O(1); ToRows, FromRows, and String are O(r*c)
// native element calls.
package matrix
