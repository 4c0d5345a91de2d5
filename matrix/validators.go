// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape checks shared by this package
//     and the call-through packages (blas, eigen, multifit).
//   - Every validator is pure, O(1), and allocates only on failure.
//
// Note:
//   - Validators assume non-nil arguments unless named ...NonNil.
//   - Returned errors match both the matrix sentinel and its gslerr variant.

package matrix

// ValidateNotNil ensures m is non-nil.
func ValidateNotNil(m Dims) error {
	if m == nil || isNilMatrix(m) {
		return matrixErrorf(ErrNilMatrix, "ValidateNotNil")
	}

	return nil
}

// isNilMatrix catches typed-nil *Matrix values hidden in the interface.
func isNilMatrix(m Dims) bool {
	switch p := m.(type) {
	case *Matrix[float32]:
		return p == nil
	case *Matrix[float64]:
		return p == nil
	}

	return false
}

// ValidateSameShape ensures a and b have equal dimensions.
func ValidateSameShape(a, b Dims) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return matrixErrorf(ErrDimensionMismatch, "ValidateSameShape: %dx%d vs %dx%d",
			a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Dims) error {
	if m.Rows() != m.Cols() {
		return matrixErrorf(ErrNonSquare, "ValidateSquare: %dx%d", m.Rows(), m.Cols())
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols.
func ValidateShape(m Dims, rows, cols int) error {
	if m.Rows() != rows || m.Cols() != cols {
		return matrixErrorf(ErrDimensionMismatch, "ValidateShape: %dx%d, want %dx%d",
			m.Rows(), m.Cols(), rows, cols)
	}

	return nil
}

// ValidateVecLen ensures a vector length n matches the required size want.
// tag names the dimension in the message ("rows", "cols", "x", ...).
func ValidateVecLen(tag string, n, want int) error {
	if n != want {
		return matrixErrorf(ErrDimensionMismatch, "ValidateVecLen: %s length %d, want %d", tag, n, want)
	}

	return nil
}

// ValidateSquareNonNil is NotNil → Square.
func ValidateSquareNonNil(m Dims) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}
