// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Each sentinel maps to exactly one gslerr variant; matrixErrorf joins both
// so callers may match on either. Native failures are returned as the plain
// gslerr value decoded from the status code.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
)

var (
	// ErrBadShape is returned when requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Checked indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// or ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// taxonomy lists the gslerr variant each sentinel is reported as.
var taxonomy = map[error]gslerr.Error{
	ErrBadShape:          gslerr.ErrInvalid,
	ErrOutOfRange:        gslerr.ErrInvalid,
	ErrDimensionMismatch: gslerr.ErrBadLength,
	ErrNonSquare:         gslerr.ErrNotSquare,
	ErrNilMatrix:         gslerr.ErrFault,
}

// matrixErrorf tags sentinel with context and joins its gslerr variant.
func matrixErrorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %w", fmt.Sprintf(format, args...), sentinel, taxonomy[sentinel])
}
