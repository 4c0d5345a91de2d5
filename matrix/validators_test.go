// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/matrix"
)

// dims is a shape-only Dims for validator tests; no native memory involved.
type dims struct{ r, c int }

func (d dims) Rows() int { return d.r }
func (d dims) Cols() int { return d.c }

func TestValidators(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"same shape ok", matrix.ValidateSameShape(dims{2, 3}, dims{2, 3}), nil},
		{"same shape rows", matrix.ValidateSameShape(dims{2, 3}, dims{3, 3}), gslerr.ErrBadLength},
		{"square ok", matrix.ValidateSquare(dims{4, 4}), nil},
		{"square fail", matrix.ValidateSquare(dims{4, 5}), gslerr.ErrNotSquare},
		{"shape ok", matrix.ValidateShape(dims{1, 7}, 1, 7), nil},
		{"shape fail", matrix.ValidateShape(dims{1, 7}, 7, 1), matrix.ErrDimensionMismatch},
		{"veclen ok", matrix.ValidateVecLen("x", 3, 3), nil},
		{"veclen fail", matrix.ValidateVecLen("x", 3, 4), gslerr.ErrBadLength},
		{"nil", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"typed nil", matrix.ValidateSquareNonNil((*matrix.Matrix[float64])(nil)), gslerr.ErrFault},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.want == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.want)
		})
	}
}
