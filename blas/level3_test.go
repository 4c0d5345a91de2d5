// SPDX-License-Identifier: MIT

package blas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/blas"
	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
)

func TestGemm(t *testing.T) {
	fx := newFixture(t)
	a := fx.mat([]float64{1, 2, 3}, []float64{4, 5, 6})
	b := fx.mat([]float64{1, 0}, []float64{0, 1}, []float64{1, 1})

	c := fx.zeroMat(2, 2)
	require.NoError(t, blas.Gemm(enums.NoTrans, enums.NoTrans, 1, a, b, 0, c))
	require.Equal(t, [][]float64{{4, 5}, {10, 11}}, rows(t, c))

	// the same matrix may be read twice
	g := fx.zeroMat(3, 3)
	require.NoError(t, blas.Gemm(enums.Trans, enums.NoTrans, 1, a, a, 0, g))
	rs := rows(t, g)
	require.Equal(t, 17.0, rs[0][0])
	require.Equal(t, 45.0, rs[2][2])
}

func TestGemmOutputAliasesInput(t *testing.T) {
	fx := newFixture(t)
	a := fx.mat([]float64{1, 2}, []float64{3, 4})
	b := fx.mat([]float64{1, 0}, []float64{0, 1})
	fx.fake.ResetCalls()

	err := blas.Gemm(enums.NoTrans, enums.NoTrans, 1, a, b, 0, a)
	require.ErrorIs(t, err, gslerr.ErrInvalid)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
	require.Zero(t, fx.fake.Total())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows(t, a))
}

func TestSymm(t *testing.T) {
	fx := newFixture(t)
	a := fx.mat([]float64{2, 99}, []float64{1, 3})
	id := fx.mat([]float64{1, 0}, []float64{0, 1})

	c := fx.zeroMat(2, 2)
	require.NoError(t, blas.Symm(enums.Left, enums.Lower, 1, a, id, 0, c))
	require.Equal(t, [][]float64{{2, 1}, {1, 3}}, rows(t, c))

	b := fx.mat([]float64{1, 0}, []float64{0, 1}, []float64{1, 1})
	cr := fx.zeroMat(3, 2)
	require.NoError(t, blas.Symm(enums.Right, enums.Lower, 1, a, b, 0, cr))
	require.Equal(t, [][]float64{{2, 1}, {1, 3}, {3, 4}}, rows(t, cr))
}

func TestTrmmTrsm(t *testing.T) {
	fx := newFixture(t)
	a := fx.mat([]float64{2, 1}, []float64{0, 3})

	b := fx.mat([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, blas.Trmm(enums.Left, enums.Upper, enums.NoTrans, enums.NonUnit, 1, a, b))
	require.Equal(t, [][]float64{{2, 1}, {0, 3}}, rows(t, b))
	require.NoError(t, blas.Trsm(enums.Left, enums.Upper, enums.NoTrans, enums.NonUnit, 1, a, b))
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, rows(t, b))

	r := fx.mat([]float64{1, 1})
	require.NoError(t, blas.Trmm(enums.Right, enums.Upper, enums.NoTrans, enums.NonUnit, 1, a, r))
	require.Equal(t, [][]float64{{2, 4}}, rows(t, r))
	require.NoError(t, blas.Trsm(enums.Right, enums.Upper, enums.NoTrans, enums.NonUnit, 1, a, r))
	require.InDeltaSlice(t, []float64{1, 1}, rows(t, r)[0], 1e-12)
}

func TestSyrkSyr2k(t *testing.T) {
	fx := newFixture(t)

	c := fx.zeroMat(2, 2)
	require.NoError(t, blas.Syrk(enums.Upper, enums.NoTrans, 1, fx.mat([]float64{1, 2}, []float64{3, 4}), 0, c))
	require.Equal(t, [][]float64{{5, 11}, {0, 25}}, rows(t, c))

	ct := fx.zeroMat(2, 2)
	tall := fx.mat([]float64{1, 0}, []float64{0, 1}, []float64{1, 1})
	require.NoError(t, blas.Syrk(enums.Lower, enums.Trans, 1, tall, 0, ct))
	require.Equal(t, [][]float64{{2, 0}, {1, 2}}, rows(t, ct))

	c2 := fx.zeroMat(2, 2)
	require.NoError(t, blas.Syr2k(enums.Lower, enums.NoTrans, 1,
		fx.mat([]float64{1}, []float64{0}), fx.mat([]float64{0}, []float64{1}), 0, c2))
	require.Equal(t, [][]float64{{0, 0}, {1, 0}}, rows(t, c2))
}

func TestLevel3ShapeErrors(t *testing.T) {
	fx := newFixture(t)
	m23 := fx.zeroMat(2, 3)
	m32 := fx.zeroMat(3, 2)
	m22 := fx.zeroMat(2, 2)
	m33 := fx.zeroMat(3, 3)
	fx.fake.ResetCalls()

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"gemm inner", func() error { return blas.Gemm(enums.NoTrans, enums.NoTrans, 1, m23, m22, 0, m22) }, gslerr.ErrBadLength},
		{"gemm output", func() error { return blas.Gemm(enums.NoTrans, enums.NoTrans, 1, m23, m32, 0, m33) }, gslerr.ErrBadLength},
		{"gemm trans", func() error { return blas.Gemm(enums.Trans, enums.NoTrans, 1, m23, m32, 0, m22) }, gslerr.ErrBadLength},
		{"symm square", func() error { return blas.Symm(enums.Left, enums.Upper, 1, m23, m22, 0, m22) }, gslerr.ErrNotSquare},
		{"symm left", func() error { return blas.Symm(enums.Left, enums.Upper, 1, m22, m32, 0, m32) }, gslerr.ErrBadLength},
		{"symm b c", func() error { return blas.Symm(enums.Left, enums.Upper, 1, m22, m22, 0, m23) }, gslerr.ErrBadLength},
		{"trmm square", func() error { return blas.Trmm(enums.Left, enums.Upper, enums.NoTrans, enums.Unit, 1, m23, m33) }, gslerr.ErrNotSquare},
		{"trmm right", func() error { return blas.Trmm(enums.Right, enums.Upper, enums.NoTrans, enums.Unit, 1, m22, m23) }, gslerr.ErrBadLength},
		{"trsm left", func() error { return blas.Trsm(enums.Left, enums.Lower, enums.NoTrans, enums.Unit, 1, m33, m23) }, gslerr.ErrBadLength},
		{"syrk square", func() error { return blas.Syrk(enums.Upper, enums.NoTrans, 1, m22, 0, m23) }, gslerr.ErrNotSquare},
		{"syrk order", func() error { return blas.Syrk(enums.Upper, enums.Trans, 1, m32, 0, m33) }, gslerr.ErrBadLength},
		{"syr2k shapes", func() error { return blas.Syr2k(enums.Upper, enums.NoTrans, 1, m23, m32, 0, m22) }, gslerr.ErrBadLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), tc.want)
		})
	}
	require.Zero(t, fx.fake.Total())
}

func TestLevel3MissingEntry(t *testing.T) {
	fx := newFixture(t)
	a, b := fx.zeroMat(2, 2), fx.zeroMat(2, 2)
	fx.fake.Library().BLASF64.Trsm = nil

	err := blas.Trsm(enums.Left, enums.Upper, enums.NoTrans, enums.NonUnit, 1, a, b)
	require.ErrorIs(t, err, gslerr.ErrUnimplemented)

	// shape errors still win over a missing entry
	err = blas.Trsm(enums.Left, enums.Upper, enums.NoTrans, enums.NonUnit, 1, fx.zeroMat(2, 3), b)
	require.ErrorIs(t, err, gslerr.ErrNotSquare)
}
