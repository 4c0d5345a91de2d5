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

func TestGemv(t *testing.T) {
	fx := newFixture(t)
	a := fx.mat([]float64{1, 2, 3}, []float64{4, 5, 6})

	y := fx.zeros(2)
	require.NoError(t, blas.Gemv(enums.NoTrans, 1, a, fx.vec(1, 1, 1), 0, y))
	require.Equal(t, []float64{6, 15}, slice(t, y))

	// y = 2·A·x + y
	require.NoError(t, blas.Gemv(enums.NoTrans, 2, a, fx.vec(1, 0, 0), 1, y))
	require.Equal(t, []float64{8, 23}, slice(t, y))

	yt := fx.zeros(3)
	require.NoError(t, blas.Gemv(enums.Trans, 1, a, fx.vec(1, 1), 0, yt))
	require.Equal(t, []float64{5, 7, 9}, slice(t, yt))
}

func TestTrmvTrsvRoundTrip(t *testing.T) {
	fx := newFixture(t)
	// the 9 lies outside the referenced triangle
	a := fx.mat([]float64{2, 1}, []float64{9, 3})

	for _, tr := range []enums.Transpose{enums.NoTrans, enums.Trans} {
		x := fx.vec(1, 1)
		require.NoError(t, blas.Trmv(enums.Upper, tr, enums.NonUnit, a, x))
		require.NoError(t, blas.Trsv(enums.Upper, tr, enums.NonUnit, a, x))
		require.InDeltaSlice(t, []float64{1, 1}, slice(t, x), 1e-12, tr.String())
	}

	x := fx.vec(1, 1)
	require.NoError(t, blas.Trmv(enums.Upper, enums.NoTrans, enums.NonUnit, a, x))
	require.Equal(t, []float64{3, 3}, slice(t, x))

	u := fx.vec(1, 1)
	require.NoError(t, blas.Trmv(enums.Upper, enums.NoTrans, enums.Unit, a, u))
	require.Equal(t, []float64{2, 1}, slice(t, u))
}

func TestSymv(t *testing.T) {
	fx := newFixture(t)
	a := fx.mat([]float64{1, 99}, []float64{2, 3}) // lower triangle holds [[1 2] [2 3]]
	y := fx.zeros(2)

	require.NoError(t, blas.Symv(enums.Lower, 1, a, fx.vec(1, 1), 0, y))
	require.Equal(t, []float64{3, 5}, slice(t, y))
}

func TestRankUpdates(t *testing.T) {
	fx := newFixture(t)

	a := fx.zeroMat(2, 3)
	require.NoError(t, blas.Ger(1, fx.vec(1, 2), fx.vec(3, 4, 5), a))
	require.Equal(t, [][]float64{{3, 4, 5}, {6, 8, 10}}, rows(t, a))

	s := fx.zeroMat(2, 2)
	require.NoError(t, blas.Syr(enums.Upper, 1, fx.vec(1, 2), s))
	require.Equal(t, [][]float64{{1, 2}, {0, 4}}, rows(t, s))

	s2 := fx.zeroMat(2, 2)
	require.NoError(t, blas.Syr2(enums.Lower, 1, fx.vec(1, 0), fx.vec(0, 1), s2))
	require.Equal(t, [][]float64{{0, 0}, {1, 0}}, rows(t, s2))
}

func TestLevel2ShapeErrors(t *testing.T) {
	fx := newFixture(t)
	rect := fx.zeroMat(2, 3)
	sq := fx.zeroMat(2, 2)
	x2, x3 := fx.zeros(2), fx.zeros(3)
	fx.fake.ResetCalls()

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"gemv x", func() error { return blas.Gemv(enums.NoTrans, 1, rect, x2, 0, x2) }, gslerr.ErrBadLength},
		{"gemv y", func() error { return blas.Gemv(enums.NoTrans, 1, rect, x3, 0, x3) }, gslerr.ErrBadLength},
		{"gemv trans", func() error { return blas.Gemv(enums.Trans, 1, rect, x3, 0, x2) }, gslerr.ErrBadLength},
		{"trmv square", func() error { return blas.Trmv(enums.Upper, enums.NoTrans, enums.NonUnit, rect, x3) }, gslerr.ErrNotSquare},
		{"trsv len", func() error { return blas.Trsv(enums.Lower, enums.NoTrans, enums.Unit, sq, x3) }, gslerr.ErrBadLength},
		{"symv y", func() error { return blas.Symv(enums.Upper, 1, sq, x2, 0, x3) }, gslerr.ErrBadLength},
		{"symv square", func() error { return blas.Symv(enums.Upper, 1, rect, x2, 0, x2) }, gslerr.ErrNotSquare},
		{"ger", func() error { return blas.Ger(1, x3, x2, rect) }, gslerr.ErrBadLength},
		{"syr", func() error { return blas.Syr(enums.Upper, 1, x3, sq) }, gslerr.ErrBadLength},
		{"syr2", func() error { return blas.Syr2(enums.Upper, 1, x2, x3, sq) }, gslerr.ErrBadLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), tc.want)
		})
	}
	require.Zero(t, fx.fake.Total())
}

func TestGemvOutputAliasesInput(t *testing.T) {
	fx := newFixture(t)
	a := fx.mat([]float64{1, 0}, []float64{0, 1})
	x := fx.vec(1, 2)
	fx.fake.ResetCalls()

	err := blas.Gemv(enums.NoTrans, 1, a, x, 0, x)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
	require.Zero(t, fx.fake.Calls("blas.Gemv"))
	require.Equal(t, handle.StateIdle, a.Owner().State())
	require.Equal(t, handle.StateIdle, x.Owner().State())
}
