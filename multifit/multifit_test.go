// SPDX-License-Identifier: MIT

package multifit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/multifit"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/native/nativetest"
	"github.com/katalvlaran/lvgsl/vector"
)

type fixture struct {
	t    *testing.T
	fake *nativetest.Fake
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, fake: nativetest.New()}
}

func (fx *fixture) vec(xs ...float64) *multifit.Vector {
	v, err := vector.FromSlice(xs, vector.WithLibrary(fx.fake.Library()))
	require.NoError(fx.t, err)
	fx.t.Cleanup(func() { _ = v.Close() })

	return v
}

func (fx *fixture) mat(r, c int) *multifit.Matrix {
	m, err := matrix.NewZeroed[float64](r, c, matrix.WithLibrary(fx.fake.Library()))
	require.NoError(fx.t, err)
	fx.t.Cleanup(func() { _ = m.Close() })

	return m
}

func TestGradient(t *testing.T) {
	fx := newFixture(t)
	j, err := matrix.FromRows([][]float64{{1, 0}, {0, 2}, {1, 1}}, matrix.WithLibrary(fx.fake.Library()))
	require.NoError(t, err)
	defer j.Close()
	g := fx.vec(0, 0)

	require.NoError(t, multifit.Gradient(j, fx.vec(1, 1, 1), g))
	xs, err := g.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, xs)

	require.ErrorIs(t, multifit.Gradient(j, fx.vec(1, 1), g), gslerr.ErrBadLength)
	require.ErrorIs(t, multifit.Gradient(j, fx.vec(1, 1, 1), fx.vec(1, 1, 1)), gslerr.ErrBadLength)
}

func TestTestDelta(t *testing.T) {
	fx := newFixture(t)
	ok, err := multifit.TestDelta(fx.vec(1e-12), fx.vec(1), 1e-8, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = multifit.TestDelta(fx.vec(1), fx.vec(1), 1e-8, 1e-8)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCovar(t *testing.T) {
	fx := newFixture(t)
	var gotEps float64
	fx.fake.Library().Multifit.Covar = func(j native.Handle, epsrel float64, c native.Handle) native.Status {
		gotEps = epsrel
		fx.fake.Store(c, []float64{1, 0, 0, 1})
		return 0
	}
	j, covar := fx.mat(5, 2), fx.mat(2, 2)
	require.NoError(t, multifit.Covar(j, 1e-7, covar))
	require.Equal(t, 1e-7, gotEps)

	require.ErrorIs(t, multifit.Covar(j, 0, fx.mat(5, 5)), gslerr.ErrBadLength)
	require.ErrorIs(t, multifit.Covar(j, 0, j), gslerr.ErrBadLength)

	sq := fx.mat(2, 2)
	err := multifit.Covar(sq, 0, sq)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
}

func TestLCurve(t *testing.T) {
	fx := newFixture(t)
	mf := &fx.fake.Library().Multifit
	mf.LinearLreg = func(smin, smax float64, reg native.Handle) native.Status {
		fx.fake.Store(reg, []float64{smax, smin})
		return 0
	}
	mf.LinearLcorner = func(rho, eta native.Handle, idx *int) native.Status {
		*idx = 1
		return 0
	}
	mf.LinearLcorner2 = func(reg, eta native.Handle, idx *int) native.Status {
		return gslerr.ErrBadLength.Code()
	}

	reg := fx.vec(0, 0)
	require.NoError(t, multifit.LinearLreg(0.1, 10, reg))
	xs, err := reg.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []float64{10, 0.1}, xs)

	idx, err := multifit.LinearLcorner(fx.vec(3, 2, 1), fx.vec(1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	_, err = multifit.LinearLcorner(fx.vec(3, 2, 1), fx.vec(1, 2))
	require.ErrorIs(t, err, gslerr.ErrBadLength)

	_, err = multifit.LinearLcorner2(fx.vec(1, 2), fx.vec(1, 2))
	require.Equal(t, gslerr.ErrBadLength, err)
}

func TestLinearLk(t *testing.T) {
	fx := newFixture(t)
	var got [2]int
	fx.fake.Library().Multifit.LinearLk = func(p, k int, l native.Handle) native.Status {
		got = [2]int{p, k}
		return 0
	}

	require.NoError(t, multifit.LinearLk(4, 1, fx.mat(3, 4)))
	require.Equal(t, [2]int{4, 1}, got)
	require.ErrorIs(t, multifit.LinearLk(4, 1, fx.mat(4, 4)), gslerr.ErrBadLength)
	require.ErrorIs(t, multifit.LinearLk(2, 2, fx.mat(1, 2)), gslerr.ErrBadLength)

	fx.fake.Library().Multifit.LinearLk = nil
	require.ErrorIs(t, multifit.LinearLk(4, 1, fx.mat(3, 4)), gslerr.ErrUnimplemented)
}
