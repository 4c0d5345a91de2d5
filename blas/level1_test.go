// SPDX-License-Identifier: MIT

package blas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/blas"
	"github.com/katalvlaran/lvgsl/errhandler"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
)

func TestDot(t *testing.T) {
	fx := newFixture(t)
	d, err := blas.Dot(fx.vec(1, 2, 3), fx.vec(4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	d32, err := blas.Dot(fx.vec32(1, 2), fx.vec32(0.5, 0.25))
	require.NoError(t, err)
	require.Equal(t, float32(1), d32)
}

func TestMixedPrecisionDots(t *testing.T) {
	fx := newFixture(t)
	x, y := fx.vec32(1, 2), fx.vec32(3, 4)

	s, err := blas.SDSDot(1, x, y)
	require.NoError(t, err)
	require.Equal(t, float32(12), s)

	d, err := blas.DSDot(x, y)
	require.NoError(t, err)
	require.Equal(t, 11.0, d)
}

func TestReductions(t *testing.T) {
	fx := newFixture(t)
	x := fx.vec(3, -4)

	n, err := blas.Nrm2(x)
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, 1e-12)

	a, err := blas.Asum(x)
	require.NoError(t, err)
	require.Equal(t, 7.0, a)

	i, err := blas.Iamax(x)
	require.NoError(t, err)
	require.Equal(t, 1, i)
}

func TestSwapCopyAxpyScal(t *testing.T) {
	fx := newFixture(t)
	x, y := fx.vec(1, 2), fx.vec(10, 20)

	require.NoError(t, blas.Swap(x, y))
	require.Equal(t, []float64{10, 20}, slice(t, x))
	require.Equal(t, []float64{1, 2}, slice(t, y))

	require.NoError(t, blas.Axpy(2, y, x)) // x = 2y + x
	require.Equal(t, []float64{12, 24}, slice(t, x))

	require.NoError(t, blas.Copy(x, y))
	require.Equal(t, []float64{12, 24}, slice(t, y))

	require.NoError(t, blas.Scal(0.5, y))
	require.Equal(t, []float64{6, 12}, slice(t, y))
}

func TestRotAndRotm(t *testing.T) {
	fx := newFixture(t)
	x, y := fx.vec(1, 2), fx.vec(3, 4)

	require.NoError(t, blas.Rot(x, y, 0, 1)) // quarter turn
	require.Equal(t, []float64{3, 4}, slice(t, x))
	require.Equal(t, []float64{-1, -2}, slice(t, y))

	// flag -1: full H = [h11 h12; h21 h22]
	require.NoError(t, blas.Rotm(x, y, [5]float64{-1, 2, 0, 0, 1}))
	require.Equal(t, []float64{6, 8}, slice(t, x))
	require.Equal(t, []float64{-1, -2}, slice(t, y))

	// flag -2: identity, untouched
	require.NoError(t, blas.Rotm(x, y, [5]float64{-2, 9, 9, 9, 9}))
	require.Equal(t, []float64{6, 8}, slice(t, x))
}

func TestRotg(t *testing.T) {
	fx := newFixture(t)
	g, err := blas.Rotg(fx.fake.Library(), 3.0, 4.0)
	require.NoError(t, err)
	require.InDelta(t, 5.0, g.R, 1e-12)
	require.InDelta(t, 0.6, g.C, 1e-12)
	require.InDelta(t, 0.8, g.S, 1e-12)
	require.InDelta(t, 1/0.6, g.Z, 1e-12)

	g32, err := blas.Rotg[float32](fx.fake.Library(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, blas.Givens[float32]{C: 1}, g32)
}

func TestRotmgMissingInBackend(t *testing.T) {
	fx := newFixture(t)
	_, err := blas.Rotmg(fx.fake.Library(), 1.0, 1.0, 1.0, 1.0)
	require.ErrorIs(t, err, gslerr.ErrUnimplemented)
	require.Contains(t, err.Error(), "blas.Rotmg")
}

func TestRotgNilLibraryUsesDefault(t *testing.T) {
	fx := newFixture(t)
	prev := native.SetDefault(fx.fake.Library())
	t.Cleanup(func() { native.SetDefault(prev) })

	g, err := blas.Rotg[float64](nil, 3, 4)
	require.NoError(t, err)
	require.InDelta(t, 5.0, g.R, 1e-12)
	require.Equal(t, 1, fx.fake.Calls("blas.Rotg"))

	_, err = blas.Rotmg[float32](nil, 1, 1, 1, 1)
	require.ErrorIs(t, err, gslerr.ErrUnimplemented)
}

func TestLevel1LengthMismatch(t *testing.T) {
	fx := newFixture(t)
	a, b := fx.vec(1, 2, 3), fx.vec(1, 2, 3, 4)
	fx.fake.ResetCalls()

	cases := map[string]func() error{
		"Dot":  func() error { _, err := blas.Dot(a, b); return err },
		"Swap": func() error { return blas.Swap(a, b) },
		"Copy": func() error { return blas.Copy(a, b) },
		"Axpy": func() error { return blas.Axpy(1, a, b) },
		"Rot":  func() error { return blas.Rot(a, b, 1, 0) },
		"Rotm": func() error { return blas.Rotm(a, b, [5]float64{-2}) },
	}
	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, call(), gslerr.ErrBadLength)
		})
	}
	require.Zero(t, fx.fake.Total()) // nothing reached the backend
}

func TestAxpyAliasedOperands(t *testing.T) {
	fx := newFixture(t)
	x := fx.vec(1, 2)
	fx.fake.ResetCalls()

	err := blas.Axpy(2, x, x)
	require.ErrorIs(t, err, gslerr.ErrInvalid)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
	require.Zero(t, fx.fake.Calls("blas.Axpy"))
	require.Equal(t, []float64{1, 2}, slice(t, x))

	// x is usable again afterwards: no borrow leaked
	require.Equal(t, handle.StateIdle, x.Owner().State())
}

func TestMixedLibraries(t *testing.T) {
	fx1, fx2 := newFixture(t), newFixture(t)
	_, err := blas.Dot(fx1.vec(1), fx2.vec(1))
	require.ErrorIs(t, err, gslerr.ErrInvalid)
	require.Zero(t, fx1.fake.Calls("blas.Dot"))
	require.Zero(t, fx2.fake.Calls("blas.Dot"))
}

func TestMissingEntry(t *testing.T) {
	fx := newFixture(t)
	x, y := fx.vec(1), fx.vec(2)
	fx.fake.Library().BLASF64.Axpy = nil
	fx.fake.Library().BLASF64.Nrm2 = nil

	require.ErrorIs(t, blas.Axpy(1, x, y), gslerr.ErrUnimplemented)
	_, err := blas.Nrm2(x)
	require.ErrorIs(t, err, gslerr.ErrUnimplemented)
	require.Equal(t, handle.StateIdle, y.Owner().State())
}

func TestClosedOperand(t *testing.T) {
	fx := newFixture(t)
	x, y := fx.vec(1, 2), fx.vec(3, 4)
	require.NoError(t, y.Close())

	_, err := blas.Dot(x, y)
	require.ErrorIs(t, err, gslerr.ErrFault)
	require.ErrorIs(t, err, handle.ErrClosed)
	require.Equal(t, handle.StateIdle, x.Owner().State())
}

func TestNativeFailureReachesHandler(t *testing.T) {
	fx := newFixture(t)
	reg := errhandler.NewRegistry(&fx.fake.Library().ErrorHook)
	var rec errhandler.Recorder
	reg.Set(rec.Handler())

	x, y := fx.vec(1, 2), fx.vec(3, 4)
	fx.fake.Fail("blas.Axpy", gslerr.ErrDomain.Code())

	err := blas.Axpy(1, x, y)
	require.ErrorIs(t, err, gslerr.ErrDomain)
	ev := rec.Events()
	require.Len(t, ev, 1)
	require.Equal(t, gslerr.ErrDomain, ev[0].Err)
	require.Contains(t, ev[0].Reason, "blas.Axpy")

	// borrows ended even though the call failed
	require.Equal(t, handle.StateIdle, y.Owner().State())
	fx.fake.Heal("blas.Axpy")
	require.NoError(t, blas.Axpy(1, x, y))
}

func TestDotWithHeldWriter(t *testing.T) {
	fx := newFixture(t)
	x, y := fx.vec(1), fx.vec(1)
	w, err := y.Exclusive()
	require.NoError(t, err)

	_, err = blas.Dot(x, y)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
	w.Release()

	_, err = blas.Dot[float64](x, y)
	require.NoError(t, err)
}
