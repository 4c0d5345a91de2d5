// SPDX-License-Identifier: MIT

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/filter"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/native/nativetest"
	"github.com/katalvlaran/lvgsl/vector"
)

func newFake(t *testing.T) (*nativetest.Fake, vector.Option, filter.Option) {
	f := nativetest.New()
	t.Cleanup(func() {
		require.Zero(t, f.BadFrees(), "double free")
	})

	return f, vector.WithLibrary(f.Library()), filter.WithLibrary(f.Library())
}

func vecOf[T int32 | float64](t *testing.T, lib vector.Option, xs ...T) *vector.Vector[T] {
	v, err := vector.FromSlice(xs, lib)
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })

	return v
}

func values(t *testing.T, v *vector.Vector[float64]) []float64 {
	xs, err := v.ToSlice()
	require.NoError(t, err)

	return xs
}

// window3Median is a median-of-three with truncated ends.
func window3Median(x []float64) []float64 {
	y := make([]float64, len(x))
	for i := range x {
		lo, hi := max(i-1, 0), min(i+2, len(x))
		w := append([]float64(nil), x[lo:hi]...)
		for a := range w {
			for b := a + 1; b < len(w); b++ {
				if w[b] < w[a] {
					w[a], w[b] = w[b], w[a]
				}
			}
		}
		y[i] = w[len(w)/2]
	}

	return y
}

func TestMedian(t *testing.T) {
	f, vlib, flib := newFake(t)
	var gotEnd int32
	f.Library().Filter.Median = func(end int32, x, y, w native.Handle) native.Status {
		gotEnd = end
		f.Store(y, window3Median(f.Data(x)))
		return 0
	}
	ws, err := filter.NewMedian(3, flib)
	require.NoError(t, err)
	defer ws.Close()
	require.Equal(t, 3, ws.Window())

	x := vecOf(t, vlib, 1.0, 9, 2, 3, 2)
	y := vecOf(t, vlib, 0.0, 0, 0, 0, 0)
	require.NoError(t, ws.Median(enums.Truncate, x, y))
	require.Equal(t, []float64{9, 2, 3, 2, 3}, values(t, y))
	require.Equal(t, enums.Truncate.Native(), gotEnd)
}

func TestGaussianInPlace(t *testing.T) {
	f, vlib, flib := newFake(t)
	var sameHandle bool
	f.Library().Filter.Gaussian = func(end int32, alpha float64, order int, x, y, w native.Handle) native.Status {
		sameHandle = x == y
		return 0
	}
	ws, err := filter.NewGaussian(5, flib)
	require.NoError(t, err)
	defer ws.Close()

	xy := vecOf(t, vlib, 1.0, 2, 3)
	require.NoError(t, ws.GaussianInPlace(enums.PadValue, 3, 0, xy))
	require.True(t, sameHandle)

	// the two-vector form refuses the same vector twice
	err = ws.Gaussian(enums.PadValue, 3, 0, xy, xy)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
	require.Equal(t, handle.StateIdle, xy.Owner().State())
}

func TestImpulse(t *testing.T) {
	f, vlib, flib := newFake(t)
	f.Library().Filter.Impulse = func(end, scale int32, th float64, x, y, xm, xs native.Handle, n *int, io, w native.Handle) native.Status {
		f.Store(io, []float64{0, 1, 0, 0})
		*n = 1
		return 0
	}
	ws, err := filter.NewImpulse(3, flib)
	require.NoError(t, err)
	defer ws.Close()

	x := vecOf(t, vlib, 1.0, 50, 1, 1)
	out := filter.ImpulseOutputs{
		Y:       vecOf(t, vlib, 0.0, 0, 0, 0),
		Median:  vecOf(t, vlib, 0.0, 0, 0, 0),
		Sigma:   vecOf(t, vlib, 0.0, 0, 0, 0),
		Outlier: vecOf[int32](t, vlib, 0, 0, 0, 0),
	}
	n, err := ws.Impulse(enums.Truncate, enums.MedianAbsoluteDeviation, 3, x, out)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	flags, err := out.Outlier.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []int32{0, 1, 0, 0}, flags)
}

func TestImpulseChecks(t *testing.T) {
	f, vlib, flib := newFake(t)
	ws, err := filter.NewImpulse(3, flib)
	require.NoError(t, err)
	defer ws.Close()
	x := vecOf(t, vlib, 1.0, 2, 3)
	full := filter.ImpulseOutputs{
		Y:       vecOf(t, vlib, 0.0, 0, 0),
		Median:  vecOf(t, vlib, 0.0, 0, 0),
		Sigma:   vecOf(t, vlib, 0.0, 0, 0),
		Outlier: vecOf[int32](t, vlib, 0, 0),
	}

	_, err = ws.Impulse(enums.Truncate, enums.QN, 3, x, filter.ImpulseOutputs{})
	require.ErrorIs(t, err, gslerr.ErrFault)

	_, err = ws.Impulse(enums.Truncate, enums.QN, 3, x, full)
	require.ErrorIs(t, err, gslerr.ErrBadLength)

	full.Outlier = vecOf[int32](t, vlib, 0, 0, 0)
	_, err = ws.Impulse(enums.Truncate, enums.QN, 3, x, full)
	require.ErrorIs(t, err, gslerr.ErrUnimplemented) // the fake models no impulse filter

	full.Median = full.Y
	f.Library().Filter.Impulse = func(int32, int32, float64, native.Handle, native.Handle, native.Handle, native.Handle, *int, native.Handle, native.Handle) native.Status {
		return 0
	}
	_, err = ws.Impulse(enums.Truncate, enums.QN, 3, x, full)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
}

func TestLengthAndLibraryChecks(t *testing.T) {
	f, vlib, flib := newFake(t)
	_, otherLib, _ := newFake(t)
	f.Library().Filter.RMedian = func(int32, native.Handle, native.Handle, native.Handle) native.Status { return 0 }
	ws, err := filter.NewRMedian(3, flib)
	require.NoError(t, err)
	defer ws.Close()
	f.ResetCalls()

	require.ErrorIs(t, ws.RMedian(enums.PadZero, vecOf(t, vlib, 1.0, 2), vecOf(t, vlib, 1.0)), gslerr.ErrBadLength)
	require.ErrorIs(t, ws.RMedian(enums.PadZero, vecOf(t, vlib, 1.0), vecOf(t, otherLib, 1.0)), gslerr.ErrInvalid)
	require.NoError(t, ws.RMedian(enums.PadZero, vecOf(t, vlib, 1.0), vecOf(t, vlib, 1.0)))
}

func TestNativeStatus(t *testing.T) {
	f, vlib, flib := newFake(t)
	f.Library().Filter.Median = func(int32, native.Handle, native.Handle, native.Handle) native.Status {
		return gslerr.ErrInvalid.Code()
	}
	ws, err := filter.NewMedian(4, flib)
	require.NoError(t, err)
	defer ws.Close()

	err = ws.Median(enums.PadZero, vecOf(t, vlib, 1.0), vecOf(t, vlib, 1.0))
	require.Equal(t, gslerr.ErrInvalid, err) // native failures arrive undecorated
}

func TestConstructors(t *testing.T) {
	f, _, flib := newFake(t)
	_, err := filter.NewGaussian(0, flib)
	require.ErrorIs(t, err, gslerr.ErrInvalid)
	_, err = filter.NewMedian(3, filter.WithLibrary(native.Unavailable()))
	require.ErrorIs(t, err, gslerr.ErrUnimplemented)

	ws, err := filter.NewRMedian(3, flib)
	require.NoError(t, err)
	require.NoError(t, ws.Close())
	require.Equal(t, 1, f.Calls("filter.RMedian.Free"))
}
