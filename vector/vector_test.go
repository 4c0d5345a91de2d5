// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/native/nativetest"
	"github.com/katalvlaran/lvgsl/vector"
)

func newFake(t *testing.T) (*nativetest.Fake, vector.Option) {
	t.Helper()
	f := nativetest.New()
	t.Cleanup(func() {
		require.Zero(t, f.BadFrees(), "double free")
	})

	return f, vector.WithLibrary(f.Library())
}

func TestWriteThenShareThenReleaseOnce(t *testing.T) {
	f, lib := newFake(t)
	v, err := vector.New[float64](5, lib)
	require.NoError(t, err)

	w, err := v.Exclusive()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		w.Put(i, float64(i)*1.5)
	}
	w.Release()

	r1, err := v.Shared()
	require.NoError(t, err)
	r2, err := v.Shared()
	require.NoError(t, err)
	require.Equal(t, 6.0, r1.Get(4))
	xs, err := r2.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1.5, 3, 4.5, 6}, xs)

	require.NoError(t, v.Close())
	require.Zero(t, f.Freed()) // readers still live
	r1.Release()
	r2.Release()
	require.Equal(t, 1, f.Freed())
	require.Equal(t, 1, f.Calls("vector.Free"))
	require.Zero(t, f.Live())
}

func TestNewRejectsNonPositiveLength(t *testing.T) {
	f, lib := newFake(t)
	for _, n := range []int{0, -3} {
		_, err := vector.New[float32](n, lib)
		require.ErrorIs(t, err, gslerr.ErrInvalid)
	}
	require.Zero(t, f.Total())
}

func TestNewNullHandle(t *testing.T) {
	f, lib := newFake(t)
	f.Fail("vector.Calloc", gslerr.ErrNoMemory.Code())
	_, err := vector.NewZeroed[float64](8, lib)
	require.ErrorIs(t, err, gslerr.ErrNoMemory)
	require.Zero(t, f.Calls("vector.Free"))
}

func TestUnavailableBackend(t *testing.T) {
	_, err := vector.New[float64](3, vector.WithLibrary(native.Unavailable()))
	require.ErrorIs(t, err, gslerr.ErrUnimplemented)
}

func TestFromSliceAndMetadata(t *testing.T) {
	_, lib := newFake(t)
	v, err := vector.FromSlice([]int32{4, -2, 9}, lib)
	require.NoError(t, err)
	defer v.Close()

	require.Equal(t, 3, v.Len())
	require.Equal(t, 1, v.Stride())
	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, int32(9), x)
	require.Equal(t, "[4 -2 9]", v.String())

	_, err = vector.FromSlice([]float64{}, lib)
	require.ErrorIs(t, err, gslerr.ErrInvalid)
}

func TestCheckedAccessOutOfRange(t *testing.T) {
	f, lib := newFake(t)
	v, err := vector.NewZeroed[float64](3, lib)
	require.NoError(t, err)
	defer v.Close()
	f.ResetCalls()

	_, err = v.At(3)
	require.ErrorIs(t, err, gslerr.ErrInvalid)
	require.ErrorIs(t, v.Set(-1, 1), gslerr.ErrInvalid)
	require.Zero(t, f.Total())

	r, err := v.Shared()
	require.NoError(t, err)
	defer r.Release()
	require.Panics(t, func() { r.Get(7) })
}

func TestFillZeroToSlice(t *testing.T) {
	_, lib := newFake(t)
	v, err := vector.New[float32](4, lib)
	require.NoError(t, err)
	defer v.Close()

	require.NoError(t, v.Fill(2.5))
	xs, err := v.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []float32{2.5, 2.5, 2.5, 2.5}, xs)

	require.NoError(t, v.Set(1, 7))
	require.NoError(t, v.Zero())
	xs, err = v.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0, 0, 0}, xs)
}

func TestCopyFromLengthMismatch(t *testing.T) {
	f, lib := newFake(t)
	a, err := vector.New[float64](3, lib)
	require.NoError(t, err)
	b, err := vector.New[float64](4, lib)
	require.NoError(t, err)
	f.ResetCalls()

	err = a.CopyFrom(b)
	require.ErrorIs(t, err, gslerr.ErrBadLength)
	require.Zero(t, f.Total()) // rejected before any native call

	require.NoError(t, a.Close())
	require.NoError(t, b.Close())
}

func TestCopyFromSelfIsBorrowConflict(t *testing.T) {
	f, lib := newFake(t)
	a, err := vector.FromSlice([]float64{1, 2}, lib)
	require.NoError(t, err)
	defer a.Close()
	f.ResetCalls()

	err = a.CopyFrom(a)
	require.ErrorIs(t, err, gslerr.ErrInvalid)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
	require.Zero(t, f.Calls("vector.Memcpy"))
}

func TestCopyFromMixedLibraries(t *testing.T) {
	_, lib1 := newFake(t)
	_, lib2 := newFake(t)
	a, err := vector.New[float64](2, lib1)
	require.NoError(t, err)
	b, err := vector.New[float64](2, lib2)
	require.NoError(t, err)

	require.ErrorIs(t, a.CopyFrom(b), gslerr.ErrInvalid)
}

func TestCopyFrom(t *testing.T) {
	_, lib := newFake(t)
	src, err := vector.FromSlice([]float64{3, 1, 4}, lib)
	require.NoError(t, err)
	dst, err := vector.NewZeroed[float64](3, lib)
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(src))
	xs, err := dst.ToSlice()
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 4}, xs)
}

func TestUseAfterClose(t *testing.T) {
	_, lib := newFake(t)
	v, err := vector.New[float64](2, lib)
	require.NoError(t, err)
	require.NoError(t, v.Close())

	_, err = v.At(0)
	require.ErrorIs(t, err, gslerr.ErrFault)
	require.ErrorIs(t, v.Fill(1), handle.ErrClosed)
	require.Equal(t, 2, v.Len()) // metadata survives Close
	require.Contains(t, v.String(), "closed")
}

func TestReleasedViews(t *testing.T) {
	_, lib := newFake(t)
	v, err := vector.New[float64](2, lib)
	require.NoError(t, err)
	defer v.Close()

	w, err := v.Exclusive()
	require.NoError(t, err)
	w.Release()
	require.ErrorIs(t, w.Set(0, 1), gslerr.ErrFault)
	require.Panics(t, func() { w.Put(0, 1) })

	r, err := v.Shared()
	require.NoError(t, err)
	r.Release()
	_, err = r.At(0)
	require.ErrorIs(t, err, gslerr.ErrFault)
}

func TestWithLibraryNilPanics(t *testing.T) {
	require.PanicsWithValue(t, "vector: WithLibrary: library must be non-nil", func() {
		vector.WithLibrary(nil)
	})
}
