// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native"
)

func TestNewBadShape(t *testing.T) {
	f, lib := newFake(t)
	for _, sh := range [][2]int{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := matrix.New[float64](sh[0], sh[1], lib)
		require.ErrorIs(t, err, matrix.ErrBadShape)
		require.ErrorIs(t, err, gslerr.ErrInvalid)
	}
	require.Zero(t, f.Total())
}

func TestNewMetadata(t *testing.T) {
	_, lib := newFake(t)
	m, err := matrix.NewZeroed[float32](2, 3, lib)
	require.NoError(t, err)
	defer m.Close()

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 3, m.TDA())
	require.False(t, m.IsSquare())
}

func TestUnavailableBackend(t *testing.T) {
	_, err := matrix.New[float64](2, 2, matrix.WithLibrary(native.Unavailable()))
	require.ErrorIs(t, err, gslerr.ErrUnimplemented)
}

func TestFromRowsRagged(t *testing.T) {
	f, lib := newFake(t)
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}}, lib)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, gslerr.ErrBadLength)

	_, err = matrix.FromRows([][]float64{}, lib)
	require.ErrorIs(t, err, gslerr.ErrInvalid)
	require.Zero(t, f.Total())
}

func TestCheckedAccess(t *testing.T) {
	_, lib := newFake(t)
	m := mustRows(t, lib, [][]float64{{1, 2}, {3, 4}})

	x, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, x)

	require.NoError(t, m.Set(0, 1, 9))
	x, err = m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, x)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), gslerr.ErrInvalid)
}

func TestUncheckedPanics(t *testing.T) {
	_, lib := newFake(t)
	m := mustRows(t, lib, [][]float64{{1}})

	w, err := m.Exclusive()
	require.NoError(t, err)
	require.Panics(t, func() { w.Put(1, 1, 0) })
	w.Release()
	require.Panics(t, func() { w.Put(0, 0, 0) }) // released

	r, err := m.Shared()
	require.NoError(t, err)
	defer r.Release()
	require.Equal(t, 1.0, r.Get(0, 0))
	require.Panics(t, func() { r.Get(0, 1) })
}

func TestIdentityAndString(t *testing.T) {
	_, lib := newFake(t)
	m, err := matrix.NewIdentity[float64](2, lib)
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, "[1, 0]\n[0, 1]\n", m.String())

	require.NoError(t, m.Fill(0.5))
	rows, err := m.ToRows()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}}, rows)

	require.NoError(t, m.Zero())
	rows, err = m.ToRows()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, rows)
}

func TestTransposeInPlace(t *testing.T) {
	f, lib := newFake(t)
	sq := mustRows(t, lib, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, sq.TransposeInPlace())
	rows, err := sq.ToRows()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, rows)

	rect := mustRows(t, lib, [][]float64{{1, 2, 3}, {4, 5, 6}})
	f.ResetCalls()
	err = rect.TransposeInPlace()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, gslerr.ErrNotSquare)
	require.Zero(t, f.Total()) // rejected before the native call
}

func TestCopyFrom(t *testing.T) {
	f, lib := newFake(t)
	src := mustRows(t, lib, [][]float64{{1, 2}, {3, 4}})
	dst, err := matrix.NewZeroed[float64](2, 2, lib)
	require.NoError(t, err)
	defer dst.Close()

	require.NoError(t, dst.CopyFrom(src))
	rows, err := dst.ToRows()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	wide := mustRows(t, lib, [][]float64{{1, 2, 3}})
	f.ResetCalls()
	err = dst.CopyFrom(wide)
	require.ErrorIs(t, err, gslerr.ErrBadLength)
	require.Zero(t, f.Total())

	err = dst.CopyFrom(dst)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
	require.Zero(t, f.Calls("matrix.Memcpy"))

	require.ErrorIs(t, dst.CopyFrom(nil), matrix.ErrNilMatrix)
}

func TestNativeFailureIsReturned(t *testing.T) {
	f, lib := newFake(t)
	a := mustRows(t, lib, [][]float64{{1}})
	b := mustRows(t, lib, [][]float64{{2}})
	f.Fail("matrix.Memcpy", gslerr.ErrFailed.Code())

	require.Equal(t, gslerr.ErrFailed, a.CopyFrom(b))
}

func TestStringWhileExclusive(t *testing.T) {
	_, lib := newFake(t)
	m := mustRows(t, lib, [][]float64{{1}})
	w, err := m.Exclusive()
	require.NoError(t, err)
	defer w.Release()

	require.Equal(t, "matrix(1x1, exclusive)", m.String())
}
