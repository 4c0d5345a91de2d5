// SPDX-License-Identifier: MIT

package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/internal/workspace"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/native/nativetest"
)

func symmConfig(lib *native.Library) workspace.Config {
	return workspace.Config{
		Op:    "test.New",
		Kind:  "eigen.symm",
		Alloc: lib.Eigen.SymmAlloc,
		Free:  lib.Eigen.SymmFree,
	}
}

func TestNewAndClose(t *testing.T) {
	f := nativetest.New()
	w, err := workspace.New(f.Library(), nil, 4, symmConfig(f.Library()))
	require.NoError(t, err)
	require.Equal(t, 4, w.Size())
	require.Equal(t, "eigen.symm", w.Owner().Kind())
	require.Same(t, f.Library(), w.Library())
	require.Equal(t, 1, f.Live())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.Equal(t, 1, f.Calls("eigen.Symm.Free"))
	require.Zero(t, f.BadFrees())
}

func TestNewErrors(t *testing.T) {
	f := nativetest.New()
	_, err := workspace.New(f.Library(), nil, 0, symmConfig(f.Library()))
	require.ErrorIs(t, err, gslerr.ErrInvalid)
	require.Zero(t, f.Total())

	_, err = workspace.New(native.Unavailable(), nil, 3, symmConfig(native.Unavailable()))
	require.ErrorIs(t, err, gslerr.ErrUnimplemented)

	f.Fail("eigen.Symm.Alloc", gslerr.ErrNoMemory.Code())
	_, err = workspace.New(f.Library(), nil, 3, symmConfig(f.Library()))
	require.ErrorIs(t, err, gslerr.ErrNoMemory)
	require.Zero(t, f.Calls("eigen.Symm.Free"))
}

func TestExclusiveWhileBorrowed(t *testing.T) {
	f := nativetest.New()
	w, err := workspace.New(f.Library(), nil, 2, symmConfig(f.Library()))
	require.NoError(t, err)
	v, err := w.Owner().Exclusive()
	require.NoError(t, err)

	_, err = w.Owner().Exclusive()
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
	require.NoError(t, w.Close())
	require.Zero(t, f.Freed()) // deferred until the view ends
	v.Release()
	require.Equal(t, 1, f.Freed())
}
