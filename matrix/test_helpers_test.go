// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide a fresh fake backend per test and assert no double free on cleanup.
//   - Keep fixtures small and deterministic.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native/nativetest"
)

func newFake(t testing.TB) (*nativetest.Fake, matrix.Option) {
	t.Helper()
	f := nativetest.New()
	t.Cleanup(func() {
		require.Zero(t, f.BadFrees(), "double free")
	})

	return f, matrix.WithLibrary(f.Library())
}

// mustRows builds a float64 matrix from rows or fails the test.
func mustRows(t testing.TB, lib matrix.Option, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows, lib)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	return m
}
