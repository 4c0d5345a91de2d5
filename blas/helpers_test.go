// SPDX-License-Identifier: MIT

package blas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native/nativetest"
	"github.com/katalvlaran/lvgsl/vector"
)

// fixture bundles a fresh fake backend with typed constructors bound to it.
type fixture struct {
	t    testing.TB
	fake *nativetest.Fake
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := nativetest.New()
	t.Cleanup(func() {
		require.Zero(t, f.BadFrees(), "double free")
	})

	return &fixture{t: t, fake: f}
}

func (fx *fixture) vec(xs ...float64) *vector.Vector[float64] {
	fx.t.Helper()
	v, err := vector.FromSlice(xs, vector.WithLibrary(fx.fake.Library()))
	require.NoError(fx.t, err)
	fx.t.Cleanup(func() { _ = v.Close() })

	return v
}

func (fx *fixture) vec32(xs ...float32) *vector.Vector[float32] {
	fx.t.Helper()
	v, err := vector.FromSlice(xs, vector.WithLibrary(fx.fake.Library()))
	require.NoError(fx.t, err)
	fx.t.Cleanup(func() { _ = v.Close() })

	return v
}

func (fx *fixture) zeros(n int) *vector.Vector[float64] {
	fx.t.Helper()
	v, err := vector.NewZeroed[float64](n, vector.WithLibrary(fx.fake.Library()))
	require.NoError(fx.t, err)
	fx.t.Cleanup(func() { _ = v.Close() })

	return v
}

func (fx *fixture) mat(rows ...[]float64) *matrix.Matrix[float64] {
	fx.t.Helper()
	m, err := matrix.FromRows(rows, matrix.WithLibrary(fx.fake.Library()))
	require.NoError(fx.t, err)
	fx.t.Cleanup(func() { _ = m.Close() })

	return m
}

func (fx *fixture) zeroMat(r, c int) *matrix.Matrix[float64] {
	fx.t.Helper()
	m, err := matrix.NewZeroed[float64](r, c, matrix.WithLibrary(fx.fake.Library()))
	require.NoError(fx.t, err)
	fx.t.Cleanup(func() { _ = m.Close() })

	return m
}

func slice(t testing.TB, v *vector.Vector[float64]) []float64 {
	t.Helper()
	xs, err := v.ToSlice()
	require.NoError(t, err)

	return xs
}

func rows(t testing.TB, m *matrix.Matrix[float64]) [][]float64 {
	t.Helper()
	rs, err := m.ToRows()
	require.NoError(t, err)

	return rs
}
