// SPDX-License-Identifier: MIT

// Package multiroot exposes the convergence tests of GSL's multidimensional
// root finders (gsl_multiroot_test_*). The solvers themselves are out of
// scope; the tests are useful to any iteration that tracks a step and a
// residual in native vectors.
package multiroot

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/vector"
)

// TestDelta reports whether every step component satisfies
// |dxᵢ| < epsabs + epsrel·|xᵢ|. Not converging yet is (false, nil).
func TestDelta(dx, x *vector.Vector[float64], epsabs, epsrel float64) (bool, error) {
	const op = "multiroot.TestDelta"
	if err := vector.SameLibrary(dx, x); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := vector.ValidateSameLen(dx, x); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	lib := dx.Library()
	if lib.Multiroot.TestDelta == nil {
		return false, native.Missing(lib, op)
	}
	var s handle.Scope
	hd, hx := s.Shared(dx.Owner()), s.Shared(x.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return gslerr.Converged(lib.Multiroot.TestDelta(hd, hx, epsabs, epsrel))
}

// TestResidual reports whether Σ|fᵢ| < epsabs.
func TestResidual(f *vector.Vector[float64], epsabs float64) (bool, error) {
	const op = "multiroot.TestResidual"
	lib := f.Library()
	if lib.Multiroot.TestResidual == nil {
		return false, native.Missing(lib, op)
	}
	r, err := f.Shared()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer r.Release()

	return gslerr.Converged(lib.Multiroot.TestResidual(r.Handle(), epsabs))
}
