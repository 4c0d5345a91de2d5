// SPDX-License-Identifier: MIT

package multifit

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/vector"
)

type (
	Matrix = matrix.Matrix[float64]
	Vector = vector.Vector[float64]
)

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Covar computes the p×p covariance matrix of the best-fit parameters from
// the n×p Jacobian j: covar = (JᵀJ)⁻¹. Columns of j with norm below epsrel
// times the largest are treated as linearly dependent.
func Covar(j *Matrix, epsrel float64, covar *Matrix) error {
	const op = "multifit.Covar"
	lib := j.Library()
	if err := vector.SameLibrary(j, covar); err != nil {
		return wrap(op, err)
	}
	if err := matrix.ValidateShape(covar, j.Cols(), j.Cols()); err != nil {
		return wrap(op, err)
	}
	if lib.Multifit.Covar == nil {
		return native.Missing(lib, op)
	}
	var s handle.Scope
	hj, hc := s.Shared(j.Owner()), s.Exclusive(covar.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(lib.Multifit.Covar(hj, epsrel, hc))
}

// TestDelta reports whether every step component satisfies
// |dxᵢ| < epsabs + epsrel·|xᵢ|. Not converging yet is (false, nil).
func TestDelta(dx, x *Vector, epsabs, epsrel float64) (bool, error) {
	const op = "multifit.TestDelta"
	lib := dx.Library()
	if err := vector.SameLibrary(dx, x); err != nil {
		return false, wrap(op, err)
	}
	if err := vector.ValidateSameLen(dx, x); err != nil {
		return false, wrap(op, err)
	}
	if lib.Multifit.TestDelta == nil {
		return false, native.Missing(lib, op)
	}
	var s handle.Scope
	hd, hx := s.Shared(dx.Owner()), s.Shared(x.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return false, wrap(op, err)
	}

	return gslerr.Converged(lib.Multifit.TestDelta(hd, hx, epsabs, epsrel))
}

// Gradient computes g = Jᵀf for the n×p Jacobian j and residual f.
func Gradient(j *Matrix, f, g *Vector) error {
	const op = "multifit.Gradient"
	lib := j.Library()
	if err := vector.SameLibrary(j, f, g); err != nil {
		return wrap(op, err)
	}
	if err := matrix.ValidateVecLen("f", f.Len(), j.Rows()); err != nil {
		return wrap(op, err)
	}
	if err := matrix.ValidateVecLen("g", g.Len(), j.Cols()); err != nil {
		return wrap(op, err)
	}
	if lib.Multifit.Gradient == nil {
		return native.Missing(lib, op)
	}
	var s handle.Scope
	hj, hf, hg := s.Shared(j.Owner()), s.Shared(f.Owner()), s.Exclusive(g.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(lib.Multifit.Gradient(hj, hf, hg))
}

// LinearLreg fills reg with regularization parameters spaced
// logarithmically between smin and smax, ready for L-curve analysis.
func LinearLreg(smin, smax float64, reg *Vector) error {
	const op = "multifit.LinearLreg"
	lib := reg.Library()
	if lib.Multifit.LinearLreg == nil {
		return native.Missing(lib, op)
	}
	w, err := reg.Exclusive()
	if err != nil {
		return wrap(op, err)
	}
	defer w.Release()

	return gslerr.FromCode(lib.Multifit.LinearLreg(smin, smax, w.Handle()))
}

// corner runs both L-curve corner finders.
func corner(op string, fn func(a, b native.Handle, idx *int) native.Status, a, b *Vector) (int, error) {
	if err := vector.SameLibrary(a, b); err != nil {
		return 0, wrap(op, err)
	}
	if err := vector.ValidateSameLen(a, b); err != nil {
		return 0, wrap(op, err)
	}
	if fn == nil {
		return 0, native.Missing(a.Library(), op)
	}
	var s handle.Scope
	ha, hb := s.Shared(a.Owner()), s.Shared(b.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return 0, wrap(op, err)
	}
	var idx int

	return gslerr.Check(fn(ha, hb, &idx), idx)
}

// LinearLcorner returns the index of the L-curve corner from the residual
// norms rho and solution norms eta (maximum curvature of the curve).
func LinearLcorner(rho, eta *Vector) (int, error) {
	return corner("multifit.LinearLcorner", rho.Library().Multifit.LinearLcorner, rho, eta)
}

// LinearLcorner2 is LinearLcorner parameterized by the regularization
// parameters reg instead of the residual norms.
func LinearLcorner2(reg, eta *Vector) (int, error) {
	return corner("multifit.LinearLcorner2", reg.Library().Multifit.LinearLcorner2, reg, eta)
}

// LinearLk fills l, which must be (p-k)×p, with the finite-difference
// approximation of the k-th derivative operator.
func LinearLk(p, k int, l *Matrix) error {
	const op = "multifit.LinearLk"
	if k < 0 || p <= k {
		return fmt.Errorf("%s(%d, %d): p must exceed the derivative order: %w", op, p, k, gslerr.ErrBadLength)
	}
	if err := matrix.ValidateShape(l, p-k, p); err != nil {
		return wrap(op, err)
	}
	lib := l.Library()
	if lib.Multifit.LinearLk == nil {
		return native.Missing(lib, op)
	}
	w, err := l.Exclusive()
	if err != nil {
		return wrap(op, err)
	}
	defer w.Release()

	return gslerr.FromCode(lib.Multifit.LinearLk(p, k, w.Handle()))
}
