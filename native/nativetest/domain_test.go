// SPDX-License-Identifier: MIT

package nativetest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/native/nativetest"
)

func TestSymmvSortedPairs(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()
	a := lib.MatrixF64.Alloc(2, 2)
	f.Store(a, []float64{2, 1, 1, 2})
	eval, evec := lib.VectorF64.Alloc(2), lib.MatrixF64.Alloc(2, 2)

	require.Zero(t, lib.Eigen.Symmv(a, eval, evec, native.Null))
	require.Zero(t, lib.Eigen.SymmvSort(eval, evec, 0)) // ascending by value

	vals := f.Data(eval)
	require.InDelta(t, 1, vals[0], 1e-12)
	require.InDelta(t, 3, vals[1], 1e-12)

	v := f.Data(evec) // column 0 pairs with λ=1: ±(1, -1)/√2
	require.InDelta(t, math.Sqrt2/2, math.Abs(v[0]), 1e-12)
	require.InDelta(t, math.Sqrt2/2, math.Abs(v[2]), 1e-12)
	require.Negative(t, v[0]*v[2])

	require.Equal(t, gslerr.ErrInvalid.Code(), lib.Eigen.SymmvSort(eval, evec, 7))
}

func TestConvergenceKernels(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()
	dx, x := lib.VectorF64.Alloc(1), lib.VectorF64.Alloc(1)
	f.Store(x, []float64{1})

	f.Store(dx, []float64{1e-9})
	require.Zero(t, lib.Multiroot.TestDelta(dx, x, 1e-6, 0))
	f.Store(dx, []float64{1})
	require.Equal(t, gslerr.ErrContinue.Code(), lib.Multifit.TestDelta(dx, x, 1e-6, 0))
	require.Equal(t, gslerr.ErrBadTolerance.Code(), lib.Multiroot.TestDelta(dx, x, 1e-6, -1))

	require.Equal(t, gslerr.ErrContinue.Code(), lib.Multiroot.TestResidual(dx, 0.5))
	require.Zero(t, lib.Multiroot.TestResidual(dx, 2))
}

func TestGradientIsJTransposeF(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()
	j, fv, g := lib.MatrixF64.Alloc(2, 1), lib.VectorF64.Alloc(2), lib.VectorF64.Alloc(1)
	f.Store(j, []float64{1, 2})
	f.Store(fv, []float64{3, 4})

	require.Zero(t, lib.Multifit.Gradient(j, fv, g))
	require.Equal(t, []float64{11}, f.Data(g))
}

func TestDividedDifferences(t *testing.T) {
	lib := nativetest.New().Library()
	xa, ya := []float64{0, 1, 2}, []float64{1, 2, 5} // 1 + x²
	dd := make([]float64, 3)

	require.Zero(t, lib.Poly.DDInit(dd, xa, ya))
	require.Equal(t, []float64{1, 1, 1}, dd)
	require.InDelta(t, 10, lib.Poly.DDEval(dd, xa, 3), 1e-12)
}

func TestSFErrorForms(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()
	var r native.SFResult

	require.Zero(t, lib.SF.ChooseE(5, 2, &r))
	require.Equal(t, 10.0, r.Val)

	require.Equal(t, gslerr.ErrOverFlow.Code(), lib.SF.FactE(171, &r))
	require.True(t, math.IsInf(r.Err, 1))

	var sgn float64
	require.Zero(t, lib.SF.LnGammaSgnE(-0.5, &r, &sgn))
	require.InDelta(t, math.Log(2*math.Sqrt(math.Pi)), r.Val, 1e-12)
	require.Equal(t, -1.0, sgn)

	require.Equal(t, gslerr.ErrDomain.Code(), lib.SF.LnGammaSgnE(-2, &r, &sgn))
	require.Zero(t, sgn)
	require.Equal(t, 4, f.Calls("sf.ChooseE")+f.Calls("sf.FactE")+f.Calls("sf.LnGammaSgnE"))
}
