// SPDX-License-Identifier: MIT

//go:build cgo && gsl

package cgsl

/*
#include "cgsl.h"
*/
import "C"

import (
	"unsafe"

	"github.com/katalvlaran/lvgsl/native"
)

func poly() native.PolyABI {
	ws := func(h native.Handle) *C.gsl_poly_complex_workspace {
		return (*C.gsl_poly_complex_workspace)(unsafe.Pointer(h))
	}
	d := func(x *float64) *C.double { return (*C.double)(unsafe.Pointer(x)) }

	return native.PolyABI{
		Eval: func(c []float64, x float64) float64 {
			return float64(C.gsl_poly_eval(dp(c), C.int(len(c)), C.double(x)))
		},
		EvalDerivs: func(c []float64, x float64, res []float64) native.Status {
			return status(C.gsl_poly_eval_derivs(dp(c), sz(len(c)), C.double(x), dp(res), sz(len(res))))
		},
		SolveQuadratic: func(a, b, c float64, x0, x1 *float64) int {
			return int(C.gsl_poly_solve_quadratic(C.double(a), C.double(b), C.double(c), d(x0), d(x1)))
		},
		SolveCubic: func(a, b, c float64, x0, x1, x2 *float64) int {
			return int(C.gsl_poly_solve_cubic(C.double(a), C.double(b), C.double(c), d(x0), d(x1), d(x2)))
		},
		DDInit: func(dd, xa, ya []float64) native.Status {
			return status(C.gsl_poly_dd_init(dp(dd), dp(xa), dp(ya), sz(len(dd))))
		},
		DDEval: func(dd, xa []float64, x float64) float64 {
			return float64(C.gsl_poly_dd_eval(dp(dd), dp(xa), sz(len(dd)), C.double(x)))
		},
		DDTaylor: func(c []float64, xp float64, dd, xa, w []float64) native.Status {
			return status(C.gsl_poly_dd_taylor(dp(c), C.double(xp), dp(dd), dp(xa), sz(len(dd)), dp(w)))
		},
		ComplexWorkspaceAlloc: func(n int) native.Handle {
			return wrap(unsafe.Pointer(C.gsl_poly_complex_workspace_alloc(sz(n))))
		},
		ComplexWorkspaceFree: func(w native.Handle) { C.gsl_poly_complex_workspace_free(ws(w)) },
		ComplexSolve: func(a []float64, w native.Handle, z []float64) native.Status {
			return status(C.gsl_poly_complex_solve(dp(a), sz(len(a)), ws(w), C.gsl_complex_packed_ptr(dp(z))))
		},
	}
}
