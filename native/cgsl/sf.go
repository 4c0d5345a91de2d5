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

type sfResult = *native.SFResult

func sf() native.SFABI {
	return native.SFABI{
		Gamma:    func(x float64) float64 { return float64(C.gsl_sf_gamma(C.double(x))) },
		GammaE:   func(x float64, r sfResult) native.Status { return status(C.gsl_sf_gamma_e(C.double(x), result(r))) },
		LnGamma:  func(x float64) float64 { return float64(C.gsl_sf_lngamma(C.double(x))) },
		LnGammaE: func(x float64, r sfResult) native.Status { return status(C.gsl_sf_lngamma_e(C.double(x), result(r))) },
		LnGammaSgnE: func(x float64, r sfResult, sgn *float64) native.Status {
			return status(C.gsl_sf_lngamma_sgn_e(C.double(x), result(r), (*C.double)(unsafe.Pointer(sgn))))
		},
		Beta: func(a, b float64) float64 { return float64(C.gsl_sf_beta(C.double(a), C.double(b))) },
		BetaE: func(a, b float64, r sfResult) native.Status {
			return status(C.gsl_sf_beta_e(C.double(a), C.double(b), result(r)))
		},
		LnBeta: func(a, b float64) float64 { return float64(C.gsl_sf_lnbeta(C.double(a), C.double(b))) },
		LnBetaE: func(a, b float64, r sfResult) native.Status {
			return status(C.gsl_sf_lnbeta_e(C.double(a), C.double(b), result(r)))
		},
		Fact:   func(n uint32) float64 { return float64(C.gsl_sf_fact(C.uint(n))) },
		FactE:  func(n uint32, r sfResult) native.Status { return status(C.gsl_sf_fact_e(C.uint(n), result(r))) },
		Choose: func(n, m uint32) float64 { return float64(C.gsl_sf_choose(C.uint(n), C.uint(m))) },
		ChooseE: func(n, m uint32, r sfResult) native.Status {
			return status(C.gsl_sf_choose_e(C.uint(n), C.uint(m), result(r)))
		},
		PowInt: func(x float64, n int32) float64 { return float64(C.gsl_sf_pow_int(C.double(x), C.int(n))) },
		PowIntE: func(x float64, n int32, r sfResult) native.Status {
			return status(C.gsl_sf_pow_int_e(C.double(x), C.int(n), result(r)))
		},
		AiryAi: func(x float64, mode int32) float64 {
			return float64(C.gsl_sf_airy_Ai(C.double(x), C.gsl_mode_t(mode)))
		},
		AiryAiE: func(x float64, mode int32, r sfResult) native.Status {
			return status(C.gsl_sf_airy_Ai_e(C.double(x), C.gsl_mode_t(mode), result(r)))
		},
		BesselJ0: func(x float64) float64 { return float64(C.gsl_sf_bessel_J0(C.double(x))) },
		BesselJ0E: func(x float64, r sfResult) native.Status {
			return status(C.gsl_sf_bessel_J0_e(C.double(x), result(r)))
		},
		BesselJn: func(n int32, x float64) float64 { return float64(C.gsl_sf_bessel_Jn(C.int(n), C.double(x))) },
		BesselJnE: func(n int32, x float64, r sfResult) native.Status {
			return status(C.gsl_sf_bessel_Jn_e(C.int(n), C.double(x), result(r)))
		},
		Clausen: func(x float64) float64 { return float64(C.gsl_sf_clausen(C.double(x))) },
		ClausenE: func(x float64, r sfResult) native.Status {
			return status(C.gsl_sf_clausen_e(C.double(x), result(r)))
		},
	}
}

func mathieu() native.MathieuABI {
	ws := func(h native.Handle) *C.gsl_sf_mathieu_workspace {
		return (*C.gsl_sf_mathieu_workspace)(unsafe.Pointer(h))
	}

	return native.MathieuABI{
		Alloc: func(n int, qmax float64) native.Handle {
			return wrap(unsafe.Pointer(C.gsl_sf_mathieu_alloc(sz(n), C.double(qmax))))
		},
		Free: func(w native.Handle) { C.gsl_sf_mathieu_free(ws(w)) },
		AE: func(n int32, q float64, r sfResult) native.Status {
			return status(C.gsl_sf_mathieu_a_e(C.int(n), C.double(q), result(r)))
		},
		BE: func(n int32, q float64, r sfResult) native.Status {
			return status(C.gsl_sf_mathieu_b_e(C.int(n), C.double(q), result(r)))
		},
		CeE: func(n int32, q, x float64, r sfResult) native.Status {
			return status(C.gsl_sf_mathieu_ce_e(C.int(n), C.double(q), C.double(x), result(r)))
		},
		SeE: func(n int32, q, x float64, r sfResult) native.Status {
			return status(C.gsl_sf_mathieu_se_e(C.int(n), C.double(q), C.double(x), result(r)))
		},
		AArray: func(lo, hi int32, q float64, w native.Handle, out []float64) native.Status {
			return status(C.gsl_sf_mathieu_a_array(C.int(lo), C.int(hi), C.double(q), ws(w), dp(out)))
		},
		BArray: func(lo, hi int32, q float64, w native.Handle, out []float64) native.Status {
			return status(C.gsl_sf_mathieu_b_array(C.int(lo), C.int(hi), C.double(q), ws(w), dp(out)))
		},
		CeArray: func(lo, hi int32, q, x float64, w native.Handle, out []float64) native.Status {
			return status(C.gsl_sf_mathieu_ce_array(C.int(lo), C.int(hi), C.double(q), C.double(x), ws(w), dp(out)))
		},
		SeArray: func(lo, hi int32, q, x float64, w native.Handle, out []float64) native.Status {
			return status(C.gsl_sf_mathieu_se_array(C.int(lo), C.int(hi), C.double(q), C.double(x), ws(w), dp(out)))
		},
	}
}
