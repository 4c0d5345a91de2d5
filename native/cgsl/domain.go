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

func eigen() native.EigenABI {
	symm := func(h native.Handle) *C.gsl_eigen_symm_workspace {
		return (*C.gsl_eigen_symm_workspace)(unsafe.Pointer(h))
	}
	symmv := func(h native.Handle) *C.gsl_eigen_symmv_workspace {
		return (*C.gsl_eigen_symmv_workspace)(unsafe.Pointer(h))
	}

	return native.EigenABI{
		SymmAlloc: func(n int) native.Handle { return wrap(unsafe.Pointer(C.gsl_eigen_symm_alloc(sz(n)))) },
		SymmFree:  func(w native.Handle) { C.gsl_eigen_symm_free(symm(w)) },
		Symm: func(a, eval, w native.Handle) native.Status {
			return status(C.gsl_eigen_symm(dm(a), dv(eval), symm(w)))
		},
		SymmvAlloc: func(n int) native.Handle { return wrap(unsafe.Pointer(C.gsl_eigen_symmv_alloc(sz(n)))) },
		SymmvFree:  func(w native.Handle) { C.gsl_eigen_symmv_free(symmv(w)) },
		Symmv: func(a, eval, evec, w native.Handle) native.Status {
			return status(C.gsl_eigen_symmv(dm(a), dv(eval), dm(evec), symmv(w)))
		},
		SymmvSort: func(eval, evec native.Handle, order int32) native.Status {
			return status(C.gsl_eigen_symmv_sort(dv(eval), dm(evec), C.gsl_eigen_sort_t(order)))
		},
		GensymmvSort: func(eval, evec native.Handle, order int32) native.Status {
			return status(C.gsl_eigen_gensymmv_sort(dv(eval), dm(evec), C.gsl_eigen_sort_t(order)))
		},
	}
}

func filter() native.FilterABI {
	gauss := func(h native.Handle) *C.gsl_filter_gaussian_workspace {
		return (*C.gsl_filter_gaussian_workspace)(unsafe.Pointer(h))
	}
	median := func(h native.Handle) *C.gsl_filter_median_workspace {
		return (*C.gsl_filter_median_workspace)(unsafe.Pointer(h))
	}
	rmedian := func(h native.Handle) *C.gsl_filter_rmedian_workspace {
		return (*C.gsl_filter_rmedian_workspace)(unsafe.Pointer(h))
	}
	impulse := func(h native.Handle) *C.gsl_filter_impulse_workspace {
		return (*C.gsl_filter_impulse_workspace)(unsafe.Pointer(h))
	}
	end := func(e int32) C.gsl_filter_end_t { return C.gsl_filter_end_t(e) }

	return native.FilterABI{
		GaussianAlloc: func(k int) native.Handle { return wrap(unsafe.Pointer(C.gsl_filter_gaussian_alloc(sz(k)))) },
		GaussianFree:  func(w native.Handle) { C.gsl_filter_gaussian_free(gauss(w)) },
		Gaussian: func(e int32, alpha float64, order int, x, y, w native.Handle) native.Status {
			return status(C.gsl_filter_gaussian(end(e), C.double(alpha), sz(order), dv(x), dv(y), gauss(w)))
		},
		MedianAlloc: func(k int) native.Handle { return wrap(unsafe.Pointer(C.gsl_filter_median_alloc(sz(k)))) },
		MedianFree:  func(w native.Handle) { C.gsl_filter_median_free(median(w)) },
		Median: func(e int32, x, y, w native.Handle) native.Status {
			return status(C.gsl_filter_median(end(e), dv(x), dv(y), median(w)))
		},
		RMedianAlloc: func(k int) native.Handle { return wrap(unsafe.Pointer(C.gsl_filter_rmedian_alloc(sz(k)))) },
		RMedianFree:  func(w native.Handle) { C.gsl_filter_rmedian_free(rmedian(w)) },
		RMedian: func(e int32, x, y, w native.Handle) native.Status {
			return status(C.gsl_filter_rmedian(end(e), dv(x), dv(y), rmedian(w)))
		},
		ImpulseAlloc: func(k int) native.Handle { return wrap(unsafe.Pointer(C.gsl_filter_impulse_alloc(sz(k)))) },
		ImpulseFree:  func(w native.Handle) { C.gsl_filter_impulse_free(impulse(w)) },
		Impulse: func(e, scale int32, t float64, x, y, xmedian, xsigma native.Handle, noutlier *int,
			ioutlier, w native.Handle) native.Status {
			var n C.size_t
			code := C.gsl_filter_impulse(end(e), C.gsl_filter_scale_t(scale), C.double(t),
				dv(x), dv(y), dv(xmedian), dv(xsigma), &n, iv(ioutlier), impulse(w))
			*noutlier = int(n)
			return status(code)
		},
	}
}

func multifit() native.MultifitABI {
	index := func(call func(*C.size_t) C.int, idx *int) native.Status {
		var i C.size_t
		code := call(&i)
		*idx = int(i)
		return status(code)
	}

	return native.MultifitABI{
		Covar: func(j native.Handle, epsrel float64, covar native.Handle) native.Status {
			return status(C.gsl_multifit_covar(dm(j), C.double(epsrel), dm(covar)))
		},
		TestDelta: func(dx, x native.Handle, epsabs, epsrel float64) native.Status {
			return status(C.gsl_multifit_test_delta(dv(dx), dv(x), C.double(epsabs), C.double(epsrel)))
		},
		Gradient: func(j, f, g native.Handle) native.Status {
			return status(C.gsl_multifit_gradient(dm(j), dv(f), dv(g)))
		},
		LinearLreg: func(smin, smax float64, reg native.Handle) native.Status {
			return status(C.gsl_multifit_linear_lreg(C.double(smin), C.double(smax), dv(reg)))
		},
		LinearLcorner: func(rho, eta native.Handle, idx *int) native.Status {
			return index(func(i *C.size_t) C.int { return C.gsl_multifit_linear_lcorner(dv(rho), dv(eta), i) }, idx)
		},
		LinearLcorner2: func(reg, eta native.Handle, idx *int) native.Status {
			return index(func(i *C.size_t) C.int { return C.gsl_multifit_linear_lcorner2(dv(reg), dv(eta), i) }, idx)
		},
		LinearLk: func(p, k int, l native.Handle) native.Status {
			return status(C.gsl_multifit_linear_Lk(sz(p), sz(k), dm(l)))
		},
	}
}

func multiroot() native.MultirootABI {
	return native.MultirootABI{
		TestDelta: func(dx, x native.Handle, epsabs, epsrel float64) native.Status {
			return status(C.gsl_multiroot_test_delta(dv(dx), dv(x), C.double(epsabs), C.double(epsrel)))
		},
		TestResidual: func(f native.Handle, epsabs float64) native.Status {
			return status(C.gsl_multiroot_test_residual(dv(f), C.double(epsabs)))
		},
	}
}
