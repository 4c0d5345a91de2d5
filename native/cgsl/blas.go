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

type (
	trans = C.CBLAS_TRANSPOSE_t
	uplo  = C.CBLAS_UPLO_t
	diag  = C.CBLAS_DIAG_t
	side  = C.CBLAS_SIDE_t
)

func blasF32() native.BLASABI[float32] {
	return native.BLASABI[float32]{
		Dot: func(x, y native.Handle, r *float32) native.Status {
			return status(C.gsl_blas_sdot(fv(x), fv(y), (*C.float)(unsafe.Pointer(r))))
		},
		Nrm2:  func(x native.Handle) float32 { return float32(C.gsl_blas_snrm2(fv(x))) },
		Asum:  func(x native.Handle) float32 { return float32(C.gsl_blas_sasum(fv(x))) },
		Iamax: func(x native.Handle) int { return int(C.gsl_blas_isamax(fv(x))) },
		Swap:  func(x, y native.Handle) native.Status { return status(C.gsl_blas_sswap(fv(x), fv(y))) },
		Copy:  func(x, y native.Handle) native.Status { return status(C.gsl_blas_scopy(fv(x), fv(y))) },
		Axpy: func(alpha float32, x, y native.Handle) native.Status {
			return status(C.gsl_blas_saxpy(C.float(alpha), fv(x), fv(y)))
		},
		Scal: func(alpha float32, x native.Handle) { C.gsl_blas_sscal(C.float(alpha), fv(x)) },
		Rotg: func(a, b, c, s *float32) native.Status {
			return status(C.gsl_blas_srotg((*C.float)(unsafe.Pointer(a)), (*C.float)(unsafe.Pointer(b)),
				(*C.float)(unsafe.Pointer(c)), (*C.float)(unsafe.Pointer(s))))
		},
		Rot: func(x, y native.Handle, c, s float32) native.Status {
			return status(C.gsl_blas_srot(fv(x), fv(y), C.float(c), C.float(s)))
		},
		Rotmg: func(d1, d2, b1 *float32, b2 float32, p *[5]float32) native.Status {
			return status(C.gsl_blas_srotmg((*C.float)(unsafe.Pointer(d1)), (*C.float)(unsafe.Pointer(d2)),
				(*C.float)(unsafe.Pointer(b1)), C.float(b2), (*C.float)(unsafe.Pointer(&p[0]))))
		},
		Rotm: func(x, y native.Handle, p *[5]float32) native.Status {
			return status(C.gsl_blas_srotm(fv(x), fv(y), (*C.float)(unsafe.Pointer(&p[0]))))
		},

		Gemv: func(tA int32, alpha float32, a, x native.Handle, beta float32, y native.Handle) native.Status {
			return status(C.gsl_blas_sgemv(trans(tA), C.float(alpha), fm(a), fv(x), C.float(beta), fv(y)))
		},
		Trmv: func(ul, tA, dg int32, a, x native.Handle) native.Status {
			return status(C.gsl_blas_strmv(uplo(ul), trans(tA), diag(dg), fm(a), fv(x)))
		},
		Trsv: func(ul, tA, dg int32, a, x native.Handle) native.Status {
			return status(C.gsl_blas_strsv(uplo(ul), trans(tA), diag(dg), fm(a), fv(x)))
		},
		Symv: func(ul int32, alpha float32, a, x native.Handle, beta float32, y native.Handle) native.Status {
			return status(C.gsl_blas_ssymv(uplo(ul), C.float(alpha), fm(a), fv(x), C.float(beta), fv(y)))
		},
		Ger: func(alpha float32, x, y, a native.Handle) native.Status {
			return status(C.gsl_blas_sger(C.float(alpha), fv(x), fv(y), fm(a)))
		},
		Syr: func(ul int32, alpha float32, x, a native.Handle) native.Status {
			return status(C.gsl_blas_ssyr(uplo(ul), C.float(alpha), fv(x), fm(a)))
		},
		Syr2: func(ul int32, alpha float32, x, y, a native.Handle) native.Status {
			return status(C.gsl_blas_ssyr2(uplo(ul), C.float(alpha), fv(x), fv(y), fm(a)))
		},

		Gemm: func(tA, tB int32, alpha float32, a, b native.Handle, beta float32, c native.Handle) native.Status {
			return status(C.gsl_blas_sgemm(trans(tA), trans(tB), C.float(alpha), fm(a), fm(b), C.float(beta), fm(c)))
		},
		Symm: func(sd, ul int32, alpha float32, a, b native.Handle, beta float32, c native.Handle) native.Status {
			return status(C.gsl_blas_ssymm(side(sd), uplo(ul), C.float(alpha), fm(a), fm(b), C.float(beta), fm(c)))
		},
		Trmm: func(sd, ul, tA, dg int32, alpha float32, a, b native.Handle) native.Status {
			return status(C.gsl_blas_strmm(side(sd), uplo(ul), trans(tA), diag(dg), C.float(alpha), fm(a), fm(b)))
		},
		Trsm: func(sd, ul, tA, dg int32, alpha float32, a, b native.Handle) native.Status {
			return status(C.gsl_blas_strsm(side(sd), uplo(ul), trans(tA), diag(dg), C.float(alpha), fm(a), fm(b)))
		},
		Syrk: func(ul, tr int32, alpha float32, a native.Handle, beta float32, c native.Handle) native.Status {
			return status(C.gsl_blas_ssyrk(uplo(ul), trans(tr), C.float(alpha), fm(a), C.float(beta), fm(c)))
		},
		Syr2k: func(ul, tr int32, alpha float32, a, b native.Handle, beta float32, c native.Handle) native.Status {
			return status(C.gsl_blas_ssyr2k(uplo(ul), trans(tr), C.float(alpha), fm(a), fm(b), C.float(beta), fm(c)))
		},
	}
}

func blasF64() native.BLASABI[float64] {
	return native.BLASABI[float64]{
		Dot: func(x, y native.Handle, r *float64) native.Status {
			return status(C.gsl_blas_ddot(dv(x), dv(y), (*C.double)(unsafe.Pointer(r))))
		},
		Nrm2:  func(x native.Handle) float64 { return float64(C.gsl_blas_dnrm2(dv(x))) },
		Asum:  func(x native.Handle) float64 { return float64(C.gsl_blas_dasum(dv(x))) },
		Iamax: func(x native.Handle) int { return int(C.gsl_blas_idamax(dv(x))) },
		Swap:  func(x, y native.Handle) native.Status { return status(C.gsl_blas_dswap(dv(x), dv(y))) },
		Copy:  func(x, y native.Handle) native.Status { return status(C.gsl_blas_dcopy(dv(x), dv(y))) },
		Axpy: func(alpha float64, x, y native.Handle) native.Status {
			return status(C.gsl_blas_daxpy(C.double(alpha), dv(x), dv(y)))
		},
		Scal: func(alpha float64, x native.Handle) { C.gsl_blas_dscal(C.double(alpha), dv(x)) },
		Rotg: func(a, b, c, s *float64) native.Status {
			return status(C.gsl_blas_drotg((*C.double)(unsafe.Pointer(a)), (*C.double)(unsafe.Pointer(b)),
				(*C.double)(unsafe.Pointer(c)), (*C.double)(unsafe.Pointer(s))))
		},
		Rot: func(x, y native.Handle, c, s float64) native.Status {
			return status(C.gsl_blas_drot(dv(x), dv(y), C.double(c), C.double(s)))
		},
		Rotmg: func(d1, d2, b1 *float64, b2 float64, p *[5]float64) native.Status {
			return status(C.gsl_blas_drotmg((*C.double)(unsafe.Pointer(d1)), (*C.double)(unsafe.Pointer(d2)),
				(*C.double)(unsafe.Pointer(b1)), C.double(b2), (*C.double)(unsafe.Pointer(&p[0]))))
		},
		Rotm: func(x, y native.Handle, p *[5]float64) native.Status {
			return status(C.gsl_blas_drotm(dv(x), dv(y), (*C.double)(unsafe.Pointer(&p[0]))))
		},

		Gemv: func(tA int32, alpha float64, a, x native.Handle, beta float64, y native.Handle) native.Status {
			return status(C.gsl_blas_dgemv(trans(tA), C.double(alpha), dm(a), dv(x), C.double(beta), dv(y)))
		},
		Trmv: func(ul, tA, dg int32, a, x native.Handle) native.Status {
			return status(C.gsl_blas_dtrmv(uplo(ul), trans(tA), diag(dg), dm(a), dv(x)))
		},
		Trsv: func(ul, tA, dg int32, a, x native.Handle) native.Status {
			return status(C.gsl_blas_dtrsv(uplo(ul), trans(tA), diag(dg), dm(a), dv(x)))
		},
		Symv: func(ul int32, alpha float64, a, x native.Handle, beta float64, y native.Handle) native.Status {
			return status(C.gsl_blas_dsymv(uplo(ul), C.double(alpha), dm(a), dv(x), C.double(beta), dv(y)))
		},
		Ger: func(alpha float64, x, y, a native.Handle) native.Status {
			return status(C.gsl_blas_dger(C.double(alpha), dv(x), dv(y), dm(a)))
		},
		Syr: func(ul int32, alpha float64, x, a native.Handle) native.Status {
			return status(C.gsl_blas_dsyr(uplo(ul), C.double(alpha), dv(x), dm(a)))
		},
		Syr2: func(ul int32, alpha float64, x, y, a native.Handle) native.Status {
			return status(C.gsl_blas_dsyr2(uplo(ul), C.double(alpha), dv(x), dv(y), dm(a)))
		},

		Gemm: func(tA, tB int32, alpha float64, a, b native.Handle, beta float64, c native.Handle) native.Status {
			return status(C.gsl_blas_dgemm(trans(tA), trans(tB), C.double(alpha), dm(a), dm(b), C.double(beta), dm(c)))
		},
		Symm: func(sd, ul int32, alpha float64, a, b native.Handle, beta float64, c native.Handle) native.Status {
			return status(C.gsl_blas_dsymm(side(sd), uplo(ul), C.double(alpha), dm(a), dm(b), C.double(beta), dm(c)))
		},
		Trmm: func(sd, ul, tA, dg int32, alpha float64, a, b native.Handle) native.Status {
			return status(C.gsl_blas_dtrmm(side(sd), uplo(ul), trans(tA), diag(dg), C.double(alpha), dm(a), dm(b)))
		},
		Trsm: func(sd, ul, tA, dg int32, alpha float64, a, b native.Handle) native.Status {
			return status(C.gsl_blas_dtrsm(side(sd), uplo(ul), trans(tA), diag(dg), C.double(alpha), dm(a), dm(b)))
		},
		Syrk: func(ul, tr int32, alpha float64, a native.Handle, beta float64, c native.Handle) native.Status {
			return status(C.gsl_blas_dsyrk(uplo(ul), trans(tr), C.double(alpha), dm(a), C.double(beta), dm(c)))
		},
		Syr2k: func(ul, tr int32, alpha float64, a, b native.Handle, beta float64, c native.Handle) native.Status {
			return status(C.gsl_blas_dsyr2k(uplo(ul), trans(tr), C.double(alpha), dm(a), dm(b), C.double(beta), dm(c)))
		},
	}
}

func mixed() native.MixedBLASABI {
	return native.MixedBLASABI{
		SDSDot: func(alpha float32, x, y native.Handle, r *float32) native.Status {
			return status(C.gsl_blas_sdsdot(C.float(alpha), fv(x), fv(y), (*C.float)(unsafe.Pointer(r))))
		},
		DSDot: func(x, y native.Handle, r *float64) native.Status {
			return status(C.gsl_blas_dsdot(fv(x), fv(y), (*C.double)(unsafe.Pointer(r))))
		},
	}
}
