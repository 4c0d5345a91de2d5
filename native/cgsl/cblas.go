// SPDX-License-Identifier: MIT

//go:build cgo && gsl

package cgsl

/*
#include "cgsl.h"
*/
import "C"

import "github.com/katalvlaran/lvgsl/native"

type ord = C.CBLAS_ORDER_t

func cblasF32() native.CBLASABI[float32] {
	return native.CBLASABI[float32]{
		Dot: func(n int, x []float32, incX int, y []float32, incY int) float32 {
			return float32(C.cblas_sdot(C.int(n), fp(x), C.int(incX), fp(y), C.int(incY)))
		},
		Nrm2: func(n int, x []float32, incX int) float32 { return float32(C.cblas_snrm2(C.int(n), fp(x), C.int(incX))) },
		Asum: func(n int, x []float32, incX int) float32 { return float32(C.cblas_sasum(C.int(n), fp(x), C.int(incX))) },
		Iamax: func(n int, x []float32, incX int) int {
			return int(C.cblas_isamax(C.int(n), fp(x), C.int(incX)))
		},
		Swap: func(n int, x []float32, incX int, y []float32, incY int) {
			C.cblas_sswap(C.int(n), fp(x), C.int(incX), fp(y), C.int(incY))
		},
		Copy: func(n int, x []float32, incX int, y []float32, incY int) {
			C.cblas_scopy(C.int(n), fp(x), C.int(incX), fp(y), C.int(incY))
		},
		Axpy: func(n int, alpha float32, x []float32, incX int, y []float32, incY int) {
			C.cblas_saxpy(C.int(n), C.float(alpha), fp(x), C.int(incX), fp(y), C.int(incY))
		},
		Scal: func(n int, alpha float32, x []float32, incX int) { C.cblas_sscal(C.int(n), C.float(alpha), fp(x), C.int(incX)) },
		Gemv: func(o, tA int32, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
			C.cblas_sgemv(ord(o), trans(tA), C.int(m), C.int(n), C.float(alpha), fp(a), C.int(lda), fp(x), C.int(incX), C.float(beta), fp(y), C.int(incY))
		},
		Trmv: func(o, ul, tA, dg int32, n int, a []float32, lda int, x []float32, incX int) {
			C.cblas_strmv(ord(o), uplo(ul), trans(tA), diag(dg), C.int(n), fp(a), C.int(lda), fp(x), C.int(incX))
		},
		Trsv: func(o, ul, tA, dg int32, n int, a []float32, lda int, x []float32, incX int) {
			C.cblas_strsv(ord(o), uplo(ul), trans(tA), diag(dg), C.int(n), fp(a), C.int(lda), fp(x), C.int(incX))
		},
		Symv: func(o, ul int32, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
			C.cblas_ssymv(ord(o), uplo(ul), C.int(n), C.float(alpha), fp(a), C.int(lda), fp(x), C.int(incX), C.float(beta), fp(y), C.int(incY))
		},
		Ger: func(o int32, m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
			C.cblas_sger(ord(o), C.int(m), C.int(n), C.float(alpha), fp(x), C.int(incX), fp(y), C.int(incY), fp(a), C.int(lda))
		},
		Syr: func(o, ul int32, n int, alpha float32, x []float32, incX int, a []float32, lda int) {
			C.cblas_ssyr(ord(o), uplo(ul), C.int(n), C.float(alpha), fp(x), C.int(incX), fp(a), C.int(lda))
		},
		Syr2: func(o, ul int32, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
			C.cblas_ssyr2(ord(o), uplo(ul), C.int(n), C.float(alpha), fp(x), C.int(incX), fp(y), C.int(incY), fp(a), C.int(lda))
		},

		Gemm: func(o, tA, tB int32, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
			C.cblas_sgemm(ord(o), trans(tA), trans(tB), C.int(m), C.int(n), C.int(k),
				C.float(alpha), fp(a), C.int(lda), fp(b), C.int(ldb), C.float(beta), fp(c), C.int(ldc))
		},
		Symm: func(o, sd, ul int32, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
			C.cblas_ssymm(ord(o), side(sd), uplo(ul), C.int(m), C.int(n),
				C.float(alpha), fp(a), C.int(lda), fp(b), C.int(ldb), C.float(beta), fp(c), C.int(ldc))
		},
		Syrk: func(o, ul, tr int32, n, k int, alpha float32, a []float32, lda int, beta float32, c []float32, ldc int) {
			C.cblas_ssyrk(ord(o), uplo(ul), trans(tr), C.int(n), C.int(k),
				C.float(alpha), fp(a), C.int(lda), C.float(beta), fp(c), C.int(ldc))
		},
		Syr2k: func(o, ul, tr int32, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
			C.cblas_ssyr2k(ord(o), uplo(ul), trans(tr), C.int(n), C.int(k),
				C.float(alpha), fp(a), C.int(lda), fp(b), C.int(ldb), C.float(beta), fp(c), C.int(ldc))
		},
		Trmm: func(o, sd, ul, tA, dg int32, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int) {
			C.cblas_strmm(ord(o), side(sd), uplo(ul), trans(tA), diag(dg), C.int(m), C.int(n),
				C.float(alpha), fp(a), C.int(lda), fp(b), C.int(ldb))
		},
		Trsm: func(o, sd, ul, tA, dg int32, m, n int, alpha float32, a []float32, lda int, b []float32, ldb int) {
			C.cblas_strsm(ord(o), side(sd), uplo(ul), trans(tA), diag(dg), C.int(m), C.int(n),
				C.float(alpha), fp(a), C.int(lda), fp(b), C.int(ldb))
		},
	}
}

func cblasF64() native.CBLASABI[float64] {
	return native.CBLASABI[float64]{
		Dot: func(n int, x []float64, incX int, y []float64, incY int) float64 {
			return float64(C.cblas_ddot(C.int(n), dp(x), C.int(incX), dp(y), C.int(incY)))
		},
		Nrm2: func(n int, x []float64, incX int) float64 { return float64(C.cblas_dnrm2(C.int(n), dp(x), C.int(incX))) },
		Asum: func(n int, x []float64, incX int) float64 { return float64(C.cblas_dasum(C.int(n), dp(x), C.int(incX))) },
		Iamax: func(n int, x []float64, incX int) int {
			return int(C.cblas_idamax(C.int(n), dp(x), C.int(incX)))
		},
		Swap: func(n int, x []float64, incX int, y []float64, incY int) {
			C.cblas_dswap(C.int(n), dp(x), C.int(incX), dp(y), C.int(incY))
		},
		Copy: func(n int, x []float64, incX int, y []float64, incY int) {
			C.cblas_dcopy(C.int(n), dp(x), C.int(incX), dp(y), C.int(incY))
		},
		Axpy: func(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
			C.cblas_daxpy(C.int(n), C.double(alpha), dp(x), C.int(incX), dp(y), C.int(incY))
		},
		Scal: func(n int, alpha float64, x []float64, incX int) { C.cblas_dscal(C.int(n), C.double(alpha), dp(x), C.int(incX)) },
		Gemv: func(o, tA int32, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
			C.cblas_dgemv(ord(o), trans(tA), C.int(m), C.int(n), C.double(alpha), dp(a), C.int(lda), dp(x), C.int(incX), C.double(beta), dp(y), C.int(incY))
		},
		Trmv: func(o, ul, tA, dg int32, n int, a []float64, lda int, x []float64, incX int) {
			C.cblas_dtrmv(ord(o), uplo(ul), trans(tA), diag(dg), C.int(n), dp(a), C.int(lda), dp(x), C.int(incX))
		},
		Trsv: func(o, ul, tA, dg int32, n int, a []float64, lda int, x []float64, incX int) {
			C.cblas_dtrsv(ord(o), uplo(ul), trans(tA), diag(dg), C.int(n), dp(a), C.int(lda), dp(x), C.int(incX))
		},
		Symv: func(o, ul int32, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
			C.cblas_dsymv(ord(o), uplo(ul), C.int(n), C.double(alpha), dp(a), C.int(lda), dp(x), C.int(incX), C.double(beta), dp(y), C.int(incY))
		},
		Ger: func(o int32, m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
			C.cblas_dger(ord(o), C.int(m), C.int(n), C.double(alpha), dp(x), C.int(incX), dp(y), C.int(incY), dp(a), C.int(lda))
		},
		Syr: func(o, ul int32, n int, alpha float64, x []float64, incX int, a []float64, lda int) {
			C.cblas_dsyr(ord(o), uplo(ul), C.int(n), C.double(alpha), dp(x), C.int(incX), dp(a), C.int(lda))
		},
		Syr2: func(o, ul int32, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
			C.cblas_dsyr2(ord(o), uplo(ul), C.int(n), C.double(alpha), dp(x), C.int(incX), dp(y), C.int(incY), dp(a), C.int(lda))
		},

		Gemm: func(o, tA, tB int32, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
			C.cblas_dgemm(ord(o), trans(tA), trans(tB), C.int(m), C.int(n), C.int(k),
				C.double(alpha), dp(a), C.int(lda), dp(b), C.int(ldb), C.double(beta), dp(c), C.int(ldc))
		},
		Symm: func(o, sd, ul int32, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
			C.cblas_dsymm(ord(o), side(sd), uplo(ul), C.int(m), C.int(n),
				C.double(alpha), dp(a), C.int(lda), dp(b), C.int(ldb), C.double(beta), dp(c), C.int(ldc))
		},
		Syrk: func(o, ul, tr int32, n, k int, alpha float64, a []float64, lda int, beta float64, c []float64, ldc int) {
			C.cblas_dsyrk(ord(o), uplo(ul), trans(tr), C.int(n), C.int(k),
				C.double(alpha), dp(a), C.int(lda), C.double(beta), dp(c), C.int(ldc))
		},
		Syr2k: func(o, ul, tr int32, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
			C.cblas_dsyr2k(ord(o), uplo(ul), trans(tr), C.int(n), C.int(k),
				C.double(alpha), dp(a), C.int(lda), dp(b), C.int(ldb), C.double(beta), dp(c), C.int(ldc))
		},
		Trmm: func(o, sd, ul, tA, dg int32, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) {
			C.cblas_dtrmm(ord(o), side(sd), uplo(ul), trans(tA), diag(dg), C.int(m), C.int(n),
				C.double(alpha), dp(a), C.int(lda), dp(b), C.int(ldb))
		},
		Trsm: func(o, sd, ul, tA, dg int32, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) {
			C.cblas_dtrsm(ord(o), side(sd), uplo(ul), trans(tA), diag(dg), C.int(m), C.int(n),
				C.double(alpha), dp(a), C.int(lda), dp(b), C.int(ldb))
		},
	}
}
