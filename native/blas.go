// SPDX-License-Identifier: MIT

package native

// BLASABI is the gsl_blas_* family for one element type. Argument order is the
// native declaration order; enum arguments are CBLAS integer constants.
type BLASABI[T Float] struct {
	// Level 1
	Dot   func(x, y Handle, result *T) Status
	Nrm2  func(x Handle) T
	Asum  func(x Handle) T
	Iamax func(x Handle) int
	Swap  func(x, y Handle) Status
	Copy  func(x, y Handle) Status
	Axpy  func(alpha T, x, y Handle) Status
	Scal  func(alpha T, x Handle)
	Rotg  func(a, b, c, s *T) Status
	Rot   func(x, y Handle, c, s T) Status
	Rotmg func(d1, d2, b1 *T, b2 T, p *[5]T) Status
	Rotm  func(x, y Handle, p *[5]T) Status

	// Level 2
	Gemv func(transA int32, alpha T, a, x Handle, beta T, y Handle) Status
	Trmv func(uplo, transA, diag int32, a, x Handle) Status
	Trsv func(uplo, transA, diag int32, a, x Handle) Status
	Symv func(uplo int32, alpha T, a, x Handle, beta T, y Handle) Status
	Ger  func(alpha T, x, y, a Handle) Status
	Syr  func(uplo int32, alpha T, x, a Handle) Status
	Syr2 func(uplo int32, alpha T, x, y, a Handle) Status

	// Level 3
	Gemm  func(transA, transB int32, alpha T, a, b Handle, beta T, c Handle) Status
	Symm  func(side, uplo int32, alpha T, a, b Handle, beta T, c Handle) Status
	Trmm  func(side, uplo, transA, diag int32, alpha T, a, b Handle) Status
	Trsm  func(side, uplo, transA, diag int32, alpha T, a, b Handle) Status
	Syrk  func(uplo, trans int32, alpha T, a Handle, beta T, c Handle) Status
	Syr2k func(uplo, trans int32, alpha T, a, b Handle, beta T, c Handle) Status
}

// MixedBLASABI holds the routines that cross precisions.
type MixedBLASABI struct {
	SDSDot func(alpha float32, x, y Handle, result *float32) Status // gsl_blas_sdsdot
	DSDot  func(x, y Handle, result *float64) Status                // gsl_blas_dsdot
}

// BLASFor selects the BLAS table of lib matching T.
func BLASFor[T Float](lib *Library) *BLASABI[T] {
	var p any
	switch any(*new(T)).(type) {
	case float32:
		p = &lib.BLASF32
	case float64:
		p = &lib.BLASF64
	}

	return p.(*BLASABI[T])
}

// CBLASABI is the raw cblas_* family over strided Go slices.
// n is the logical element count; inc* are strides in elements. Matrices are
// a slice plus a leading dimension ld* in the storage order given by order.
type CBLASABI[T Float] struct {
	// Level 1
	Dot   func(n int, x []T, incX int, y []T, incY int) T
	Nrm2  func(n int, x []T, incX int) T
	Asum  func(n int, x []T, incX int) T
	Iamax func(n int, x []T, incX int) int
	Swap  func(n int, x []T, incX int, y []T, incY int)
	Copy  func(n int, x []T, incX int, y []T, incY int)
	Axpy  func(n int, alpha T, x []T, incX int, y []T, incY int)
	Scal  func(n int, alpha T, x []T, incX int)

	// Level 2
	Gemv func(order, transA int32, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)
	Trmv func(order, uplo, transA, diag int32, n int, a []T, lda int, x []T, incX int)
	Trsv func(order, uplo, transA, diag int32, n int, a []T, lda int, x []T, incX int)
	Symv func(order, uplo int32, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)
	Ger  func(order int32, m, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int)
	Syr  func(order, uplo int32, n int, alpha T, x []T, incX int, a []T, lda int)
	Syr2 func(order, uplo int32, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int)

	// Level 3
	Gemm  func(order, transA, transB int32, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Symm  func(order, side, uplo int32, m, n int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Syrk  func(order, uplo, trans int32, n, k int, alpha T, a []T, lda int, beta T, c []T, ldc int)
	Syr2k func(order, uplo, trans int32, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Trmm  func(order, side, uplo, transA, diag int32, m, n int, alpha T, a []T, lda int, b []T, ldb int)
	Trsm  func(order, side, uplo, transA, diag int32, m, n int, alpha T, a []T, lda int, b []T, ldb int)
}

// CBLASFor selects the CBLAS table of lib matching T.
func CBLASFor[T Float](lib *Library) *CBLASABI[T] {
	var p any
	switch any(*new(T)).(type) {
	case float32:
		p = &lib.CBLASF32
	case float64:
		p = &lib.CBLASF64
	}

	return p.(*CBLASABI[T])
}
