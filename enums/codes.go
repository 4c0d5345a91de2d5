// SPDX-License-Identifier: MIT

package enums

// Header constants (cblas.h, gsl_eigen.h, gsl_filter.h, gsl_mode.h,
// gsl_monte_vegas.h, gsl_wavelet.h, gsl_sf_legendre.h).
const (
	CblasRowMajor  int32 = 101
	CblasColMajor  int32 = 102
	CblasNoTrans   int32 = 111
	CblasTrans     int32 = 112
	CblasConjTrans int32 = 113
	CblasUpper     int32 = 121
	CblasLower     int32 = 122
	CblasNonUnit   int32 = 131
	CblasUnit      int32 = 132
	CblasLeft      int32 = 141
	CblasRight     int32 = 142

	GSLEigenSortValAsc  int32 = 0
	GSLEigenSortValDesc int32 = 1
	GSLEigenSortAbsAsc  int32 = 2
	GSLEigenSortAbsDesc int32 = 3

	GSLFilterEndPadZero  int32 = 0
	GSLFilterEndPadValue int32 = 1
	GSLFilterEndTruncate int32 = 2

	GSLFilterScaleMAD int32 = 0
	GSLFilterScaleIQR int32 = 1
	GSLFilterScaleSN  int32 = 2
	GSLFilterScaleQN  int32 = 3

	GSLPrecDouble int32 = 0
	GSLPrecSingle int32 = 1
	GSLPrecApprox int32 = 2

	GSLVegasModeImportance     int32 = 1
	GSLVegasModeImportanceOnly int32 = 0
	GSLVegasModeStratified     int32 = -1

	GSLWaveletForward  int32 = 1
	GSLWaveletBackward int32 = -1

	GSLSfLegendreSchmidt int32 = 0
	GSLSfLegendreSpharm  int32 = 1
	GSLSfLegendreFull    int32 = 2
	GSLSfLegendreNone    int32 = 3
)
