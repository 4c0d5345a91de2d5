// SPDX-License-Identifier: MIT

//go:build cgo && gsl

package cgsl

/*
#include "cgsl.h"
*/
import "C"

import (
	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/gslerr"
)

// HeaderConstant pairs the code enums hands to the backend with the value
// the linked headers define for it.
type HeaderConstant struct {
	Name   string
	Enum   int32
	Header int32
}

// HeaderConstants lists every enum code and status code checked against the
// C headers.
func HeaderConstants() []HeaderConstant {
	return append([]HeaderConstant{
		{"CblasRowMajor", enums.RowMajor.Native(), int32(C.CblasRowMajor)},
		{"CblasColMajor", enums.ColumnMajor.Native(), int32(C.CblasColMajor)},
		{"CblasNoTrans", enums.NoTrans.Native(), int32(C.CblasNoTrans)},
		{"CblasTrans", enums.Trans.Native(), int32(C.CblasTrans)},
		{"CblasConjTrans", enums.ConjTrans.Native(), int32(C.CblasConjTrans)},
		{"CblasUpper", enums.Upper.Native(), int32(C.CblasUpper)},
		{"CblasLower", enums.Lower.Native(), int32(C.CblasLower)},
		{"CblasNonUnit", enums.NonUnit.Native(), int32(C.CblasNonUnit)},
		{"CblasUnit", enums.Unit.Native(), int32(C.CblasUnit)},
		{"CblasLeft", enums.Left.Native(), int32(C.CblasLeft)},
		{"CblasRight", enums.Right.Native(), int32(C.CblasRight)},
		{"GSL_EIGEN_SORT_VAL_ASC", enums.SortValAsc.Native(), int32(C.GSL_EIGEN_SORT_VAL_ASC)},
		{"GSL_EIGEN_SORT_VAL_DESC", enums.SortValDesc.Native(), int32(C.GSL_EIGEN_SORT_VAL_DESC)},
		{"GSL_EIGEN_SORT_ABS_ASC", enums.SortAbsAsc.Native(), int32(C.GSL_EIGEN_SORT_ABS_ASC)},
		{"GSL_EIGEN_SORT_ABS_DESC", enums.SortAbsDesc.Native(), int32(C.GSL_EIGEN_SORT_ABS_DESC)},
		{"GSL_FILTER_END_PADZERO", enums.PadZero.Native(), int32(C.GSL_FILTER_END_PADZERO)},
		{"GSL_FILTER_END_PADVALUE", enums.PadValue.Native(), int32(C.GSL_FILTER_END_PADVALUE)},
		{"GSL_FILTER_END_TRUNCATE", enums.Truncate.Native(), int32(C.GSL_FILTER_END_TRUNCATE)},
		{"GSL_FILTER_SCALE_MAD", enums.MedianAbsoluteDeviation.Native(), int32(C.GSL_FILTER_SCALE_MAD)},
		{"GSL_FILTER_SCALE_IQR", enums.InterQuartileRange.Native(), int32(C.GSL_FILTER_SCALE_IQR)},
		{"GSL_FILTER_SCALE_SN", enums.SN.Native(), int32(C.GSL_FILTER_SCALE_SN)},
		{"GSL_FILTER_SCALE_QN", enums.QN.Native(), int32(C.GSL_FILTER_SCALE_QN)},
		{"GSL_PREC_DOUBLE", enums.PrecDouble.Native(), int32(C.GSL_PREC_DOUBLE)},
		{"GSL_PREC_SINGLE", enums.PrecSingle.Native(), int32(C.GSL_PREC_SINGLE)},
		{"GSL_PREC_APPROX", enums.PrecApprox.Native(), int32(C.GSL_PREC_APPROX)},
		{"GSL_VEGAS_MODE_IMPORTANCE", enums.Importance.Native(), int32(C.GSL_VEGAS_MODE_IMPORTANCE)},
		{"GSL_VEGAS_MODE_IMPORTANCE_ONLY", enums.ImportanceOnly.Native(), int32(C.GSL_VEGAS_MODE_IMPORTANCE_ONLY)},
		{"GSL_VEGAS_MODE_STRATIFIED", enums.Stratified.Native(), int32(C.GSL_VEGAS_MODE_STRATIFIED)},
		{"gsl_wavelet_forward", enums.Forward.Native(), int32(C.gsl_wavelet_forward)},
		{"gsl_wavelet_backward", enums.Backward.Native(), int32(C.gsl_wavelet_backward)},
		{"GSL_SF_LEGENDRE_SCHMIDT", enums.Schmidt.Native(), int32(C.GSL_SF_LEGENDRE_SCHMIDT)},
		{"GSL_SF_LEGENDRE_SPHARM", enums.SphericalHarmonic.Native(), int32(C.GSL_SF_LEGENDRE_SPHARM)},
		{"GSL_SF_LEGENDRE_FULL", enums.Full.Native(), int32(C.GSL_SF_LEGENDRE_FULL)},
		{"GSL_SF_LEGENDRE_NONE", enums.None.Native(), int32(C.GSL_SF_LEGENDRE_NONE)},
	}, StatusConstants()...)
}

// StatusConstants pairs GSL_SUCCESS and every named gslerr kind with its
// gsl_errno.h value.
func StatusConstants() []HeaderConstant {
	return []HeaderConstant{
		{"GSL_SUCCESS", gslerr.Success, int32(C.GSL_SUCCESS)},
		{"GSL_FAILURE", gslerr.ErrFailure.Code(), int32(C.GSL_FAILURE)},
		{"GSL_CONTINUE", gslerr.ErrContinue.Code(), int32(C.GSL_CONTINUE)},
		{"GSL_EDOM", gslerr.ErrDomain.Code(), int32(C.GSL_EDOM)},
		{"GSL_ERANGE", gslerr.ErrRange.Code(), int32(C.GSL_ERANGE)},
		{"GSL_EFAULT", gslerr.ErrFault.Code(), int32(C.GSL_EFAULT)},
		{"GSL_EINVAL", gslerr.ErrInvalid.Code(), int32(C.GSL_EINVAL)},
		{"GSL_EFAILED", gslerr.ErrFailed.Code(), int32(C.GSL_EFAILED)},
		{"GSL_EFACTOR", gslerr.ErrFactorization.Code(), int32(C.GSL_EFACTOR)},
		{"GSL_ESANITY", gslerr.ErrSanity.Code(), int32(C.GSL_ESANITY)},
		{"GSL_ENOMEM", gslerr.ErrNoMemory.Code(), int32(C.GSL_ENOMEM)},
		{"GSL_EBADFUNC", gslerr.ErrBadFunction.Code(), int32(C.GSL_EBADFUNC)},
		{"GSL_ERUNAWAY", gslerr.ErrRunAway.Code(), int32(C.GSL_ERUNAWAY)},
		{"GSL_EMAXITER", gslerr.ErrMaxIteration.Code(), int32(C.GSL_EMAXITER)},
		{"GSL_EZERODIV", gslerr.ErrZeroDiv.Code(), int32(C.GSL_EZERODIV)},
		{"GSL_EBADTOL", gslerr.ErrBadTolerance.Code(), int32(C.GSL_EBADTOL)},
		{"GSL_ETOL", gslerr.ErrTolerance.Code(), int32(C.GSL_ETOL)},
		{"GSL_EUNDRFLW", gslerr.ErrUnderFlow.Code(), int32(C.GSL_EUNDRFLW)},
		{"GSL_EOVRFLW", gslerr.ErrOverFlow.Code(), int32(C.GSL_EOVRFLW)},
		{"GSL_ELOSS", gslerr.ErrLoss.Code(), int32(C.GSL_ELOSS)},
		{"GSL_EROUND", gslerr.ErrRound.Code(), int32(C.GSL_EROUND)},
		{"GSL_EBADLEN", gslerr.ErrBadLength.Code(), int32(C.GSL_EBADLEN)},
		{"GSL_ENOTSQR", gslerr.ErrNotSquare.Code(), int32(C.GSL_ENOTSQR)},
		{"GSL_ESING", gslerr.ErrSingularity.Code(), int32(C.GSL_ESING)},
		{"GSL_EDIVERGE", gslerr.ErrDiverge.Code(), int32(C.GSL_EDIVERGE)},
		{"GSL_EUNSUP", gslerr.ErrUnsupported.Code(), int32(C.GSL_EUNSUP)},
		{"GSL_EUNIMPL", gslerr.ErrUnimplemented.Code(), int32(C.GSL_EUNIMPL)},
		{"GSL_ECACHE", gslerr.ErrCache.Code(), int32(C.GSL_ECACHE)},
		{"GSL_ETABLE", gslerr.ErrTable.Code(), int32(C.GSL_ETABLE)},
		{"GSL_ENOPROG", gslerr.ErrNoProgress.Code(), int32(C.GSL_ENOPROG)},
		{"GSL_ENOPROGJ", gslerr.ErrNoProgressJacobian.Code(), int32(C.GSL_ENOPROGJ)},
		{"GSL_ETOLF", gslerr.ErrToleranceF.Code(), int32(C.GSL_ETOLF)},
		{"GSL_ETOLX", gslerr.ErrToleranceX.Code(), int32(C.GSL_ETOLX)},
		{"GSL_ETOLG", gslerr.ErrToleranceG.Code(), int32(C.GSL_ETOLG)},
		{"GSL_EOF", gslerr.ErrEOF.Code(), int32(C.GSL_EOF)},
	}
}
