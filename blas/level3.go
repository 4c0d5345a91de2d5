// SPDX-License-Identifier: MIT

package blas

import (
	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native"
)

// Gemm computes C = alpha·op(A)·op(B) + beta·C.
// op(A) is M×K, op(B) is K×N and C is M×N.
func Gemm[T native.Float](transA, transB enums.Transpose, alpha T, a, b *matrix.Matrix[T], beta T, c *matrix.Matrix[T]) error {
	const op = "blas.Gemm"
	m, k := opShape(a, transA)
	kb, n := opShape(b, transB)
	if err := prelude(op, ops(a, b, c),
		matrix.ValidateVecLen("inner", kb, k),
		matrix.ValidateShape(c, m, n)); err != nil {
		return err
	}
	fn := table[T](a.Library()).Gemm
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	ha, hb, hc := s.Shared(a.Owner()), s.Shared(b.Owner()), s.Exclusive(c.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(transA.Native(), transB.Native(), alpha, ha, hb, beta, hc))
}

// sideOrder is the order A must have for side: rows(B) on the left, cols(B) on the right.
func sideOrder(side enums.Side, b matrix.Dims) int {
	if side == enums.Left {
		return b.Rows()
	}

	return b.Cols()
}

// Symm computes C = alpha·A·B + beta·C (Left) or C = alpha·B·A + beta·C (Right)
// for symmetric A. B and C are M×N; A is M×M on the left and N×N on the right.
func Symm[T native.Float](side enums.Side, uplo enums.Uplo, alpha T, a, b *matrix.Matrix[T], beta T, c *matrix.Matrix[T]) error {
	const op = "blas.Symm"
	if err := prelude(op, ops(a, b, c),
		matrix.ValidateSquare(a),
		matrix.ValidateSameShape(b, c),
		matrix.ValidateVecLen("order", a.Rows(), sideOrder(side, c))); err != nil {
		return err
	}
	fn := table[T](a.Library()).Symm
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	ha, hb, hc := s.Shared(a.Owner()), s.Shared(b.Owner()), s.Exclusive(c.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(side.Native(), uplo.Native(), alpha, ha, hb, beta, hc))
}

// triangularMM runs Trmm and Trsm.
func triangularMM[T native.Float](op string, fn func(side, uplo, trans, diag int32, alpha T, a, b native.Handle) native.Status,
	side enums.Side, uplo enums.Uplo, trans enums.Transpose, diag enums.Diag, alpha T, a, b *matrix.Matrix[T]) error {
	if err := prelude(op, ops(a, b),
		matrix.ValidateSquare(a),
		matrix.ValidateVecLen("order", a.Rows(), sideOrder(side, b))); err != nil {
		return err
	}
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	ha, hb := s.Shared(a.Owner()), s.Exclusive(b.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(side.Native(), uplo.Native(), trans.Native(), diag.Native(), alpha, ha, hb))
}

// Trmm computes B = alpha·op(A)·B (Left) or B = alpha·B·op(A) (Right) for triangular A.
func Trmm[T native.Float](side enums.Side, uplo enums.Uplo, trans enums.Transpose, diag enums.Diag, alpha T, a, b *matrix.Matrix[T]) error {
	return triangularMM("blas.Trmm", table[T](a.Library()).Trmm, side, uplo, trans, diag, alpha, a, b)
}

// Trsm solves op(A)·X = alpha·B (Left) or X·op(A) = alpha·B (Right), overwriting B with X.
func Trsm[T native.Float](side enums.Side, uplo enums.Uplo, trans enums.Transpose, diag enums.Diag, alpha T, a, b *matrix.Matrix[T]) error {
	return triangularMM("blas.Trsm", table[T](a.Library()).Trsm, side, uplo, trans, diag, alpha, a, b)
}

// rankShape checks C is N×N and a is N×K (NoTrans) or K×N (Trans).
func rankShape(trans enums.Transpose, a, c matrix.Dims) error {
	if err := matrix.ValidateSquare(c); err != nil {
		return err
	}
	n, _ := opShape(a, trans)

	return matrix.ValidateVecLen("order", n, c.Rows())
}

// Syrk computes the symmetric rank-k update C = alpha·A·Aᵀ + beta·C (NoTrans)
// or C = alpha·Aᵀ·A + beta·C (Trans) on the uplo triangle.
func Syrk[T native.Float](uplo enums.Uplo, trans enums.Transpose, alpha T, a *matrix.Matrix[T], beta T, c *matrix.Matrix[T]) error {
	const op = "blas.Syrk"
	if err := prelude(op, ops(a, c), rankShape(trans, a, c)); err != nil {
		return err
	}
	fn := table[T](a.Library()).Syrk
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	ha, hc := s.Shared(a.Owner()), s.Exclusive(c.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(uplo.Native(), trans.Native(), alpha, ha, beta, hc))
}

// Syr2k computes the symmetric rank-2k update
// C = alpha·A·Bᵀ + alpha·B·Aᵀ + beta·C (NoTrans), or the transposed form.
// A and B must have the same shape.
func Syr2k[T native.Float](uplo enums.Uplo, trans enums.Transpose, alpha T, a, b *matrix.Matrix[T], beta T, c *matrix.Matrix[T]) error {
	const op = "blas.Syr2k"
	if err := prelude(op, ops(a, b, c),
		matrix.ValidateSameShape(a, b),
		rankShape(trans, a, c)); err != nil {
		return err
	}
	fn := table[T](a.Library()).Syr2k
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	ha, hb, hc := s.Shared(a.Owner()), s.Shared(b.Owner()), s.Exclusive(c.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(uplo.Native(), trans.Native(), alpha, ha, hb, beta, hc))
}
