// SPDX-License-Identifier: MIT

package blas

import (
	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/vector"
)

// squareOn checks that a is square with order len(x).
func squareOn(a matrix.Dims, x vector.Lengther) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return err
	}

	return matrix.ValidateVecLen("x", x.Len(), a.Rows())
}

// Gemv computes y = alpha·op(A)·x + beta·y.
// op(A) is M×N: len(x) must be N and len(y) must be M.
func Gemv[T native.Float](trans enums.Transpose, alpha T, a *matrix.Matrix[T], x *vector.Vector[T], beta T, y *vector.Vector[T]) error {
	const op = "blas.Gemv"
	m, n := opShape(a, trans)
	if err := prelude(op, ops(a, x, y),
		matrix.ValidateVecLen("x", x.Len(), n),
		matrix.ValidateVecLen("y", y.Len(), m)); err != nil {
		return err
	}
	fn := table[T](a.Library()).Gemv
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	ha, hx, hy := s.Shared(a.Owner()), s.Shared(x.Owner()), s.Exclusive(y.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(trans.Native(), alpha, ha, hx, beta, hy))
}

// triangular runs Trmv and Trsv, which differ only in the native entry.
func triangular[T native.Float](op string, fn func(uplo, trans, diag int32, a, x native.Handle) native.Status,
	uplo enums.Uplo, trans enums.Transpose, diag enums.Diag, a *matrix.Matrix[T], x *vector.Vector[T]) error {
	if err := prelude(op, ops(a, x), squareOn(a, x)); err != nil {
		return err
	}
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	ha, hx := s.Shared(a.Owner()), s.Exclusive(x.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(uplo.Native(), trans.Native(), diag.Native(), ha, hx))
}

// Trmv computes x = op(A)·x for triangular A.
func Trmv[T native.Float](uplo enums.Uplo, trans enums.Transpose, diag enums.Diag, a *matrix.Matrix[T], x *vector.Vector[T]) error {
	return triangular("blas.Trmv", table[T](a.Library()).Trmv, uplo, trans, diag, a, x)
}

// Trsv solves op(A)·x' = x for triangular A, overwriting x with x'.
func Trsv[T native.Float](uplo enums.Uplo, trans enums.Transpose, diag enums.Diag, a *matrix.Matrix[T], x *vector.Vector[T]) error {
	return triangular("blas.Trsv", table[T](a.Library()).Trsv, uplo, trans, diag, a, x)
}

// Symv computes y = alpha·A·x + beta·y for symmetric A; only the uplo
// triangle of A is read.
func Symv[T native.Float](uplo enums.Uplo, alpha T, a *matrix.Matrix[T], x *vector.Vector[T], beta T, y *vector.Vector[T]) error {
	const op = "blas.Symv"
	if err := prelude(op, ops(a, x, y),
		squareOn(a, x),
		matrix.ValidateVecLen("y", y.Len(), a.Rows())); err != nil {
		return err
	}
	fn := table[T](a.Library()).Symv
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	ha, hx, hy := s.Shared(a.Owner()), s.Shared(x.Owner()), s.Exclusive(y.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(uplo.Native(), alpha, ha, hx, beta, hy))
}

// Ger computes the rank-1 update A = alpha·x·yᵀ + A.
// A must be len(x)×len(y).
func Ger[T native.Float](alpha T, x, y *vector.Vector[T], a *matrix.Matrix[T]) error {
	const op = "blas.Ger"
	if err := prelude(op, ops(x, y, a),
		matrix.ValidateVecLen("x", x.Len(), a.Rows()),
		matrix.ValidateVecLen("y", y.Len(), a.Cols())); err != nil {
		return err
	}
	fn := table[T](a.Library()).Ger
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	hx, hy, ha := s.Shared(x.Owner()), s.Shared(y.Owner()), s.Exclusive(a.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(alpha, hx, hy, ha))
}

// Syr computes the symmetric rank-1 update A = alpha·x·xᵀ + A on the uplo triangle.
func Syr[T native.Float](uplo enums.Uplo, alpha T, x *vector.Vector[T], a *matrix.Matrix[T]) error {
	const op = "blas.Syr"
	if err := prelude(op, ops(x, a), squareOn(a, x)); err != nil {
		return err
	}
	fn := table[T](a.Library()).Syr
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	hx, ha := s.Shared(x.Owner()), s.Exclusive(a.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(uplo.Native(), alpha, hx, ha))
}

// Syr2 computes the symmetric rank-2 update A = alpha·x·yᵀ + alpha·y·xᵀ + A.
func Syr2[T native.Float](uplo enums.Uplo, alpha T, x, y *vector.Vector[T], a *matrix.Matrix[T]) error {
	const op = "blas.Syr2"
	if err := prelude(op, ops(x, y, a),
		squareOn(a, x),
		matrix.ValidateVecLen("y", y.Len(), a.Rows())); err != nil {
		return err
	}
	fn := table[T](a.Library()).Syr2
	if fn == nil {
		return native.Missing(a.Library(), op)
	}
	var s handle.Scope
	hx, hy, ha := s.Shared(x.Owner()), s.Shared(y.Owner()), s.Exclusive(a.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(uplo.Native(), alpha, hx, hy, ha))
}
