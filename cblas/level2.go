// SPDX-License-Identifier: MIT

package cblas

import "github.com/katalvlaran/lvgsl/enums"

// Gemv computes y = alpha·op(A)·x + beta·y.
func (i Impl[T]) Gemv(tA enums.Transpose, alpha T, a General[T], x Strided[T], beta T, y Strided[T]) {
	const op = "Gemv"
	o := layout(op, "A", a)
	m, n := opShape(a, tA)
	want(op, "len(x)", x.Len(), n)
	want(op, "len(y)", y.Len(), m)
	need(i, "cblas.Gemv", i.abi.Gemv != nil)
	i.abi.Gemv(o, tA.Native(), a.Rows, a.Cols, alpha, a.Data, a.Stride, x.Data, x.Inc, beta, y.Data, y.Inc)
}

// Trmv computes x = op(A)·x for the uplo triangle of the square A.
func (i Impl[T]) Trmv(uplo enums.Uplo, tA enums.Transpose, diag enums.Diag, a General[T], x Strided[T]) {
	const op = "Trmv"
	o := layout(op, "A", a)
	n := square(op, "A", a)
	want(op, "len(x)", x.Len(), n)
	need(i, "cblas.Trmv", i.abi.Trmv != nil)
	i.abi.Trmv(o, uplo.Native(), tA.Native(), diag.Native(), n, a.Data, a.Stride, x.Data, x.Inc)
}

// Trsv solves op(A)·x = b in place, x holding b on entry.
func (i Impl[T]) Trsv(uplo enums.Uplo, tA enums.Transpose, diag enums.Diag, a General[T], x Strided[T]) {
	const op = "Trsv"
	o := layout(op, "A", a)
	n := square(op, "A", a)
	want(op, "len(x)", x.Len(), n)
	need(i, "cblas.Trsv", i.abi.Trsv != nil)
	i.abi.Trsv(o, uplo.Native(), tA.Native(), diag.Native(), n, a.Data, a.Stride, x.Data, x.Inc)
}

// Symv computes y = alpha·A·x + beta·y for the symmetric A stored in its
// uplo triangle.
func (i Impl[T]) Symv(uplo enums.Uplo, alpha T, a General[T], x Strided[T], beta T, y Strided[T]) {
	const op = "Symv"
	o := layout(op, "A", a)
	n := square(op, "A", a)
	want(op, "len(x)", x.Len(), n)
	want(op, "len(y)", y.Len(), n)
	need(i, "cblas.Symv", i.abi.Symv != nil)
	i.abi.Symv(o, uplo.Native(), n, alpha, a.Data, a.Stride, x.Data, x.Inc, beta, y.Data, y.Inc)
}

// Ger computes A = alpha·x·yᵀ + A.
func (i Impl[T]) Ger(alpha T, x, y Strided[T], a General[T]) {
	const op = "Ger"
	o := layout(op, "A", a)
	want(op, "len(x)", x.Len(), a.Rows)
	want(op, "len(y)", y.Len(), a.Cols)
	need(i, "cblas.Ger", i.abi.Ger != nil)
	i.abi.Ger(o, a.Rows, a.Cols, alpha, x.Data, x.Inc, y.Data, y.Inc, a.Data, a.Stride)
}

// Syr computes A = alpha·x·xᵀ + A on the uplo triangle.
func (i Impl[T]) Syr(uplo enums.Uplo, alpha T, x Strided[T], a General[T]) {
	const op = "Syr"
	o := layout(op, "A", a)
	n := square(op, "A", a)
	want(op, "len(x)", x.Len(), n)
	need(i, "cblas.Syr", i.abi.Syr != nil)
	i.abi.Syr(o, uplo.Native(), n, alpha, x.Data, x.Inc, a.Data, a.Stride)
}

// Syr2 computes A = alpha·(x·yᵀ + y·xᵀ) + A on the uplo triangle.
func (i Impl[T]) Syr2(uplo enums.Uplo, alpha T, x, y Strided[T], a General[T]) {
	const op = "Syr2"
	o := layout(op, "A", a)
	n := square(op, "A", a)
	want(op, "len(x)", x.Len(), n)
	want(op, "len(y)", y.Len(), n)
	need(i, "cblas.Syr2", i.abi.Syr2 != nil)
	i.abi.Syr2(o, uplo.Native(), n, alpha, x.Data, x.Inc, y.Data, y.Inc, a.Data, a.Stride)
}
