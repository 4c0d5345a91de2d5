// SPDX-License-Identifier: MIT

package cblas

import "github.com/katalvlaran/lvgsl/enums"

// Gemm computes C = alpha·op(A)·op(B) + beta·C.
func (i Impl[T]) Gemm(tA, tB enums.Transpose, alpha T, a, b General[T], beta T, c General[T]) {
	const op = "Gemm"
	o := layout(op, "ABC", a, b, c)
	m, k := opShape(a, tA)
	kb, n := opShape(b, tB)
	want(op, "op(B) rows", kb, k)
	want(op, "C rows", c.Rows, m)
	want(op, "C cols", c.Cols, n)
	need(i, "cblas.Gemm", i.abi.Gemm != nil)
	i.abi.Gemm(o, tA.Native(), tB.Native(), m, n, k,
		alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)
}

// Symm computes C = alpha·A·B + beta·C (side Left) or C = alpha·B·A + beta·C
// (side Right) for the symmetric A stored in its uplo triangle.
func (i Impl[T]) Symm(side enums.Side, uplo enums.Uplo, alpha T, a, b General[T], beta T, c General[T]) {
	const op = "Symm"
	o := layout(op, "ABC", a, b, c)
	m, n := c.Rows, c.Cols
	want(op, "A rows", square(op, "A", a), sideOrder(side, m, n))
	want(op, "B rows", b.Rows, m)
	want(op, "B cols", b.Cols, n)
	need(i, "cblas.Symm", i.abi.Symm != nil)
	i.abi.Symm(o, side.Native(), uplo.Native(), m, n,
		alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)
}

// Syrk computes the uplo triangle of C = alpha·op(A)·op(A)ᵀ + beta·C.
func (i Impl[T]) Syrk(uplo enums.Uplo, trans enums.Transpose, alpha T, a General[T], beta T, c General[T]) {
	const op = "Syrk"
	o := layout(op, "AC", a, c)
	n := square(op, "C", c)
	na, k := opShape(a, trans)
	want(op, "op(A) rows", na, n)
	need(i, "cblas.Syrk", i.abi.Syrk != nil)
	i.abi.Syrk(o, uplo.Native(), trans.Native(), n, k, alpha, a.Data, a.Stride, beta, c.Data, c.Stride)
}

// Syr2k computes the uplo triangle of
// C = alpha·(op(A)·op(B)ᵀ + op(B)·op(A)ᵀ) + beta·C.
func (i Impl[T]) Syr2k(uplo enums.Uplo, trans enums.Transpose, alpha T, a, b General[T], beta T, c General[T]) {
	const op = "Syr2k"
	o := layout(op, "ABC", a, b, c)
	n := square(op, "C", c)
	na, k := opShape(a, trans)
	want(op, "op(A) rows", na, n)
	want(op, "B rows", b.Rows, a.Rows)
	want(op, "B cols", b.Cols, a.Cols)
	need(i, "cblas.Syr2k", i.abi.Syr2k != nil)
	i.abi.Syr2k(o, uplo.Native(), trans.Native(), n, k,
		alpha, a.Data, a.Stride, b.Data, b.Stride, beta, c.Data, c.Stride)
}

// Trmm computes B = alpha·op(A)·B (side Left) or B = alpha·B·op(A) (side
// Right) for the uplo triangle of the square A.
func (i Impl[T]) Trmm(side enums.Side, uplo enums.Uplo, tA enums.Transpose, diag enums.Diag, alpha T, a, b General[T]) {
	const op = "Trmm"
	o := layout(op, "AB", a, b)
	want(op, "A rows", square(op, "A", a), sideOrder(side, b.Rows, b.Cols))
	need(i, "cblas.Trmm", i.abi.Trmm != nil)
	i.abi.Trmm(o, side.Native(), uplo.Native(), tA.Native(), diag.Native(), b.Rows, b.Cols,
		alpha, a.Data, a.Stride, b.Data, b.Stride)
}

// Trsm solves op(A)·X = alpha·B (side Left) or X·op(A) = alpha·B (side
// Right), overwriting B with X.
func (i Impl[T]) Trsm(side enums.Side, uplo enums.Uplo, tA enums.Transpose, diag enums.Diag, alpha T, a, b General[T]) {
	const op = "Trsm"
	o := layout(op, "AB", a, b)
	want(op, "A rows", square(op, "A", a), sideOrder(side, b.Rows, b.Cols))
	need(i, "cblas.Trsm", i.abi.Trsm != nil)
	i.abi.Trsm(o, side.Native(), uplo.Native(), tA.Native(), diag.Native(), b.Rows, b.Cols,
		alpha, a.Data, a.Stride, b.Data, b.Stride)
}
