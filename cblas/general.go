// SPDX-License-Identifier: MIT

package cblas

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/native"
)

// General is a Rows x Cols matrix stored in Data with leading dimension
// Stride. Element (i, j) is Data[i*Stride+j] in RowMajor order and
// Data[i+j*Stride] in ColumnMajor order.
type General[T native.Float] struct {
	Order      enums.Order
	Rows, Cols int
	Stride     int
	Data       []T
}

// Dense wraps data as an unpadded rows x cols matrix in order o.
func Dense[T native.Float](o enums.Order, rows, cols int, data []T) General[T] {
	stride := cols
	if o == enums.ColumnMajor {
		stride = rows
	}

	return General[T]{Order: o, Rows: rows, Cols: cols, Stride: max(stride, 1), Data: data}
}

// At returns element (i, j).
func (g General[T]) At(i, j int) T {
	if g.Order == enums.ColumnMajor {
		return g.Data[i+j*g.Stride]
	}

	return g.Data[i*g.Stride+j]
}

// check panics unless g is a well-formed operand: a non-negative shape, a
// declared order, a stride covering the minor dimension, and Stride elements
// for every row (RowMajor) or column (ColumnMajor).
func (g General[T]) check(op, name string) {
	if g.Rows < 0 || g.Cols < 0 {
		panic(fmt.Sprintf("cblas: %s: %s has negative shape %dx%d", op, name, g.Rows, g.Cols))
	}
	major, minor := g.Rows, g.Cols
	switch g.Order {
	case enums.RowMajor:
	case enums.ColumnMajor:
		major, minor = g.Cols, g.Rows
	default:
		panic(fmt.Sprintf("cblas: %s: %s has undeclared order %d", op, name, uint8(g.Order)))
	}
	if g.Stride < max(minor, 1) {
		panic(fmt.Sprintf("cblas: %s: %s stride %d is below %d", op, name, g.Stride, max(minor, 1)))
	}
	if n := g.Stride * major; len(g.Data) < n {
		panic(fmt.Sprintf("cblas: %s: %s needs %d elements, has %d", op, name, n, len(g.Data)))
	}
}

// layout checks every matrix operand, named by the letters of names in
// argument order, and returns their common order as a CBLAS code.
func layout[T native.Float](op, names string, gs ...General[T]) int32 {
	for k, g := range gs {
		name := names[k : k+1]
		g.check(op, name)
		if g.Order != gs[0].Order {
			panic(fmt.Sprintf("cblas: %s: %s is %s but %s is %s", op, name, g.Order, names[:1], gs[0].Order))
		}
	}

	return gs[0].Order.Native()
}

// opShape returns the shape of op(g).
func opShape[T native.Float](g General[T], t enums.Transpose) (int, int) {
	if t.IsTransposed() {
		return g.Cols, g.Rows
	}

	return g.Rows, g.Cols
}

func want(op, what string, got, n int) {
	if got != n {
		panic(fmt.Sprintf("cblas: %s: %s is %d, want %d", op, what, got, n))
	}
}

// square returns the order of g, which must be square.
func square[T native.Float](op, name string, g General[T]) int {
	want(op, name+" cols", g.Cols, g.Rows)

	return g.Rows
}

// sideOrder is the order of the square A in Symm, Trmm, and Trsm.
func sideOrder(s enums.Side, m, n int) int {
	if s == enums.Left {
		return m
	}

	return n
}
