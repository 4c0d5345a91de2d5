// SPDX-License-Identifier: MIT

package enums

// Order is the CBLAS storage order.
type Order uint8

const (
	RowMajor Order = iota
	ColumnMajor
)

var orderFamily = family{"Order",
	[]string{"RowMajor", "ColumnMajor"},
	[]int32{CblasRowMajor, CblasColMajor}}

func (o Order) Native() int32  { return orderFamily.native(uint8(o)) }
func (o Order) String() string { return orderFamily.name(uint8(o)) }

// OrderFromNative decodes a CBLAS_ORDER value.
func OrderFromNative(code int32) Order { return fromNative[Order](&orderFamily, code) }

// Transpose selects op(A) in BLAS routines.
type Transpose uint8

const (
	NoTrans   Transpose = iota // op(A) = A
	Trans                      // op(A) = Aᵀ
	ConjTrans                  // op(A) = Aᴴ; equals Trans for real elements
)

var transposeFamily = family{"Transpose",
	[]string{"NoTranspose", "Transpose", "ConjugateTranspose"},
	[]int32{CblasNoTrans, CblasTrans, CblasConjTrans}}

func (t Transpose) Native() int32  { return transposeFamily.native(uint8(t)) }
func (t Transpose) String() string { return transposeFamily.name(uint8(t)) }

// IsTransposed reports whether op(A) swaps rows and columns.
func (t Transpose) IsTransposed() bool { return t != NoTrans }

// TransposeFromNative decodes a CBLAS_TRANSPOSE value.
func TransposeFromNative(code int32) Transpose {
	return fromNative[Transpose](&transposeFamily, code)
}

// Uplo selects the referenced triangle.
type Uplo uint8

const (
	Upper Uplo = iota
	Lower
)

var uploFamily = family{"Uplo",
	[]string{"Upper", "Lower"},
	[]int32{CblasUpper, CblasLower}}

func (u Uplo) Native() int32  { return uploFamily.native(uint8(u)) }
func (u Uplo) String() string { return uploFamily.name(uint8(u)) }

// UploFromNative decodes a CBLAS_UPLO value.
func UploFromNative(code int32) Uplo { return fromNative[Uplo](&uploFamily, code) }

// Diag says whether a triangular matrix has an implicit unit diagonal.
type Diag uint8

const (
	NonUnit Diag = iota
	Unit
)

var diagFamily = family{"Diag",
	[]string{"NonUnit", "Unit"},
	[]int32{CblasNonUnit, CblasUnit}}

func (d Diag) Native() int32  { return diagFamily.native(uint8(d)) }
func (d Diag) String() string { return diagFamily.name(uint8(d)) }

// DiagFromNative decodes a CBLAS_DIAG value.
func DiagFromNative(code int32) Diag { return fromNative[Diag](&diagFamily, code) }

// Side selects whether the special matrix multiplies from the left or right.
type Side uint8

const (
	Left Side = iota
	Right
)

var sideFamily = family{"Side",
	[]string{"Left", "Right"},
	[]int32{CblasLeft, CblasRight}}

func (s Side) Native() int32  { return sideFamily.native(uint8(s)) }
func (s Side) String() string { return sideFamily.name(uint8(s)) }

// SideFromNative decodes a CBLAS_SIDE value.
func SideFromNative(code int32) Side { return fromNative[Side](&sideFamily, code) }
