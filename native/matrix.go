// SPDX-License-Identifier: MIT

package native

// MatrixABI is the gsl_matrix family for one element type.
// Size reports (size1, size2, tda) exactly as stored in the native struct.
type MatrixABI[T Float] struct {
	Alloc            func(rows, cols int) Handle
	Calloc           func(rows, cols int) Handle
	Free             func(h Handle)
	Size             func(h Handle) (rows, cols, tda int)
	Get              func(h Handle, i, j int) T
	Set              func(h Handle, i, j int, v T)
	SetAll           func(h Handle, v T)
	SetZero          func(h Handle)
	SetIdentity      func(h Handle)
	Memcpy           func(dst, src Handle) Status
	TransposeInPlace func(h Handle) Status
}

// MatrixFor selects the matrix table of lib matching T.
func MatrixFor[T Float](lib *Library) *MatrixABI[T] {
	var p any
	switch any(*new(T)).(type) {
	case float32:
		p = &lib.MatrixF32
	case float64:
		p = &lib.MatrixF64
	}

	return p.(*MatrixABI[T])
}
