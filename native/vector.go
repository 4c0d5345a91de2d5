// SPDX-License-Identifier: MIT

package native

// VectorABI is the gsl_vector family for one element type
// (gsl_vector_float_*, gsl_vector_*, gsl_vector_int_*).
type VectorABI[T Element] struct {
	Alloc   func(n int) Handle
	Calloc  func(n int) Handle
	Free    func(h Handle)
	Len     func(h Handle) int
	Stride  func(h Handle) int
	Get     func(h Handle, i int) T
	Set     func(h Handle, i int, v T)
	SetAll  func(h Handle, v T)
	SetZero func(h Handle)
	Memcpy  func(dst, src Handle) Status
}

// VectorFor selects the vector table of lib matching T.
func VectorFor[T Element](lib *Library) *VectorABI[T] {
	var p any
	switch any(*new(T)).(type) {
	case float32:
		p = &lib.VectorF32
	case float64:
		p = &lib.VectorF64
	case int32:
		p = &lib.VectorI32
	}

	return p.(*VectorABI[T])
}
