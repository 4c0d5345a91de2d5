// SPDX-License-Identifier: MIT

//go:build cgo && gsl

package cgsl

/*
#cgo pkg-config: gsl
#include "cgsl.h"
*/
import "C"

import (
	"unsafe"

	"github.com/katalvlaran/lvgsl/native"
)

// Name labels this backend in errors and logs.
const Name = "cgsl"

func init() {
	native.SetDefault(New())
}

// New returns a Library wired to the linked GSL.
func New() *native.Library {
	return &native.Library{
		Name:      Name,
		Version:   Version(),
		VectorF32: vectorF32(),
		VectorF64: vectorF64(),
		VectorI32: vectorI32(),
		MatrixF32: matrixF32(),
		MatrixF64: matrixF64(),
		BLASF32:   blasF32(),
		BLASF64:   blasF64(),
		Mixed:     mixed(),
		CBLASF32:  cblasF32(),
		CBLASF64:  cblasF64(),
		Eigen:     eigen(),
		Filter:    filter(),
		Multifit:  multifit(),
		Multiroot: multiroot(),
		Poly:      poly(),
		SF:        sf(),
		Mathieu:   mathieu(),
		ErrorHook: errorHook(),
	}
}

// Version returns the linked GSL version string.
func Version() string { return C.GoString(C.gsl_version) }

func wrap(p unsafe.Pointer) native.Handle { return native.Handle(uintptr(p)) }

func dv(h native.Handle) *C.gsl_vector { return (*C.gsl_vector)(unsafe.Pointer(h)) }
func fv(h native.Handle) *C.gsl_vector_float { return (*C.gsl_vector_float)(unsafe.Pointer(h)) }
func iv(h native.Handle) *C.gsl_vector_int { return (*C.gsl_vector_int)(unsafe.Pointer(h)) }
func dm(h native.Handle) *C.gsl_matrix { return (*C.gsl_matrix)(unsafe.Pointer(h)) }
func fm(h native.Handle) *C.gsl_matrix_float { return (*C.gsl_matrix_float)(unsafe.Pointer(h)) }
func status(c C.int) native.Status { return native.Status(c) }
func sz(n int) C.size_t { return C.size_t(n) }

// dp returns the address of x[0], or nil for an empty slice.
func dp(x []float64) *C.double {
	if len(x) == 0 {
		return nil
	}

	return (*C.double)(unsafe.Pointer(&x[0]))
}

func fp(x []float32) *C.float {
	if len(x) == 0 {
		return nil
	}

	return (*C.float)(unsafe.Pointer(&x[0]))
}

func result(r *native.SFResult) *C.gsl_sf_result { return (*C.gsl_sf_result)(unsafe.Pointer(r)) }
