// SPDX-License-Identifier: MIT

//go:build cgo && gsl

package cgsl

/*
#include "cgsl.h"
*/
import "C"

import (
	"unsafe"

	"github.com/katalvlaran/lvgsl/native"
)

func vectorF32() native.VectorABI[float32] {
	return native.VectorABI[float32]{
		Alloc:   func(n int) native.Handle { return wrap(unsafe.Pointer(C.gsl_vector_float_alloc(sz(n)))) },
		Calloc:  func(n int) native.Handle { return wrap(unsafe.Pointer(C.gsl_vector_float_calloc(sz(n)))) },
		Free:    func(h native.Handle) { C.gsl_vector_float_free(fv(h)) },
		Len:     func(h native.Handle) int { return int(fv(h).size) },
		Stride:  func(h native.Handle) int { return int(fv(h).stride) },
		Get:     func(h native.Handle, i int) float32 { return float32(C.gsl_vector_float_get(fv(h), sz(i))) },
		Set:     func(h native.Handle, i int, v float32) { C.gsl_vector_float_set(fv(h), sz(i), C.float(v)) },
		SetAll:  func(h native.Handle, v float32) { C.gsl_vector_float_set_all(fv(h), C.float(v)) },
		SetZero: func(h native.Handle) { C.gsl_vector_float_set_zero(fv(h)) },
		Memcpy:  func(dst, src native.Handle) native.Status { return status(C.gsl_vector_float_memcpy(fv(dst), fv(src))) },
	}
}

func vectorF64() native.VectorABI[float64] {
	return native.VectorABI[float64]{
		Alloc:   func(n int) native.Handle { return wrap(unsafe.Pointer(C.gsl_vector_alloc(sz(n)))) },
		Calloc:  func(n int) native.Handle { return wrap(unsafe.Pointer(C.gsl_vector_calloc(sz(n)))) },
		Free:    func(h native.Handle) { C.gsl_vector_free(dv(h)) },
		Len:     func(h native.Handle) int { return int(dv(h).size) },
		Stride:  func(h native.Handle) int { return int(dv(h).stride) },
		Get:     func(h native.Handle, i int) float64 { return float64(C.gsl_vector_get(dv(h), sz(i))) },
		Set:     func(h native.Handle, i int, v float64) { C.gsl_vector_set(dv(h), sz(i), C.double(v)) },
		SetAll:  func(h native.Handle, v float64) { C.gsl_vector_set_all(dv(h), C.double(v)) },
		SetZero: func(h native.Handle) { C.gsl_vector_set_zero(dv(h)) },
		Memcpy:  func(dst, src native.Handle) native.Status { return status(C.gsl_vector_memcpy(dv(dst), dv(src))) },
	}
}

func vectorI32() native.VectorABI[int32] {
	return native.VectorABI[int32]{
		Alloc:   func(n int) native.Handle { return wrap(unsafe.Pointer(C.gsl_vector_int_alloc(sz(n)))) },
		Calloc:  func(n int) native.Handle { return wrap(unsafe.Pointer(C.gsl_vector_int_calloc(sz(n)))) },
		Free:    func(h native.Handle) { C.gsl_vector_int_free(iv(h)) },
		Len:     func(h native.Handle) int { return int(iv(h).size) },
		Stride:  func(h native.Handle) int { return int(iv(h).stride) },
		Get:     func(h native.Handle, i int) int32 { return int32(C.gsl_vector_int_get(iv(h), sz(i))) },
		Set:     func(h native.Handle, i int, v int32) { C.gsl_vector_int_set(iv(h), sz(i), C.int(v)) },
		SetAll:  func(h native.Handle, v int32) { C.gsl_vector_int_set_all(iv(h), C.int(v)) },
		SetZero: func(h native.Handle) { C.gsl_vector_int_set_zero(iv(h)) },
		Memcpy:  func(dst, src native.Handle) native.Status { return status(C.gsl_vector_int_memcpy(iv(dst), iv(src))) },
	}
}

func matrixF32() native.MatrixABI[float32] {
	return native.MatrixABI[float32]{
		Alloc:  func(r, c int) native.Handle { return wrap(unsafe.Pointer(C.gsl_matrix_float_alloc(sz(r), sz(c)))) },
		Calloc: func(r, c int) native.Handle { return wrap(unsafe.Pointer(C.gsl_matrix_float_calloc(sz(r), sz(c)))) },
		Free:   func(h native.Handle) { C.gsl_matrix_float_free(fm(h)) },
		Size: func(h native.Handle) (int, int, int) {
			m := fm(h)
			return int(m.size1), int(m.size2), int(m.tda)
		},
		Get:              func(h native.Handle, i, j int) float32 { return float32(C.gsl_matrix_float_get(fm(h), sz(i), sz(j))) },
		Set:              func(h native.Handle, i, j int, v float32) { C.gsl_matrix_float_set(fm(h), sz(i), sz(j), C.float(v)) },
		SetAll:           func(h native.Handle, v float32) { C.gsl_matrix_float_set_all(fm(h), C.float(v)) },
		SetZero:          func(h native.Handle) { C.gsl_matrix_float_set_zero(fm(h)) },
		SetIdentity:      func(h native.Handle) { C.gsl_matrix_float_set_identity(fm(h)) },
		Memcpy:           func(dst, src native.Handle) native.Status { return status(C.gsl_matrix_float_memcpy(fm(dst), fm(src))) },
		TransposeInPlace: func(h native.Handle) native.Status { return status(C.gsl_matrix_float_transpose(fm(h))) },
	}
}

func matrixF64() native.MatrixABI[float64] {
	return native.MatrixABI[float64]{
		Alloc:  func(r, c int) native.Handle { return wrap(unsafe.Pointer(C.gsl_matrix_alloc(sz(r), sz(c)))) },
		Calloc: func(r, c int) native.Handle { return wrap(unsafe.Pointer(C.gsl_matrix_calloc(sz(r), sz(c)))) },
		Free:   func(h native.Handle) { C.gsl_matrix_free(dm(h)) },
		Size: func(h native.Handle) (int, int, int) {
			m := dm(h)
			return int(m.size1), int(m.size2), int(m.tda)
		},
		Get:              func(h native.Handle, i, j int) float64 { return float64(C.gsl_matrix_get(dm(h), sz(i), sz(j))) },
		Set:              func(h native.Handle, i, j int, v float64) { C.gsl_matrix_set(dm(h), sz(i), sz(j), C.double(v)) },
		SetAll:           func(h native.Handle, v float64) { C.gsl_matrix_set_all(dm(h), C.double(v)) },
		SetZero:          func(h native.Handle) { C.gsl_matrix_set_zero(dm(h)) },
		SetIdentity:      func(h native.Handle) { C.gsl_matrix_set_identity(dm(h)) },
		Memcpy:           func(dst, src native.Handle) native.Status { return status(C.gsl_matrix_memcpy(dm(dst), dm(src))) },
		TransposeInPlace: func(h native.Handle) native.Status { return status(C.gsl_matrix_transpose(dm(h))) },
	}
}
