// SPDX-License-Identifier: MIT

package cblas

import "github.com/katalvlaran/lvgsl/native"

// Impl binds the cblas_* routines of one Library for element type T.
type Impl[T native.Float] struct {
	lib *native.Library
	abi *native.CBLASABI[T]
}

// For returns the routines of lib for T. A nil lib means native.Default().
func For[T native.Float](lib *native.Library) Impl[T] {
	if lib == nil {
		lib = native.Default()
	}

	return Impl[T]{lib: lib, abi: native.CBLASFor[T](lib)}
}

// need panics with the ErrUnimplemented error when fn is missing.
func need[T native.Float](i Impl[T], op string, present bool) {
	if !present {
		panic(native.Missing(i.lib, op))
	}
}

// Dot returns xᵀy. Panics if the lengths differ.
func (i Impl[T]) Dot(x, y Strided[T]) T {
	n := sameLen("Dot", x, y)
	need(i, "cblas.Dot", i.abi.Dot != nil)

	return i.abi.Dot(n, x.Data, x.Inc, y.Data, y.Inc)
}

// Nrm2 returns ‖x‖₂.
func (i Impl[T]) Nrm2(x Strided[T]) T {
	n := x.Len()
	need(i, "cblas.Nrm2", i.abi.Nrm2 != nil)

	return i.abi.Nrm2(n, x.Data, x.Inc)
}

// Asum returns Σ|xᵢ|.
func (i Impl[T]) Asum(x Strided[T]) T {
	n := x.Len()
	need(i, "cblas.Asum", i.abi.Asum != nil)

	return i.abi.Asum(n, x.Data, x.Inc)
}

// Iamax returns the logical index of the first element of largest magnitude.
func (i Impl[T]) Iamax(x Strided[T]) int {
	n := x.Len()
	need(i, "cblas.Iamax", i.abi.Iamax != nil)

	return i.abi.Iamax(n, x.Data, x.Inc)
}

// Swap exchanges x and y element-wise.
func (i Impl[T]) Swap(x, y Strided[T]) {
	n := sameLen("Swap", x, y)
	need(i, "cblas.Swap", i.abi.Swap != nil)
	i.abi.Swap(n, x.Data, x.Inc, y.Data, y.Inc)
}

// Copy copies x into y.
func (i Impl[T]) Copy(x, y Strided[T]) {
	n := sameLen("Copy", x, y)
	need(i, "cblas.Copy", i.abi.Copy != nil)
	i.abi.Copy(n, x.Data, x.Inc, y.Data, y.Inc)
}

// Axpy computes y = alpha·x + y.
func (i Impl[T]) Axpy(alpha T, x, y Strided[T]) {
	n := sameLen("Axpy", x, y)
	need(i, "cblas.Axpy", i.abi.Axpy != nil)
	i.abi.Axpy(n, alpha, x.Data, x.Inc, y.Data, y.Inc)
}

// Scal computes x = alpha·x.
func (i Impl[T]) Scal(alpha T, x Strided[T]) {
	n := x.Len()
	need(i, "cblas.Scal", i.abi.Scal != nil)
	i.abi.Scal(n, alpha, x.Data, x.Inc)
}
