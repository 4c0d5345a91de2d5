// SPDX-License-Identifier: MIT

package blas

import (
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/vector"
)

// Dot returns xᵀy.
func Dot[T native.Float](x, y *vector.Vector[T]) (T, error) {
	const op = "blas.Dot"
	if err := prelude(op, ops(x, y), vector.ValidateSameLen(x, y)); err != nil {
		return 0, err
	}
	abi := table[T](x.Library())
	if abi.Dot == nil {
		return 0, native.Missing(x.Library(), op)
	}
	var s handle.Scope
	hx, hy := s.Shared(x.Owner()), s.Shared(y.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return 0, wrap(op, err)
	}
	var r T

	return gslerr.Check(abi.Dot(hx, hy, &r), r)
}

// SDSDot returns alpha + xᵀy accumulated in double precision.
func SDSDot(alpha float32, x, y *vector.Vector[float32]) (float32, error) {
	const op = "blas.SDSDot"
	if err := prelude(op, ops(x, y), vector.ValidateSameLen(x, y)); err != nil {
		return 0, err
	}
	fn := x.Library().Mixed.SDSDot
	if fn == nil {
		return 0, native.Missing(x.Library(), op)
	}
	var s handle.Scope
	hx, hy := s.Shared(x.Owner()), s.Shared(y.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return 0, wrap(op, err)
	}
	var r float32

	return gslerr.Check(fn(alpha, hx, hy, &r), r)
}

// DSDot returns xᵀy of float32 vectors as a float64.
func DSDot(x, y *vector.Vector[float32]) (float64, error) {
	const op = "blas.DSDot"
	if err := prelude(op, ops(x, y), vector.ValidateSameLen(x, y)); err != nil {
		return 0, err
	}
	fn := x.Library().Mixed.DSDot
	if fn == nil {
		return 0, native.Missing(x.Library(), op)
	}
	var s handle.Scope
	hx, hy := s.Shared(x.Owner()), s.Shared(y.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return 0, wrap(op, err)
	}
	var r float64

	return gslerr.Check(fn(hx, hy, &r), r)
}

// reduce runs a single-operand read-only reduction.
func reduce[T native.Float, R any](op string, x *vector.Vector[T], fn func(native.Handle) R) (R, error) {
	var zero R
	if fn == nil {
		return zero, native.Missing(x.Library(), op)
	}
	r, err := x.Shared()
	if err != nil {
		return zero, wrap(op, err)
	}
	defer r.Release()

	return fn(r.Handle()), nil
}

// Nrm2 returns the Euclidean norm ‖x‖₂.
func Nrm2[T native.Float](x *vector.Vector[T]) (T, error) {
	return reduce("blas.Nrm2", x, table[T](x.Library()).Nrm2)
}

// Asum returns Σ|xᵢ|.
func Asum[T native.Float](x *vector.Vector[T]) (T, error) {
	return reduce("blas.Asum", x, table[T](x.Library()).Asum)
}

// Iamax returns the index of the first element of largest magnitude.
func Iamax[T native.Float](x *vector.Vector[T]) (int, error) {
	return reduce("blas.Iamax", x, table[T](x.Library()).Iamax)
}

// pair runs a two-vector routine with x borrowed per xExclusive and y exclusive.
func pair[T native.Float](op string, x, y *vector.Vector[T], xExclusive bool,
	fn func(lib *native.BLASABI[T]) func(hx, hy native.Handle) native.Status) error {
	if err := prelude(op, ops(x, y), vector.ValidateSameLen(x, y)); err != nil {
		return err
	}
	call := fn(table[T](x.Library()))
	if call == nil {
		return native.Missing(x.Library(), op)
	}
	var s handle.Scope
	var hx native.Handle
	if xExclusive {
		hx = s.Exclusive(x.Owner())
	} else {
		hx = s.Shared(x.Owner())
	}
	hy := s.Exclusive(y.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(call(hx, hy))
}

// Swap exchanges the elements of x and y.
func Swap[T native.Float](x, y *vector.Vector[T]) error {
	return pair("blas.Swap", x, y, true, func(l *native.BLASABI[T]) func(native.Handle, native.Handle) native.Status {
		return l.Swap
	})
}

// Copy copies x into y.
func Copy[T native.Float](x, y *vector.Vector[T]) error {
	return pair("blas.Copy", x, y, false, func(l *native.BLASABI[T]) func(native.Handle, native.Handle) native.Status {
		return l.Copy
	})
}

// Axpy computes y = alpha·x + y.
func Axpy[T native.Float](alpha T, x, y *vector.Vector[T]) error {
	return pair("blas.Axpy", x, y, false, func(l *native.BLASABI[T]) func(native.Handle, native.Handle) native.Status {
		if l.Axpy == nil {
			return nil
		}
		return func(hx, hy native.Handle) native.Status { return l.Axpy(alpha, hx, hy) }
	})
}

// Scal computes x = alpha·x.
func Scal[T native.Float](alpha T, x *vector.Vector[T]) error {
	const op = "blas.Scal"
	abi := table[T](x.Library())
	if abi.Scal == nil {
		return native.Missing(x.Library(), op)
	}
	w, err := x.Exclusive()
	if err != nil {
		return wrap(op, err)
	}
	defer w.Release()
	abi.Scal(alpha, w.Handle())

	return nil
}

// Rot applies the Givens rotation (xᵢ, yᵢ) = (c·xᵢ + s·yᵢ, −s·xᵢ + c·yᵢ).
func Rot[T native.Float](x, y *vector.Vector[T], c, s T) error {
	return pair("blas.Rot", x, y, true, func(l *native.BLASABI[T]) func(native.Handle, native.Handle) native.Status {
		if l.Rot == nil {
			return nil
		}
		return func(hx, hy native.Handle) native.Status { return l.Rot(hx, hy, c, s) }
	})
}

// Rotm applies the modified Givens transformation described by p
// (p[0] is the flag, p[1:] are h11, h21, h12, h22).
func Rotm[T native.Float](x, y *vector.Vector[T], p [5]T) error {
	return pair("blas.Rotm", x, y, true, func(l *native.BLASABI[T]) func(native.Handle, native.Handle) native.Status {
		if l.Rotm == nil {
			return nil
		}
		return func(hx, hy native.Handle) native.Status { return l.Rotm(hx, hy, &p) }
	})
}

// Givens is the result of Rotg: [c s; −s c]·[a b]ᵀ = [r 0]ᵀ.
// Z is the reconstruction value defined by the reference BLAS.
type Givens[T native.Float] struct {
	C, S, R, Z T
}

// Rotg computes the Givens rotation that zeroes (a, b). It needs no operands,
// but binds to lib for the native routine. A nil lib means native.Default().
func Rotg[T native.Float](lib *native.Library, a, b T) (Givens[T], error) {
	const op = "blas.Rotg"
	lib = resolve(lib)
	abi := table[T](lib)
	if abi.Rotg == nil {
		return Givens[T]{}, native.Missing(lib, op)
	}
	var c, s T
	st := abi.Rotg(&a, &b, &c, &s)

	return gslerr.Check(st, Givens[T]{C: c, S: s, R: a, Z: b})
}

// Rotmg computes the modified Givens transformation that zeroes the second
// component of (√d1·b1, √d2·b2) and returns its parameter array.
// A nil lib means native.Default().
func Rotmg[T native.Float](lib *native.Library, d1, d2, b1, b2 T) ([5]T, error) {
	const op = "blas.Rotmg"
	lib = resolve(lib)
	abi := table[T](lib)
	if abi.Rotmg == nil {
		return [5]T{}, native.Missing(lib, op)
	}
	var p [5]T

	return gslerr.Check(abi.Rotmg(&d1, &d2, &b1, b2, &p), p)
}
