// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
)

// Kind labels vector owners in errors and logs.
const Kind = "vector"

// Vector is an owned native vector of T.
type Vector[T native.Element] struct {
	own    *handle.Owner
	lib    *native.Library
	abi    *native.VectorABI[T]
	n      int
	stride int
}

// New allocates an uninitialized vector of length n (gsl_vector_alloc).
func New[T native.Element](n int, opts ...Option) (*Vector[T], error) {
	return alloc[T]("vector.New", n, false, opts)
}

// NewZeroed allocates a zero-filled vector of length n (gsl_vector_calloc).
func NewZeroed[T native.Element](n int, opts ...Option) (*Vector[T], error) {
	return alloc[T]("vector.NewZeroed", n, true, opts)
}

// FromSlice allocates a vector holding a copy of xs.
func FromSlice[T native.Element](xs []T, opts ...Option) (*Vector[T], error) {
	v, err := alloc[T]("vector.FromSlice", len(xs), false, opts)
	if err != nil {
		return nil, err
	}
	w, err := v.Exclusive()
	if err != nil {
		_ = v.Close()
		return nil, err
	}
	defer w.Release()
	if v.abi.Set == nil {
		_ = v.Close()
		return nil, native.Missing(v.lib, "vector.FromSlice")
	}
	for i, x := range xs {
		v.abi.Set(w.h, i, x)
	}

	return v, nil
}

func alloc[T native.Element](op string, n int, zeroed bool, opts []Option) (*Vector[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): length must be positive: %w", op, n, gslerr.ErrInvalid)
	}
	o := gatherOptions(opts)
	abi := native.VectorFor[T](o.lib)
	allocFn := abi.Alloc
	if zeroed {
		allocFn = abi.Calloc
	}
	if allocFn == nil || abi.Free == nil {
		return nil, native.Missing(o.lib, op)
	}

	h := allocFn(n)
	hopts := []handle.Option{handle.WithKind(Kind)}
	if o.logger != nil {
		hopts = append(hopts, handle.WithLogger(o.logger))
	}
	own, err := handle.Wrap(h, abi.Free, hopts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", op, n, err)
	}
	stride := 1
	if abi.Stride != nil {
		stride = abi.Stride(h)
	}

	return &Vector[T]{own: own, lib: o.lib, abi: abi, n: n, stride: stride}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.n }

// Stride returns the native element stride.
func (v *Vector[T]) Stride() int { return v.stride }

// Owner exposes the ownership guard for call-through packages.
func (v *Vector[T]) Owner() *handle.Owner { return v.own }

// Library returns the backend that allocated v.
func (v *Vector[T]) Library() *native.Library { return v.lib }

// Close releases the native vector once no view is live. Idempotent.
func (v *Vector[T]) Close() error { return v.own.Close() }

func (v *Vector[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("%s(%d): index out of range [0,%d): %w", op, i, v.n, gslerr.ErrInvalid)
	}

	return nil
}

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex("Vector.At", i); err != nil {
		return 0, err
	}
	r, err := v.Shared()
	if err != nil {
		return 0, err
	}
	defer r.Release()

	return r.At(i)
}

// Set assigns element i.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.checkIndex("Vector.Set", i); err != nil {
		return err
	}
	w, err := v.Exclusive()
	if err != nil {
		return err
	}
	defer w.Release()

	return w.Set(i, x)
}

// ToSlice copies the elements into a new slice.
func (v *Vector[T]) ToSlice() ([]T, error) {
	r, err := v.Shared()
	if err != nil {
		return nil, err
	}
	defer r.Release()

	return r.ToSlice()
}

// Fill sets every element to x (gsl_vector_set_all).
func (v *Vector[T]) Fill(x T) error {
	w, err := v.Exclusive()
	if err != nil {
		return err
	}
	defer w.Release()

	return w.Fill(x)
}

// Zero sets every element to zero (gsl_vector_set_zero).
func (v *Vector[T]) Zero() error {
	if v.abi.SetZero == nil {
		return native.Missing(v.lib, "Vector.Zero")
	}
	w, err := v.Exclusive()
	if err != nil {
		return err
	}
	defer w.Release()
	v.abi.SetZero(w.h)

	return nil
}

// CopyFrom copies src into v (gsl_vector_memcpy). Lengths must match.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if err := SameLibrary(v, src); err != nil {
		return fmt.Errorf("Vector.CopyFrom: %w", err)
	}
	if err := ValidateSameLen(v, src); err != nil {
		return fmt.Errorf("Vector.CopyFrom: %w", err)
	}
	if v.abi.Memcpy == nil {
		return native.Missing(v.lib, "Vector.CopyFrom")
	}
	var s handle.Scope
	hs := s.Shared(src.own)
	hd := s.Exclusive(v.own)
	defer s.Release()
	if err := s.Err(); err != nil {
		return fmt.Errorf("Vector.CopyFrom: %w", err)
	}

	return gslerr.FromCode(v.abi.Memcpy(hd, hs))
}

// String renders v as "[x0 x1 ...]", or a placeholder when not readable.
func (v *Vector[T]) String() string {
	xs, err := v.ToSlice()
	if err != nil {
		return fmt.Sprintf("vector(len=%d, %v)", v.n, v.own.State())
	}

	return fmt.Sprint(xs)
}
