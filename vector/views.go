// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
)

func releasedErrorf(op string) error {
	return fmt.Errorf("%s: view already released: %w", op, gslerr.ErrFault)
}

// Reader is a read borrow of a Vector.
type Reader[T native.Element] struct {
	v    *Vector[T]
	view *handle.SharedView
	h    native.Handle
}

// Shared takes a read borrow. Any number of Readers may be live at once.
func (v *Vector[T]) Shared() (*Reader[T], error) {
	sv, err := v.own.Shared()
	if err != nil {
		return nil, fmt.Errorf("Vector.Shared: %w", err)
	}

	return &Reader[T]{v: v, view: sv, h: sv.Handle()}, nil
}

// Len returns the vector length.
func (r *Reader[T]) Len() int { return r.v.n }

// Handle returns the borrowed native handle, native.Null after Release.
func (r *Reader[T]) Handle() native.Handle { return r.view.Handle() }

// At returns element i.
func (r *Reader[T]) At(i int) (T, error) {
	if err := r.v.checkIndex("Reader.At", i); err != nil {
		return 0, err
	}
	if r.Handle().IsNull() {
		return 0, releasedErrorf("Reader.At")
	}
	if r.v.abi.Get == nil {
		return 0, native.Missing(r.v.lib, "Reader.At")
	}

	return r.v.abi.Get(r.h, i), nil
}

// Get returns element i without returning an error.
// Panics if i is out of range, the view is released, or the backend has no getter.
func (r *Reader[T]) Get(i int) T {
	mustIndex(r.v, i, r.Handle())

	return r.v.abi.Get(r.h, i)
}

// ToSlice copies the elements into a new slice.
func (r *Reader[T]) ToSlice() ([]T, error) {
	if r.Handle().IsNull() {
		return nil, releasedErrorf("Reader.ToSlice")
	}
	if r.v.abi.Get == nil {
		return nil, native.Missing(r.v.lib, "Reader.ToSlice")
	}
	out := make([]T, r.v.n)
	for i := range out {
		out[i] = r.v.abi.Get(r.h, i)
	}

	return out, nil
}

// Release ends the borrow. Idempotent.
func (r *Reader[T]) Release() { r.view.Release() }

// Writer is the exclusive borrow of a Vector.
type Writer[T native.Element] struct {
	v    *Vector[T]
	view *handle.ExclusiveView
	h    native.Handle
}

// Exclusive takes the write borrow. Fails while any other view is live.
func (v *Vector[T]) Exclusive() (*Writer[T], error) {
	ev, err := v.own.Exclusive()
	if err != nil {
		return nil, fmt.Errorf("Vector.Exclusive: %w", err)
	}

	return &Writer[T]{v: v, view: ev, h: ev.Handle()}, nil
}

// Len returns the vector length.
func (w *Writer[T]) Len() int { return w.v.n }

// Handle returns the borrowed native handle, native.Null after Release.
func (w *Writer[T]) Handle() native.Handle { return w.view.Handle() }

// At returns element i.
func (w *Writer[T]) At(i int) (T, error) {
	if err := w.v.checkIndex("Writer.At", i); err != nil {
		return 0, err
	}
	if w.Handle().IsNull() {
		return 0, releasedErrorf("Writer.At")
	}
	if w.v.abi.Get == nil {
		return 0, native.Missing(w.v.lib, "Writer.At")
	}

	return w.v.abi.Get(w.h, i), nil
}

// Set assigns element i.
func (w *Writer[T]) Set(i int, x T) error {
	if err := w.v.checkIndex("Writer.Set", i); err != nil {
		return err
	}
	if w.Handle().IsNull() {
		return releasedErrorf("Writer.Set")
	}
	if w.v.abi.Set == nil {
		return native.Missing(w.v.lib, "Writer.Set")
	}
	w.v.abi.Set(w.h, i, x)

	return nil
}

// Put assigns element i without returning an error.
// Panics if i is out of range, the view is released, or the backend has no setter.
func (w *Writer[T]) Put(i int, x T) {
	mustIndex(w.v, i, w.Handle())
	w.v.abi.Set(w.h, i, x)
}

// Fill sets every element to x.
func (w *Writer[T]) Fill(x T) error {
	if w.Handle().IsNull() {
		return releasedErrorf("Writer.Fill")
	}
	if w.v.abi.SetAll == nil {
		return native.Missing(w.v.lib, "Writer.Fill")
	}
	w.v.abi.SetAll(w.h, x)

	return nil
}

// Release ends the borrow. Idempotent.
func (w *Writer[T]) Release() { w.view.Release() }

func mustIndex[T native.Element](v *Vector[T], i int, h native.Handle) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("vector: index %d out of range [0,%d)", i, v.n))
	}
	if h.IsNull() {
		panic("vector: use of released view")
	}
}
