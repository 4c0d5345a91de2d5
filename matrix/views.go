// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
)

func releasedErrorf(op string) error {
	return fmt.Errorf("%s: view already released: %w", op, gslerr.ErrFault)
}

// Reader is a read borrow of a Matrix.
type Reader[T native.Float] struct {
	m    *Matrix[T]
	view *handle.SharedView
	h    native.Handle
}

// Shared takes a read borrow.
func (m *Matrix[T]) Shared() (*Reader[T], error) {
	sv, err := m.own.Shared()
	if err != nil {
		return nil, fmt.Errorf("Matrix.Shared: %w", err)
	}

	return &Reader[T]{m: m, view: sv, h: sv.Handle()}, nil
}

// Rows returns the row count.
func (r *Reader[T]) Rows() int { return r.m.rows }

// Cols returns the column count.
func (r *Reader[T]) Cols() int { return r.m.cols }

// Handle returns the borrowed native handle, native.Null after Release.
func (r *Reader[T]) Handle() native.Handle { return r.view.Handle() }

// At returns element (i, j).
func (r *Reader[T]) At(i, j int) (T, error) {
	if err := r.m.checkIndex("Reader.At", i, j); err != nil {
		return 0, err
	}
	if r.Handle().IsNull() {
		return 0, releasedErrorf("Reader.At")
	}
	if r.m.abi.Get == nil {
		return 0, native.Missing(r.m.lib, "Reader.At")
	}

	return r.m.abi.Get(r.h, i, j), nil
}

// Get returns element (i, j). Panics on a bad index or a released view.
func (r *Reader[T]) Get(i, j int) T {
	mustIndex(r.m, i, j, r.Handle())

	return r.m.abi.Get(r.h, i, j)
}

// ToRows copies the elements into a new [][]T.
func (r *Reader[T]) ToRows() ([][]T, error) {
	if r.Handle().IsNull() {
		return nil, releasedErrorf("Reader.ToRows")
	}
	if r.m.abi.Get == nil {
		return nil, native.Missing(r.m.lib, "Reader.ToRows")
	}
	out := make([][]T, r.m.rows)
	for i := range out {
		out[i] = make([]T, r.m.cols)
		for j := range out[i] {
			out[i][j] = r.m.abi.Get(r.h, i, j)
		}
	}

	return out, nil
}

// Release ends the borrow. Idempotent.
func (r *Reader[T]) Release() { r.view.Release() }

// Writer is the exclusive borrow of a Matrix.
type Writer[T native.Float] struct {
	m    *Matrix[T]
	view *handle.ExclusiveView
	h    native.Handle
}

// Exclusive takes the write borrow.
func (m *Matrix[T]) Exclusive() (*Writer[T], error) {
	ev, err := m.own.Exclusive()
	if err != nil {
		return nil, fmt.Errorf("Matrix.Exclusive: %w", err)
	}

	return &Writer[T]{m: m, view: ev, h: ev.Handle()}, nil
}

// Rows returns the row count.
func (w *Writer[T]) Rows() int { return w.m.rows }

// Cols returns the column count.
func (w *Writer[T]) Cols() int { return w.m.cols }

// Handle returns the borrowed native handle, native.Null after Release.
func (w *Writer[T]) Handle() native.Handle { return w.view.Handle() }

// At returns element (i, j).
func (w *Writer[T]) At(i, j int) (T, error) {
	if err := w.m.checkIndex("Writer.At", i, j); err != nil {
		return 0, err
	}
	if w.Handle().IsNull() {
		return 0, releasedErrorf("Writer.At")
	}
	if w.m.abi.Get == nil {
		return 0, native.Missing(w.m.lib, "Writer.At")
	}

	return w.m.abi.Get(w.h, i, j), nil
}

// Set assigns element (i, j).
func (w *Writer[T]) Set(i, j int, x T) error {
	if err := w.m.checkIndex("Writer.Set", i, j); err != nil {
		return err
	}
	if w.Handle().IsNull() {
		return releasedErrorf("Writer.Set")
	}
	if w.m.abi.Set == nil {
		return native.Missing(w.m.lib, "Writer.Set")
	}
	w.m.abi.Set(w.h, i, j, x)

	return nil
}

// Put assigns element (i, j). Panics on a bad index or a released view.
func (w *Writer[T]) Put(i, j int, x T) {
	mustIndex(w.m, i, j, w.Handle())
	w.m.abi.Set(w.h, i, j, x)
}

// Release ends the borrow. Idempotent.
func (w *Writer[T]) Release() { w.view.Release() }

func mustIndex[T native.Float](m *Matrix[T], i, j int, h native.Handle) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
	if h.IsNull() {
		panic("matrix: use of released view")
	}
}
