// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
)

// String formatting tokens.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// New allocates an uninitialized rows×cols matrix (gsl_matrix_alloc).
func New[T native.Float](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return alloc[T]("matrix.New", rows, cols, false, opts)
}

// NewZeroed allocates a zero-filled rows×cols matrix (gsl_matrix_calloc).
func NewZeroed[T native.Float](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return alloc[T]("matrix.NewZeroed", rows, cols, true, opts)
}

// NewIdentity allocates an n×n identity matrix.
func NewIdentity[T native.Float](n int, opts ...Option) (*Matrix[T], error) {
	m, err := alloc[T]("matrix.NewIdentity", n, n, false, opts)
	if err != nil {
		return nil, err
	}
	if err = m.SetIdentity(); err != nil {
		_ = m.Close()
		return nil, err
	}

	return m, nil
}

// FromRows allocates a matrix holding a copy of rows.
//
// Implementation:
//   - Stage 1: validate a non-empty rectangular input (ragged → ErrDimensionMismatch).
//   - Stage 2: allocate, then write every element under one exclusive borrow.
func FromRows[T native.Float](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ErrBadShape, "matrix.FromRows: no rows")
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, matrixErrorf(ErrDimensionMismatch, "matrix.FromRows: row %d has %d columns, want %d", i, len(r), cols)
		}
	}
	m, err := alloc[T]("matrix.FromRows", len(rows), cols, false, opts)
	if err != nil {
		return nil, err
	}
	if m.abi.Set == nil {
		_ = m.Close()
		return nil, native.Missing(m.lib, "matrix.FromRows")
	}
	w, err := m.Exclusive()
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	defer w.Release()
	for i, r := range rows {
		for j, x := range r {
			m.abi.Set(w.h, i, j, x)
		}
	}

	return m, nil
}

func alloc[T native.Float](op string, rows, cols int, zeroed bool, opts []Option) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ErrBadShape, "%s(%d,%d)", op, rows, cols)
	}
	o := gatherOptions(opts)
	abi := native.MatrixFor[T](o.lib)
	allocFn := abi.Alloc
	if zeroed {
		allocFn = abi.Calloc
	}
	if allocFn == nil || abi.Free == nil {
		return nil, native.Missing(o.lib, op)
	}

	h := allocFn(rows, cols)
	hopts := []handle.Option{handle.WithKind(Kind)}
	if o.logger != nil {
		hopts = append(hopts, handle.WithLogger(o.logger))
	}
	own, err := handle.Wrap(h, abi.Free, hopts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", op, rows, cols, err)
	}
	tda := cols
	if abi.Size != nil {
		_, _, tda = abi.Size(h)
	}

	return &Matrix[T]{own: own, lib: o.lib, abi: abi, rows: rows, cols: cols, tda: tda}, nil
}

func (m *Matrix[T]) checkIndex(op string, i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return matrixErrorf(ErrOutOfRange, "%s(%d,%d) on %dx%d", op, i, j, m.rows, m.cols)
	}

	return nil
}

// At returns element (i, j).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := m.checkIndex("Matrix.At", i, j); err != nil {
		return 0, err
	}
	r, err := m.Shared()
	if err != nil {
		return 0, err
	}
	defer r.Release()

	return r.At(i, j)
}

// Set assigns element (i, j).
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := m.checkIndex("Matrix.Set", i, j); err != nil {
		return err
	}
	w, err := m.Exclusive()
	if err != nil {
		return err
	}
	defer w.Release()

	return w.Set(i, j, x)
}

// exclusiveCall runs fn under a transient write borrow.
func (m *Matrix[T]) exclusiveCall(op string, present bool, fn func(h native.Handle) native.Status) error {
	if !present {
		return native.Missing(m.lib, op)
	}
	w, err := m.Exclusive()
	if err != nil {
		return err
	}
	defer w.Release()

	return gslerr.FromCode(fn(w.h))
}

// Fill sets every element to x (gsl_matrix_set_all).
func (m *Matrix[T]) Fill(x T) error {
	return m.exclusiveCall("Matrix.Fill", m.abi.SetAll != nil, func(h native.Handle) native.Status {
		m.abi.SetAll(h, x)
		return 0
	})
}

// Zero sets every element to zero (gsl_matrix_set_zero).
func (m *Matrix[T]) Zero() error {
	return m.exclusiveCall("Matrix.Zero", m.abi.SetZero != nil, func(h native.Handle) native.Status {
		m.abi.SetZero(h)
		return 0
	})
}

// SetIdentity sets the diagonal to one and everything else to zero. Works for
// rectangular matrices too (gsl_matrix_set_identity).
func (m *Matrix[T]) SetIdentity() error {
	return m.exclusiveCall("Matrix.SetIdentity", m.abi.SetIdentity != nil, func(h native.Handle) native.Status {
		m.abi.SetIdentity(h)
		return 0
	})
}

// TransposeInPlace transposes a square matrix (gsl_matrix_transpose).
// A non-square matrix fails with ErrNonSquare before the native call.
func (m *Matrix[T]) TransposeInPlace() error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("Matrix.TransposeInPlace: %w", err)
	}

	return m.exclusiveCall("Matrix.TransposeInPlace", m.abi.TransposeInPlace != nil, m.abi.TransposeInPlace)
}

// CopyFrom copies src into m (gsl_matrix_memcpy). Shapes must match.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(ErrNilMatrix, "Matrix.CopyFrom")
	}
	if src.lib != m.lib {
		return fmt.Errorf("Matrix.CopyFrom: backend %q, want %q: %w", src.lib.Name, m.lib.Name, gslerr.ErrInvalid)
	}
	if err := ValidateSameShape(m, src); err != nil {
		return fmt.Errorf("Matrix.CopyFrom: %w", err)
	}
	if m.abi.Memcpy == nil {
		return native.Missing(m.lib, "Matrix.CopyFrom")
	}
	var s handle.Scope
	hs := s.Shared(src.own)
	hd := s.Exclusive(m.own)
	defer s.Release()
	if err := s.Err(); err != nil {
		return fmt.Errorf("Matrix.CopyFrom: %w", err)
	}

	return gslerr.FromCode(m.abi.Memcpy(hd, hs))
}

// ToRows copies the elements into a new [][]T.
func (m *Matrix[T]) ToRows() ([][]T, error) {
	r, err := m.Shared()
	if err != nil {
		return nil, err
	}
	defer r.Release()

	return r.ToRows()
}

// String renders one bracketed row per line, or a placeholder when the
// matrix cannot be read (closed or exclusively borrowed).
func (m *Matrix[T]) String() string {
	rows, err := m.ToRows()
	if err != nil {
		return fmt.Sprintf("matrix(%dx%d, %v)", m.rows, m.cols, m.own.State())
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(_fmtRowOpen)
		for j, x := range row {
			b.WriteString(fmt.Sprintf("%g", x))
			if j+1 < len(row) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
