// SPDX-License-Identifier: MIT

// Package matrix: the owned matrix type and the read-only Dims contract shared
// with validators and call-through packages.
package matrix

import (
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
)

// Kind labels matrix owners in errors and logs.
const Kind = "matrix"

// Dims is the shape contract validators work on.
type Dims interface {
	Rows() int
	Cols() int
}

// Matrix is an owned native matrix of T, stored row-major with row stride tda.
type Matrix[T native.Float] struct {
	own  *handle.Owner
	lib  *native.Library
	abi  *native.MatrixABI[T]
	rows int
	cols int
	tda  int
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (int, int) { return m.rows, m.cols }

// TDA returns the native row stride in elements.
func (m *Matrix[T]) TDA() int { return m.tda }

// IsSquare reports rows == cols.
func (m *Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// Owner exposes the ownership guard for call-through packages.
func (m *Matrix[T]) Owner() *handle.Owner { return m.own }

// Library returns the backend that allocated m.
func (m *Matrix[T]) Library() *native.Library { return m.lib }

// Close releases the native matrix once no view is live. Idempotent.
func (m *Matrix[T]) Close() error { return m.own.Close() }
