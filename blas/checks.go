// SPDX-License-Identifier: MIT

package blas

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/vector"
)

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// opShape returns the shape of op(a).
func opShape(a matrix.Dims, t enums.Transpose) (int, int) {
	if t.IsTransposed() {
		return a.Cols(), a.Rows()
	}

	return a.Rows(), a.Cols()
}

// prelude runs the library check followed by the shape checks.
func prelude(op string, operands []vector.Shaped, checks ...error) error {
	if err := vector.SameLibrary(operands[0], operands[1:]...); err != nil {
		return wrap(op, err)
	}
	for _, err := range checks {
		if err != nil {
			return wrap(op, err)
		}
	}

	return nil
}

// resolve maps a nil lib to native.Default().
func resolve(lib *native.Library) *native.Library {
	if lib == nil {
		return native.Default()
	}

	return lib
}

// table returns the BLAS entries for T of lib.
func table[T native.Float](lib *native.Library) *native.BLASABI[T] {
	return native.BLASFor[T](resolve(lib))
}

func ops(s ...vector.Shaped) []vector.Shaped { return s }
