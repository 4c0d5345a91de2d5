// SPDX-License-Identifier: MIT

package cblas

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/native"
)

// Strided is a view of every Inc-th element of Data, starting at Data[0].
type Strided[T native.Float] struct {
	Data []T
	Inc  int
}

// Vec wraps data with stride 1.
func Vec[T native.Float](data []T) Strided[T] {
	return Strided[T]{Data: data, Inc: 1}
}

// Step wraps data with stride inc. It panics if inc is not positive.
func Step[T native.Float](data []T, inc int) Strided[T] {
	if inc <= 0 {
		panic(fmt.Sprintf("cblas: Step: increment %d must be positive", inc))
	}

	return Strided[T]{Data: data, Inc: inc}
}

// Len is the logical element count, ⌈len(Data)/Inc⌉.
func (s Strided[T]) Len() int {
	if s.Inc <= 0 {
		panic(fmt.Sprintf("cblas: increment %d must be positive", s.Inc))
	}

	return (len(s.Data) + s.Inc - 1) / s.Inc
}

// At returns the i-th logical element.
func (s Strided[T]) At(i int) T { return s.Data[i*s.Inc] }

func sameLen[T native.Float](op string, x, y Strided[T]) int {
	n, m := x.Len(), y.Len()
	if n != m {
		panic(fmt.Sprintf("cblas: %s: lengths %d and %d must be equal", op, n, m))
	}

	return n
}
