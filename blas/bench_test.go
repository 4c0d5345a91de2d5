// SPDX-License-Identifier: MIT

package blas_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvgsl/blas"
	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native/nativetest"
	"github.com/katalvlaran/lvgsl/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkF   float64
	sinkErr error
)

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			lib := vector.WithLibrary(nativetest.New().Library())
			x, _ := vector.NewZeroed[float64](n, lib)
			y, _ := vector.NewZeroed[float64](n, lib)
			defer x.Close()
			defer y.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF, sinkErr = blas.Dot(x, y)
			}
		})
	}
}

// BenchmarkGemmGuard isolates the check and borrow overhead on a 1x1 product.
func BenchmarkGemmGuard(b *testing.B) {
	b.ReportAllocs()
	lib := matrix.WithLibrary(nativetest.New().Library())
	a, _ := matrix.NewIdentity[float64](1, lib)
	c, _ := matrix.NewZeroed[float64](1, 1, lib)
	defer a.Close()
	defer c.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkErr = blas.Gemm(enums.NoTrans, enums.NoTrans, 1, a, a, 0, c)
	}
}
