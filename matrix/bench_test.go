// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for matrix views over the fake backend.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvgsl/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkF    float64
	sinkRows [][]float64
)

func BenchmarkAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			_, lib := newFake(b)
			m, err := matrix.NewZeroed[float64](n, n, lib)
			if err != nil {
				b.Fatal(err)
			}
			defer m.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := m.At(i%n, (i/n)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = x
			}
		})
	}
}

func BenchmarkToRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			_, lib := newFake(b)
			m, err := matrix.NewIdentity[float64](n, lib)
			if err != nil {
				b.Fatal(err)
			}
			defer m.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				rows, err := m.ToRows()
				if err != nil {
					b.Fatal(err)
				}
				sinkRows = rows
			}
		})
	}
}
