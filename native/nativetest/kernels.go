// SPDX-License-Identifier: MIT

package nativetest

import "github.com/katalvlaran/lvgsl/native"

// Dense Level 2 and 3 kernels shared by the gsl_blas_* and cblas_* tables.
// Matrices are row-major blocks, vectors plain slices. Callers check shapes.

func gemv(a *block, t int32, alpha float64, x []float64, beta float64, y []float64) {
	m, n := opShape(a, t)
	for i := 0; i < m; i++ {
		s := 0.0
		for j := 0; j < n; j++ {
			s += opAt(a, t, i, j) * x[j]
		}
		y[i] = alpha*s + beta*y[i]
	}
}

func trmv(a *block, uplo, t, diag int32, x []float64) {
	m := triDense(a, uplo, t, diag)
	out := make([]float64, len(x))
	for i := range m {
		for j := range m[i] {
			out[i] += m[i][j] * x[j]
		}
	}
	copy(x, out)
}

func trsv(a *block, uplo, t, diag int32, x []float64) {
	lower := (uplo != cblasUpper) != transposed(t)
	solveTri(triDense(a, uplo, t, diag), lower, x)
}

func symv(a *block, uplo int32, alpha float64, x []float64, beta float64, y []float64) {
	for i := 0; i < a.rows; i++ {
		s := 0.0
		for j := 0; j < a.cols; j++ {
			s += symAt(a, uplo, i, j) * x[j]
		}
		y[i] = alpha*s + beta*y[i]
	}
}

func ger(a *block, alpha float64, x, y []float64) {
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			a.set(i, j, a.at(i, j)+alpha*x[i]*y[j])
		}
	}
}

func syr(a *block, uplo int32, alpha float64, x []float64) {
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if inTriangle(uplo, i, j) {
				a.set(i, j, a.at(i, j)+alpha*x[i]*x[j])
			}
		}
	}
}

func syr2(a *block, uplo int32, alpha float64, x, y []float64) {
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if inTriangle(uplo, i, j) {
				a.set(i, j, a.at(i, j)+alpha*(x[i]*y[j]+y[i]*x[j]))
			}
		}
	}
}

func gemm(ta, tb int32, alpha float64, a, b *block, beta float64, c *block) {
	m, k := opShape(a, ta)
	_, n := opShape(b, tb)
	out := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			s := 0.0
			for p := 0; p < k; p++ {
				s += opAt(a, ta, i, p) * opAt(b, tb, p, j)
			}
			out[i*n+j] = alpha*s + beta*c.at(i, j)
		}
	}
	copy(c.data, out)
}

func symm(side, uplo int32, alpha float64, a, b *block, beta float64, c *block) {
	out := make([]float64, c.rows*c.cols)
	for i := 0; i < c.rows; i++ {
		for j := 0; j < c.cols; j++ {
			s := 0.0
			for p := 0; p < a.rows; p++ {
				if side == cblasLeft {
					s += symAt(a, uplo, i, p) * b.at(p, j)
				} else {
					s += b.at(i, p) * symAt(a, uplo, p, j)
				}
			}
			out[i*c.cols+j] = alpha*s + beta*c.at(i, j)
		}
	}
	copy(c.data, out)
}

func trmm(side, uplo, t, diag int32, alpha float64, a, b *block) {
	m := triDense(a, uplo, t, diag)
	out := make([]float64, b.rows*b.cols)
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			s := 0.0
			for p := range m {
				if side == cblasLeft {
					s += m[i][p] * b.at(p, j)
				} else {
					s += b.at(i, p) * m[p][j]
				}
			}
			out[i*b.cols+j] = alpha * s
		}
	}
	copy(b.data, out)
}

func trsm(side, uplo, t, diag int32, alpha float64, a, b *block) {
	m := triDense(a, uplo, t, diag)
	lower := (uplo != cblasUpper) != transposed(t)
	if side == cblasLeft {
		col := make([]float64, b.rows)
		for j := 0; j < b.cols; j++ {
			for i := range col {
				col[i] = alpha * b.at(i, j)
			}
			solveTri(m, lower, col)
			for i := range col {
				b.set(i, j, col[i])
			}
		}
		return
	}
	mt := transposeDense(m)
	row := make([]float64, b.cols)
	for i := 0; i < b.rows; i++ {
		for j := range row {
			row[j] = alpha * b.at(i, j)
		}
		solveTri(mt, !lower, row)
		for j := range row {
			b.set(i, j, row[j])
		}
	}
}

func syrk(uplo, t int32, alpha float64, a *block, beta float64, c *block) {
	n, k := opShape(a, t)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !inTriangle(uplo, i, j) {
				continue
			}
			s := 0.0
			for p := 0; p < k; p++ {
				s += opAt(a, t, i, p) * opAt(a, t, j, p)
			}
			c.set(i, j, alpha*s+beta*c.at(i, j))
		}
	}
}

func syr2k(uplo, t int32, alpha float64, a, b *block, beta float64, c *block) {
	n, k := opShape(a, t)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !inTriangle(uplo, i, j) {
				continue
			}
			s := 0.0
			for p := 0; p < k; p++ {
				s += opAt(a, t, i, p)*opAt(b, t, j, p) + opAt(b, t, i, p)*opAt(a, t, j, p)
			}
			c.set(i, j, alpha*s+beta*c.at(i, j))
		}
	}
}

// rawIndex locates element (i, j) of a raw matrix with leading dimension ld.
func rawIndex(order int32, ld, i, j int) int {
	if order == cblasColMajor {
		return i + j*ld
	}

	return i*ld + j
}

// load copies a rows x cols raw matrix into a row-major block.
func load[T native.Float](order int32, rows, cols int, a []T, ld int) *block {
	b := &block{kind: "matrix", rows: rows, cols: cols, data: make([]float64, rows*cols)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			b.set(i, j, float64(a[rawIndex(order, ld, i, j)]))
		}
	}

	return b
}

// save writes b back into the raw matrix it was loaded from. Padding beyond
// the logical columns or rows is left untouched.
func save[T native.Float](b *block, order int32, a []T, ld int) {
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			a[rawIndex(order, ld, i, j)] = T(b.at(i, j))
		}
	}
}

// gather copies the n logical elements of a strided slice.
func gather[T native.Float](n int, x []T, inc int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(x[i*inc])
	}

	return v
}

func scatter[T native.Float](v []float64, x []T, inc int) {
	for i, e := range v {
		x[i*inc] = T(e)
	}
}
