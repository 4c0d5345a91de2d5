// SPDX-License-Identifier: MIT

package nativetest

import (
	"math"

	"github.com/katalvlaran/lvgsl/native"
)

// CBLAS enum values the fake interprets.
const (
	cblasColMajor = 102
	cblasNoTrans  = 111
	cblasUpper    = 121
	cblasUnit     = 132
	cblasLeft     = 141
)

func transposed(t int32) bool { return t != cblasNoTrans }

// opShape returns the shape of op(a).
func opShape(a *block, t int32) (int, int) {
	if transposed(t) {
		return a.cols, a.rows
	}

	return a.rows, a.cols
}

// opAt reads op(a)[i][j].
func opAt(a *block, t int32, i, j int) float64 {
	if transposed(t) {
		return a.at(j, i)
	}

	return a.at(i, j)
}

func inTriangle(uplo int32, i, j int) bool {
	if uplo == cblasUpper {
		return i <= j
	}

	return i >= j
}

// symAt reads the symmetric matrix stored in the uplo triangle of a.
func symAt(a *block, uplo int32, i, j int) float64 {
	if inTriangle(uplo, i, j) {
		return a.at(i, j)
	}

	return a.at(j, i)
}

// triDense expands op(T) into a dense n x n matrix, where T is the uplo
// triangle of a with the diagonal taken as one when diag is Unit.
func triDense(a *block, uplo, t, diag int32) [][]float64 {
	n := a.rows
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			r, c := i, j
			if transposed(t) {
				r, c = j, i
			}
			switch {
			case r == c && diag == cblasUnit:
				m[i][j] = 1
			case inTriangle(uplo, r, c):
				m[i][j] = a.at(r, c)
			}
		}
	}

	return m
}

// solveTri solves m x = b in place for a lower or upper triangular m.
func solveTri(m [][]float64, lower bool, b []float64) {
	n := len(b)
	if lower {
		for i := 0; i < n; i++ {
			s := b[i]
			for j := 0; j < i; j++ {
				s -= m[i][j] * b[j]
			}
			b[i] = s / m[i][i]
		}
		return
	}
	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for j := i + 1; j < n; j++ {
			s -= m[i][j] * b[j]
		}
		b[i] = s / m[i][i]
	}
}

func transposeDense(m [][]float64) [][]float64 {
	n := len(m)
	t := make([][]float64, n)
	for i := range t {
		t[i] = make([]float64, n)
		for j := range t[i] {
			t[i][j] = m[j][i]
		}
	}

	return t
}

func blasTable[T native.Float](f *Fake) native.BLASABI[T] {
	sameLen := func(op string, x, y *block) native.Status {
		if x.rows != y.rows {
			return f.Raise(op+": invalid length", codeBadLength)
		}
		return 0
	}

	return native.BLASABI[T]{
		Dot: func(x, y native.Handle, r *T) native.Status {
			if st := f.record("blas.Dot"); st != 0 {
				return st
			}
			xs, ys := f.get(x), f.get(y)
			if st := sameLen("dot", xs, ys); st != 0 {
				return st
			}
			s := 0.0
			for i := range xs.data {
				s += xs.data[i] * ys.data[i]
			}
			*r = T(s)
			return 0
		},
		Nrm2: func(x native.Handle) T {
			f.record("blas.Nrm2")
			s := 0.0
			for _, v := range f.get(x).data {
				s += v * v
			}
			return T(math.Sqrt(s))
		},
		Asum: func(x native.Handle) T {
			f.record("blas.Asum")
			s := 0.0
			for _, v := range f.get(x).data {
				s += math.Abs(v)
			}
			return T(s)
		},
		Iamax: func(x native.Handle) int {
			f.record("blas.Iamax")
			best, idx := -1.0, 0
			for i, v := range f.get(x).data {
				if math.Abs(v) > best {
					best, idx = math.Abs(v), i
				}
			}
			return idx
		},
		Swap: func(x, y native.Handle) native.Status {
			if st := f.record("blas.Swap"); st != 0 {
				return st
			}
			xs, ys := f.get(x), f.get(y)
			if st := sameLen("swap", xs, ys); st != 0 {
				return st
			}
			for i := range xs.data {
				xs.data[i], ys.data[i] = ys.data[i], xs.data[i]
			}
			return 0
		},
		Copy: func(x, y native.Handle) native.Status {
			if st := f.record("blas.Copy"); st != 0 {
				return st
			}
			xs, ys := f.get(x), f.get(y)
			if st := sameLen("copy", xs, ys); st != 0 {
				return st
			}
			copy(ys.data, xs.data)
			return 0
		},
		Axpy: func(alpha T, x, y native.Handle) native.Status {
			if st := f.record("blas.Axpy"); st != 0 {
				return st
			}
			xs, ys := f.get(x), f.get(y)
			if st := sameLen("axpy", xs, ys); st != 0 {
				return st
			}
			for i := range ys.data {
				ys.data[i] += float64(alpha) * xs.data[i]
			}
			return 0
		},
		Scal: func(alpha T, x native.Handle) {
			f.record("blas.Scal")
			xs := f.get(x)
			for i := range xs.data {
				xs.data[i] *= float64(alpha)
			}
		},
		Rotg: func(a, b, c, s *T) native.Status {
			if st := f.record("blas.Rotg"); st != 0 {
				return st
			}
			fa, fb := float64(*a), float64(*b)
			roe := fb
			if math.Abs(fa) > math.Abs(fb) {
				roe = fa
			}
			scale := math.Abs(fa) + math.Abs(fb)
			if scale == 0 {
				*c, *s, *a, *b = 1, 0, 0, 0
				return 0
			}
			r := math.Copysign(scale*math.Hypot(fa/scale, fb/scale), roe)
			fc, fs := fa/r, fb/r
			z := 1.0
			switch {
			case math.Abs(fa) > math.Abs(fb):
				z = fs
			case fc != 0:
				z = 1 / fc
			}
			*c, *s, *a, *b = T(fc), T(fs), T(r), T(z)
			return 0
		},
		Rot: func(x, y native.Handle, c, s T) native.Status {
			if st := f.record("blas.Rot"); st != 0 {
				return st
			}
			xs, ys := f.get(x), f.get(y)
			if st := sameLen("rot", xs, ys); st != 0 {
				return st
			}
			fc, fs := float64(c), float64(s)
			for i := range xs.data {
				xi, yi := xs.data[i], ys.data[i]
				xs.data[i] = fc*xi + fs*yi
				ys.data[i] = fc*yi - fs*xi
			}
			return 0
		},
		Rotm: func(x, y native.Handle, p *[5]T) native.Status {
			if st := f.record("blas.Rotm"); st != 0 {
				return st
			}
			xs, ys := f.get(x), f.get(y)
			if st := sameLen("rotm", xs, ys); st != 0 {
				return st
			}
			h11, h21, h12, h22 := float64(p[1]), float64(p[2]), float64(p[3]), float64(p[4])
			switch p[0] {
			case -2:
				return 0
			case 0:
				h11, h22 = 1, 1
			case 1:
				h12, h21 = 1, -1
			}
			for i := range xs.data {
				xi, yi := xs.data[i], ys.data[i]
				xs.data[i] = h11*xi + h12*yi
				ys.data[i] = h21*xi + h22*yi
			}
			return 0
		},

		Gemv: func(t int32, alpha T, a, x native.Handle, beta T, y native.Handle) native.Status {
			if st := f.record("blas.Gemv"); st != 0 {
				return st
			}
			A, xs, ys := f.get(a), f.get(x), f.get(y)
			m, n := opShape(A, t)
			if n != xs.rows || m != ys.rows {
				return f.Raise("gemv: invalid length", codeBadLength)
			}
			gemv(A, t, float64(alpha), xs.data, float64(beta), ys.data)
			return 0
		},
		Trmv: func(uplo, t, diag int32, a, x native.Handle) native.Status {
			if st := f.record("blas.Trmv"); st != 0 {
				return st
			}
			trmv(f.get(a), uplo, t, diag, f.get(x).data)
			return 0
		},
		Trsv: func(uplo, t, diag int32, a, x native.Handle) native.Status {
			if st := f.record("blas.Trsv"); st != 0 {
				return st
			}
			trsv(f.get(a), uplo, t, diag, f.get(x).data)
			return 0
		},
		Symv: func(uplo int32, alpha T, a, x native.Handle, beta T, y native.Handle) native.Status {
			if st := f.record("blas.Symv"); st != 0 {
				return st
			}
			symv(f.get(a), uplo, float64(alpha), f.get(x).data, float64(beta), f.get(y).data)
			return 0
		},
		Ger: func(alpha T, x, y, a native.Handle) native.Status {
			if st := f.record("blas.Ger"); st != 0 {
				return st
			}
			ger(f.get(a), float64(alpha), f.get(x).data, f.get(y).data)
			return 0
		},
		Syr: func(uplo int32, alpha T, x, a native.Handle) native.Status {
			if st := f.record("blas.Syr"); st != 0 {
				return st
			}
			syr(f.get(a), uplo, float64(alpha), f.get(x).data)
			return 0
		},
		Syr2: func(uplo int32, alpha T, x, y, a native.Handle) native.Status {
			if st := f.record("blas.Syr2"); st != 0 {
				return st
			}
			syr2(f.get(a), uplo, float64(alpha), f.get(x).data, f.get(y).data)
			return 0
		},

		Gemm: func(ta, tb int32, alpha T, a, b native.Handle, beta T, c native.Handle) native.Status {
			if st := f.record("blas.Gemm"); st != 0 {
				return st
			}
			A, B, C := f.get(a), f.get(b), f.get(c)
			m, k := opShape(A, ta)
			k2, n := opShape(B, tb)
			if k != k2 || C.rows != m || C.cols != n {
				return f.Raise("gemm: invalid length", codeBadLength)
			}
			gemm(ta, tb, float64(alpha), A, B, float64(beta), C)
			return 0
		},
		Symm: func(side, uplo int32, alpha T, a, b native.Handle, beta T, c native.Handle) native.Status {
			if st := f.record("blas.Symm"); st != 0 {
				return st
			}
			symm(side, uplo, float64(alpha), f.get(a), f.get(b), float64(beta), f.get(c))
			return 0
		},
		Trmm: func(side, uplo, t, diag int32, alpha T, a, b native.Handle) native.Status {
			if st := f.record("blas.Trmm"); st != 0 {
				return st
			}
			trmm(side, uplo, t, diag, float64(alpha), f.get(a), f.get(b))
			return 0
		},
		Trsm: func(side, uplo, t, diag int32, alpha T, a, b native.Handle) native.Status {
			if st := f.record("blas.Trsm"); st != 0 {
				return st
			}
			trsm(side, uplo, t, diag, float64(alpha), f.get(a), f.get(b))
			return 0
		},
		Syrk: func(uplo, t int32, alpha T, a native.Handle, beta T, c native.Handle) native.Status {
			if st := f.record("blas.Syrk"); st != 0 {
				return st
			}
			syrk(uplo, t, float64(alpha), f.get(a), float64(beta), f.get(c))
			return 0
		},
		Syr2k: func(uplo, t int32, alpha T, a, b native.Handle, beta T, c native.Handle) native.Status {
			if st := f.record("blas.Syr2k"); st != 0 {
				return st
			}
			syr2k(uplo, t, float64(alpha), f.get(a), f.get(b), float64(beta), f.get(c))
			return 0
		},
	}
}

func mixedTable(f *Fake) native.MixedBLASABI {
	dot := func(x, y native.Handle) (float64, native.Status) {
		xs, ys := f.get(x), f.get(y)
		if xs.rows != ys.rows {
			return 0, f.Raise("invalid length", codeBadLength)
		}
		s := 0.0
		for i := range xs.data {
			s += xs.data[i] * ys.data[i]
		}
		return s, 0
	}

	return native.MixedBLASABI{
		SDSDot: func(alpha float32, x, y native.Handle, r *float32) native.Status {
			if st := f.record("blas.SDSDot"); st != 0 {
				return st
			}
			s, st := dot(x, y)
			*r = float32(float64(alpha) + s)
			return st
		},
		DSDot: func(x, y native.Handle, r *float64) native.Status {
			if st := f.record("blas.DSDot"); st != 0 {
				return st
			}
			s, st := dot(x, y)
			*r = s
			return st
		},
	}
}

func cblasTable[T native.Float](f *Fake) native.CBLASABI[T] {
	return native.CBLASABI[T]{
		Dot: func(n int, x []T, incX int, y []T, incY int) T {
			f.record("cblas.Dot")
			var s T
			for i := 0; i < n; i++ {
				s += x[i*incX] * y[i*incY]
			}
			return s
		},
		Nrm2: func(n int, x []T, incX int) T {
			f.record("cblas.Nrm2")
			s := 0.0
			for i := 0; i < n; i++ {
				s += float64(x[i*incX]) * float64(x[i*incX])
			}
			return T(math.Sqrt(s))
		},
		Asum: func(n int, x []T, incX int) T {
			f.record("cblas.Asum")
			s := 0.0
			for i := 0; i < n; i++ {
				s += math.Abs(float64(x[i*incX]))
			}
			return T(s)
		},
		Iamax: func(n int, x []T, incX int) int {
			f.record("cblas.Iamax")
			best, idx := -1.0, 0
			for i := 0; i < n; i++ {
				if v := math.Abs(float64(x[i*incX])); v > best {
					best, idx = v, i
				}
			}
			return idx
		},
		Swap: func(n int, x []T, incX int, y []T, incY int) {
			f.record("cblas.Swap")
			for i := 0; i < n; i++ {
				x[i*incX], y[i*incY] = y[i*incY], x[i*incX]
			}
		},
		Copy: func(n int, x []T, incX int, y []T, incY int) {
			f.record("cblas.Copy")
			for i := 0; i < n; i++ {
				y[i*incY] = x[i*incX]
			}
		},
		Axpy: func(n int, alpha T, x []T, incX int, y []T, incY int) {
			f.record("cblas.Axpy")
			for i := 0; i < n; i++ {
				y[i*incY] += alpha * x[i*incX]
			}
		},
		Scal: func(n int, alpha T, x []T, incX int) {
			f.record("cblas.Scal")
			for i := 0; i < n; i++ {
				x[i*incX] *= alpha
			}
		},

		Gemv: func(order, t int32, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
			f.record("cblas.Gemv")
			xn, yn := n, m
			if transposed(t) {
				xn, yn = m, n
			}
			ys := gather(yn, y, incY)
			gemv(load(order, m, n, a, lda), t, float64(alpha), gather(xn, x, incX), float64(beta), ys)
			scatter(ys, y, incY)
		},
		Trmv: func(order, uplo, t, diag int32, n int, a []T, lda int, x []T, incX int) {
			f.record("cblas.Trmv")
			xs := gather(n, x, incX)
			trmv(load(order, n, n, a, lda), uplo, t, diag, xs)
			scatter(xs, x, incX)
		},
		Trsv: func(order, uplo, t, diag int32, n int, a []T, lda int, x []T, incX int) {
			f.record("cblas.Trsv")
			xs := gather(n, x, incX)
			trsv(load(order, n, n, a, lda), uplo, t, diag, xs)
			scatter(xs, x, incX)
		},
		Symv: func(order, uplo int32, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
			f.record("cblas.Symv")
			ys := gather(n, y, incY)
			symv(load(order, n, n, a, lda), uplo, float64(alpha), gather(n, x, incX), float64(beta), ys)
			scatter(ys, y, incY)
		},
		Ger: func(order int32, m, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int) {
			f.record("cblas.Ger")
			A := load(order, m, n, a, lda)
			ger(A, float64(alpha), gather(m, x, incX), gather(n, y, incY))
			save(A, order, a, lda)
		},
		Syr: func(order, uplo int32, n int, alpha T, x []T, incX int, a []T, lda int) {
			f.record("cblas.Syr")
			A := load(order, n, n, a, lda)
			syr(A, uplo, float64(alpha), gather(n, x, incX))
			save(A, order, a, lda)
		},
		Syr2: func(order, uplo int32, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int) {
			f.record("cblas.Syr2")
			A := load(order, n, n, a, lda)
			syr2(A, uplo, float64(alpha), gather(n, x, incX), gather(n, y, incY))
			save(A, order, a, lda)
		},

		Gemm: func(order, ta, tb int32, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
			f.record("cblas.Gemm")
			ar, ac := m, k
			if transposed(ta) {
				ar, ac = k, m
			}
			br, bc := k, n
			if transposed(tb) {
				br, bc = n, k
			}
			C := load(order, m, n, c, ldc)
			gemm(ta, tb, float64(alpha), load(order, ar, ac, a, lda), load(order, br, bc, b, ldb), float64(beta), C)
			save(C, order, c, ldc)
		},
		Symm: func(order, side, uplo int32, m, n int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
			f.record("cblas.Symm")
			ka := m
			if side != cblasLeft {
				ka = n
			}
			C := load(order, m, n, c, ldc)
			symm(side, uplo, float64(alpha), load(order, ka, ka, a, lda), load(order, m, n, b, ldb), float64(beta), C)
			save(C, order, c, ldc)
		},
		Syrk: func(order, uplo, t int32, n, k int, alpha T, a []T, lda int, beta T, c []T, ldc int) {
			f.record("cblas.Syrk")
			ar, ac := n, k
			if transposed(t) {
				ar, ac = k, n
			}
			C := load(order, n, n, c, ldc)
			syrk(uplo, t, float64(alpha), load(order, ar, ac, a, lda), float64(beta), C)
			save(C, order, c, ldc)
		},
		Syr2k: func(order, uplo, t int32, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
			f.record("cblas.Syr2k")
			ar, ac := n, k
			if transposed(t) {
				ar, ac = k, n
			}
			C := load(order, n, n, c, ldc)
			syr2k(uplo, t, float64(alpha), load(order, ar, ac, a, lda), load(order, ar, ac, b, ldb), float64(beta), C)
			save(C, order, c, ldc)
		},
		Trmm: func(order, side, uplo, t, diag int32, m, n int, alpha T, a []T, lda int, b []T, ldb int) {
			f.record("cblas.Trmm")
			ka := m
			if side != cblasLeft {
				ka = n
			}
			B := load(order, m, n, b, ldb)
			trmm(side, uplo, t, diag, float64(alpha), load(order, ka, ka, a, lda), B)
			save(B, order, b, ldb)
		},
		Trsm: func(order, side, uplo, t, diag int32, m, n int, alpha T, a []T, lda int, b []T, ldb int) {
			f.record("cblas.Trsm")
			ka := m
			if side != cblasLeft {
				ka = n
			}
			B := load(order, m, n, b, ldb)
			trsm(side, uplo, t, diag, float64(alpha), load(order, ka, ka, a, lda), B)
			save(B, order, b, ldb)
		},
	}
}
