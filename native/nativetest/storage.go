// SPDX-License-Identifier: MIT

package nativetest

import "github.com/katalvlaran/lvgsl/native"

func vectorTable[T native.Element](f *Fake) native.VectorABI[T] {
	return native.VectorABI[T]{
		Alloc:  func(n int) native.Handle { return f.alloc("vector.Alloc", "vector", n, 1) },
		Calloc: func(n int) native.Handle { return f.alloc("vector.Calloc", "vector", n, 1) },
		Free:   func(h native.Handle) { f.free("vector.Free", h) },
		Len: func(h native.Handle) int {
			f.record("vector.Len")
			return f.get(h).rows
		},
		Stride: func(h native.Handle) int {
			f.record("vector.Stride")
			f.get(h)
			return 1
		},
		Get: func(h native.Handle, i int) T {
			f.record("vector.Get")
			b := f.get(h)
			if i < 0 || i >= b.rows {
				f.Raise("index out of range", codeInvalid)
				return 0
			}
			return T(b.data[i])
		},
		Set: func(h native.Handle, i int, v T) {
			f.record("vector.Set")
			b := f.get(h)
			if i < 0 || i >= b.rows {
				f.Raise("index out of range", codeInvalid)
				return
			}
			b.data[i] = float64(v)
		},
		SetAll: func(h native.Handle, v T) {
			f.record("vector.SetAll")
			b := f.get(h)
			for i := range b.data {
				b.data[i] = float64(v)
			}
		},
		SetZero: func(h native.Handle) {
			f.record("vector.SetZero")
			clear(f.get(h).data)
		},
		Memcpy: func(dst, src native.Handle) native.Status {
			if st := f.record("vector.Memcpy"); st != 0 {
				return st
			}
			d, s := f.get(dst), f.get(src)
			if d.rows != s.rows {
				return f.Raise("vector lengths are not equal", codeBadLength)
			}
			copy(d.data, s.data)
			return 0
		},
	}
}

func matrixTable[T native.Float](f *Fake) native.MatrixABI[T] {
	inRange := func(b *block, i, j int) bool {
		return i >= 0 && i < b.rows && j >= 0 && j < b.cols
	}

	return native.MatrixABI[T]{
		Alloc:  func(r, c int) native.Handle { return f.alloc("matrix.Alloc", "matrix", r, c) },
		Calloc: func(r, c int) native.Handle { return f.alloc("matrix.Calloc", "matrix", r, c) },
		Free:   func(h native.Handle) { f.free("matrix.Free", h) },
		Size: func(h native.Handle) (int, int, int) {
			f.record("matrix.Size")
			b := f.get(h)
			return b.rows, b.cols, b.cols
		},
		Get: func(h native.Handle, i, j int) T {
			f.record("matrix.Get")
			b := f.get(h)
			if !inRange(b, i, j) {
				f.Raise("index out of range", codeInvalid)
				return 0
			}
			return T(b.at(i, j))
		},
		Set: func(h native.Handle, i, j int, v T) {
			f.record("matrix.Set")
			b := f.get(h)
			if !inRange(b, i, j) {
				f.Raise("index out of range", codeInvalid)
				return
			}
			b.set(i, j, float64(v))
		},
		SetAll: func(h native.Handle, v T) {
			f.record("matrix.SetAll")
			b := f.get(h)
			for i := range b.data {
				b.data[i] = float64(v)
			}
		},
		SetZero: func(h native.Handle) {
			f.record("matrix.SetZero")
			clear(f.get(h).data)
		},
		SetIdentity: func(h native.Handle) {
			f.record("matrix.SetIdentity")
			b := f.get(h)
			clear(b.data)
			for i := 0; i < b.rows && i < b.cols; i++ {
				b.set(i, i, 1)
			}
		},
		Memcpy: func(dst, src native.Handle) native.Status {
			if st := f.record("matrix.Memcpy"); st != 0 {
				return st
			}
			d, s := f.get(dst), f.get(src)
			if d.rows != s.rows || d.cols != s.cols {
				return f.Raise("matrix sizes are different", codeBadLength)
			}
			copy(d.data, s.data)
			return 0
		},
		TransposeInPlace: func(h native.Handle) native.Status {
			if st := f.record("matrix.TransposeInPlace"); st != 0 {
				return st
			}
			b := f.get(h)
			if b.rows != b.cols {
				return f.Raise("matrix must be square to take transpose", codeNotSquare)
			}
			for i := 0; i < b.rows; i++ {
				for j := i + 1; j < b.cols; j++ {
					x, y := b.at(i, j), b.at(j, i)
					b.set(i, j, y)
					b.set(j, i, x)
				}
			}
			return 0
		},
	}
}

// wireWorkspaces connects every workspace allocator to the fake heap.
func wireWorkspaces(f *Fake) {
	ws := func(kind string) (func(int) native.Handle, func(native.Handle)) {
		return func(n int) native.Handle { return f.alloc(kind+".Alloc", kind, n, 0) },
			func(h native.Handle) { f.free(kind+".Free", h) }
	}
	l := f.lib
	l.Eigen.SymmAlloc, l.Eigen.SymmFree = ws("eigen.Symm")
	l.Eigen.SymmvAlloc, l.Eigen.SymmvFree = ws("eigen.Symmv")
	l.Filter.GaussianAlloc, l.Filter.GaussianFree = ws("filter.Gaussian")
	l.Filter.MedianAlloc, l.Filter.MedianFree = ws("filter.Median")
	l.Filter.RMedianAlloc, l.Filter.RMedianFree = ws("filter.RMedian")
	l.Filter.ImpulseAlloc, l.Filter.ImpulseFree = ws("filter.Impulse")
	l.Poly.ComplexWorkspaceAlloc, l.Poly.ComplexWorkspaceFree = ws("poly.Complex")
	l.Mathieu.Alloc = func(n int, _ float64) native.Handle { return f.alloc("mathieu.Alloc", "mathieu", n, 0) }
	l.Mathieu.Free = func(h native.Handle) { f.free("mathieu.Free", h) }
}
