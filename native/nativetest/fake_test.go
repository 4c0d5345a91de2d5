// SPDX-License-Identifier: MIT

package nativetest_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/native/nativetest"
)

func TestAllocFreeAccounting(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()

	h := lib.VectorF64.Alloc(3)
	require.False(t, h.IsNull())
	require.Equal(t, 1, f.Live())

	lib.VectorF64.Free(h)
	lib.VectorF64.Free(h) // second free is recorded, not applied
	require.Equal(t, 0, f.Live())
	require.Equal(t, 1, f.Freed())
	require.Equal(t, 1, f.BadFrees())
	require.Equal(t, 2, f.Calls("vector.Free"))
}

func TestInjectedAllocFailure(t *testing.T) {
	f := nativetest.New()
	f.Fail("matrix.Alloc", gslerr.ErrNoMemory.Code())
	require.True(t, f.Library().MatrixF64.Alloc(2, 2).IsNull())

	f.Heal("matrix.Alloc")
	require.False(t, f.Library().MatrixF64.Alloc(2, 2).IsNull())
}

func TestInjectedFailureReachesHook(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()

	var got native.Status
	lib.ErrorHook.Install(func(reason, file string, line int, code native.Status) { got = code })
	require.True(t, f.HookInstalled())

	x, y := lib.VectorF64.Alloc(2), lib.VectorF64.Alloc(2)
	f.Fail("blas.Dot", gslerr.ErrMaxIteration.Code())
	var r float64
	st := lib.BLASF64.Dot(x, y, &r)
	require.Equal(t, gslerr.ErrMaxIteration.Code(), st)
	require.Equal(t, gslerr.ErrMaxIteration.Code(), got)

	lib.ErrorHook.Off()
	require.False(t, f.HookInstalled())
	require.Equal(t, 1, f.HookOffs())
}

func TestElementStorage(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()

	v := lib.VectorI32.Alloc(2)
	lib.VectorI32.Set(v, 1, 7)
	require.Equal(t, int32(7), lib.VectorI32.Get(v, 1))

	m := lib.MatrixF32.Alloc(2, 3)
	lib.MatrixF32.Set(m, 1, 2, 1.5)
	require.Equal(t, float32(1.5), lib.MatrixF32.Get(m, 1, 2))
	rows, cols, tda := lib.MatrixF32.Size(m)
	require.Equal(t, []int{2, 3, 3}, []int{rows, cols, tda})
	require.Equal(t, []float64{0, 0, 0, 0, 0, 1.5}, f.Data(m))
}

func TestUnknownHandlePanics(t *testing.T) {
	f := nativetest.New()
	require.Panics(t, func() { f.Library().VectorF64.Len(native.Handle(0xbad)) })
}

func TestGemmArithmetic(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()
	mx := lib.MatrixF64
	a, b, c := mx.Alloc(2, 2), mx.Alloc(2, 2), mx.Alloc(2, 2)
	// A = [1 2; 3 4], B = I
	mx.Set(a, 0, 0, 1)
	mx.Set(a, 0, 1, 2)
	mx.Set(a, 1, 0, 3)
	mx.Set(a, 1, 1, 4)
	mx.SetIdentity(b)

	st := lib.BLASF64.Gemm(112, 111, 1, a, b, 0, c) // C = A^T * I
	require.Zero(t, st)
	require.Equal(t, []float64{1, 3, 2, 4}, f.Data(c))
}

func TestTrsvUndoesTrmv(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()
	a := lib.MatrixF64.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			lib.MatrixF64.Set(a, i, j, float64(i+j+1))
		}
	}
	x := lib.VectorF64.Alloc(3)
	for i := 0; i < 3; i++ {
		lib.VectorF64.Set(x, i, float64(i+1))
	}

	for _, tr := range []int32{111, 112} {
		for _, uplo := range []int32{121, 122} {
			require.Zero(t, lib.BLASF64.Trmv(uplo, tr, 131, a, x))
			require.Zero(t, lib.BLASF64.Trsv(uplo, tr, 131, a, x))
			got := f.Data(x)
			for i, v := range got {
				require.InDelta(t, float64(i+1), v, 1e-9)
			}
		}
	}
}

func TestConcurrentReadersShareStorage(t *testing.T) {
	f := nativetest.New()
	lib := f.Library()
	x, y := lib.VectorF64.Alloc(3), lib.VectorF64.Alloc(3)
	f.Store(x, []float64{1, 2, 3})
	f.Store(y, []float64{4, 5, 6})

	const workers, rounds = 16, 50
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < rounds; j++ {
				var r float64
				if st := lib.BLASF64.Dot(x, y, &r); st != gslerr.Success || r != 32 {
					t.Errorf("dot = %v, status %d", r, st)
					return
				}
				// private allocations churn the shared map alongside
				h := lib.VectorF64.Alloc(1)
				lib.VectorF64.Free(h)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, workers*rounds, f.Calls("blas.Dot"))
	require.Equal(t, 2, f.Live())
	require.Equal(t, workers*rounds, f.Freed())
	require.Zero(t, f.BadFrees())
}
