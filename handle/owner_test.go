// SPDX-License-Identifier: MIT

package handle_test

import (
	"bytes"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
)

const testHandle native.Handle = 0xbeef

// counter is a release func that counts its invocations.
type counter struct {
	n    atomic.Int32
	last atomic.Uintptr
}

func (c *counter) release(h native.Handle) {
	c.n.Add(1)
	c.last.Store(uintptr(h))
}

func wrap(t *testing.T, c *counter) *handle.Owner {
	t.Helper()
	o, err := handle.Wrap(testHandle, c.release, handle.WithKind("vector"))
	require.NoError(t, err)

	return o
}

func TestWrapNullHandle(t *testing.T) {
	var c counter
	o, err := handle.Wrap(native.Null, c.release)
	require.Nil(t, o)
	require.ErrorIs(t, err, gslerr.ErrNoMemory)
	require.Zero(t, c.n.Load()) // never released
}

func TestWrapNilRelease(t *testing.T) {
	_, err := handle.Wrap(testHandle, nil)
	require.ErrorIs(t, err, gslerr.ErrInvalid)
}

func TestSharedViewsCoexist(t *testing.T) {
	var c counter
	o := wrap(t, &c)
	defer o.Close()

	a, err := o.Shared()
	require.NoError(t, err)
	b, err := o.Shared()
	require.NoError(t, err)
	require.Equal(t, 2, o.Readers())
	require.Equal(t, handle.StateShared, o.State())
	require.Equal(t, testHandle, a.Handle())
	require.Equal(t, testHandle, b.Handle())

	_, err = o.Exclusive()
	require.ErrorIs(t, err, gslerr.ErrInvalid)
	require.ErrorIs(t, err, handle.ErrBorrowConflict)

	a.Release()
	b.Release()
	require.Equal(t, handle.StateIdle, o.State())
}

func TestExclusiveExcludesAll(t *testing.T) {
	var c counter
	o := wrap(t, &c)
	defer o.Close()

	w, err := o.Exclusive()
	require.NoError(t, err)
	require.Equal(t, handle.StateExclusive, o.State())

	_, err = o.Shared()
	require.ErrorIs(t, err, handle.ErrBorrowConflict)
	_, err = o.Exclusive()
	require.ErrorIs(t, err, gslerr.ErrInvalid)

	w.Release()
	w.Release() // idempotent
	require.Equal(t, native.Null, w.Handle())

	w2, err := o.Exclusive()
	require.NoError(t, err)
	w2.Release()
}

func TestCloseReleasesOnce(t *testing.T) {
	var c counter
	o := wrap(t, &c)

	require.NoError(t, o.Close())
	require.NoError(t, o.Close())
	require.Equal(t, int32(1), c.n.Load())
	require.Equal(t, uintptr(testHandle), c.last.Load())
	require.True(t, o.Released())
	require.Equal(t, handle.StateClosed, o.State())
}

func TestCloseDefersUntilLastView(t *testing.T) {
	var c counter
	o := wrap(t, &c)

	r1, err := o.Shared()
	require.NoError(t, err)
	r2, err := o.Shared()
	require.NoError(t, err)

	require.NoError(t, o.Close())
	require.False(t, o.Released()) // two readers still live
	require.Zero(t, c.n.Load())

	r1.Release()
	require.Zero(t, c.n.Load())
	r2.Release()
	r2.Release()
	require.Equal(t, int32(1), c.n.Load())
}

func TestBorrowAfterClose(t *testing.T) {
	var c counter
	o := wrap(t, &c)
	require.NoError(t, o.Close())

	_, err := o.Shared()
	require.ErrorIs(t, err, handle.ErrClosed)
	require.ErrorIs(t, err, gslerr.ErrFault)

	_, err = o.Exclusive()
	require.ErrorIs(t, err, handle.ErrClosed)
}

func TestConcurrentReaders(t *testing.T) {
	var c counter
	o := wrap(t, &c)

	const workers = 32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 100; j++ {
				v, err := o.Shared()
				if err != nil {
					t.Error(err)
					return
				}
				v.Release()
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Zero(t, o.Readers())
	require.NoError(t, o.Close())
	require.Equal(t, int32(1), c.n.Load())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "idle", handle.StateIdle.String())
	require.Equal(t, "closed", handle.StateClosed.String())
	require.Equal(t, "State(9)", handle.State(9).String())
}

// syncBuffer is a bytes.Buffer safe for the finalizer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestFinalizerReleasesLeakedOwner(t *testing.T) {
	var c counter
	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))

	func() {
		_, err := handle.Wrap(testHandle, c.release, handle.WithKind("matrix"), handle.WithLogger(logger))
		require.NoError(t, err)
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return c.n.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	require.Contains(t, out.String(), "leaked")
	require.Contains(t, out.String(), "kind=matrix")
}
