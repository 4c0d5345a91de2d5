// SPDX-License-Identifier: MIT

package handle

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
)

// State is the borrow state of an Owner.
type State uint8

const (
	StateIdle      State = iota // no live view
	StateShared                 // one or more shared views
	StateExclusive              // one exclusive view
	StateClosed                 // Close called
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateShared:
		return "shared"
	case StateExclusive:
		return "exclusive"
	case StateClosed:
		return "closed"
	}

	return fmt.Sprintf("State(%d)", uint8(s))
}

// Owner is the unique owner of a native handle.
type Owner struct {
	mu       sync.Mutex
	h        native.Handle
	release  func(native.Handle)
	kind     string
	logger   *slog.Logger
	readers  int
	writer   bool
	closed   bool
	released bool
}

// Wrap takes ownership of h. release is called exactly once with h.
// A null h fails with gslerr.ErrNoMemory and release is never called.
func Wrap(h native.Handle, release func(native.Handle), opts ...Option) (*Owner, error) {
	o := gatherOptions(opts)
	if h.IsNull() {
		return nil, fmt.Errorf("handle.Wrap: %s allocation returned null: %w", o.kind, gslerr.ErrNoMemory)
	}
	if release == nil {
		return nil, fmt.Errorf("handle.Wrap: %s has no release func: %w", o.kind, gslerr.ErrInvalid)
	}
	own := &Owner{h: h, release: release, kind: o.kind, logger: o.logger}
	runtime.SetFinalizer(own, (*Owner).finalize)

	return own, nil
}

// Kind returns the resource label.
func (o *Owner) Kind() string { return o.kind }

// Shared borrows h read-only.
func (o *Owner) Shared() (*SharedView, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil, closedErrorf(o, "shared")
	}
	if o.writer {
		return nil, conflictErrorf(o, "shared")
	}
	o.readers++

	return &SharedView{o: o}, nil
}

// Exclusive borrows h for mutation. No other view may be live.
func (o *Owner) Exclusive() (*ExclusiveView, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil, closedErrorf(o, "exclusive")
	}
	if o.writer || o.readers > 0 {
		return nil, conflictErrorf(o, "exclusive")
	}
	o.writer = true

	return &ExclusiveView{o: o}, nil
}

// Close gives up ownership. The native handle is released now when no view
// is live, otherwise when the last view is released. Idempotent.
func (o *Owner) Close() error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	fn := o.takeReleaseLocked()
	o.mu.Unlock()
	o.run(fn)

	return nil
}

// State reports the current borrow state.
func (o *Owner) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.stateLocked()
}

// Readers reports the number of live shared views.
func (o *Owner) Readers() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.readers
}

// Released reports whether the native handle has been freed.
func (o *Owner) Released() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.released
}

func (o *Owner) stateLocked() State {
	switch {
	case o.closed:
		return StateClosed
	case o.writer:
		return StateExclusive
	case o.readers > 0:
		return StateShared
	}

	return StateIdle
}

// takeReleaseLocked returns the release call to run once the lock is
// dropped, or nil if the handle must stay alive.
func (o *Owner) takeReleaseLocked() func() {
	if !o.closed || o.released || o.writer || o.readers > 0 {
		return nil
	}
	o.released = true
	h, release := o.h, o.release

	return func() { release(h) }
}

func (o *Owner) run(fn func()) {
	if fn == nil {
		return
	}
	runtime.SetFinalizer(o, nil)
	fn()
}

func (o *Owner) endShared() {
	o.mu.Lock()
	o.readers--
	fn := o.takeReleaseLocked()
	o.mu.Unlock()
	o.run(fn)
}

func (o *Owner) endExclusive() {
	o.mu.Lock()
	o.writer = false
	fn := o.takeReleaseLocked()
	o.mu.Unlock()
	o.run(fn)
}

// finalize runs when o became unreachable without Close.
func (o *Owner) finalize() {
	o.mu.Lock()
	if o.released {
		o.mu.Unlock()
		return
	}
	o.released = true
	h, release, kind := o.h, o.release, o.kind
	o.mu.Unlock()

	o.logger.Warn("native resource leaked; releasing from finalizer",
		slog.String("kind", kind),
		slog.String("handle", fmt.Sprintf("%#x", uintptr(h))))
	release(h)
}

// SharedView is a read-only alias of an Owner's handle.
type SharedView struct {
	o    *Owner
	done atomic.Bool
}

// Handle returns the aliased handle, or native.Null after Release.
func (v *SharedView) Handle() native.Handle {
	if v.done.Load() {
		return native.Null
	}

	return v.o.h
}

// Release ends the view. Idempotent; never frees native memory by itself
// unless it is the last view of a closed Owner.
func (v *SharedView) Release() {
	if v.done.CompareAndSwap(false, true) {
		v.o.endShared()
	}
}

// ExclusiveView is the sole mutable alias of an Owner's handle.
type ExclusiveView struct {
	o    *Owner
	done atomic.Bool
}

// Handle returns the aliased handle, or native.Null after Release.
func (v *ExclusiveView) Handle() native.Handle {
	if v.done.Load() {
		return native.Null
	}

	return v.o.h
}

// Release ends the view. Idempotent.
func (v *ExclusiveView) Release() {
	if v.done.CompareAndSwap(false, true) {
		v.o.endExclusive()
	}
}
