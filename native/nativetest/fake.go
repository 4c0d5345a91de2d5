// SPDX-License-Identifier: MIT

package nativetest

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
)

// Name is the backend label of every fake library.
const Name = "nativetest"

// firstHandle keeps synthetic handles away from the null handle.
const firstHandle native.Handle = 0x1000

var (
	codeInvalid   = gslerr.ErrInvalid.Code()
	codeBadLength = gslerr.ErrBadLength.Code()
	codeNotSquare = gslerr.ErrNotSquare.Code()
)

// block is one allocation. Vectors use rows=n, cols=1.
type block struct {
	kind string
	rows int
	cols int
	data []float64
}

func (b *block) at(i, j int) float64     { return b.data[i*b.cols+j] }
func (b *block) set(i, j int, v float64) { b.data[i*b.cols+j] = v }

// Fake is a call-counting, memory-backed native backend.
//
// Bookkeeping (allocation, free, call counts, injected failures, the error
// hook) is safe for concurrent use. Element storage is not locked, like the
// native heap it stands in for: concurrent calls must follow the handle
// lending rules, any number of readers or one writer per allocation.
type Fake struct {
	mu       sync.Mutex
	lib      *native.Library
	next     native.Handle
	mem      map[native.Handle]*block
	calls    map[string]int
	failures map[string]native.Status
	hook     native.ErrorFunc
	hookOffs int
	freed    int
	badFrees int
}

// New returns a fake with every modelled family wired.
func New() *Fake {
	f := &Fake{
		next:     firstHandle,
		mem:      make(map[native.Handle]*block),
		calls:    make(map[string]int),
		failures: make(map[string]native.Status),
	}
	f.lib = &native.Library{
		Name:      Name,
		VectorF32: vectorTable[float32](f),
		VectorF64: vectorTable[float64](f),
		VectorI32: vectorTable[int32](f),
		MatrixF32: matrixTable[float32](f),
		MatrixF64: matrixTable[float64](f),
		BLASF32:   blasTable[float32](f),
		BLASF64:   blasTable[float64](f),
		Mixed:     mixedTable(f),
		CBLASF32:  cblasTable[float32](f),
		CBLASF64:  cblasTable[float64](f),
		ErrorHook: native.ErrorHookABI{
			SetHandler: func(fn native.ErrorFunc) {
				f.mu.Lock()
				f.hook = fn
				f.mu.Unlock()
			},
			SetHandlerOff: func() {
				f.mu.Lock()
				f.hook = nil
				f.hookOffs++
				f.mu.Unlock()
			},
		},
	}
	wireWorkspaces(f)
	wireDomain(f)

	return f
}

// Library returns the fake's entry-point table. Tests may overwrite fields.
func (f *Fake) Library() *native.Library { return f.lib }

// Calls reports how many times the named entry ran, e.g. "blas.Axpy".
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[op]
}

// Total reports the number of entry invocations of any name.
func (f *Fake) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}

	return n
}

// ResetCalls zeroes every counter.
func (f *Fake) ResetCalls() {
	f.mu.Lock()
	clear(f.calls)
	f.mu.Unlock()
}

// Fail makes every later call of op fail with code until Heal(op).
// Allocators fail by returning the null handle.
func (f *Fake) Fail(op string, code native.Status) {
	f.mu.Lock()
	f.failures[op] = code
	f.mu.Unlock()
}

// Heal removes an injected failure.
func (f *Fake) Heal(op string) {
	f.mu.Lock()
	delete(f.failures, op)
	f.mu.Unlock()
}

// Live reports the number of allocations not yet freed.
func (f *Fake) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.mem)
}

// Freed reports the number of successful frees.
func (f *Fake) Freed() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.freed
}

// BadFrees reports frees of unknown or already-freed handles.
func (f *Fake) BadFrees() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.badFrees
}

// HookInstalled reports whether a native error callback is active.
func (f *Fake) HookInstalled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.hook != nil
}

// HookOffs reports how many times the hook was switched off.
func (f *Fake) HookOffs() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.hookOffs
}

// Raise reports code through the installed hook, as gsl_error would, and
// returns it.
func (f *Fake) Raise(reason string, code native.Status) native.Status {
	f.mu.Lock()
	hook := f.hook
	f.mu.Unlock()
	if hook != nil {
		hook(reason, "nativetest", 0, code)
	}

	return code
}

// Data returns a copy of the storage behind h in row-major order.
func (f *Fake) Data(h native.Handle) []float64 {
	return append([]float64(nil), f.get(h).data...)
}

// Store overwrites the storage behind h with data, which must have the
// allocation's element count. Tests use it to stub routines the fake does
// not model.
func (f *Fake) Store(h native.Handle, data []float64) {
	b := f.get(h)
	if len(data) != len(b.data) {
		panic(fmt.Sprintf("nativetest: Store: %d values for %d elements", len(data), len(b.data)))
	}
	copy(b.data, data)
}

// Shape reports the rows and cols of the allocation behind h.
// Vectors report (n, 1), workspaces (size, 0).
func (f *Fake) Shape(h native.Handle) (int, int) {
	b := f.get(h)

	return b.rows, b.cols
}

// record counts op and returns its injected failure, already raised.
func (f *Fake) record(op string) native.Status {
	f.mu.Lock()
	f.calls[op]++
	st := f.failures[op]
	f.mu.Unlock()
	if st != 0 {
		return f.Raise("injected failure in "+op, st)
	}

	return 0
}

func (f *Fake) alloc(op, kind string, rows, cols int) native.Handle {
	if f.record(op) != 0 || rows < 0 || cols < 0 {
		return native.Null
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	h := f.next
	f.next += 0x10
	f.mem[h] = &block{kind: kind, rows: rows, cols: cols, data: make([]float64, rows*cols)}

	return h
}

func (f *Fake) free(op string, h native.Handle) {
	f.record(op)
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.mem[h]; !ok {
		f.badFrees++
		return
	}
	delete(f.mem, h)
	f.freed++
}

// get looks up the allocation behind h. Only the map access is locked; the
// returned block's data belongs to whoever holds the handle.
func (f *Fake) get(h native.Handle) *block {
	f.mu.Lock()
	b := f.mem[h]
	f.mu.Unlock()
	if b == nil {
		panic(fmt.Sprintf("nativetest: access to unknown handle %#x", uintptr(h)))
	}

	return b
}

// Kind reports the allocation kind behind h ("vector", "matrix", or a
// workspace name) and whether h is live.
func (f *Fake) Kind(h native.Handle) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.mem[h]
	if !ok {
		return "", false
	}

	return b.kind, true
}
