// SPDX-License-Identifier: MIT

// Package nativetest provides a memory-backed native.Library for tests.
//
// The fake allocates vectors, matrices, and workspaces in Go memory behind
// synthetic handles, counts every entry-point invocation by name, and lets a
// test inject a failure status into any named entry. Injected failures and
// argument errors the fake detects itself are reported through the installed
// error hook first, the way gsl_error does, and only then returned.
//
// Arithmetic is provided for the vector and matrix families, BLAS Levels 1-3
// (except rotmg), the mixed-precision dots, CBLAS Levels 1-3, the symmetric
// eigensolvers, the convergence tests, and the real polynomial and gamma
// families. Other domain entries (filters, L-curve helpers, Airy, Mathieu
// evaluators, ...) only have their workspace allocators wired; a test that
// needs one assigns the func field on Library() directly.
//
// Accessing a handle that was never allocated or is already freed panics,
// which stands in for the crash such an access would cause in C.
//
// A Fake may be shared between goroutines. Its bookkeeping is locked, but the
// storage behind a handle is not: callers read it concurrently or write it
// from one goroutine, as the handle package lends it.
package nativetest
