// SPDX-License-Identifier: MIT

// Package native is the C ABI boundary of lvgsl.
//
// A Library is a table of native entry points (one Go func value per GSL or
// CBLAS routine), grouped per concern and parameterized over the element type
// where GSL duplicates a routine per type (gsl_blas_sdot / gsl_blas_ddot ...).
// Call-through packages never reach GSL directly: they look up the entry they
// need in the Library that allocated their operands.
//
// Backends:
//
//	native/cgsl         cgo bindings to libgsl (build with -tags gsl)
//	native/nativetest   memory-backed fake with call counters (tests)
//
// Without the gsl tag, Default() returns an empty Library: every entry is nil,
// and call-throughs answer gslerr.ErrUnimplemented instead of crashing.
//
// Handles are uintptr values that point into C memory owned by the backend;
// Go code outside the backend never dereferences them. Ownership of a Handle
// is tracked by package handle, not here.
//
// Startup discipline:
//
//	SetDefault(lib) disables lib's native error hook (the GSL default handler
//	prints and aborts) before the library becomes visible. Call it once, at
//	startup, from a single goroutine.
package native
