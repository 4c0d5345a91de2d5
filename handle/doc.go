// SPDX-License-Identifier: MIT

// Package handle owns native resources and arbitrates access to them.
//
// An Owner wraps one native.Handle together with the free routine that pairs
// with its allocator. Access goes through views:
//
//	Shared()     read-only alias; any number may be live together
//	Exclusive()  the only mutable alias; excludes every other view
//
// The guard is a reader count plus a writer flag checked at borrow time, so a
// call such as axpy(alpha, x, x) that needs x shared and exclusive at once is
// rejected with an error matching both gslerr.ErrInvalid and
// ErrBorrowConflict before any native routine runs.
//
// Lifecycle:
//
//	Wrap ──► Idle ⇄ Shared / Exclusive ──► Close ──► released (exactly once)
//
// Close with live views defers the free until the last view is released.
// An Owner that becomes unreachable without Close is released by a finalizer,
// which also logs a warning through slog.
//
// Bookkeeping is mutex-guarded and safe across goroutines. That makes the
// guard itself reliable; it does not make concurrent native calls on the
// same resource safe beyond what the guard admits.
package handle
