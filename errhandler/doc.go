// SPDX-License-Identifier: MIT

// Package errhandler manages the one process-wide GSL error callback.
//
// By default GSL prints a message and aborts the process on any error. The
// cgsl backend turns that off during package initialization, so the registry
// starts in the Off state: native routines only return status codes.
//
// Set installs a Handler. From then on every error GSL raises invokes the
// Handler with the reason, source location, and the status decoded through
// gslerr (codes outside the named set arrive as gslerr.Unknown, number kept).
// Set(nil) and Off return to the Off state. Both return the previous Handler
// so callers can restore it.
//
// Handler builders compose observers into the single slot:
//
//	errhandler.Set(errhandler.Chain(
//		errhandler.Logger(slog.Default()),
//		errhandler.NewMetrics(prometheus.DefaultRegisterer).Handler(),
//	))
//
// The registry is not safe for concurrent mutation. Configure it once during
// startup from a single goroutine, before numeric work begins.
package errhandler
