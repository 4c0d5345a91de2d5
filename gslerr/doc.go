// SPDX-License-Identifier: MIT

// Package gslerr is the closed error taxonomy of the GSL status-code space.
//
// GSL reports the outcome of almost every routine as a small integer:
// 0 for success, and one of ~35 fixed sentinels for failure. This package
// turns that integer into a Go error value that callers match with
// errors.Is / errors.As, and turns an error back into the integer when Go
// code has to answer GSL in its own protocol.
//
// Values:
//
//	gslerr.ErrDomain, gslerr.ErrRange, gslerr.ErrBadLength, ... // named sentinels
//	gslerr.Unknown(77)                                          // any other code
//
// Every named sentinel is an Error whose numeric value IS the native code,
// so the mapping is an identity on the wire and trivially bidirectional:
//
//	FromCode(ToCode(e)) == e   for every named e
//	ToCode(FromCode(c)) == c   for every c
//
// Unrecognized non-zero codes never panic: they become Unknown(code) and keep
// the original number, so a newer libgsl cannot crash an older wrapper.
//
// Errors produced by the Go layer itself (a length mismatch detected before a
// native call, a borrow conflict, a closed handle) are the same Error values,
// usually wrapped with context via fmt.Errorf("...: %w", ...). Callers cannot
// tell "the wrapper rejected it" from "GSL rejected it" except by the variant.
package gslerr
