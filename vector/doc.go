// SPDX-License-Identifier: MIT

// Package vector provides typed, owned views over native GSL vectors.
//
// A Vector[T] owns one gsl_vector (float32, float64, or int32 elements)
// allocated by a native.Library. Its length and stride are fixed at
// allocation and cached, so Len and Stride never touch native memory and
// keep working after Close.
//
// Access tiers:
//
//	v.At(i) / v.Set(i, x)     checked; borrow for one element, return errors
//	v.Shared() → *Reader[T]   hold a read borrow across many reads
//	v.Exclusive() → *Writer[T]  hold the write borrow across many writes
//	Reader.Get / Writer.Put   unchecked fast path; panic on a bad index
//
// Every operation that spans two vectors checks, in order: same Library
// (gslerr.ErrInvalid), equal lengths (gslerr.ErrBadLength), then borrows.
// No native routine runs when a check fails.
//
// Errors:
//
//	gslerr.ErrInvalid         n <= 0, index out of range, mixed libraries, borrow conflict
//	gslerr.ErrBadLength       CopyFrom between vectors of different length
//	gslerr.ErrNoMemory        allocator returned null
//	gslerr.ErrUnimplemented   backend lacks the routine
//	gslerr.ErrFault           use after Close or after a view's Release
package vector
