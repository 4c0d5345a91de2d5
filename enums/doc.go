// SPDX-License-Identifier: MIT

// Package enums transcodes closed domain enumerations to and from the integer
// constants of the GSL and CBLAS headers.
//
// Every type has:
//
//	x.Native() int32          total over the declared values
//	XFromNative(code) X        panics on an unknown code
//	x.String() string
//
// An unknown native code means the linked library and this package disagree
// on a header constant (version skew). User input never reaches
// XFromNative, so the condition is a programmer error and panics instead of
// returning an error. Native on an undeclared value (e.g. Transpose(9))
// panics for the same reason.
//
// Catalog lists every family with its members, for diagnostics.
package enums
