// SPDX-License-Identifier: MIT

// Package cgsl is the cgo backend: a native.Library whose entries call the
// system GSL through cgo. It is compiled only with cgo enabled and the gsl
// build tag, and links via pkg-config:
//
//	go build -tags gsl ./...
//
// Importing the package installs its Library as native.Default() with the
// native abort handler turned off. Handles are the raw C pointers returned by
// the gsl_*_alloc functions; GSL memory is never moved by the Go collector.
package cgsl
