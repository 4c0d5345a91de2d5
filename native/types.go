// SPDX-License-Identifier: MIT

package native

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
)

// Handle is an opaque pointer to backend-managed memory. Zero is the null handle.
type Handle uintptr

// Null is the null handle returned by failed allocations.
const Null Handle = 0

// IsNull reports whether h is the null handle.
func (h Handle) IsNull() bool { return h == Null }

// Status is a native status code (0 = success).
type Status = int32

// Float is the set of element types GSL provides BLAS kernels for.
type Float interface {
	float32 | float64
}

// Element is the set of element types vectors can hold.
type Element interface {
	float32 | float64 | int32
}

// SFResult mirrors gsl_sf_result: value plus absolute error estimate.
type SFResult struct {
	Val float64
	Err float64
}

// ErrorFunc is the Go side of gsl_error_handler_t.
type ErrorFunc func(reason, file string, line int, code Status)

// Missing returns the error reported when a backend does not provide op.
// It wraps gslerr.ErrUnimplemented.
func Missing(lib *Library, op string) error {
	name := "<nil>"
	if lib != nil {
		name = lib.Name
	}

	return fmt.Errorf("%s: not provided by backend %q: %w", op, name, gslerr.ErrUnimplemented)
}
