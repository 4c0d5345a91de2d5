// SPDX-License-Identifier: MIT

package sf

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
)

// Result is a value with its absolute error estimate (gsl_sf_result).
type Result struct {
	Val float64
	Err float64
}

// String formats r as "val ± err".
func (r Result) String() string { return fmt.Sprintf("%g ± %g", r.Val, r.Err) }

// SF binds the special functions of one Library.
type SF struct {
	lib    *native.Library
	logger *slog.Logger
}

// New returns the functions of native.Default(), or of the WithLibrary backend.
func New(opts ...Option) *SF {
	o := gatherOptions(opts)

	return &SF{lib: o.lib, logger: o.logger}
}

// Library returns the bound backend.
func (s *SF) Library() *native.Library { return s.lib }

// plain runs a value-only routine when present.
func (s *SF) plain(op string, present bool, call func() float64) (float64, error) {
	if !present {
		return math.NaN(), native.Missing(s.lib, op)
	}

	return call(), nil
}

// result runs an error-form routine when present. On native failure the
// Result still carries what the routine stored (NaN, ±Inf).
func (s *SF) result(op string, present bool, call func(*native.SFResult) native.Status) (Result, error) {
	if !present {
		return Result{Val: math.NaN(), Err: math.NaN()}, native.Missing(s.lib, op)
	}
	var r native.SFResult
	err := gslerr.FromCode(call(&r))

	return Result(r), err
}

// order narrows an order or count to the native int.
func order(op string, n int) (int32, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%s: order %d out of range: %w", op, n, gslerr.ErrInvalid)
	}

	return int32(n), nil
}
