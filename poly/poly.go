// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
)

// Poly binds the polynomial routines of one Library.
type Poly struct {
	lib    *native.Library
	logger *slog.Logger
}

// New returns the routines of native.Default(), or of the WithLibrary backend.
func New(opts ...Option) *Poly {
	o := gatherOptions(opts)

	return &Poly{lib: o.lib, logger: o.logger}
}

// Library returns the bound backend.
func (p *Poly) Library() *native.Library { return p.lib }

func nonEmpty(op, what string, xs []float64) error {
	if len(xs) == 0 {
		return fmt.Errorf("%s: %s must not be empty: %w", op, what, gslerr.ErrInvalid)
	}

	return nil
}

// Eval returns c(x) by Horner's rule.
func (p *Poly) Eval(c []float64, x float64) (float64, error) {
	const op = "poly.Eval"
	if err := nonEmpty(op, "coefficients", c); err != nil {
		return 0, err
	}
	if p.lib.Poly.Eval == nil {
		return 0, native.Missing(p.lib, op)
	}

	return p.lib.Poly.Eval(c, x), nil
}

// EvalDerivs stores dᵏc/dxᵏ at x in res[k] for k < len(res).
func (p *Poly) EvalDerivs(c []float64, x float64, res []float64) error {
	const op = "poly.EvalDerivs"
	if err := nonEmpty(op, "coefficients", c); err != nil {
		return err
	}
	if err := nonEmpty(op, "result", res); err != nil {
		return err
	}
	if p.lib.Poly.EvalDerivs == nil {
		return native.Missing(p.lib, op)
	}

	return gslerr.FromCode(p.lib.Poly.EvalDerivs(c, x, res))
}

// SolveQuadratic returns the real roots of ax² + bx + c = 0 in ascending
// order: none, one when a = 0, or two (coincident roots are reported twice).
func (p *Poly) SolveQuadratic(a, b, c float64) ([]float64, error) {
	const op = "poly.SolveQuadratic"
	if p.lib.Poly.SolveQuadratic == nil {
		return nil, native.Missing(p.lib, op)
	}
	var x [2]float64
	n := p.lib.Poly.SolveQuadratic(a, b, c, &x[0], &x[1])

	return roots(op, x[:], n)
}

// SolveCubic returns the real roots of x³ + ax² + bx + c = 0 in ascending
// order: one or three.
func (p *Poly) SolveCubic(a, b, c float64) ([]float64, error) {
	const op = "poly.SolveCubic"
	if p.lib.Poly.SolveCubic == nil {
		return nil, native.Missing(p.lib, op)
	}
	var x [3]float64
	n := p.lib.Poly.SolveCubic(a, b, c, &x[0], &x[1], &x[2])

	return roots(op, x[:], n)
}

// roots trims buf to the n roots the native solver reported.
func roots(op string, buf []float64, n int) ([]float64, error) {
	if n < 0 || n > len(buf) {
		return nil, fmt.Errorf("%s: native solver reported %d roots: %w", op, n, gslerr.ErrSanity)
	}

	return append([]float64(nil), buf[:n]...), nil
}
