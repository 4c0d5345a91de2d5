// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
)

// DD is the Newton divided-difference form of the polynomial interpolating
// a set of points: dd[k] = [x₀, x₁, …, x_k].
type DD struct {
	lib *native.Library
	dd  []float64
	xa  []float64
}

// NewDD interpolates the points (xa[i], ya[i]). The slices are copied.
func (p *Poly) NewDD(xa, ya []float64) (*DD, error) {
	const op = "poly.NewDD"
	if err := nonEmpty(op, "abscissae", xa); err != nil {
		return nil, err
	}
	if len(xa) != len(ya) {
		return nil, fmt.Errorf("%s: %d abscissae for %d values: %w", op, len(xa), len(ya), gslerr.ErrBadLength)
	}
	if p.lib.Poly.DDInit == nil {
		return nil, native.Missing(p.lib, op)
	}
	d := &DD{lib: p.lib, dd: make([]float64, len(xa)), xa: append([]float64(nil), xa...)}
	if err := gslerr.FromCode(p.lib.Poly.DDInit(d.dd, d.xa, ya)); err != nil {
		return nil, err
	}

	return d, nil
}

// Len returns the number of interpolation points.
func (d *DD) Len() int { return len(d.dd) }

// Differences returns a copy of the divided differences.
func (d *DD) Differences() []float64 { return append([]float64(nil), d.dd...) }

// Eval evaluates the interpolating polynomial at x.
func (d *DD) Eval(x float64) (float64, error) {
	if d.lib.Poly.DDEval == nil {
		return 0, native.Missing(d.lib, "poly.DD.Eval")
	}

	return d.lib.Poly.DDEval(d.dd, d.xa, x), nil
}

// Taylor returns the coefficients of the interpolating polynomial expanded
// about xp: Σ c[k]·(x − xp)ᵏ.
func (d *DD) Taylor(xp float64) ([]float64, error) {
	if d.lib.Poly.DDTaylor == nil {
		return nil, native.Missing(d.lib, "poly.DD.Taylor")
	}
	c := make([]float64, len(d.dd))
	w := make([]float64, len(d.dd))

	return gslerr.Check(d.lib.Poly.DDTaylor(c, xp, d.dd, d.xa, w), c)
}
