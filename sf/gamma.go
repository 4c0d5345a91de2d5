// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvgsl/native"
)

// Gamma returns Γ(x). Poles and overflow go to the error handler.
func (s *SF) Gamma(x float64) (float64, error) {
	f := s.lib.SF.Gamma
	return s.plain("sf.Gamma", f != nil, func() float64 { return f(x) })
}

// GammaE returns Γ(x) with its error estimate.
func (s *SF) GammaE(x float64) (Result, error) {
	f := s.lib.SF.GammaE
	return s.result("sf.GammaE", f != nil, func(r *native.SFResult) native.Status { return f(x, r) })
}

// LnGamma returns log|Γ(x)|.
func (s *SF) LnGamma(x float64) (float64, error) {
	f := s.lib.SF.LnGamma
	return s.plain("sf.LnGamma", f != nil, func() float64 { return f(x) })
}

// LnGammaE returns log|Γ(x)| with its error estimate.
func (s *SF) LnGammaE(x float64) (Result, error) {
	f := s.lib.SF.LnGammaE
	return s.result("sf.LnGammaE", f != nil, func(r *native.SFResult) native.Status { return f(x, r) })
}

// LnGammaSgnE returns log|Γ(x)| and the sign of Γ(x), so that
// Γ(x) = sgn·exp(r.Val). At the poles sgn is 0 and the error is ErrDomain.
func (s *SF) LnGammaSgnE(x float64) (r Result, sgn float64, err error) {
	f := s.lib.SF.LnGammaSgnE
	r, err = s.result("sf.LnGammaSgnE", f != nil, func(p *native.SFResult) native.Status { return f(x, p, &sgn) })

	return r, sgn, err
}

// Beta returns B(a, b) = Γ(a)Γ(b)/Γ(a+b).
func (s *SF) Beta(a, b float64) (float64, error) {
	f := s.lib.SF.Beta
	return s.plain("sf.Beta", f != nil, func() float64 { return f(a, b) })
}

// BetaE returns B(a, b) with its error estimate.
func (s *SF) BetaE(a, b float64) (Result, error) {
	f := s.lib.SF.BetaE
	return s.result("sf.BetaE", f != nil, func(r *native.SFResult) native.Status { return f(a, b, r) })
}

// LnBeta returns log B(a, b) for a, b > 0.
func (s *SF) LnBeta(a, b float64) (float64, error) {
	f := s.lib.SF.LnBeta
	return s.plain("sf.LnBeta", f != nil, func() float64 { return f(a, b) })
}

// LnBetaE returns log B(a, b) with its error estimate.
func (s *SF) LnBetaE(a, b float64) (Result, error) {
	f := s.lib.SF.LnBetaE
	return s.result("sf.LnBetaE", f != nil, func(r *native.SFResult) native.Status { return f(a, b, r) })
}

// Fact returns n!. Above 170 the result overflows.
func (s *SF) Fact(n uint32) (float64, error) {
	f := s.lib.SF.Fact
	return s.plain("sf.Fact", f != nil, func() float64 { return f(n) })
}

// FactE returns n! with its error estimate; ErrOverFlow for n > 170.
func (s *SF) FactE(n uint32) (Result, error) {
	f := s.lib.SF.FactE
	return s.result("sf.FactE", f != nil, func(r *native.SFResult) native.Status { return f(n, r) })
}

// Choose returns the binomial coefficient n over m.
func (s *SF) Choose(n, m uint32) (float64, error) {
	f := s.lib.SF.Choose
	return s.plain("sf.Choose", f != nil, func() float64 { return f(n, m) })
}

// ChooseE returns n over m with its error estimate; ErrDomain for m > n.
func (s *SF) ChooseE(n, m uint32) (Result, error) {
	f := s.lib.SF.ChooseE
	return s.result("sf.ChooseE", f != nil, func(r *native.SFResult) native.Status { return f(n, m, r) })
}

// PowInt returns xⁿ by repeated squaring.
func (s *SF) PowInt(x float64, n int) (float64, error) {
	const op = "sf.PowInt"
	k, err := order(op, n)
	if err != nil {
		return math.NaN(), err
	}
	f := s.lib.SF.PowInt

	return s.plain(op, f != nil, func() float64 { return f(x, k) })
}

// PowIntE returns xⁿ with its error estimate.
func (s *SF) PowIntE(x float64, n int) (Result, error) {
	const op = "sf.PowIntE"
	k, err := order(op, n)
	if err != nil {
		return Result{}, err
	}
	f := s.lib.SF.PowIntE

	return s.result(op, f != nil, func(r *native.SFResult) native.Status { return f(x, k, r) })
}
