// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/native"
)

// AiryAi returns the Airy function Ai(x) computed to precision prec.
func (s *SF) AiryAi(x float64, prec enums.Prec) (float64, error) {
	f, mode := s.lib.SF.AiryAi, prec.Native()
	return s.plain("sf.AiryAi", f != nil, func() float64 { return f(x, mode) })
}

// AiryAiE returns Ai(x) with its error estimate.
func (s *SF) AiryAiE(x float64, prec enums.Prec) (Result, error) {
	f, mode := s.lib.SF.AiryAiE, prec.Native()
	return s.result("sf.AiryAiE", f != nil, func(r *native.SFResult) native.Status { return f(x, mode, r) })
}

// BesselJ0 returns the regular cylindrical Bessel function J₀(x).
func (s *SF) BesselJ0(x float64) (float64, error) {
	f := s.lib.SF.BesselJ0
	return s.plain("sf.BesselJ0", f != nil, func() float64 { return f(x) })
}

// BesselJ0E returns J₀(x) with its error estimate.
func (s *SF) BesselJ0E(x float64) (Result, error) {
	f := s.lib.SF.BesselJ0E
	return s.result("sf.BesselJ0E", f != nil, func(r *native.SFResult) native.Status { return f(x, r) })
}

// BesselJn returns Jₙ(x).
func (s *SF) BesselJn(n int, x float64) (float64, error) {
	const op = "sf.BesselJn"
	k, err := order(op, n)
	if err != nil {
		return math.NaN(), err
	}
	f := s.lib.SF.BesselJn

	return s.plain(op, f != nil, func() float64 { return f(k, x) })
}

// BesselJnE returns Jₙ(x) with its error estimate.
func (s *SF) BesselJnE(n int, x float64) (Result, error) {
	const op = "sf.BesselJnE"
	k, err := order(op, n)
	if err != nil {
		return Result{}, err
	}
	f := s.lib.SF.BesselJnE

	return s.result(op, f != nil, func(r *native.SFResult) native.Status { return f(k, x, r) })
}

// Clausen returns the Clausen integral Cl₂(x).
func (s *SF) Clausen(x float64) (float64, error) {
	f := s.lib.SF.Clausen
	return s.plain("sf.Clausen", f != nil, func() float64 { return f(x) })
}

// ClausenE returns Cl₂(x) with its error estimate.
func (s *SF) ClausenE(x float64) (Result, error) {
	f := s.lib.SF.ClausenE
	return s.result("sf.ClausenE", f != nil, func(r *native.SFResult) native.Status { return f(x, r) })
}
