// SPDX-License-Identifier: MIT

package native

// EigenABI covers the real symmetric eigensolvers and the sort helpers.
type EigenABI struct {
	SymmAlloc    func(n int) Handle
	SymmFree     func(w Handle)
	Symm         func(a, eval, w Handle) Status
	SymmvAlloc   func(n int) Handle
	SymmvFree    func(w Handle)
	Symmv        func(a, eval, evec, w Handle) Status
	SymmvSort    func(eval, evec Handle, sort int32) Status
	GensymmvSort func(eval, evec Handle, sort int32) Status
}

// FilterABI covers gsl_filter_* (GSL >= 2.5).
type FilterABI struct {
	GaussianAlloc func(k int) Handle
	GaussianFree  func(w Handle)
	Gaussian      func(endtype int32, alpha float64, order int, x, y, w Handle) Status
	MedianAlloc   func(k int) Handle
	MedianFree    func(w Handle)
	Median        func(endtype int32, x, y, w Handle) Status
	RMedianAlloc  func(k int) Handle
	RMedianFree   func(w Handle)
	RMedian       func(endtype int32, x, y, w Handle) Status
	ImpulseAlloc  func(k int) Handle
	ImpulseFree   func(w Handle)
	Impulse       func(endtype, scaleType int32, t float64, x, y, xmedian, xsigma Handle, noutlier *int, ioutlier, w Handle) Status
}

// MultifitABI covers the free-standing gsl_multifit_* helpers.
type MultifitABI struct {
	Covar          func(j Handle, epsrel float64, covar Handle) Status
	TestDelta      func(dx, x Handle, epsabs, epsrel float64) Status
	Gradient       func(j, f, g Handle) Status
	LinearLreg     func(smin, smax float64, reg Handle) Status
	LinearLcorner  func(rho, eta Handle, idx *int) Status
	LinearLcorner2 func(reg, eta Handle, idx *int) Status
	LinearLk       func(p, k int, l Handle) Status
}

// MultirootABI covers the gsl_multiroot_test_* convergence tests.
type MultirootABI struct {
	TestDelta    func(dx, x Handle, epsabs, epsrel float64) Status
	TestResidual func(f Handle, epsabs float64) Status
}

// PolyABI covers gsl_poly_*. Slice lengths carry the native length arguments.
type PolyABI struct {
	Eval                  func(c []float64, x float64) float64
	EvalDerivs            func(c []float64, x float64, res []float64) Status
	SolveQuadratic        func(a, b, c float64, x0, x1 *float64) int
	SolveCubic            func(a, b, c float64, x0, x1, x2 *float64) int
	DDInit                func(dd, xa, ya []float64) Status
	DDEval                func(dd, xa []float64, x float64) float64
	DDTaylor              func(c []float64, xp float64, dd, xa, w []float64) Status
	ComplexWorkspaceAlloc func(n int) Handle
	ComplexWorkspaceFree  func(w Handle)
	ComplexSolve          func(a []float64, w Handle, z []float64) Status
}

// SFABI covers the special functions used by package sf. The *E variants are
// the error-handling forms (gsl_sf_*_e).
type SFABI struct {
	Gamma       func(x float64) float64
	GammaE      func(x float64, r *SFResult) Status
	LnGamma     func(x float64) float64
	LnGammaE    func(x float64, r *SFResult) Status
	LnGammaSgnE func(x float64, r *SFResult, sgn *float64) Status
	Beta        func(a, b float64) float64
	BetaE       func(a, b float64, r *SFResult) Status
	LnBeta      func(a, b float64) float64
	LnBetaE     func(a, b float64, r *SFResult) Status
	Fact        func(n uint32) float64
	FactE       func(n uint32, r *SFResult) Status
	Choose      func(n, m uint32) float64
	ChooseE     func(n, m uint32, r *SFResult) Status
	PowInt      func(x float64, n int32) float64
	PowIntE     func(x float64, n int32, r *SFResult) Status
	AiryAi      func(x float64, mode int32) float64
	AiryAiE     func(x float64, mode int32, r *SFResult) Status
	BesselJ0    func(x float64) float64
	BesselJ0E   func(x float64, r *SFResult) Status
	BesselJn    func(n int32, x float64) float64
	BesselJnE   func(n int32, x float64, r *SFResult) Status
	Clausen     func(x float64) float64
	ClausenE    func(x float64, r *SFResult) Status
}

// MathieuABI covers gsl_sf_mathieu_*.
type MathieuABI struct {
	Alloc   func(n int, qmax float64) Handle
	Free    func(w Handle)
	AE      func(n int32, q float64, r *SFResult) Status
	BE      func(n int32, q float64, r *SFResult) Status
	CeE     func(n int32, q, x float64, r *SFResult) Status
	SeE     func(n int32, q, x float64, r *SFResult) Status
	AArray  func(orderMin, orderMax int32, q float64, w Handle, result []float64) Status
	BArray  func(orderMin, orderMax int32, q float64, w Handle, result []float64) Status
	CeArray func(nmin, nmax int32, q, x float64, w Handle, result []float64) Status
	SeArray func(nmin, nmax int32, q, x float64, w Handle, result []float64) Status
}
